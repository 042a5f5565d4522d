// Command weather prints the forecast report for one network address, for
// manual inspection:
//
//	weather 8.8.8.8
package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"
	_ "time/tzdata"

	"github.com/Tim-Abwao/wqu-weather-app/internal/charts"
	"github.com/Tim-Abwao/wqu-weather-app/internal/config"
	"github.com/Tim-Abwao/wqu-weather-app/internal/forecast"
	"github.com/Tim-Abwao/wqu-weather-app/internal/geoip"
	"github.com/Tim-Abwao/wqu-weather-app/internal/metno"
	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: weather <address>")
		os.Exit(2)
	}

	cfg := config.Load()

	// A single-shot lookup has nothing to reuse, so the response cache is
	// skipped.
	client := upstream.NewClient(cfg.UserAgent, cfg.UpstreamRPS)
	svc := forecast.NewService(
		geoip.NewClient(cfg.GeoIPBaseURL, client),
		metno.NewClient(cfg.ForecastURL, client),
		charts.ECharts{},
	)

	report, err := svc.Report(context.Background(), os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "weather:", err)
		os.Exit(1)
	}
	printReport(report)
}

func printReport(r *forecast.Report) {
	fmt.Printf("headline --> %s\n", r.Headline)
	fmt.Printf("address --> %s\n", r.Address)
	fmt.Printf("city --> %s\n", r.Location.City)
	fmt.Printf("country --> %s\n", r.Location.Country)
	fmt.Printf("latitude --> %v\n", r.Location.Lat)
	fmt.Printf("longitude --> %v\n", r.Location.Lon)
	fmt.Printf("timezone --> %s\n", r.Location.Timezone)

	names := make([]string, 0, len(r.Current))
	for name := range r.Current {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("%s --> %s\n", name, r.Current[name])
	}
	for _, window := range []string{"1h", "6h", "12h"} {
		fmt.Printf("icon %s --> %s\n", window, r.Icons[window])
	}

	if n := len(r.Series); n > 0 {
		fmt.Printf("series --> %d hourly samples, %s to %s\n", n,
			r.Series[0].Time.Format(time.RFC3339),
			r.Series[n-1].Time.Format(time.RFC3339))
	}
	fmt.Printf("charts --> 24h fragment (%d bytes), 10-day fragment (%d bytes)\n",
		len(r.Charts.Hourly), len(r.Charts.Daily))
}
