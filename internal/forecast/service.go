// Package forecast turns a caller's network address into a renderable
// weather report: location lookup, forecast fetch, pure transforms and
// chart rendering, assembled in one sequential chain.
package forecast

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/Tim-Abwao/wqu-weather-app/internal/charts"
	"github.com/Tim-Abwao/wqu-weather-app/internal/geoip"
	"github.com/Tim-Abwao/wqu-weather-app/internal/metno"
	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

const (
	hourlyChartSize = 24
	temperatureAxis = "Air temperature in °C"
)

// Fixed contrasting colors for the 10-day max/min bars.
var dailyChartColors = []string{"orangered", "cyan"}

type LocationLookup interface {
	Lookup(ctx context.Context, address string) (geoip.Location, error)
}

type ForecastFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) ([]metno.Timestep, error)
}

type ChartRenderer interface {
	LineChart(spec charts.LineSpec) (string, error)
	GroupedBarChart(spec charts.BarSpec) (string, error)
}

// Charts holds the two rendered chart fragments, safe to inject into the
// page template.
type Charts struct {
	Hourly template.HTML
	Daily  template.HTML
}

// Report is everything the page (and the CLI) shows. Built fresh per
// request; never cached or persisted.
type Report struct {
	Headline string
	Charts   Charts
	Address  string
	Location geoip.Location
	Current  CurrentConditions
	Icons    IconSet
	Series   Series
}

type Service struct {
	locations LocationLookup
	forecasts ForecastFetcher
	renderer  ChartRenderer
}

func NewService(locations LocationLookup, forecasts ForecastFetcher, renderer ChartRenderer) *Service {
	return &Service{locations: locations, forecasts: forecasts, renderer: renderer}
}

// Report builds the full weather report for one network address. Any
// upstream or transform failure aborts the whole report; there are no
// partial results.
func (s *Service) Report(ctx context.Context, address string) (*Report, error) {
	location, err := s.locations.Lookup(ctx, address)
	if err != nil {
		return nil, err
	}

	zone, err := time.LoadLocation(location.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", upstream.ErrMalformed, location.Timezone)
	}

	steps, err := s.forecasts.Fetch(ctx, location.Lat, location.Lon)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty forecast series", upstream.ErrMalformed)
	}

	// The first entry is "now".
	current, err := ExtractCurrent(steps[0])
	if err != nil {
		return nil, err
	}
	icons, err := ExtractIcons(steps[0])
	if err != nil {
		return nil, err
	}
	series, err := BuildSeries(steps, zone)
	if err != nil {
		return nil, err
	}

	rendered, err := s.renderCharts(series)
	if err != nil {
		return nil, fmt.Errorf("render charts: %w", err)
	}

	return &Report{
		Headline: Headline(series[0].Celsius, location.City, location.Country),
		Charts:   rendered,
		Address:  address,
		Location: location,
		Current:  current,
		Icons:    icons,
		Series:   series,
	}, nil
}

func (s *Service) renderCharts(series Series) (Charts, error) {
	hourly := series
	if len(hourly) > hourlyChartSize {
		hourly = hourly[:hourlyChartSize]
	}
	labels := make([]string, len(hourly))
	values := make([]float64, len(hourly))
	for i, sample := range hourly {
		labels[i] = sample.Time.Format("2006-01-02 15:04")
		values[i] = sample.Celsius
	}

	line, err := s.renderer.LineChart(charts.LineSpec{
		Title:  "24 Hour Forecast",
		XLabel: "Time",
		YLabel: temperatureAxis,
		Labels: labels,
		Name:   "Air temperature",
		Values: values,
	})
	if err != nil {
		return Charts{}, err
	}

	days := DailyExtremes(series)
	dayLabels := make([]string, len(days))
	maxes := make([]float64, len(days))
	mins := make([]float64, len(days))
	for i, d := range days {
		dayLabels[i] = d.Day
		maxes[i] = d.Max
		mins[i] = d.Min
	}

	bars, err := s.renderer.GroupedBarChart(charts.BarSpec{
		Title:  "10 Day Forecast",
		XLabel: "Day",
		YLabel: temperatureAxis,
		Labels: dayLabels,
		Series: []charts.BarSeries{
			{Name: "max", Values: maxes},
			{Name: "min", Values: mins},
		},
		Colors: dailyChartColors,
	})
	if err != nil {
		return Charts{}, err
	}

	return Charts{Hourly: template.HTML(line), Daily: template.HTML(bars)}, nil
}
