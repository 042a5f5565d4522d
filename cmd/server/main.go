package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Tim-Abwao/wqu-weather-app/internal/charts"
	"github.com/Tim-Abwao/wqu-weather-app/internal/clientip"
	"github.com/Tim-Abwao/wqu-weather-app/internal/config"
	"github.com/Tim-Abwao/wqu-weather-app/internal/forecast"
	"github.com/Tim-Abwao/wqu-weather-app/internal/geoip"
	"github.com/Tim-Abwao/wqu-weather-app/internal/metno"
	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
	"github.com/Tim-Abwao/wqu-weather-app/internal/web"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	client := upstream.NewClient(cfg.UserAgent, cfg.UpstreamRPS)
	cached := upstream.NewCache(client, cfg.CacheTTL)

	var resolver clientip.Resolver
	if cfg.Deploy != "" {
		resolver = clientip.HeaderResolver{Header: cfg.ProxyHeader}
	} else {
		resolver = clientip.ProbeResolver{URL: cfg.ProbeURL, Getter: cached}
	}

	svc := forecast.NewService(
		geoip.NewClient(cfg.GeoIPBaseURL, cached),
		metno.NewClient(cfg.ForecastURL, cached),
		charts.ECharts{},
	)

	handler := web.NewHandler(resolver, svc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Router(),
		// A page request chains up to three upstream calls, so the write
		// timeout has to cover them all.
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "proxy_mode", cfg.Deploy != "")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
	slog.Info("server stopped")
}
