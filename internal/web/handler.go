// Package web serves the forecast page.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Tim-Abwao/wqu-weather-app/internal/clientip"
	"github.com/Tim-Abwao/wqu-weather-app/internal/forecast"
	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

//go:embed index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "index.html"))

type ReportBuilder interface {
	Report(ctx context.Context, address string) (*forecast.Report, error)
}

type Handler struct {
	resolver clientip.Resolver
	reports  ReportBuilder
}

func NewHandler(resolver clientip.Resolver, reports ReportBuilder) *Handler {
	return &Handler{resolver: resolver, reports: reports}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.index).Methods(http.MethodGet)
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	address, err := h.resolver.ClientAddress(r.Context(), r)
	if err != nil {
		slog.Error("resolve caller address failed", "err", err)
		http.Error(w, "could not determine your network address", http.StatusBadGateway)
		return
	}

	report, err := h.reports.Report(r.Context(), address)
	if err != nil {
		slog.Error("build forecast report failed", "err", err, "address", address)
		switch {
		case errors.Is(err, upstream.ErrUnavailable), errors.Is(err, upstream.ErrMalformed):
			http.Error(w, "weather data is currently unavailable", http.StatusBadGateway)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, report); err != nil {
		slog.Error("render page failed", "err", err)
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
