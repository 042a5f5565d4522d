package metno

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

func TestFetch(t *testing.T) {
	fixture, err := os.ReadFile("testdata/compact.json")
	if err != nil {
		t.Fatal(err)
	}

	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write(fixture)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, upstream.NewClient("test", 100))
	steps, err := c.Fetch(context.Background(), 59.91, 10.75)
	if err != nil {
		t.Fatal(err)
	}

	if gotQuery != "lat=59.91&lon=10.75" {
		t.Errorf("unexpected query: %q", gotQuery)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 timesteps, got %d", len(steps))
	}

	first := steps[0]
	if first.Data.Instant.Details.AirTemperature == nil || *first.Data.Instant.Details.AirTemperature != 15 {
		t.Error("expected first air temperature of 15")
	}
	if first.Data.Next12Hours == nil || first.Data.Next12Hours.Summary.SymbolCode != "lightrain" {
		t.Error("expected next_12_hours symbol lightrain")
	}

	// The fixture's last entry has no 6h/12h windows, as near the end of a
	// real series.
	last := steps[len(steps)-1]
	if last.Data.Next6Hours != nil || last.Data.Next12Hours != nil {
		t.Error("expected absent windows to decode as nil")
	}
}

func TestFetch_EmptyTimeseries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties": {"timeseries": []}}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, upstream.NewClient("test", 100))
	_, err := c.Fetch(context.Background(), 59.91, 10.75)
	if !errors.Is(err, upstream.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestFetch_UpstreamDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, upstream.NewClient("test", 100))
	_, err := c.Fetch(context.Background(), 59.91, 10.75)
	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
