package geoip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

const fullResponse = `{
	"status": "success",
	"city": "Mountain View",
	"country": "United States",
	"lat": 37.422,
	"lon": -122.085,
	"timezone": "America/Los_Angeles",
	"query": "8.8.8.8"
}`

func TestLookup(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(fullResponse))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, upstream.NewClient("test", 100))
	loc, err := c.Lookup(context.Background(), "8.8.8.8")
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/8.8.8.8" {
		t.Errorf("expected address in path, got %q", gotPath)
	}
	want := Location{
		City:     "Mountain View",
		Country:  "United States",
		Lat:      37.422,
		Lon:      -122.085,
		Timezone: "America/Los_Angeles",
	}
	if loc != want {
		t.Errorf("unexpected location: %+v", loc)
	}
}

func TestLookup_MissingField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city": "Oslo", "country": "Norway", "lat": 59.91, "lon": 10.75}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, upstream.NewClient("test", 100))
	_, err := c.Lookup(context.Background(), "1.2.3.4")
	if !errors.Is(err, upstream.ErrMalformed) {
		t.Fatalf("expected ErrMalformed for missing timezone, got %v", err)
	}
}

func TestLookup_WrongFieldType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city": "Oslo", "country": "Norway", "lat": "59.91", "lon": 10.75, "timezone": "Europe/Oslo"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, upstream.NewClient("test", 100))
	_, err := c.Lookup(context.Background(), "1.2.3.4")
	if !errors.Is(err, upstream.ErrMalformed) {
		t.Fatalf("expected ErrMalformed for string lat, got %v", err)
	}
}

func TestLookup_UpstreamDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, upstream.NewClient("test", 100))
	_, err := c.Lookup(context.Background(), "1.2.3.4")
	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
