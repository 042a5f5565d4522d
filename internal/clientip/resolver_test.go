package clientip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

func TestHeaderResolver_FirstAddress(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	addr, err := HeaderResolver{Header: "X-Forwarded-For"}.ClientAddress(context.Background(), r)
	if err != nil {
		t.Fatal(err)
	}
	if addr != "203.0.113.7" {
		t.Errorf("expected first forwarded address, got %q", addr)
	}
}

func TestHeaderResolver_MissingHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := HeaderResolver{Header: "X-Forwarded-For"}.ClientAddress(context.Background(), r)
	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestProbeResolver(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("203.0.113.7\n"))
	}))
	defer ts.Close()

	p := ProbeResolver{URL: ts.URL, Getter: upstream.NewClient("test", 100)}
	addr, err := p.ClientAddress(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if addr != "203.0.113.7" {
		t.Errorf("expected trimmed probe body, got %q", addr)
	}
}

func TestProbeResolver_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	p := ProbeResolver{URL: ts.URL, Getter: upstream.NewClient("test", 100)}
	_, err := p.ClientAddress(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
