// Package clientip determines the network address a forecast should be
// looked up for. Behind a trusting reverse proxy the address comes from a
// forwarded header; when running locally the server's own public address is
// discovered through an external probe service instead, since the request's
// RemoteAddr would just be a loopback address.
package clientip

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

// Resolver yields the caller address for one inbound page request.
type Resolver interface {
	ClientAddress(ctx context.Context, r *http.Request) (string, error)
}

// HeaderResolver trusts a proxy-forwarded header verbatim and returns its
// first address. Spoofing protection is the proxy's job, not ours.
type HeaderResolver struct {
	Header string
}

func (h HeaderResolver) ClientAddress(_ context.Context, r *http.Request) (string, error) {
	v := r.Header.Get(h.Header)
	if v == "" {
		return "", fmt.Errorf("%w: header %s not set", upstream.ErrUnavailable, h.Header)
	}
	addr, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(addr), nil
}

// ProbeResolver asks an external "what is my IP" service.
type ProbeResolver struct {
	URL    string
	Getter upstream.Getter
}

func (p ProbeResolver) ClientAddress(ctx context.Context, _ *http.Request) (string, error) {
	body, err := p.Getter.Get(ctx, p.URL)
	if err != nil {
		return "", fmt.Errorf("probe external address: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}
