// Package geoip maps a network address to a geographic location using the
// ip-api.com JSON endpoint.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

// Location is the projection of the geolocation response this app needs.
// Immutable once fetched; lives for one request.
type Location struct {
	City     string
	Country  string
	Lat      float64
	Lon      float64
	Timezone string
}

type Client struct {
	baseURL string
	getter  upstream.Getter
}

// NewClient takes the service base URL without a trailing slash,
// e.g. "http://ip-api.com/json".
func NewClient(baseURL string, getter upstream.Getter) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), getter: getter}
}

// Pointer fields so that absent keys are distinguishable from zero values.
type locationJSON struct {
	City     *string  `json:"city"`
	Country  *string  `json:"country"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	Timezone *string  `json:"timezone"`
}

// Lookup resolves city, country, coordinates and timezone for an IPv4/IPv6
// address or domain name. One GET per call, no retries.
func (c *Client) Lookup(ctx context.Context, address string) (Location, error) {
	body, err := c.getter.Get(ctx, c.baseURL+"/"+url.PathEscape(address))
	if err != nil {
		return Location{}, fmt.Errorf("lookup location for %s: %w", address, err)
	}

	var raw locationJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return Location{}, fmt.Errorf("%w: decode location: %v", upstream.ErrMalformed, err)
	}
	if raw.City == nil || raw.Country == nil || raw.Lat == nil || raw.Lon == nil || raw.Timezone == nil {
		return Location{}, fmt.Errorf("%w: location response for %s is missing required fields", upstream.ErrMalformed, address)
	}

	return Location{
		City:     *raw.City,
		Country:  *raw.Country,
		Lat:      *raw.Lat,
		Lon:      *raw.Lon,
		Timezone: *raw.Timezone,
	}, nil
}
