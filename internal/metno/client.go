// Package metno fetches multi-day hourly forecasts from the Norwegian
// Meteorological Institute's locationforecast service.
package metno

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Tim-Abwao/wqu-weather-app/internal/upstream"
)

type Client struct {
	endpoint string
	getter   upstream.Getter
}

// NewClient takes the full compact-forecast endpoint URL,
// e.g. "https://api.met.no/weatherapi/locationforecast/2.0/compact".
func NewClient(endpoint string, getter upstream.Getter) *Client {
	return &Client{endpoint: endpoint, getter: getter}
}

// Fetch retrieves the hourly forecast series for a coordinate pair. The
// series is returned in upstream order, which is ascending by time.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) ([]Timestep, error) {
	params := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}

	body, err := c.getter.Get(ctx, c.endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	var doc forecastDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode forecast: %v", upstream.ErrMalformed, err)
	}
	if len(doc.Properties.Timeseries) == 0 {
		return nil, fmt.Errorf("%w: forecast has no timeseries entries", upstream.ErrMalformed)
	}
	return doc.Properties.Timeseries, nil
}
