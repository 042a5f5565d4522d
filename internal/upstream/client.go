package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Getter fetches the body of a GET request. Implemented by Client and
// decorated by Cache.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client is a rate-limited HTTP GET client with a fixed User-Agent.
// met.no rejects anonymous clients and asks for polite request rates,
// so every upstream call goes through one of these.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(userAgent string, rps float64) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s returned %d: %s", ErrUnavailable, url, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return body, nil
}
