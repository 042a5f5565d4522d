package upstream

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// Cache decorates a Getter with a process-wide TTL response cache keyed by
// URL. Concurrent misses for the same URL are collapsed into a single
// upstream call, so within one TTL window each URL is fetched at most once.
type Cache struct {
	next  Getter
	ttl   time.Duration
	group singleflight.Group

	mu sync.RWMutex
	m  map[string]cacheEntry
}

func NewCache(next Getter, ttl time.Duration) *Cache {
	return &Cache{
		next: next,
		ttl:  ttl,
		m:    make(map[string]cacheEntry),
	}
}

func (c *Cache) Get(ctx context.Context, url string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.m[url]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.body, nil
	}

	v, err, _ := c.group.Do(url, func() (any, error) {
		// A flight that finished between the miss above and this call may
		// already have filled the entry.
		c.mu.RLock()
		entry, ok := c.m[url]
		c.mu.RUnlock()
		if ok && time.Now().Before(entry.expiresAt) {
			return entry.body, nil
		}

		body, err := c.next.Get(ctx, url)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.m[url] = cacheEntry{body: body, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
