package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type lruEntry struct {
	value     []byte
	expiresAt time.Time
}

type lruCache struct {
	inner *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewLRU returns an in-process cache holding at most size entries, each
// valid for ttl.
func NewLRU(size int, ttl time.Duration) (Cache, error) {
	if size <= 0 {
		size = 256
	}
	inner, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("lru: %w", err)
	}
	return &lruCache{inner: inner, ttl: ttlOrDefault(ttl), now: time.Now}, nil
}

func (c *lruCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := c.inner.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	entry, ok := v.(lruEntry)
	if !ok || !c.now().Before(entry.expiresAt) {
		c.inner.Remove(key)
		return nil, ErrMiss
	}
	return entry.value, nil
}

func (c *lruCache) Set(_ context.Context, key string, value []byte) error {
	c.inner.Add(key, lruEntry{value: value, expiresAt: c.now().Add(c.ttl)})
	return nil
}

func (c *lruCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.inner.Remove(k)
	}
	return nil
}

func (c *lruCache) Close() error {
	c.inner.Purge()
	return nil
}
