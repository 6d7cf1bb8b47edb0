// Package cache de-duplicates expensive upstream gateway calls through a
// keyed, TTL-bound response cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"paygate/pkg/logger"
	"paygate/pkg/metrics"
)

// Request is the capability surface a gateway request exposes to opt into
// caching.
type Request interface {
	URI() string
	Body() []byte
	// IsCacheable can be toggled at runtime; it is re-checked after the
	// upstream call before anything is written.
	IsCacheable() bool
	// CacheLifetime of 0 means unlimited (no expiry).
	CacheLifetime() time.Duration
	// ShouldRefresh forces an upstream call, overwriting the cached entry.
	ShouldRefresh() bool
}

// Store is the backing key/value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// FetchFunc performs the real upstream call on a cache miss.
type FetchFunc func(ctx context.Context) ([]byte, error)

// ResponseCache wraps a Store with the cacheability protocol.
type ResponseCache struct {
	store Store
	log   *logger.Logger
}

func New(store Store, l *logger.Logger) *ResponseCache {
	return &ResponseCache{store: store, log: l}
}

// GetOrFetch returns the cached payload for req, or calls fetch and caches
// the result. Store failures degrade to a plain upstream call; they never
// fail the request.
func (c *ResponseCache) GetOrFetch(ctx context.Context, req Request, fetch FetchFunc) ([]byte, error) {
	if !req.IsCacheable() {
		metrics.CacheLookups.WithLabelValues("bypass").Inc()
		return fetch(ctx)
	}

	key := Key(req)

	if !req.ShouldRefresh() {
		value, ok, err := c.store.Get(ctx, key)
		if err != nil {
			c.log.ErrorCtx(ctx, "Cache lookup failed: key=%s error=%v", key, err)
		} else if ok {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return value, nil
		}
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	resp, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Re-check: cacheability may have been toggled while the call was in
	// flight.
	if req.IsCacheable() {
		if err := c.store.Set(ctx, key, resp, req.CacheLifetime()); err != nil {
			c.log.ErrorCtx(ctx, "Cache write failed: key=%s error=%v", key, err)
		}
	}

	return resp, nil
}

// Key derives the cache key from the request URI, body and configured
// lifetime. The lifetime is part of the key so a TTL change never returns an
// entry computed under a different policy.
func Key(req Request) string {
	h := sha256.New()
	h.Write([]byte(req.URI()))
	h.Write([]byte{0})
	h.Write(req.Body())
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", int64(req.CacheLifetime().Seconds()))
	return "gwcache:" + hex.EncodeToString(h.Sum(nil))
}
