package provider

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type CandidateCache interface {
	Get(ctx context.Context, key string) ([]Candidate, bool, error)
	Set(ctx context.Context, key string, candidates []Candidate, ttl time.Duration) error
}

type RedisCandidateCache struct {
	client redis.Cmdable
}

func NewRedisCandidateCache(client redis.Cmdable) *RedisCandidateCache {
	return &RedisCandidateCache{client: client}
}

func (c *RedisCandidateCache) Get(ctx context.Context, key string) ([]Candidate, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out []Candidate
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, fmt.Errorf("decode cached candidates: %w", err)
	}
	return out, true, nil
}

func (c *RedisCandidateCache) Set(ctx context.Context, key string, candidates []Candidate, ttl time.Duration) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// CachedAdapter memoises non-empty search results of a live adapter.
// Cache failures fall through to the wrapped adapter.
type CachedAdapter struct {
	Adapter
	cache CandidateCache
	ttl   time.Duration
}

func NewCachedAdapter(inner Adapter, cache CandidateCache, ttl time.Duration) *CachedAdapter {
	return &CachedAdapter{Adapter: inner, cache: cache, ttl: ttl}
}

func (a *CachedAdapter) Search(ctx context.Context, p Profile) []Candidate {
	key := cacheKey(string(a.Source()), p)
	cached, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("candidate cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if ok {
		return cached
	}
	out := a.Adapter.Search(ctx, p)
	if len(out) == 0 {
		return out
	}
	if err := a.cache.Set(ctx, key, out, a.ttl); err != nil {
		slog.Warn("candidate cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return out
}

func cacheKey(source string, p Profile) string {
	skills := append([]string(nil), p.Skills...)
	sort.Strings(skills)
	sum := sha1.Sum([]byte(strings.Join(skills, ",") + "|" + strings.TrimSpace(p.Query)))
	return "career:provider:" + source + ":" + hex.EncodeToString(sum[:])
}
