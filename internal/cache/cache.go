package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores rendered certificate images keyed by participant id.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
}

// Memory is the default process-local backend: no eviction, entries live for
// the lifetime of the process. That gives repeat image requests the exact
// bytes of the first render, at the cost of serving stale images if a record
// is corrected without a restart.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get returns the cached bytes for key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.entries[key]
	return val, ok
}

// Set stores val under key, replacing any previous entry.
func (m *Memory) Set(_ context.Context, key string, val []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = val
}

// Redis is an optional shared backend so rendered images survive restarts
// and can be shared between replicas. Entries expire with the same 24h
// horizon the HTTP cache headers advertise.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "certify:image:"

// NewRedis connects to redis with short timeouts.
func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Redis{client: client, ttl: 24 * time.Hour}
}

// Get returns the cached bytes for key. Any redis error reads as a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores val under key with the cache TTL. Failures are ignored; the
// image is simply re-rendered next time.
func (r *Redis) Set(ctx context.Context, key string, val []byte) {
	r.client.Set(ctx, redisKeyPrefix+key, val, r.ttl)
}

// Healthy verifies redis connectivity.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.client == nil {
		return false
	}
	return r.client.Ping(ctx).Err() == nil
}
