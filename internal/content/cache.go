package content

import (
	"sync"
	"time"
)

// Payloads change rarely; a short TTL keeps heads fresh without hammering the
// backend on every render.
var payloadCache = struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	ttl   time.Duration
}{
	items: map[string]cacheEntry{},
	ttl:   5 * time.Minute,
}

type cacheEntry struct {
	raw     []byte
	expires time.Time
}

// SetCacheDuration overrides the payload cache TTL (primarily for tests).
func SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	payloadCache.mu.Lock()
	payloadCache.ttl = d
	payloadCache.mu.Unlock()
}

func cached(key string) ([]byte, bool) {
	payloadCache.mu.RLock()
	entry, ok := payloadCache.items[key]
	payloadCache.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	out := make([]byte, len(entry.raw))
	copy(out, entry.raw)
	return out, true
}

func store(key string, raw []byte) {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	payloadCache.mu.Lock()
	payloadCache.items[key] = cacheEntry{raw: cp, expires: time.Now().Add(payloadCache.ttl)}
	payloadCache.mu.Unlock()
}
