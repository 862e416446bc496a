package cache

import (
	"sync"
	"time"
)

// TTLCache 프로세스 로컬 응답 캐시. 짧은 TTL의 최적화 장치일 뿐이며
// 꺼져 있어도 정확성에는 영향이 없다. 다중 인스턴스 간 공유되지 않는다.
type TTLCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// New creates a TTL cache. now가 nil이면 time.Now를 쓴다 (테스트에서
// 가짜 시계를 주입할 수 있게 분리).
func New(ttl time.Duration, now func() time.Time) *TTLCache {
	if now == nil {
		now = time.Now
	}
	return &TTLCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value when present and not expired
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores a value under key with the cache TTL
func (c *TTLCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Flush drops all entries
func (c *TTLCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of stored entries, expired included
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
