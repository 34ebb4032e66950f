package cache

import (
	"sync"
	"time"
)

// Entry is a cached upstream response body with its HTTP status.
type Entry struct {
	StatusCode int
	Body       []byte
}

type cacheEntry struct {
	entry     Entry
	expiresAt time.Time
}

// ResponseCache is an in-memory TTL cache for upstream response bodies,
// keyed by the full upstream URL.
type ResponseCache struct {
	entries sync.Map
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

func New() *ResponseCache {
	c := &ResponseCache{
		now:  time.Now,
		done: make(chan struct{}),
	}
	go c.cleanup()
	return c
}

// Get retrieves a cached response. Returns the entry and true if present and
// not expired, otherwise a zero entry and false.
func (c *ResponseCache) Get(key string) (Entry, bool) {
	value, ok := c.entries.Load(key)
	if !ok {
		return Entry{}, false
	}

	ce := value.(*cacheEntry)
	if c.now().After(ce.expiresAt) {
		c.entries.Delete(key)
		return Entry{}, false
	}

	return ce.entry, true
}

// Set stores a response under key for the given TTL.
func (c *ResponseCache) Set(key string, entry Entry, ttl time.Duration) {
	c.entries.Store(key, &cacheEntry{
		entry:     entry,
		expiresAt: c.now().Add(ttl),
	})
}

// Len returns the number of entries currently stored, expired or not.
func (c *ResponseCache) Len() int {
	count := 0
	c.entries.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}

// Close stops the background cleanup goroutine.
func (c *ResponseCache) Close() {
	c.once.Do(func() { close(c.done) })
}

// cleanup periodically removes expired entries.
func (c *ResponseCache) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			now := c.now()
			c.entries.Range(func(key, value interface{}) bool {
				ce := value.(*cacheEntry)
				if now.After(ce.expiresAt) {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}
