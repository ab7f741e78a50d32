package minimax

import "sync"

// cacheKey identifies a position together with the perspective it was
// scored from. The same count scores oppositely for the two movers, so
// the flag must be part of the key.
type cacheKey struct {
	count      int
	maximizing bool
}

// Cache memoizes evaluation results. Zero value is not usable; use
// NewCache. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]int
}

// NewCache creates an empty evaluation cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[cacheKey]int),
	}
}

// Get returns the cached score for a position, if present.
func (c *Cache) Get(count int, maximizing bool) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	score, ok := c.entries[cacheKey{count, maximizing}]
	return score, ok
}

// Put records the score for a position.
func (c *Cache) Put(count int, maximizing bool, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{count, maximizing}] = score
}

// Len returns the number of cached positions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Clear discards all cached entries. Cached values are deterministic for
// the fixed rule set, so clearing is hygiene rather than a correctness
// requirement; callers clear at game boundaries and before bulk table
// generation so runs never observe each other's state.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[cacheKey]int)
}
