package render

import (
	"sync"

	"github.com/dom/quiz-monsters/internal/domain"
)

// CacheKey identifies a rendered document. Monsters are snapshots owned by a
// player, so one id can carry different source text (Seed) or tier (Rarity)
// for different players.
type CacheKey struct {
	MonsterID string
	Seed      uint64
	Rarity    domain.Rarity
	Size      int
}

type CacheStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// Cache memoizes serialized documents for the lifetime of the process. It is
// unbounded: entries are small and the key space is bounded by content ×
// rarity × requested sizes.
type Cache struct {
	mu      sync.Mutex
	entries map[CacheKey]string
	hits    uint64
	misses  uint64
}

func NewCache() *Cache {
	return &Cache{entries: make(map[CacheKey]string)}
}

func (c *Cache) Get(key CacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return doc, ok
}

func (c *Cache) Put(key CacheKey, doc string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = doc
}

func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
