package render

import (
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
)

const (
	DefaultSize = 200
	MaxSize     = 2048
)

// Renderer is the rendering entry point: monster in, document out.
type Renderer struct {
	synth       *genome.Synthesizer
	composer    *Composer
	cache       *Cache
	defaultSize int
	maxSize     int
}

func NewRenderer(synth *genome.Synthesizer, composer *Composer, cache *Cache) *Renderer {
	return &Renderer{
		synth:       synth,
		composer:    composer,
		cache:       cache,
		defaultSize: DefaultSize,
		maxSize:     MaxSize,
	}
}

// WithSizeLimits overrides the default and maximum canvas sizes.
func (r *Renderer) WithSizeLimits(defaultSize, maxSize int) *Renderer {
	if defaultSize > 0 {
		r.defaultSize = defaultSize
	}
	if maxSize > 0 {
		r.maxSize = maxSize
	}
	if r.defaultSize > r.maxSize {
		r.defaultSize = r.maxSize
	}
	return r
}

// NormalizeSize maps non-positive sizes to the default and caps the rest.
func (r *Renderer) NormalizeSize(size int) int {
	if size <= 0 {
		return r.defaultSize
	}
	if size > r.maxSize {
		return r.maxSize
	}
	return size
}

// DNA recomputes the monster's DNA from its source content and rarity.
func (r *Renderer) DNA(m domain.Monster) genome.DNA {
	return r.synth.Synthesize(m.SourceContent, m.Rarity)
}

// Scene composes the monster without touching the cache.
func (r *Renderer) Scene(m domain.Monster, size int) *Scene {
	return r.composer.Compose(r.DNA(m), r.NormalizeSize(size))
}

// Render returns the SVG document for m, served from the cache when possible.
func (r *Renderer) Render(m domain.Monster, size int) string {
	size = r.NormalizeSize(size)
	dna := r.DNA(m)
	key := CacheKey{MonsterID: m.ID, Seed: dna.Seed, Rarity: dna.Rarity, Size: size}
	if doc, ok := r.cache.Get(key); ok {
		return doc
	}
	doc := r.composer.Compose(dna, size).SVG()
	r.cache.Put(key, doc)
	return doc
}

func (r *Renderer) CacheStats() CacheStats {
	return r.cache.Stats()
}
