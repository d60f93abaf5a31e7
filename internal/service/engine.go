package service

import (
	"github.com/dom/quiz-monsters/internal/config"
	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/dom/quiz-monsters/internal/render"
)

// Engine bundles the monster generation pipeline. It is built once by the
// composition root and shared by every player's collection.
type Engine struct {
	Allocator   *genome.RarityAllocator
	Synthesizer *genome.Synthesizer
	Renderer    *render.Renderer
}

func NewEngine(cfg *config.Config, src genome.RandomSource) *Engine {
	synth := genome.NewSynthesizer()
	renderer := render.NewRenderer(synth, render.NewComposer(), render.NewCache()).
		WithSizeLimits(cfg.RenderDefaultSize, cfg.RenderMaxSize)

	return &Engine{
		Allocator:   genome.NewRarityAllocator(src),
		Synthesizer: synth,
		Renderer:    renderer,
	}
}
