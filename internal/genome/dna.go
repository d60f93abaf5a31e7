package genome

import (
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/lucasb-eyer/go-colorful"
)

type Pattern struct {
	Kind    PatternKind `json:"kind"`
	Density float64     `json:"density"`
}

type Features struct {
	Eyes        EyeStyle    `json:"eyes"`
	Mouth       MouthStyle  `json:"mouth"`
	Limbs       LimbStyle   `json:"limbs"`
	Accessories []Accessory `json:"accessories"`
	Pattern     Pattern     `json:"pattern"`
}

type Animations struct {
	Idle    IdleAnimation    `json:"idle"`
	Hover   HoverAnimation   `json:"hover"`
	Special SpecialAnimation `json:"special,omitempty"`
}

type Personality struct {
	Trait  string  `json:"trait"`
	Mood   float64 `json:"mood"`
	Energy float64 `json:"energy"`
}

// DNA is the structured description a monster is drawn from. It is a pure
// function of the content identity and the rarity tier.
type DNA struct {
	Seed        uint64        `json:"seed"`
	Rarity      domain.Rarity `json:"rarity"`
	BodyType    BodyType      `json:"bodyType"`
	Features    Features      `json:"features"`
	Colors      Palette       `json:"colors"`
	Animations  Animations    `json:"animations"`
	Personality Personality   `json:"personality"`
}

// Synthesizer builds DNA from content. It holds only immutable tables and is
// safe for concurrent use.
type Synthesizer struct {
	palettes *PaletteTable
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{palettes: &palettes}
}

// NewSynthesizerWithPalettes swaps the palette table, mainly for tests of the
// fallback chain.
func NewSynthesizerWithPalettes(table *PaletteTable) *Synthesizer {
	return &Synthesizer{palettes: table}
}

// Synthesize derives the DNA for content at the given rarity.
func (s *Synthesizer) Synthesize(content domain.ContentItem, rarity domain.Rarity) DNA {
	if !rarity.Valid() {
		rarity = domain.RarityCommon
	}

	seed := Hash(content.ID + content.Text)
	rng := NewPRNG(seed)

	dna := DNA{Seed: seed, Rarity: rarity}
	dna.BodyType = Pick(rng, bodyOptions[rarity])
	dna.Features.Eyes = Pick(rng, eyeOptions[rarity])
	dna.Features.Mouth = Pick(rng, mouthOptions[rarity])
	dna.Features.Limbs = Pick(rng, limbOptions[rarity])
	dna.Features.Accessories = pickAccessories(rng, rarity)
	dna.Features.Pattern = Pattern{
		Kind:    Pick(rng, patternOptions[rarity]),
		Density: rng.NextRange(minPatternDensity, maxPatternDensity),
	}
	dna.Colors = finishPalette(Pick(rng, paletteChoices(s.palettes, content.Type, rarity)), rarity)
	dna.Animations.Idle = Pick(rng, idleOptions)
	dna.Animations.Hover = Pick(rng, hoverOptions)
	if rarity >= domain.RarityEpic {
		dna.Animations.Special = Pick(rng, specialOptions)
	}
	dna.Personality = Personality{
		Trait:  traits[Hash(content.Text)%uint64(len(traits))],
		Mood:   rng.Next(),
		Energy: rng.Next(),
	}
	return dna
}

// pickAccessories draws without replacement so a monster never wears the same
// accessory twice.
func pickAccessories(rng *PRNG, rarity domain.Rarity) []Accessory {
	bounds := accessoryCounts[rarity]
	count := rng.NextInt(bounds.min, bounds.max)

	pool := append([]Accessory(nil), accessoryOptions[rarity]...)
	out := make([]Accessory, 0, count)
	for i := 0; i < count && len(pool) > 0; i++ {
		idx := int(rng.Next() * float64(len(pool)))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

// finishPalette strips tier-gated colours from lower tiers and derives the
// legendary gradient.
func finishPalette(p Palette, rarity domain.Rarity) Palette {
	if rarity < domain.RarityEpic {
		p.Glow = ""
	}
	p.Gradient = nil
	if rarity == domain.RarityLegendary {
		p.Gradient = gradientStops(p.Primary, p.Accent)
	}
	return p
}

func gradientStops(from, to string) []string {
	a, err := colorful.Hex(from)
	if err != nil {
		return []string{from, to}
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return []string{from, to}
	}
	return []string{from, a.BlendLab(b, 0.5).Clamped().Hex(), to}
}
