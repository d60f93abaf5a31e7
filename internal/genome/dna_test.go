package genome_test

import (
	"fmt"
	"testing"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var proverb = domain.ContentItem{
	ID:         "p1",
	Text:       "가는 말이 고와야 오는 말이 곱다",
	Type:       domain.ContentTypeProverb,
	Difficulty: domain.DifficultyElementary,
}

func sampleContents(n int) []domain.ContentItem {
	items := make([]domain.ContentItem, n)
	for i := range items {
		items[i] = domain.ContentItem{
			ID:         fmt.Sprintf("c%03d", i),
			Text:       fmt.Sprintf("content text number %d", i),
			Type:       domain.AllContentTypes[i%len(domain.AllContentTypes)],
			Difficulty: domain.DifficultyMiddle,
		}
	}
	return items
}

func TestSynthesize_Deterministic(t *testing.T) {
	synth := genome.NewSynthesizer()

	for _, content := range sampleContents(30) {
		for _, rarity := range domain.AllRarities {
			a := synth.Synthesize(content, rarity)
			b := genome.NewSynthesizer().Synthesize(content, rarity)
			require.Equal(t, a, b, "content %s rarity %s", content.ID, rarity)
		}
	}
}

func TestSynthesize_CommonFixture(t *testing.T) {
	dna := genome.NewSynthesizer().Synthesize(proverb, domain.RarityCommon)

	assert.Equal(t, uint64(5886455756162863), dna.Seed)
	assert.Equal(t, genome.BodyOrganic, dna.BodyType)
	assert.Equal(t, genome.EyesDot, dna.Features.Eyes)
	assert.Equal(t, genome.MouthFlat, dna.Features.Mouth)
	assert.Equal(t, genome.LimbsStubby, dna.Features.Limbs)
	assert.Empty(t, dna.Features.Accessories)
	assert.Equal(t, genome.PatternNone, dna.Features.Pattern.Kind)
	assert.InDelta(t, 0.9508299039780521, dna.Features.Pattern.Density, 1e-12)
	assert.Equal(t, "mischievous", dna.Personality.Trait)
	assert.Empty(t, dna.Animations.Special)
	assert.Empty(t, dna.Colors.Glow)
	assert.Empty(t, dna.Colors.Gradient)
}

func TestSynthesize_TraitStableAcrossRarities(t *testing.T) {
	synth := genome.NewSynthesizer()
	for _, content := range sampleContents(20) {
		trait := synth.Synthesize(content, domain.RarityCommon).Personality.Trait
		for _, rarity := range domain.AllRarities[1:] {
			assert.Equal(t, trait, synth.Synthesize(content, rarity).Personality.Trait)
		}
	}
}

func TestSynthesize_RarityGating(t *testing.T) {
	synth := genome.NewSynthesizer()

	for _, content := range sampleContents(50) {
		common := synth.Synthesize(content, domain.RarityCommon)
		assert.Empty(t, common.Features.Accessories)
		assert.NotEqual(t, genome.BodyMythical, common.BodyType)
		assert.Contains(t, []genome.EyeStyle{genome.EyesDot, genome.EyesRound}, common.Features.Eyes)

		rare := synth.Synthesize(content, domain.RarityRare)
		assert.LessOrEqual(t, len(rare.Features.Accessories), 1)
		assert.Empty(t, rare.Animations.Special)

		epic := synth.Synthesize(content, domain.RarityEpic)
		assert.NotEmpty(t, epic.Animations.Special)
		assert.NotEmpty(t, epic.Colors.Glow)
		assert.Empty(t, epic.Colors.Gradient)

		legendary := synth.Synthesize(content, domain.RarityLegendary)
		n := len(legendary.Features.Accessories)
		assert.True(t, n >= 2 && n <= 3, "legendary accessory count %d", n)
		assert.Len(t, legendary.Colors.Gradient, 3)
		assert.Equal(t, legendary.Colors.Primary, legendary.Colors.Gradient[0])
		assert.Equal(t, legendary.Colors.Accent, legendary.Colors.Gradient[2])

		seen := map[genome.Accessory]bool{}
		for _, acc := range legendary.Features.Accessories {
			assert.False(t, seen[acc], "duplicate accessory %s", acc)
			seen[acc] = true
		}
	}
}

func TestSynthesize_MoodAndEnergyInRange(t *testing.T) {
	synth := genome.NewSynthesizer()
	for _, content := range sampleContents(40) {
		dna := synth.Synthesize(content, domain.RarityRare)
		assert.GreaterOrEqual(t, dna.Personality.Mood, 0.0)
		assert.Less(t, dna.Personality.Mood, 1.0)
		assert.GreaterOrEqual(t, dna.Personality.Energy, 0.0)
		assert.Less(t, dna.Personality.Energy, 1.0)
	}
}

func TestSynthesize_PaletteFallback(t *testing.T) {
	sparse := genome.PaletteTable{}
	sparse[0][domain.RarityCommon] = []genome.Palette{{Primary: "#111111", Secondary: "#222222", Accent: "#333333"}}

	synth := genome.NewSynthesizerWithPalettes(&sparse)

	t.Run("empty tier falls back to common of same type", func(t *testing.T) {
		dna := synth.Synthesize(proverb, domain.RarityRare)
		assert.Equal(t, "#111111", dna.Colors.Primary)
	})

	t.Run("empty type falls back to default palette", func(t *testing.T) {
		idiom := proverb
		idiom.Type = domain.ContentTypeIdiom
		dna := synth.Synthesize(idiom, domain.RarityEpic)
		assert.Equal(t, "#8ecae6", dna.Colors.Primary)
	})

	t.Run("unknown type uses default palette", func(t *testing.T) {
		unknown := proverb
		unknown.Type = "riddle"
		dna := genome.NewSynthesizer().Synthesize(unknown, domain.RarityCommon)
		assert.Equal(t, "#8ecae6", dna.Colors.Primary)
	})
}

func TestSynthesize_InvalidRarityTreatedAsCommon(t *testing.T) {
	synth := genome.NewSynthesizer()
	assert.Equal(t,
		synth.Synthesize(proverb, domain.RarityCommon).Features,
		synth.Synthesize(proverb, domain.Rarity(42)).Features,
	)
}

func TestName(t *testing.T) {
	dna := genome.NewSynthesizer().Synthesize(proverb, domain.RarityCommon)
	assert.Equal(t, "Mischievous Sproutle", genome.Name(dna))

	dna.Rarity = domain.RarityLegendary
	dna.BodyType = genome.BodyMythical
	assert.Equal(t, "Ancient Mischievous Wyrm", genome.Name(dna))

	dna.BodyType = genome.BodyType(99)
	assert.Equal(t, "Ancient Mischievous Blobbit", genome.Name(dna))
}
