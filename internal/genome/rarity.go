package genome

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/dom/quiz-monsters/internal/domain"
)

// RandomSource yields uniform floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// CryptoSource is the default, non-reproducible source used for rarity rolls
// and duplicate rewards.
func CryptoSource() RandomSource { return cryptoSource{} }

type seededSource struct{ r *rand.Rand }

func (s *seededSource) Float64() float64 { return s.r.Float64() }

// NewSeededSource returns a reproducible source, for simulations and tests.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// Weights holds one probability per rarity tier, indexed by domain.Rarity.
type Weights [domain.RarityCount]float64

var baseWeights = map[domain.Difficulty]Weights{
	domain.DifficultyElementary: {0.60, 0.25, 0.12, 0.03},
	domain.DifficultyMiddle:     {0.50, 0.30, 0.15, 0.05},
	domain.DifficultyHigh:       {0.40, 0.33, 0.20, 0.07},
}

const maxComboShare = 0.5

// Share of the mass taken from common that goes to rare, epic and legendary.
var comboRedistribution = [domain.RarityCount]float64{0, 0.5, 0.3, 0.2}

// RarityAllocator assigns a rarity tier to a freshly earned monster. Its rolls
// are deliberately not tied to the content seed.
type RarityAllocator struct {
	src RandomSource
}

func NewRarityAllocator(src RandomSource) *RarityAllocator {
	if src == nil {
		src = CryptoSource()
	}
	return &RarityAllocator{src: src}
}

// RarityWeights returns the distribution used for a difficulty and combo bonus.
// Unknown difficulties use the elementary table; negative bonuses count as zero.
func RarityWeights(difficulty domain.Difficulty, comboBonus float64) Weights {
	w, ok := baseWeights[difficulty]
	if !ok {
		w = baseWeights[domain.DifficultyElementary]
	}
	if comboBonus > 0 && !math.IsNaN(comboBonus) {
		common := w[domain.RarityCommon]
		removed := math.Min(common*comboBonus, common*maxComboShare)
		for i := range w {
			w[i] += removed * comboRedistribution[i]
		}
		w[domain.RarityCommon] -= removed
	}
	return w
}

// Allocate rolls a rarity tier.
func (a *RarityAllocator) Allocate(difficulty domain.Difficulty, comboBonus float64) domain.Rarity {
	return sample(RarityWeights(difficulty, comboBonus), a.src.Float64())
}

func sample(w Weights, roll float64) domain.Rarity {
	cumulative := 0.0
	for _, r := range domain.AllRarities {
		cumulative += w[r]
		if roll < cumulative {
			return r
		}
	}
	return domain.RarityCommon
}
