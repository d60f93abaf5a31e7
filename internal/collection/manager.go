// Package collection owns a player's monster collection: generation, the
// locked → unlocked lifecycle, duplicate rewards and progress stats.
package collection

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
)

type GenerateResult struct {
	Monster domain.Monster `json:"monster"`
	IsNew   bool           `json:"isNew"`
	Reward  *domain.Reward `json:"reward,omitempty"`
}

// UnlockResult carries the collection's unlocked count before and after the
// call, taken under the same lock as the transition, so milestone crossings
// can be derived without recounting.
type UnlockResult struct {
	Monster       domain.Monster `json:"monster"`
	NewlyUnlocked bool           `json:"newlyUnlocked"`
	Reward        *domain.Reward `json:"reward,omitempty"`

	UnlockedBefore int `json:"-"`
	UnlockedAfter  int `json:"-"`
	Generated      int `json:"-"`
}

// Manager holds one collection in memory. All methods are safe for concurrent
// use; generate and unlock on the same id are serialised so a monster can
// only be created or unlocked once.
type Manager struct {
	mu        sync.Mutex
	monsters  map[string]*domain.Monster
	allocator *genome.RarityAllocator
	synth     *genome.Synthesizer
	rewards   genome.RandomSource
	now       func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now for unlock timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRewardSource replaces the source that decides duplicate reward kinds.
func WithRewardSource(src genome.RandomSource) Option {
	return func(m *Manager) { m.rewards = src }
}

func NewManager(allocator *genome.RarityAllocator, synth *genome.Synthesizer, opts ...Option) *Manager {
	m := &Manager{
		monsters:  make(map[string]*domain.Monster),
		allocator: allocator,
		synth:     synth,
		rewards:   genome.CryptoSource(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the collection with persisted monsters.
func (m *Manager) Load(monsters []domain.Monster) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.monsters = make(map[string]*domain.Monster, len(monsters))
	for i := range monsters {
		mon := monsters[i]
		m.monsters[mon.ID] = &mon
	}
}

// Snapshot returns a copy of every monster, ordered by id, for persistence.
func (m *Manager) Snapshot() []domain.Monster {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedLocked()
}

func (m *Manager) sortedLocked() []domain.Monster {
	out := make([]domain.Monster, 0, len(m.monsters))
	for _, mon := range m.monsters {
		out = append(out, *mon)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GenerateMonster returns the monster earned for content. An existing monster
// is returned as is, with a duplicate reward when it is already unlocked.
// Otherwise a rarity is rolled and a new locked monster is added.
func (m *Manager) GenerateMonster(content domain.ContentItem, comboBonus float64) GenerateResult {
	id := domain.MonsterID(content)

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.monsters[id]; ok {
		result := GenerateResult{Monster: *existing}
		if existing.Unlocked {
			reward := DuplicateReward(existing.Rarity, m.rewards)
			result.Reward = &reward
		}
		return result
	}

	rarity := m.allocator.Allocate(content.Difficulty, comboBonus)
	dna := m.synth.Synthesize(content, rarity)
	mon := &domain.Monster{
		ID:            id,
		Name:          genome.Name(dna),
		Rarity:        rarity,
		SourceContent: content,
	}
	m.monsters[id] = mon
	return GenerateResult{Monster: *mon, IsNew: true}
}

// UnlockMonster unlocks a generated monster. Unknown ids return nil. Repeat
// unlocks leave the monster untouched and hand out a duplicate reward.
func (m *Manager) UnlockMonster(id string) *UnlockResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	mon, ok := m.monsters[id]
	if !ok {
		return nil
	}
	unlocked := m.unlockedLocked()
	if mon.Unlocked {
		reward := DuplicateReward(mon.Rarity, m.rewards)
		return &UnlockResult{
			Monster:        *mon,
			Reward:         &reward,
			UnlockedBefore: unlocked,
			UnlockedAfter:  unlocked,
			Generated:      len(m.monsters),
		}
	}

	now := m.now()
	mon.Unlocked = true
	mon.DateObtained = &now
	return &UnlockResult{
		Monster:        *mon,
		NewlyUnlocked:  true,
		UnlockedBefore: unlocked,
		UnlockedAfter:  unlocked + 1,
		Generated:      len(m.monsters),
	}
}

func (m *Manager) unlockedLocked() int {
	n := 0
	for _, mon := range m.monsters {
		if mon.Unlocked {
			n++
		}
	}
	return n
}

func (m *Manager) Get(id string) (domain.Monster, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mon, ok := m.monsters[id]
	if !ok {
		return domain.Monster{}, false
	}
	return *mon, true
}

// List returns monsters ordered by id, optionally only unlocked ones.
func (m *Manager) List(unlockedOnly bool) []domain.Monster {
	all := m.Snapshot()
	if !unlockedOnly {
		return all
	}
	out := all[:0]
	for _, mon := range all {
		if mon.Unlocked {
			out = append(out, mon)
		}
	}
	return out
}

func (m *Manager) Stats(total int) domain.CollectionStats {
	return ComputeStats(m.Snapshot(), total)
}

// Search ranks monsters by how closely their name matches query: exact
// matches first, then prefix and substring matches, then names within a
// small edit distance of the query or of one of the name's words.
func (m *Manager) Search(query string, limit int) []domain.Monster {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type scored struct {
		monster domain.Monster
		score   float64
	}
	var results []scored
	for _, mon := range m.Snapshot() {
		if s := matchScore(q, strings.ToLower(mon.Name)); s > 0 {
			results = append(results, scored{monster: mon, score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].monster.Name < results[j].monster.Name
		}
		return results[i].score > results[j].score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	out := make([]domain.Monster, len(results))
	for i, r := range results {
		out[i] = r.monster
	}
	return out
}

func matchScore(query, name string) float64 {
	switch {
	case query == name:
		return 1.0
	case strings.HasPrefix(name, query):
		return 0.9
	case strings.Contains(name, query):
		return 0.8
	}

	best := -1
	for _, candidate := range append(strings.Fields(name), name) {
		dist := levenshtein.ComputeDistance(query, candidate)
		if dist <= distanceLimit(len(candidate)) && (best < 0 || dist < best) {
			best = dist
		}
	}
	if best < 0 {
		return 0
	}
	return 0.72 - 0.08*float64(best)
}

func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
