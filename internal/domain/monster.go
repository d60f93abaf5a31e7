package domain

import (
	"fmt"
	"time"
)

type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

// RarityCount is the number of rarity tiers; tables indexed by Rarity use it
// as their length.
const RarityCount = 4

var AllRarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

var rarityNames = [RarityCount]string{"common", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if !r.Valid() {
		return rarityNames[RarityCommon]
	}
	return rarityNames[r]
}

func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityLegendary
}

// ParseRarity maps a tier name to a Rarity.
func ParseRarity(s string) (Rarity, error) {
	for i, name := range rarityNames {
		if name == s {
			return Rarity(i), nil
		}
	}
	return RarityCommon, fmt.Errorf("%w: %q", ErrInvalidRarity, s)
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(b []byte) error {
	parsed, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Monster is one entry of a player's collection. It is created locked the
// first time its content item is answered, unlocks exactly once and is never
// deleted.
type Monster struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Rarity        Rarity      `json:"rarity"`
	SourceContent ContentItem `json:"sourceContent"`
	Unlocked      bool        `json:"unlocked"`
	DateObtained  *time.Time  `json:"dateObtained,omitempty"`
}

// MonsterID derives the collection key for a content item.
func MonsterID(content ContentItem) string {
	return fmt.Sprintf("monster_%s_%s", content.Type, content.ID)
}

type RewardKind string

const (
	RewardExperience RewardKind = "experience"
	RewardCoins      RewardKind = "coins"
)

// Reward is granted when an already unlocked monster is earned again.
type Reward struct {
	Kind   RewardKind `json:"kind"`
	Amount int        `json:"amount"`
}

type RarityCounts struct {
	Total    int `json:"total"`
	Unlocked int `json:"unlocked"`
}

type CollectionStats struct {
	Total                   int                     `json:"total"`
	Generated               int                     `json:"generated"`
	Unlocked                int                     `json:"unlocked"`
	ByRarity                map[Rarity]RarityCounts `json:"byRarity"`
	Percentage              float64                 `json:"percentage"`
	MilestonesReached       []int                   `json:"milestonesReached"`
	NextMilestone           int                     `json:"nextMilestone"`
	MonstersToNextMilestone int                     `json:"monstersToNextMilestone"`
}
