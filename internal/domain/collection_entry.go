package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CollectionEntry is the persisted form of a Monster in one player's
// collection. The content item is snapshotted so a monster keeps its seed
// material even if the content catalogue is later edited.
type CollectionEntry struct {
	UserID       uuid.UUID                       `json:"userId" gorm:"type:uuid;primaryKey"`
	MonsterID    string                          `json:"monsterId" gorm:"primaryKey"`
	Name         string                          `json:"name" gorm:"not null"`
	Rarity       string                          `json:"rarity" gorm:"not null;index"`
	Content      datatypes.JSONType[ContentItem] `json:"content" gorm:"type:jsonb;not null"`
	Unlocked     bool                            `json:"unlocked" gorm:"not null;default:false"`
	DateObtained *time.Time                      `json:"dateObtained"`
	CreatedAt    time.Time                       `json:"createdAt"`
	UpdatedAt    time.Time                       `json:"updatedAt"`
}

func (CollectionEntry) TableName() string {
	return "collection_entries"
}

func NewCollectionEntry(userID uuid.UUID, m Monster) *CollectionEntry {
	return &CollectionEntry{
		UserID:       userID,
		MonsterID:    m.ID,
		Name:         m.Name,
		Rarity:       m.Rarity.String(),
		Content:      datatypes.NewJSONType(m.SourceContent),
		Unlocked:     m.Unlocked,
		DateObtained: m.DateObtained,
	}
}

// Monster converts the entry back. Unknown rarity names decode as common.
func (e *CollectionEntry) Monster() Monster {
	rarity, _ := ParseRarity(e.Rarity)
	return Monster{
		ID:            e.MonsterID,
		Name:          e.Name,
		Rarity:        rarity,
		SourceContent: e.Content.Data(),
		Unlocked:      e.Unlocked,
		DateObtained:  e.DateObtained,
	}
}
