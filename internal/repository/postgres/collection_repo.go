package postgres

import (
	"context"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *collectionRepository {
	return &collectionRepository{db: db}
}

// Save upserts entry. Name, rarity and content are fixed when the monster is
// generated. The unlock state only moves forward: a stale locked write never
// clears unlocked or date_obtained on an existing row.
func (r *collectionRepository) Save(ctx context.Context, entry *domain.CollectionEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "monster_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"unlocked":      gorm.Expr("collection_entries.unlocked OR excluded.unlocked"),
			"date_obtained": gorm.Expr("COALESCE(collection_entries.date_obtained, excluded.date_obtained)"),
			"updated_at":    gorm.Expr("excluded.updated_at"),
		}),
	}).Create(entry).Error
}

func (r *collectionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.CollectionEntry, error) {
	var entries []*domain.CollectionEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("monster_id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *collectionRepository) Get(ctx context.Context, userID uuid.UUID, monsterID string) (*domain.CollectionEntry, error) {
	var entry domain.CollectionEntry
	err := r.db.WithContext(ctx).First(&entry, "user_id = ? AND monster_id = ?", userID, monsterID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
