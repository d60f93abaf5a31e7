package postgres

import (
	"context"

	"github.com/dom/quiz-monsters/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *contentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Upsert(ctx context.Context, content *domain.ContentItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(content).Error
}

func (r *contentRepository) UpsertMany(ctx context.Context, contents []*domain.ContentItem) error {
	if len(contents) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(contents).Error
}

func (r *contentRepository) GetAll(ctx context.Context) ([]*domain.ContentItem, error) {
	var contents []*domain.ContentItem
	err := r.db.WithContext(ctx).Order("type ASC, id ASC").Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) GetByType(ctx context.Context, contentType domain.ContentType) ([]*domain.ContentItem, error) {
	var contents []*domain.ContentItem
	err := r.db.WithContext(ctx).Where("type = ?", contentType).Order("id ASC").Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	var content domain.ContentItem
	err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ContentItem{}).Count(&count).Error
	return count, err
}
