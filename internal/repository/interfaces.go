package repository

import (
	"context"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByDisplayName(ctx context.Context, displayName string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// SessionRepository stores refresh-token sessions. A player holds at most one;
// logging in again replaces it.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type ContentRepository interface {
	Upsert(ctx context.Context, content *domain.ContentItem) error
	UpsertMany(ctx context.Context, contents []*domain.ContentItem) error
	GetAll(ctx context.Context) ([]*domain.ContentItem, error)
	GetByType(ctx context.Context, contentType domain.ContentType) ([]*domain.ContentItem, error)
	GetByID(ctx context.Context, id string) (*domain.ContentItem, error)
	Count(ctx context.Context) (int64, error)
}

type CollectionRepository interface {
	// Save inserts or updates a single entry keyed by (user, monster). An
	// unlocked row stays unlocked.
	Save(ctx context.Context, entry *domain.CollectionEntry) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.CollectionEntry, error)
	Get(ctx context.Context, userID uuid.UUID, monsterID string) (*domain.CollectionEntry, error)
}

type ProgressRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.PlayerProgress, error)
	// AddReward atomically adds reward to the player's totals, creating the
	// row on first use, and returns the new totals.
	AddReward(ctx context.Context, userID uuid.UUID, reward domain.Reward) (*domain.PlayerProgress, error)
}

type Repositories struct {
	User       UserRepository
	Session    SessionRepository
	Content    ContentRepository
	Collection CollectionRepository
	Progress   ProgressRepository
}
