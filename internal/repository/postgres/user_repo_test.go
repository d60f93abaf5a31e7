package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/repository/postgres"
	"github.com/dom/quiz-monsters/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPlayer(name string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           uuid.New(),
		DisplayName:  name,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	player := newPlayer("quizzer")
	require.NoError(t, repo.Create(ctx, player))
	assert.Error(t, repo.Create(ctx, newPlayer("quizzer")), "display names are unique")

	byID, err := repo.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "quizzer", byID.DisplayName)
	assert.Nil(t, byID.LastLoginAt)

	byName, err := repo.GetByDisplayName(ctx, "quizzer")
	require.NoError(t, err)
	assert.Equal(t, player.ID, byName.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.GetByDisplayName(ctx, "nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	player, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	login := time.Now().Truncate(time.Millisecond)
	player.LastLoginAt = &login
	require.NoError(t, repo.Update(ctx, player))

	got, err := repo.GetByID(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.WithinDuration(t, login, *got.LastLoginAt, time.Millisecond)
}

func TestSessionRepository_Rotation(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewSessionRepository(testDB.DB)
	ctx := context.Background()

	player, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	newSession := func(userID uuid.UUID, created time.Time) *domain.UserSession {
		return &domain.UserSession{
			ID:               uuid.New(),
			UserID:           userID,
			RefreshTokenHash: "refresh",
			ExpiresAt:        created.Add(7 * 24 * time.Hour),
			CreatedAt:        created,
		}
	}

	base := time.Now()
	older := newSession(player.ID, base.Add(-time.Hour))
	newer := newSession(player.ID, base)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, newSession(other.ID, base)))

	got, err := repo.GetByUserID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	require.NoError(t, repo.DeleteByUserID(ctx, player.ID))
	_, err = repo.GetByUserID(ctx, player.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.GetByUserID(ctx, other.ID)
	assert.NoError(t, err, "other players keep their sessions")
}
