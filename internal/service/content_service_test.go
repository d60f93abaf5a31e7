package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/logger"
	"github.com/dom/quiz-monsters/internal/repository/postgres"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/dom/quiz-monsters/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_Import(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	contentService := service.NewContentService(repos.Content, testutil.TestConfig(), logger.Discard())
	ctx := context.Background()

	tests := []struct {
		name    string
		items   []*domain.ContentItem
		want    int
		wantErr error
	}{
		{
			name: "valid items",
			items: []*domain.ContentItem{
				{ID: "p1", Text: "발 없는 말이 천 리 간다", Type: domain.ContentTypeProverb},
				{ID: "f1", Text: "일석이조", Type: domain.ContentTypeFourCharacterIdiom, Difficulty: domain.DifficultyHigh},
			},
			want: 2,
		},
		{
			name:    "unknown type",
			items:   []*domain.ContentItem{{ID: "x1", Text: "???", Type: "riddle"}},
			wantErr: domain.ErrInvalidContent,
		},
		{
			name:    "missing text",
			items:   []*domain.ContentItem{{ID: "x2", Type: domain.ContentTypeIdiom}},
			wantErr: domain.ErrInvalidContent,
		},
		{
			name:    "unknown difficulty",
			items:   []*domain.ContentItem{{ID: "x3", Text: "귀가 얇다", Type: domain.ContentTypeIdiom, Difficulty: "expert"}},
			wantErr: domain.ErrInvalidContent,
		},
		{
			name:    "null item",
			items:   []*domain.ContentItem{nil},
			wantErr: domain.ErrInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			n, err := contentService.Import(ctx, tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}

	got, err := contentService.GetContent(ctx, "p1")
	require.Error(t, err, "table cleanup should have removed earlier imports")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
	assert.Nil(t, got)
}

func TestContentService_ImportDefaultsDifficulty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	contentService := service.NewContentService(repos.Content, testutil.TestConfig(), logger.Discard())
	ctx := context.Background()

	_, err := contentService.Import(ctx, []*domain.ContentItem{
		{ID: " i1 ", Text: " 발이 넓다 ", Type: domain.ContentTypeIdiom},
	})
	require.NoError(t, err)

	got, err := contentService.GetContent(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "발이 넓다", got.Text)
	assert.Equal(t, domain.DifficultyElementary, got.Difficulty)
}

func TestContentService_SyncFromSource(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	catalogue := []domain.ContentItem{
		{ID: "p1", Text: "가는 말이 고와야 오는 말이 곱다", Type: domain.ContentTypeProverb},
		{ID: "p2", Text: "낮말은 새가 듣고 밤말은 쥐가 듣는다", Type: domain.ContentTypeProverb, Difficulty: domain.DifficultyMiddle},
		{ID: "f2", Text: "고진감래", Type: domain.ContentTypeFourCharacterIdiom, Difficulty: domain.DifficultyHigh},
	}
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalogue)
	}))
	defer source.Close()

	cfg := testutil.TestConfig()
	contentService := service.NewContentService(repos.Content, cfg, logger.Discard())

	_, err := contentService.SyncFromSource(ctx)
	assert.ErrorIs(t, err, service.ErrNoContentSource)

	cfg.ContentSourceURL = source.URL
	n, err := contentService.SyncFromSource(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := contentService.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	proverbs, err := contentService.GetContentsByType(ctx, domain.ContentTypeProverb)
	require.NoError(t, err)
	assert.Len(t, proverbs, 2)

	_, err = contentService.GetContentsByType(ctx, "riddle")
	assert.ErrorIs(t, err, domain.ErrInvalidContent)
}

func TestContentService_SyncFromURL_BadStatus(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	contentService := service.NewContentService(repos.Content, testutil.TestConfig(), logger.Discard())

	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer source.Close()

	_, err := contentService.SyncFromURL(context.Background(), source.URL)
	assert.Error(t, err)
}
