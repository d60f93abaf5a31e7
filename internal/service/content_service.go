package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dom/quiz-monsters/internal/config"
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoContentSource = errors.New("no content source configured")

type ContentService struct {
	contentRepo repository.ContentRepository
	cfg         *config.Config
	httpClient  *http.Client
	log         *logrus.Entry
}

func NewContentService(contentRepo repository.ContentRepository, cfg *config.Config, log *logrus.Logger) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.WithField("component", "content_service"),
	}
}

func (s *ContentService) GetAllContents(ctx context.Context) ([]*domain.ContentItem, error) {
	return s.contentRepo.GetAll(ctx)
}

func (s *ContentService) GetContentsByType(ctx context.Context, contentType domain.ContentType) ([]*domain.ContentItem, error) {
	if contentType.Index() < 0 {
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidContent, contentType)
	}
	return s.contentRepo.GetByType(ctx, contentType)
}

func (s *ContentService) GetContent(ctx context.Context, id string) (*domain.ContentItem, error) {
	content, err := s.contentRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrContentNotFound, id)
	}
	return content, err
}

func (s *ContentService) Count(ctx context.Context) (int, error) {
	n, err := s.contentRepo.Count(ctx)
	return int(n), err
}

// Import validates and upserts content items. Items without a difficulty are
// treated as elementary.
func (s *ContentService) Import(ctx context.Context, items []*domain.ContentItem) (int, error) {
	for i, item := range items {
		if err := normalizeContent(item); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
		item.UpdatedAt = time.Now()
	}

	if err := s.contentRepo.UpsertMany(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to upsert contents: %w", err)
	}

	s.log.WithField("count", len(items)).Info("contents imported")
	return len(items), nil
}

func normalizeContent(item *domain.ContentItem) error {
	if item == nil {
		return domain.ErrInvalidContent
	}
	item.ID = strings.TrimSpace(item.ID)
	item.Text = strings.TrimSpace(item.Text)
	if item.ID == "" || item.Text == "" || item.Type.Index() < 0 {
		return domain.ErrInvalidContent
	}

	switch item.Difficulty {
	case "":
		item.Difficulty = domain.DifficultyElementary
	case domain.DifficultyElementary, domain.DifficultyMiddle, domain.DifficultyHigh:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidContent, item.Difficulty)
	}
	return nil
}

// SyncFromSource imports the catalogue published at CONTENT_SOURCE_URL.
func (s *ContentService) SyncFromSource(ctx context.Context) (int, error) {
	if s.cfg.ContentSourceURL == "" {
		return 0, ErrNoContentSource
	}
	return s.SyncFromURL(ctx, s.cfg.ContentSourceURL)
}

// SyncFromURL fetches a JSON array of content items and imports it.
func (s *ContentService) SyncFromURL(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch contents: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch contents: status %d", resp.StatusCode)
	}

	var items []*domain.ContentItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return 0, fmt.Errorf("failed to decode contents: %w", err)
	}

	return s.Import(ctx, items)
}
