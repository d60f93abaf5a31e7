package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/dom/quiz-monsters/internal/collection"
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/dom/quiz-monsters/internal/repository"
	"github.com/dom/quiz-monsters/internal/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultSearchLimit = 20

// EventPublisher pushes collection events to a player's open connections.
type EventPublisher interface {
	Publish(userID uuid.UUID, msgType websocket.MessageType, payload interface{}) int
}

type GenerateOutput struct {
	collection.GenerateResult
	Progress *domain.PlayerProgress `json:"progress,omitempty"`
}

type UnlockOutput struct {
	collection.UnlockResult
	Progress *domain.PlayerProgress `json:"progress,omitempty"`
}

// CollectionService keeps one collection.Manager per player. Managers are
// loaded from the repository on first use and every change is written
// through while the player's write lock is held, so the repository sees one
// player's saves in the order the Manager applied them.
type CollectionService struct {
	contentRepo    repository.ContentRepository
	collectionRepo repository.CollectionRepository
	progressRepo   repository.ProgressRepository
	engine         *Engine
	events         EventPublisher
	managerOpts    []collection.Option
	log            *logrus.Entry

	mu      sync.Mutex
	players map[uuid.UUID]*playerCollection
}

// playerCollection pairs a Manager with the lock that spans a mutation and
// its write-through.
type playerCollection struct {
	mu      sync.Mutex
	manager *collection.Manager
}

func NewCollectionService(
	contentRepo repository.ContentRepository,
	collectionRepo repository.CollectionRepository,
	progressRepo repository.ProgressRepository,
	engine *Engine,
	events EventPublisher,
	log *logrus.Logger,
	opts ...collection.Option,
) *CollectionService {
	return &CollectionService{
		contentRepo:    contentRepo,
		collectionRepo: collectionRepo,
		progressRepo:   progressRepo,
		engine:         engine,
		events:         events,
		managerOpts:    opts,
		log:            log.WithField("component", "collection_service"),
		players:        make(map[uuid.UUID]*playerCollection),
	}
}

func (s *CollectionService) manager(ctx context.Context, userID uuid.UUID) (*collection.Manager, error) {
	pc, err := s.player(ctx, userID)
	if err != nil {
		return nil, err
	}
	return pc.manager, nil
}

func (s *CollectionService) player(ctx context.Context, userID uuid.UUID) (*playerCollection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pc, ok := s.players[userID]; ok {
		return pc, nil
	}

	entries, err := s.collectionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	monsters := make([]domain.Monster, len(entries))
	for i, e := range entries {
		monsters[i] = e.Monster()
	}

	m := collection.NewManager(s.engine.Allocator, s.engine.Synthesizer, s.managerOpts...)
	m.Load(monsters)
	pc := &playerCollection{manager: m}
	s.players[userID] = pc

	s.log.WithFields(logrus.Fields{"user_id": userID, "monsters": len(monsters)}).Debug("collection loaded")
	return pc, nil
}

// evict drops the cached Manager so the next request reloads from the
// repository. Used after a failed write-through.
func (s *CollectionService) evict(userID uuid.UUID) {
	s.mu.Lock()
	delete(s.players, userID)
	s.mu.Unlock()
}

func (s *CollectionService) persist(ctx context.Context, userID uuid.UUID, m domain.Monster) error {
	if err := s.collectionRepo.Save(ctx, domain.NewCollectionEntry(userID, m)); err != nil {
		s.evict(userID)
		return fmt.Errorf("failed to save monster %s: %w", m.ID, err)
	}
	return nil
}

func (s *CollectionService) publish(userID uuid.UUID, msgType websocket.MessageType, payload interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(userID, msgType, payload)
}

func (s *CollectionService) grant(ctx context.Context, userID uuid.UUID, monsterID string, reward *domain.Reward) (*domain.PlayerProgress, error) {
	if reward == nil {
		return nil, nil
	}

	progress, err := s.progressRepo.AddReward(ctx, userID, *reward)
	if err != nil {
		return nil, fmt.Errorf("failed to grant reward: %w", err)
	}

	s.publish(userID, websocket.MessageTypeDuplicateReward, websocket.DuplicateRewardPayload{
		MonsterID:  monsterID,
		Reward:     *reward,
		Experience: progress.Experience,
		Coins:      progress.Coins,
	})
	return progress, nil
}

// Generate awards the monster for a correctly answered content item.
func (s *CollectionService) Generate(ctx context.Context, userID uuid.UUID, contentID string, comboBonus float64) (*GenerateOutput, error) {
	if math.IsNaN(comboBonus) || math.IsInf(comboBonus, 0) || comboBonus < 0 {
		return nil, domain.ErrInvalidComboBonus
	}

	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrContentNotFound, contentID)
		}
		return nil, err
	}

	pc, err := s.player(ctx, userID)
	if err != nil {
		return nil, err
	}

	pc.mu.Lock()
	result := pc.manager.GenerateMonster(*content, comboBonus)
	if result.IsNew {
		if err := s.persist(ctx, userID, result.Monster); err != nil {
			pc.mu.Unlock()
			return nil, err
		}
		s.log.WithFields(logrus.Fields{
			"user_id":    userID,
			"monster_id": result.Monster.ID,
			"rarity":     result.Monster.Rarity.String(),
		}).Info("monster generated")
	}
	pc.mu.Unlock()

	progress, err := s.grant(ctx, userID, result.Monster.ID, result.Reward)
	if err != nil {
		return nil, err
	}

	s.publish(userID, websocket.MessageTypeMonsterGenerated, websocket.MonsterGeneratedPayload{
		Monster: result.Monster,
		IsNew:   result.IsNew,
	})

	return &GenerateOutput{GenerateResult: result, Progress: progress}, nil
}

// Unlock moves a generated monster into the unlocked state.
func (s *CollectionService) Unlock(ctx context.Context, userID uuid.UUID, monsterID string) (*UnlockOutput, error) {
	pc, err := s.player(ctx, userID)
	if err != nil {
		return nil, err
	}

	pc.mu.Lock()
	result := pc.manager.UnlockMonster(monsterID)
	if result == nil {
		pc.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrMonsterNotFound, monsterID)
	}

	if result.NewlyUnlocked {
		if err := s.persist(ctx, userID, result.Monster); err != nil {
			pc.mu.Unlock()
			return nil, err
		}
		s.publish(userID, websocket.MessageTypeMonsterUnlocked, websocket.MonsterUnlockedPayload{Monster: result.Monster})
		s.announceMilestones(ctx, userID, result)
	}
	pc.mu.Unlock()

	progress, err := s.grant(ctx, userID, monsterID, result.Reward)
	if err != nil {
		return nil, err
	}

	return &UnlockOutput{UnlockResult: *result, Progress: progress}, nil
}

// announceMilestones publishes the milestones crossed by an unlock, using the
// counts the Manager recorded for that transition.
func (s *CollectionService) announceMilestones(ctx context.Context, userID uuid.UUID, result *collection.UnlockResult) {
	count, err := s.contentRepo.Count(ctx)
	if err != nil {
		s.log.WithError(err).Warn("failed to count contents")
		return
	}

	total := int(count)
	if total <= 0 {
		total = result.Generated
	}
	for _, milestone := range collection.CrossedMilestones(result.UnlockedBefore, result.UnlockedAfter, result.Generated, total) {
		s.publish(userID, websocket.MessageTypeMilestoneReached, websocket.MilestoneReachedPayload{
			Milestone:  milestone,
			Percentage: float64(result.UnlockedAfter) / float64(total) * 100,
		})
	}
}

func (s *CollectionService) List(ctx context.Context, userID uuid.UUID, unlockedOnly bool) ([]domain.Monster, error) {
	m, err := s.manager(ctx, userID)
	if err != nil {
		return nil, err
	}
	return m.List(unlockedOnly), nil
}

func (s *CollectionService) Get(ctx context.Context, userID uuid.UUID, monsterID string) (*domain.Monster, error) {
	m, err := s.manager(ctx, userID)
	if err != nil {
		return nil, err
	}

	monster, ok := m.Get(monsterID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMonsterNotFound, monsterID)
	}
	return &monster, nil
}

func (s *CollectionService) DNA(ctx context.Context, userID uuid.UUID, monsterID string) (*genome.DNA, error) {
	monster, err := s.Get(ctx, userID, monsterID)
	if err != nil {
		return nil, err
	}
	dna := s.engine.Renderer.DNA(*monster)
	return &dna, nil
}

// Render returns the SVG document for one of the player's monsters.
func (s *CollectionService) Render(ctx context.Context, userID uuid.UUID, monsterID string, size int) (string, error) {
	monster, err := s.Get(ctx, userID, monsterID)
	if err != nil {
		return "", err
	}
	return s.engine.Renderer.Render(*monster, size), nil
}

func (s *CollectionService) Stats(ctx context.Context, userID uuid.UUID) (domain.CollectionStats, error) {
	m, err := s.manager(ctx, userID)
	if err != nil {
		return domain.CollectionStats{}, err
	}

	total, err := s.contentRepo.Count(ctx)
	if err != nil {
		return domain.CollectionStats{}, fmt.Errorf("failed to count contents: %w", err)
	}
	return m.Stats(int(total)), nil
}

func (s *CollectionService) Search(ctx context.Context, userID uuid.UUID, query string, limit int) ([]domain.Monster, error) {
	m, err := s.manager(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return m.Search(query, limit), nil
}

func (s *CollectionService) Progress(ctx context.Context, userID uuid.UUID) (*domain.PlayerProgress, error) {
	return s.progressRepo.Get(ctx, userID)
}

// RarityOdds exposes the allocator's weights for a difficulty and combo.
func (s *CollectionService) RarityOdds(difficulty domain.Difficulty, comboBonus float64) map[domain.Rarity]float64 {
	weights := genome.RarityWeights(difficulty, comboBonus)
	odds := make(map[domain.Rarity]float64, domain.RarityCount)
	for _, r := range domain.AllRarities {
		odds[r] = weights[r]
	}
	return odds
}
