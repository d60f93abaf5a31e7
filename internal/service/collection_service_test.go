package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/dom/quiz-monsters/internal/collection"
	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/dom/quiz-monsters/internal/logger"
	"github.com/dom/quiz-monsters/internal/repository"
	"github.com/dom/quiz-monsters/internal/repository/postgres"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/dom/quiz-monsters/internal/testutil"
	"github.com/dom/quiz-monsters/internal/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

type publishedEvent struct {
	userID  uuid.UUID
	msgType websocket.MessageType
	payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(userID uuid.UUID, msgType websocket.MessageType, payload interface{}) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{userID: userID, msgType: msgType, payload: payload})
	return 1
}

func (p *recordingPublisher) types() []websocket.MessageType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]websocket.MessageType, len(p.events))
	for i, e := range p.events {
		out[i] = e.msgType
	}
	return out
}

type collectionFixture struct {
	svc       *service.CollectionService
	repos     *repository.Repositories
	publisher *recordingPublisher
	testDB    *testutil.TestDB
}

// newCollectionFixture wires a service whose rarity and reward rolls are
// fixed so outcomes are predictable.
func newCollectionFixture(t *testing.T, rarityRoll, rewardRoll float64) *collectionFixture {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	publisher := &recordingPublisher{}

	engine := service.NewEngine(cfg, fixedSource(rarityRoll))
	svc := service.NewCollectionService(
		repos.Content, repos.Collection, repos.Progress,
		engine, publisher, logger.Discard(),
		collection.WithRewardSource(fixedSource(rewardRoll)),
	)

	return &collectionFixture{svc: svc, repos: repos, publisher: publisher, testDB: testDB}
}

func TestCollectionService_GenerateAndUnlock(t *testing.T) {
	f := newCollectionFixture(t, 0.99, 0.1)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, f.testDB.DB)
	content := testutil.NewContentBuilder().WithID("p1").Build(t, f.testDB.DB)

	gen, err := f.svc.Generate(ctx, user.ID, "p1", 0)
	require.NoError(t, err)
	assert.True(t, gen.IsNew)
	testutil.AssertMonsterID(t, content, gen.Monster.ID)
	assert.Equal(t, domain.RarityLegendary, gen.Monster.Rarity)
	assert.Nil(t, gen.Progress)

	// persisted
	entry, err := f.repos.Collection.Get(ctx, user.ID, gen.Monster.ID)
	require.NoError(t, err)
	assert.False(t, entry.Unlocked)

	unlocked, err := f.svc.Unlock(ctx, user.ID, gen.Monster.ID)
	require.NoError(t, err)
	assert.True(t, unlocked.NewlyUnlocked)

	entry, err = f.repos.Collection.Get(ctx, user.ID, gen.Monster.ID)
	require.NoError(t, err)
	assert.True(t, entry.Unlocked)

	// unlocked duplicate pays 5x base experience
	again, err := f.svc.Generate(ctx, user.ID, "p1", 0)
	require.NoError(t, err)
	assert.False(t, again.IsNew)
	require.NotNil(t, again.Reward)
	assert.Equal(t, domain.Reward{Kind: domain.RewardExperience, Amount: 50}, *again.Reward)
	require.NotNil(t, again.Progress)
	assert.Equal(t, 50, again.Progress.Experience)

	assert.Equal(t, []websocket.MessageType{
		websocket.MessageTypeMonsterGenerated,
		websocket.MessageTypeMonsterUnlocked,
		websocket.MessageTypeMilestoneReached,
		websocket.MessageTypeMilestoneReached,
		websocket.MessageTypeMilestoneReached,
		websocket.MessageTypeMilestoneReached,
		websocket.MessageTypeDuplicateReward,
		websocket.MessageTypeMonsterGenerated,
	}, f.publisher.types())
}

func TestCollectionService_Errors(t *testing.T) {
	f := newCollectionFixture(t, 0, 0)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, f.testDB.DB)
	testutil.NewContentBuilder().WithID("p1").Build(t, f.testDB.DB)

	_, err := f.svc.Generate(ctx, user.ID, "missing", 0)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)

	_, err = f.svc.Generate(ctx, user.ID, "p1", -0.5)
	assert.ErrorIs(t, err, domain.ErrInvalidComboBonus)

	_, err = f.svc.Unlock(ctx, user.ID, "monster_proverb_missing")
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)

	_, err = f.svc.Get(ctx, user.ID, "monster_proverb_p1")
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)

	_, err = f.svc.Render(ctx, user.ID, "monster_proverb_p1", 100)
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)
}

func TestCollectionService_ReloadsFromRepository(t *testing.T) {
	f := newCollectionFixture(t, 0, 0)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, f.testDB.DB)
	contents := testutil.SeedContents(t, f.testDB.DB, 4)
	testutil.NewCollectionEntryBuilder(user.ID, contents[0]).WithName("Calm Prismo").WithRarity(domain.RarityRare).Unlocked().Build(t, f.testDB.DB)
	testutil.NewCollectionEntryBuilder(user.ID, contents[1]).WithName("Shy Blobbit").Build(t, f.testDB.DB)

	monsters, err := f.svc.List(ctx, user.ID, false)
	require.NoError(t, err)
	assert.Len(t, monsters, 2)

	unlocked, err := f.svc.List(ctx, user.ID, true)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "Calm Prismo", unlocked[0].Name)

	stats, err := f.svc.Stats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Unlocked)
	assert.InDelta(t, 25.0, stats.Percentage, 1e-9)
	assert.Equal(t, 50, stats.NextMilestone)
	assert.Equal(t, 1, stats.MonstersToNextMilestone)

	found, err := f.svc.Search(ctx, user.ID, "prismo", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Calm Prismo", found[0].Name)
}

func TestCollectionService_PlayersAreIsolated(t *testing.T) {
	f := newCollectionFixture(t, 0, 0)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, f.testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, f.testDB.DB)
	testutil.NewContentBuilder().WithID("p1").Build(t, f.testDB.DB)

	gen, err := f.svc.Generate(ctx, alice.ID, "p1", 0)
	require.NoError(t, err)

	_, err = f.svc.Unlock(ctx, bob.ID, gen.Monster.ID)
	assert.ErrorIs(t, err, domain.ErrMonsterNotFound)

	bobMonsters, err := f.svc.List(ctx, bob.ID, false)
	require.NoError(t, err)
	assert.Empty(t, bobMonsters)
}

func TestCollectionService_ConcurrentUnlock(t *testing.T) {
	f := newCollectionFixture(t, 0, 0.9)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, f.testDB.DB)
	testutil.NewContentBuilder().WithID("p1").Build(t, f.testDB.DB)

	gen, err := f.svc.Generate(ctx, user.ID, "p1", 0)
	require.NoError(t, err)

	const workers = 8
	results := make(chan *service.UnlockOutput, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.svc.Unlock(ctx, user.ID, gen.Monster.ID)
			assert.NoError(t, err)
			results <- out
		}()
	}
	wg.Wait()
	close(results)

	transitions := 0
	for out := range results {
		if out != nil && out.NewlyUnlocked {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)

	progress, err := f.svc.Progress(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, (workers-1)*collection.BaseCoinReward, progress.Coins)
}

func TestCollectionService_RenderAndDNA(t *testing.T) {
	f := newCollectionFixture(t, 0.5, 0)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, f.testDB.DB)
	testutil.NewContentBuilder().WithID("i7").WithType(domain.ContentTypeIdiom).Build(t, f.testDB.DB)

	gen, err := f.svc.Generate(ctx, user.ID, "i7", 0)
	require.NoError(t, err)

	dna, err := f.svc.DNA(ctx, user.ID, gen.Monster.ID)
	require.NoError(t, err)
	assert.Equal(t, gen.Monster.Rarity, dna.Rarity)
	assert.Equal(t, gen.Monster.Name, genome.Name(*dna))

	doc, err := f.svc.Render(ctx, user.ID, gen.Monster.ID, 0)
	require.NoError(t, err)
	testutil.AssertSVGDocument(t, doc, 200)

	capped, err := f.svc.Render(ctx, user.ID, gen.Monster.ID, 100000)
	require.NoError(t, err)
	testutil.AssertSVGDocument(t, capped, 512)
	assert.True(t, strings.Contains(capped, `id="monster"`))
}

func TestCollectionService_RarityOdds(t *testing.T) {
	svc := service.NewCollectionService(nil, nil, nil, service.NewEngine(testutil.TestConfig(), genome.CryptoSource()), nil, logger.Discard())

	odds := svc.RarityOdds(domain.DifficultyHigh, 0)
	assert.InDelta(t, 0.40, odds[domain.RarityCommon], 1e-9)
	assert.InDelta(t, 0.07, odds[domain.RarityLegendary], 1e-9)

	sum := 0.0
	for _, p := range svc.RarityOdds(domain.DifficultyMiddle, 0.3) {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
