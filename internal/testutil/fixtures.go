package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	displayName string
	password    string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		displayName: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
	}
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"displayName": b.displayName,
		"password":    b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:          userID,
		DisplayName: authResp.User.DisplayName,
	}

	return user, authResp.AccessToken
}

// ContentBuilder creates test content items with a builder pattern
type ContentBuilder struct {
	id          string
	text        string
	contentType domain.ContentType
	difficulty  domain.Difficulty
	meaning     string
}

// NewContentBuilder creates a new ContentBuilder with default values
func NewContentBuilder() *ContentBuilder {
	id := fmt.Sprintf("c%s", uuid.New().String()[:8])
	return &ContentBuilder{
		id:          id,
		text:        "가는 말이 고와야 오는 말이 곱다 " + id,
		contentType: domain.ContentTypeProverb,
		difficulty:  domain.DifficultyElementary,
	}
}

// WithID sets the content ID
func (b *ContentBuilder) WithID(id string) *ContentBuilder {
	b.id = id
	return b
}

// WithText sets the content text
func (b *ContentBuilder) WithText(text string) *ContentBuilder {
	b.text = text
	return b
}

// WithType sets the content type
func (b *ContentBuilder) WithType(t domain.ContentType) *ContentBuilder {
	b.contentType = t
	return b
}

// WithDifficulty sets the difficulty
func (b *ContentBuilder) WithDifficulty(d domain.Difficulty) *ContentBuilder {
	b.difficulty = d
	return b
}

// WithMeaning sets the explanation shown after answering
func (b *ContentBuilder) WithMeaning(meaning string) *ContentBuilder {
	b.meaning = meaning
	return b
}

// Item returns the content item without persisting it
func (b *ContentBuilder) Item() *domain.ContentItem {
	return &domain.ContentItem{
		ID:         b.id,
		Text:       b.text,
		Type:       b.contentType,
		Difficulty: b.difficulty,
		Meaning:    b.meaning,
		UpdatedAt:  time.Now(),
	}
}

// Build creates the content item in the database
func (b *ContentBuilder) Build(t *testing.T, db *gorm.DB) *domain.ContentItem {
	t.Helper()

	content := b.Item()
	if err := db.Create(content).Error; err != nil {
		t.Fatalf("failed to create content: %v", err)
	}
	return content
}

// SeedContents creates N test content items spread over every content type
func SeedContents(t *testing.T, db *gorm.DB, count int) []*domain.ContentItem {
	t.Helper()

	contents := make([]*domain.ContentItem, count)
	for i := 0; i < count; i++ {
		contents[i] = NewContentBuilder().
			WithID(fmt.Sprintf("seed%03d", i)).
			WithType(domain.AllContentTypes[i%len(domain.AllContentTypes)]).
			WithDifficulty(domain.AllDifficulties[i%len(domain.AllDifficulties)]).
			Build(t, db)
	}
	return contents
}

// SeedRealProverbs creates a small catalogue of real proverbs and idioms
func SeedRealProverbs(t *testing.T, db *gorm.DB) []*domain.ContentItem {
	t.Helper()

	catalogue := []struct {
		id         string
		text       string
		t          domain.ContentType
		difficulty domain.Difficulty
	}{
		{"p1", "가는 말이 고와야 오는 말이 곱다", domain.ContentTypeProverb, domain.DifficultyElementary},
		{"p2", "발 없는 말이 천 리 간다", domain.ContentTypeProverb, domain.DifficultyElementary},
		{"p3", "낮말은 새가 듣고 밤말은 쥐가 듣는다", domain.ContentTypeProverb, domain.DifficultyMiddle},
		{"i1", "귀가 얇다", domain.ContentTypeIdiom, domain.DifficultyMiddle},
		{"i2", "발이 넓다", domain.ContentTypeIdiom, domain.DifficultyElementary},
		{"f1", "일석이조", domain.ContentTypeFourCharacterIdiom, domain.DifficultyHigh},
		{"f2", "고진감래", domain.ContentTypeFourCharacterIdiom, domain.DifficultyHigh},
		{"f3", "동문서답", domain.ContentTypeFourCharacterIdiom, domain.DifficultyMiddle},
	}

	contents := make([]*domain.ContentItem, len(catalogue))
	for i, c := range catalogue {
		contents[i] = NewContentBuilder().
			WithID(c.id).
			WithText(c.text).
			WithType(c.t).
			WithDifficulty(c.difficulty).
			Build(t, db)
	}
	return contents
}

// CollectionEntryBuilder creates persisted monsters directly, bypassing generation
type CollectionEntryBuilder struct {
	userID   uuid.UUID
	content  *domain.ContentItem
	name     string
	rarity   domain.Rarity
	unlocked bool
}

// NewCollectionEntryBuilder creates a builder for a locked common monster
func NewCollectionEntryBuilder(userID uuid.UUID, content *domain.ContentItem) *CollectionEntryBuilder {
	return &CollectionEntryBuilder{
		userID:  userID,
		content: content,
		name:    "Test Blobbit",
		rarity:  domain.RarityCommon,
	}
}

// WithRarity sets the rarity tier
func (b *CollectionEntryBuilder) WithRarity(r domain.Rarity) *CollectionEntryBuilder {
	b.rarity = r
	return b
}

// WithName sets the monster name
func (b *CollectionEntryBuilder) WithName(name string) *CollectionEntryBuilder {
	b.name = name
	return b
}

// Unlocked marks the monster as unlocked now
func (b *CollectionEntryBuilder) Unlocked() *CollectionEntryBuilder {
	b.unlocked = true
	return b
}

// Build creates the collection entry in the database
func (b *CollectionEntryBuilder) Build(t *testing.T, db *gorm.DB) *domain.CollectionEntry {
	t.Helper()

	monster := domain.Monster{
		ID:            domain.MonsterID(*b.content),
		Name:          b.name,
		Rarity:        b.rarity,
		SourceContent: *b.content,
		Unlocked:      b.unlocked,
	}
	if b.unlocked {
		now := time.Now()
		monster.DateObtained = &now
	}

	entry := domain.NewCollectionEntry(b.userID, monster)
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create collection entry: %v", err)
	}
	return entry
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// DoAuthenticated sends an authenticated JSON request and returns the response.
// The response body is closed when the test ends.
func DoAuthenticated(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(CreateAuthenticatedRequest(t, method, url, body, token))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
