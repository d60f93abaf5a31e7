package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Content struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Meaning    string `json:"meaning,omitempty"`
}

type Monster struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rarity   string `json:"rarity"`
	Unlocked bool   `json:"unlocked"`
}

type Reward struct {
	Kind   string `json:"kind"`
	Amount int    `json:"amount"`
}

type GenerateResult struct {
	Monster Monster `json:"monster"`
	IsNew   bool    `json:"isNew"`
	Reward  *Reward `json:"reward"`
}

type UnlockResult struct {
	Monster       Monster `json:"monster"`
	NewlyUnlocked bool    `json:"newlyUnlocked"`
	Reward        *Reward `json:"reward"`
}

type RarityCounts struct {
	Total    int `json:"total"`
	Unlocked int `json:"unlocked"`
}

type Stats struct {
	Total                   int                     `json:"total"`
	Generated               int                     `json:"generated"`
	Unlocked                int                     `json:"unlocked"`
	ByRarity                map[string]RarityCounts `json:"byRarity"`
	Percentage              float64                 `json:"percentage"`
	MilestonesReached       []int                   `json:"milestonesReached"`
	NextMilestone           int                     `json:"nextMilestone"`
	MonstersToNextMilestone int                     `json:"monstersToNextMilestone"`
}

type Progress struct {
	Experience int `json:"experience"`
	Coins      int `json:"coins"`
}

// RegisterUser creates a new user account
func (c *APIClient) RegisterUser(baseName string) (*User, string, error) {
	displayName := fmt.Sprintf("%s_%d", baseName, time.Now().UnixNano()%100000)

	body := map[string]string{
		"displayName": displayName,
		"password":    "testpassword123",
	}

	var result AuthResponse
	if err := c.do(http.MethodPost, "/auth/register", body, "", &result); err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}
	return &result.User, result.AccessToken, nil
}

// ImportContents upserts a content catalogue
func (c *APIClient) ImportContents(items []Content) (int, error) {
	var result struct {
		Imported int `json:"imported"`
	}
	if err := c.do(http.MethodPost, "/contents/import", items, "", &result); err != nil {
		return 0, fmt.Errorf("import contents: %w", err)
	}
	return result.Imported, nil
}

// ListContents returns the catalogue
func (c *APIClient) ListContents() ([]Content, error) {
	var result struct {
		Contents []Content `json:"contents"`
	}
	if err := c.do(http.MethodGet, "/contents", nil, "", &result); err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return result.Contents, nil
}

// Generate earns the monster for a correctly answered content item
func (c *APIClient) Generate(token, contentID string, comboBonus float64) (*GenerateResult, error) {
	body := map[string]interface{}{
		"contentId":  contentID,
		"comboBonus": comboBonus,
	}
	var result GenerateResult
	if err := c.do(http.MethodPost, "/monsters/generate", body, token, &result); err != nil {
		return nil, fmt.Errorf("generate %s: %w", contentID, err)
	}
	return &result, nil
}

// Unlock unlocks a generated monster
func (c *APIClient) Unlock(token, monsterID string) (*UnlockResult, error) {
	var result UnlockResult
	if err := c.do(http.MethodPost, "/monsters/"+monsterID+"/unlock", nil, token, &result); err != nil {
		return nil, fmt.Errorf("unlock %s: %w", monsterID, err)
	}
	return &result, nil
}

// GetStats returns collection statistics
func (c *APIClient) GetStats(token string) (*Stats, error) {
	var result Stats
	if err := c.do(http.MethodGet, "/monsters/stats", nil, token, &result); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return &result, nil
}

// GetProgress returns accumulated experience and coins
func (c *APIClient) GetProgress(token string) (*Progress, error) {
	var result Progress
	if err := c.do(http.MethodGet, "/progress", nil, token, &result); err != nil {
		return nil, fmt.Errorf("progress: %w", err)
	}
	return &result, nil
}

// RenderSVG downloads the rendered monster
func (c *APIClient) RenderSVG(token, monsterID string, size int) ([]byte, error) {
	resp, err := c.request(http.MethodGet, fmt.Sprintf("/monsters/%s/render.svg?size=%d", monsterID, size), nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render failed (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (c *APIClient) do(method, path string, body interface{}, token string, out interface{}) error {
	resp, err := c.request(method, path, body, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) request(method, path string, body interface{}, token string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
