package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentsResponse struct {
	Contents []domain.ContentItem `json:"contents"`
	Total    int                  `json:"total"`
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestContentHandler_Import(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "valid items",
			body: []map[string]string{
				{"id": "p1", "text": "가는 말이 고와야 오는 말이 곱다", "type": "proverb", "difficulty": "elementary"},
				{"id": "f1", "text": "일석이조", "type": "four_character_idiom"},
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "unknown type",
			body:           []map[string]string{{"id": "x1", "text": "something", "type": "riddle"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown difficulty",
			body:           []map[string]string{{"id": "x2", "text": "something", "type": "idiom", "difficulty": "expert"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing text",
			body:           []map[string]string{{"id": "x3", "type": "idiom"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not an array",
			body:           map[string]string{"id": "x4"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/contents/import"), tt.body)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var result struct {
				Imported int `json:"imported"`
			}
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, tt.expectedCount, result.Imported)
		})
	}

	resp, err := http.Get(ts.APIURL("/contents/f1"))
	require.NoError(t, err)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var item domain.ContentItem
	testutil.AssertJSONResponse(t, resp, &item)
	assert.Equal(t, domain.DifficultyElementary, item.Difficulty)
	assert.Equal(t, domain.ContentTypeFourCharacterIdiom, item.Type)
}

func TestContentHandler_GetAll(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedRealProverbs(t, ts.DB.DB)

	tests := []struct {
		name          string
		query         string
		expectedTotal int
	}{
		{name: "all", query: "", expectedTotal: 8},
		{name: "proverbs", query: "?type=proverb", expectedTotal: 3},
		{name: "idioms", query: "?type=idiom", expectedTotal: 2},
		{name: "four character idioms", query: "?type=four_character_idiom", expectedTotal: 3},
		{name: "unknown type", query: "?type=riddle", expectedTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/contents" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, http.StatusOK)
			var result contentsResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, tt.expectedTotal, result.Total)
			assert.Len(t, result.Contents, tt.expectedTotal)
		})
	}
}

func TestContentHandler_GetNotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/contents/missing"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "content not found")
}

func TestContentHandler_SyncWithoutSource(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/contents/sync"), nil)
	testutil.AssertErrorResponse(t, resp, http.StatusConflict, "no content source configured")
}
