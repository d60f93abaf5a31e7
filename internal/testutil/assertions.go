package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	// Error responses are plain text in this API
	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// AssertSVGDocument verifies doc is a standalone SVG with a size x size viewBox
func AssertSVGDocument(t *testing.T, doc string, size int) {
	t.Helper()
	assert.True(t, strings.HasPrefix(doc, "<svg"), "document should start with <svg")
	assert.Contains(t, doc, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</svg>"), "document should end with </svg>")
}

// AssertMonsterID verifies the collection key derived from a content item
func AssertMonsterID(t *testing.T, content *domain.ContentItem, monsterID string) {
	t.Helper()
	assert.Equal(t, domain.MonsterID(*content), monsterID)
}
