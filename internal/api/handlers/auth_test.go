package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dom/quiz-monsters/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userResponse struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.NewUserBuilder().WithDisplayName("taken").Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		expectedName   string
	}{
		{
			name:           "new player",
			request:        map[string]string{"displayName": "newplayer", "password": "password123"},
			expectedStatus: http.StatusOK,
			expectedName:   "newplayer",
		},
		{
			name:           "display name is trimmed",
			request:        map[string]string{"displayName": "  padded  ", "password": "password123"},
			expectedStatus: http.StatusOK,
			expectedName:   "padded",
		},
		{
			name:           "blank display name",
			request:        map[string]string{"displayName": "   ", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			request:        map[string]string{"displayName": "nopass"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate display name",
			request:        map[string]string{"displayName": "taken", "password": "password123"},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/auth/register"), tt.request)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var result testutil.AuthResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Equal(t, tt.expectedName, result.User.DisplayName)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.RefreshToken)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, rawPassword := testutil.NewUserBuilder().
		WithDisplayName("returning").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{name: "valid credentials", request: map[string]string{"displayName": user.DisplayName, "password": rawPassword}, expectedStatus: http.StatusOK},
		{name: "wrong password", request: map[string]string{"displayName": user.DisplayName, "password": "wrong"}, expectedStatus: http.StatusUnauthorized},
		{name: "unknown player", request: map[string]string{"displayName": "ghost", "password": "anything"}, expectedStatus: http.StatusUnauthorized},
		{name: "missing password", request: map[string]string{"displayName": user.DisplayName}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/auth/login"), tt.request)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
		})
	}

	t.Run("login records the time", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{"displayName": user.DisplayName, "password": rawPassword})
		var result testutil.AuthResponse
		testutil.AssertJSONResponse(t, resp, &result)

		resp = testutil.DoAuthenticated(t, http.MethodGet, ts.APIURL("/auth/me"), nil, result.AccessToken)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var me userResponse
		testutil.AssertJSONResponse(t, resp, &me)
		require.NotNil(t, me.LastLoginAt)
		assert.WithinDuration(t, time.Now(), *me.LastLoginAt, time.Minute)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.NewUserBuilder().WithDisplayName("collector").BuildAndAuthenticate(t, ts)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "valid token", token: token, expectedStatus: http.StatusOK},
		{name: "no token", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", token: "invalid.token.here", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.DoAuthenticated(t, http.MethodGet, ts.APIURL("/auth/me"), nil, tt.token)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var me userResponse
			testutil.AssertJSONResponse(t, resp, &me)
			assert.Equal(t, user.ID.String(), me.ID)
			assert.Equal(t, "collector", me.DisplayName)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := testutil.DoAuthenticated(t, http.MethodPost, ts.APIURL("/auth/logout"), nil, "")
	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)

	resp = testutil.DoAuthenticated(t, http.MethodPost, ts.APIURL("/auth/logout"), nil, token)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result map[string]bool
	testutil.AssertJSONResponse(t, resp, &result)
	assert.True(t, result["success"])
}
