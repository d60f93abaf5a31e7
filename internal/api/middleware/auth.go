package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dom/quiz-monsters/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

func Auth(authService *service.AuthService, log *logrus.Logger) func(http.Handler) http.Handler {
	entry := log.WithField("component", "auth_middleware")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				entry.WithField("path", r.URL.Path).Debug("missing authorization header")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				entry.WithField("path", r.URL.Path).Debug("invalid authorization header format")
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			userID, err := UserIDFromToken(authService, parts[1])
			if err != nil {
				entry.WithError(err).WithField("path", r.URL.Path).Debug("token rejected")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromToken validates token and returns its subject.
func UserIDFromToken(authService *service.AuthService, token string) (uuid.UUID, error) {
	claims, err := authService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(sub)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
