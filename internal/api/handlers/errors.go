package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/sirupsen/logrus"
)

// writeError maps service errors onto status codes. Unknown errors are logged
// and reported as 500 without detail.
func writeError(w http.ResponseWriter, log *logrus.Entry, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrContentNotFound),
		errors.Is(err, domain.ErrMonsterNotFound),
		errors.Is(err, service.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidContent),
		errors.Is(err, domain.ErrInvalidComboBonus),
		errors.Is(err, domain.ErrInvalidRenderSize),
		errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrDisplayNameExists):
		http.Error(w, "Display name already exists", http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, service.ErrNoContentSource):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.WithError(err).WithField("op", op).Error("request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
