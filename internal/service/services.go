package service

import (
	"github.com/dom/quiz-monsters/internal/config"
	"github.com/dom/quiz-monsters/internal/repository"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Auth       *AuthService
	Content    *ContentService
	Collection *CollectionService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, engine *Engine, events EventPublisher, log *logrus.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, repos.Session, cfg, log),
		Content:    NewContentService(repos.Content, cfg, log),
		Collection: NewCollectionService(repos.Content, repos.Collection, repos.Progress, engine, events, log),
	}
}
