package handlers

import (
	"net/http"

	"github.com/dom/quiz-monsters/internal/api/middleware"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/dom/quiz-monsters/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type WebSocketHandler struct {
	hub         *websocket.Hub
	authService *service.AuthService
	log         *logrus.Entry
}

func NewWebSocketHandler(hub *websocket.Hub, authService *service.AuthService, log *logrus.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
		log:         log.WithField("handler", "websocket"),
	}
}

// Handle upgrades the connection. Browsers cannot set headers on websocket
// requests, so the access token travels in ?token=.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Token required", http.StatusUnauthorized)
		return
	}

	userID, err := middleware.UserIDFromToken(h.authService, token)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
