package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hub tracks open connections per player and fans collection events out to
// them.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	stopOnce   sync.Once
	mu         sync.RWMutex
	log        *logrus.Entry
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		log:        log.WithField("component", "websocket_hub"),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for _, conns := range h.clients {
				for client := range conns {
					client.Close()
				}
			}
			h.clients = make(map[uuid.UUID]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				conns, ok := h.clients[client.userID]
				if !ok {
					conns = make(map[*Client]bool)
					h.clients[client.userID] = conns
				}
				conns[client] = true
			}
			h.mu.Unlock()

			if msg, err := NewMessage(MessageTypeConnected, ConnectedPayload{UserID: client.userID.String()}); err == nil {
				client.Send(msg)
			}
			h.log.WithField("user_id", client.userID).Debug("client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.userID]; ok && conns[client] {
				delete(conns, client)
				if len(conns) == 0 {
					delete(h.clients, client.userID)
				}
				client.Close()
			}
			h.mu.Unlock()
			h.log.WithField("user_id", client.userID).Debug("client unregistered")
		}
	}
}

// Stop closes every client and blocks until Run has exited. Run must have
// been started.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// Register adds client to the hub. Clients registered after Stop are closed.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

// Unregister safely unregisters a client, handling the case where the hub may be stopped.
func (h *Hub) Unregister(client *Client) {
	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()

	if stopped {
		return
	}

	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish sends an event to every connection of userID and returns how many
// connections accepted it.
func (h *Hub) Publish(userID uuid.UUID, msgType MessageType, payload interface{}) int {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		h.log.WithError(err).WithField("type", msgType).Error("failed to build message")
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.clients[userID] {
		if client.Send(msg) {
			delivered++
		}
	}
	return delivered
}

// ConnectionCount returns the number of open connections for userID.
func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
