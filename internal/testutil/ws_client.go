package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dom/quiz-monsters/internal/websocket"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test WebSocket client
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	messages chan *websocket.Message
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient creates a new WebSocket test client
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		messages: make(chan *websocket.Message, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// readPump reads messages from the WebSocket connection
func (c *WSClient) readPump() {
	defer close(c.messages)
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				select {
				case <-c.done:
					return
				case c.errors <- err:
				}
				return
			}

			var msg websocket.Message
			if err := json.Unmarshal(data, &msg); err != nil {
				c.errors <- err
				continue
			}

			select {
			case c.messages <- &msg:
			case <-c.done:
				return
			}
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		// Send close frame and close connection without artificial delay
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// Ping sends a keepalive PING message
func (c *WSClient) Ping() {
	c.t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.WriteJSON(websocket.Message{Type: websocket.MessageTypePing}); err != nil {
		c.t.Fatalf("failed to send ping: %v", err)
	}
}

// ExpectMessage waits for a message of the specified type
func (c *WSClient) ExpectMessage(msgType websocket.MessageType, timeout time.Duration) *websocket.Message {
	c.t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case msg := <-c.messages:
			if msg == nil {
				c.t.Fatalf("connection closed while waiting for %s", msgType)
			}
			if msg.Type == msgType {
				return msg
			}
		case err := <-c.errors:
			c.t.Fatalf("error while waiting for %s: %v", msgType, err)
		case <-deadline:
			c.t.Fatalf("timeout waiting for message type %s", msgType)
		}
	}
}

func expectPayload[T any](c *WSClient, msgType websocket.MessageType, timeout time.Duration) *T {
	c.t.Helper()

	msg := c.ExpectMessage(msgType, timeout)
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.t.Fatalf("failed to decode %s payload: %v", msgType, err)
	}
	return &payload
}

// ExpectMonsterGenerated waits for and decodes a MONSTER_GENERATED message
func (c *WSClient) ExpectMonsterGenerated(timeout time.Duration) *websocket.MonsterGeneratedPayload {
	c.t.Helper()
	return expectPayload[websocket.MonsterGeneratedPayload](c, websocket.MessageTypeMonsterGenerated, timeout)
}

// ExpectMonsterUnlocked waits for and decodes a MONSTER_UNLOCKED message
func (c *WSClient) ExpectMonsterUnlocked(timeout time.Duration) *websocket.MonsterUnlockedPayload {
	c.t.Helper()
	return expectPayload[websocket.MonsterUnlockedPayload](c, websocket.MessageTypeMonsterUnlocked, timeout)
}

// ExpectDuplicateReward waits for and decodes a DUPLICATE_REWARD message
func (c *WSClient) ExpectDuplicateReward(timeout time.Duration) *websocket.DuplicateRewardPayload {
	c.t.Helper()
	return expectPayload[websocket.DuplicateRewardPayload](c, websocket.MessageTypeDuplicateReward, timeout)
}

// ExpectNoMessage verifies no messages are received within timeout
func (c *WSClient) ExpectNoMessage(timeout time.Duration) {
	c.t.Helper()

	select {
	case msg := <-c.messages:
		if msg != nil {
			c.t.Fatalf("unexpected message received: %s", msg.Type)
		}
	case <-time.After(timeout):
	}
}

// DrainMessages discards buffered messages until none arrive for 50ms.
func (c *WSClient) DrainMessages() {
	deadline := time.After(100 * time.Millisecond)
	for {
		select {
		case msg := <-c.messages:
			if msg == nil {
				return
			}
			deadline = time.After(50 * time.Millisecond)
		case <-deadline:
			return
		case <-c.done:
			return
		}
	}
}
