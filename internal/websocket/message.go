package websocket

import (
	"encoding/json"
	"time"

	"github.com/dom/quiz-monsters/internal/domain"
)

type MessageType string

const (
	// Client to Server
	MessageTypePing MessageType = "PING"

	// Server to Client
	MessageTypePong             MessageType = "PONG"
	MessageTypeConnected        MessageType = "CONNECTED"
	MessageTypeMonsterGenerated MessageType = "MONSTER_GENERATED"
	MessageTypeMonsterUnlocked  MessageType = "MONSTER_UNLOCKED"
	MessageTypeDuplicateReward  MessageType = "DUPLICATE_REWARD"
	MessageTypeMilestoneReached MessageType = "MILESTONE_REACHED"
	MessageTypeError            MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Server to Client payloads

type ConnectedPayload struct {
	UserID string `json:"userId"`
}

type MonsterGeneratedPayload struct {
	Monster domain.Monster `json:"monster"`
	IsNew   bool           `json:"isNew"`
}

type MonsterUnlockedPayload struct {
	Monster domain.Monster `json:"monster"`
}

type DuplicateRewardPayload struct {
	MonsterID  string        `json:"monsterId"`
	Reward     domain.Reward `json:"reward"`
	Experience int           `json:"experience"`
	Coins      int           `json:"coins"`
}

type MilestoneReachedPayload struct {
	Milestone  int     `json:"milestone"`
	Percentage float64 `json:"percentage"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
