package server

import (
	"encoding/json"
	"time"

	"github.com/idilsaglam/wordlink/internal/model"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgNewWords   MessageType = "new_words"
	MsgNewTheme   MessageType = "new_theme"
	MsgClearTheme MessageType = "clear_theme"
	MsgSetTimer   MessageType = "set_timer"
	MsgSubmit     MessageType = "submit"
	MsgPing       MessageType = "ping"
)

// Server → Client message types
const (
	MsgState MessageType = "state"
	MsgError MessageType = "error"
	MsgPong  MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message stamped with now
func NewServerMessage(msgType MessageType, payload any, now time.Time) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// SetTimerPayload is the payload for set_timer
type SetTimerPayload struct {
	Enabled bool `json:"enabled"`
}

// SubmitPayload is the payload for submit
type SubmitPayload struct {
	Connection string `json:"connection"`
}

// StatePayload is the payload for state
type StatePayload struct {
	SessionID string         `json:"sessionId"`
	Snapshot  model.Snapshot `json:"snapshot"`
}

// ErrorPayload is the payload for error
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeCannotStart    = "CANNOT_START"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)
