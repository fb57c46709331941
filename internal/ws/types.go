package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeSelect    MessageType = "select"
	MessageTypeClick     MessageType = "click"
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeRestart   MessageType = "restart"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrorMessage wraps text in an error frame.
func ErrorMessage(text string) Message {
	payload, _ := json.Marshal(text)
	return Message{
		Type:    MessageTypeError,
		Payload: json.RawMessage(payload),
	}
}
