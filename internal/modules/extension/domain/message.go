package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

type MessageType string

const (
	MessageStart  MessageType = "START_SESSION"
	MessageUpdate MessageType = "UPDATE_BLOCKLIST"
	MessageEnd    MessageType = "END_SESSION"
)

var ErrUnknownMessage = errors.New("unknown extension message")

// Entry is a blocklist item as the web app hands it over.
type Entry struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type StartPayload struct {
	SessionID string  `json:"sessionId"`
	Token     string  `json:"token"`
	Duration  int     `json:"duration"`
	Blocklist []Entry `json:"blocklist"`
}

// Message is one of START_SESSION, UPDATE_BLOCKLIST or END_SESSION. Start is
// set for the first, Entries for the second.
type Message struct {
	Type    MessageType
	Start   StartPayload
	Entries []Entry
}

type wireMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func Encode(m Message) ([]byte, error) {
	var payload any
	switch m.Type {
	case MessageStart:
		payload = m.Start
	case MessageUpdate:
		entries := m.Entries
		if entries == nil {
			entries = []Entry{}
		}
		payload = entries
	case MessageEnd:
		payload = struct{}{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, m.Type)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireMessage{Type: m.Type, Payload: raw})
}

func Decode(raw []byte) (Message, error) {
	wire := wireMessage{}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Message{}, fmt.Errorf("decode extension message: %w", err)
	}
	m := Message{Type: wire.Type}
	switch wire.Type {
	case MessageStart:
		if err := json.Unmarshal(wire.Payload, &m.Start); err != nil {
			return Message{}, fmt.Errorf("decode %s payload: %w", wire.Type, err)
		}
		if m.Start.SessionID == "" {
			return Message{}, fmt.Errorf("%s requires a session id", wire.Type)
		}
	case MessageUpdate:
		if err := json.Unmarshal(wire.Payload, &m.Entries); err != nil {
			return Message{}, fmt.Errorf("decode %s payload: %w", wire.Type, err)
		}
	case MessageEnd:
	default:
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownMessage, wire.Type)
	}
	return m, nil
}
