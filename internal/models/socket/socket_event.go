package socket

import (
	"encoding/json"
)

// Event is the envelope exchanged over the websocket in both directions.
type Event struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode builds an outbound frame. A nil payload produces an event without
// a payload field.
func Encode(event string, payload any) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Event{Event: event})
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Event: event, Payload: raw})
}

// EncodeRaw builds an outbound frame around an already encoded payload,
// leaving its bytes untouched.
func EncodeRaw(event string, payload json.RawMessage) ([]byte, error) {
	return json.Marshal(Event{Event: event, Payload: payload})
}
