package models

import "encoding/json"

const REDIS_CHANNEL_WHITEBOARD = "whiteboard_events"

// RedisPublishedMessage carries one room broadcast between nodes.
type RedisPublishedMessage struct {
	RoomID    string          `json:"room_id"`
	Excluding string          `json:"excluding,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}
