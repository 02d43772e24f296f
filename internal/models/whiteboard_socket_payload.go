package models

import (
	"bytes"
	"encoding/json"
	"socketBoard/internal/errs"
)

type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// DrawRequest only decodes the routing key; the stroke attributes are relayed
// as received.
type DrawRequest struct {
	RoomID string `json:"roomId"`
}

type SaveWhiteboardRequest struct {
	RoomID    string `json:"roomId"`
	ImageData string `json:"imageData"`
	Name      string `json:"name"`
	UserID    string `json:"userId"`
}

// ClearWhiteboardRequest accepts a bare room id string or {"roomId": ...}.
type ClearWhiteboardRequest struct {
	RoomID string `json:"roomId"`
}

func (r *ClearWhiteboardRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.RoomID)
	}
	type plain ClearWhiteboardRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = ClearWhiteboardRequest(p)
	return nil
}

// LoadWhiteboardRequest accepts [whiteboardId, roomId] or
// {"whiteboardId": ..., "roomId": ...}.
type LoadWhiteboardRequest struct {
	WhiteboardID string `json:"whiteboardId"`
	RoomID       string `json:"roomId"`
}

func (r *LoadWhiteboardRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var args []string
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		if len(args) != 2 {
			return errs.ErrInvalidPayload
		}
		r.WhiteboardID, r.RoomID = args[0], args[1]
		return nil
	}
	type plain LoadWhiteboardRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = LoadWhiteboardRequest(p)
	return nil
}

type ErrorPayload struct {
	Message string `json:"message"`
}
