package services

import (
	"socketBoard/internal/errs"
	"socketBoard/internal/models/socket"
	"socketBoard/internal/rooms"
)

// reply sends an event to one participant only.
func reply(participant rooms.Participant, event string, payload any) error {
	frame, err := socket.Encode(event, payload)
	if err != nil {
		return err
	}
	if !participant.Send(frame) {
		return errs.ErrParticipantUnavailable
	}
	return nil
}
