package services

import (
	"encoding/json"
	"socketBoard/internal/enums"
	"socketBoard/internal/metrics"
	"socketBoard/internal/models/socket"
	"socketBoard/internal/rooms"
	"socketBoard/internal/validators"

	"go.uber.org/zap"
)

// RelayService forwards transient drawing events to the rest of a room.
// Nothing it handles is persisted.
type RelayService struct {
	rooms   rooms.Broadcaster
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewRelayService(broadcaster rooms.Broadcaster, metrics *metrics.Metrics, logger *zap.Logger) *RelayService {
	return &RelayService{
		rooms:   broadcaster,
		metrics: metrics,
		logger:  logger.Named("relay"),
	}
}

// Draw relays the stroke payload unchanged to everyone in roomID but the sender.
func (rs *RelayService) Draw(sender rooms.Participant, roomID string, payload json.RawMessage) error {
	if err := validators.ValidateRoomID(roomID); err != nil {
		return err
	}
	frame, err := socket.EncodeRaw(enums.SOCKET_EVENT_DRAW, payload)
	if err != nil {
		return err
	}
	rs.rooms.Broadcast(roomID, sender.ID(), frame)
	rs.metrics.EventRelayed(enums.SOCKET_EVENT_DRAW)
	return nil
}

// Clear tells everyone in roomID but the sender to wipe their view. The
// saved canvas is not modified, so a later load restores it.
func (rs *RelayService) Clear(sender rooms.Participant, roomID string) error {
	if err := validators.ValidateRoomID(roomID); err != nil {
		return err
	}
	frame, err := socket.Encode(enums.SOCKET_EVENT_CLEAR_WHITEBOARD, nil)
	if err != nil {
		return err
	}
	rs.rooms.Broadcast(roomID, sender.ID(), frame)
	rs.metrics.EventRelayed(enums.SOCKET_EVENT_CLEAR_WHITEBOARD)
	rs.logger.Debug("Whiteboard cleared", zap.String("room_id", roomID))
	return nil
}
