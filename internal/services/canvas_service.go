package services

import (
	"context"
	"errors"
	"fmt"
	"socketBoard/internal/enums"
	"socketBoard/internal/errs"
	"socketBoard/internal/interfaces"
	"socketBoard/internal/metrics"
	"socketBoard/internal/models"
	"socketBoard/internal/models/socket"
	"socketBoard/internal/msgs"
	"socketBoard/internal/rooms"
	"socketBoard/internal/validators"

	"go.uber.org/zap"
)

// CanvasArchiver keeps a copy of saved canvases outside the database.
type CanvasArchiver interface {
	ArchiveInBackground(whiteboard *models.Whiteboard)
}

// CanvasService serves saveWhiteboard and loadWhiteboard. The stored canvas
// is last-write-wins: each save fully replaces the previous image data.
type CanvasService struct {
	rooms       rooms.Broadcaster
	whiteboards interfaces.WhiteboardStore
	archiver    CanvasArchiver
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCanvasService accepts a nil archiver.
func NewCanvasService(
	broadcaster rooms.Broadcaster,
	whiteboards interfaces.WhiteboardStore,
	archiver CanvasArchiver,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) *CanvasService {
	return &CanvasService{
		rooms:       broadcaster,
		whiteboards: whiteboards,
		archiver:    archiver,
		metrics:     metrics,
		logger:      logger.Named("canvas"),
	}
}

func (cs *CanvasService) Save(ctx context.Context, participant rooms.Participant, request *models.SaveWhiteboardRequest) (*models.Whiteboard, error) {
	whiteboard, err := cs.save(ctx, request)
	if err != nil {
		cs.metrics.PersistenceFailed(enums.SOCKET_EVENT_SAVE_WHITEBOARD)
		cs.logger.Error("Error saving whiteboard",
			zap.String("room_id", request.RoomID),
			zap.Error(err),
		)
		cs.replyOrLog(participant, enums.SOCKET_EVENT_WHITEBOARD_SAVE_ERROR, models.ErrorPayload{Message: msgs.MsgFailedToSaveWhiteboard})
		return nil, fmt.Errorf("%w: %w", errs.ErrWhiteboardSaveFailed, err)
	}

	cs.logger.Info("Whiteboard saved", zap.String("whiteboard_id", whiteboard.ID))
	cs.replyOrLog(participant, enums.SOCKET_EVENT_WHITEBOARD_SAVED, whiteboard.ID)

	if cs.archiver != nil {
		cs.archiver.ArchiveInBackground(whiteboard)
	}
	return whiteboard, nil
}

func (cs *CanvasService) save(ctx context.Context, request *models.SaveWhiteboardRequest) (*models.Whiteboard, error) {
	if err := validators.ValidateRoomID(request.RoomID); err != nil {
		return nil, err
	}
	return cs.whiteboards.UpsertCanvas(ctx, request.RoomID, request.Name, request.ImageData, request.UserID)
}

// Load broadcasts the stored canvas to the whole room, requester included.
// Not-found and store failures are reported to the requester only.
func (cs *CanvasService) Load(ctx context.Context, participant rooms.Participant, request *models.LoadWhiteboardRequest) error {
	whiteboard, err := cs.whiteboards.FindByID(ctx, request.WhiteboardID)
	if errors.Is(err, errs.ErrWhiteboardNotFound) {
		cs.replyOrLog(participant, enums.SOCKET_EVENT_WHITEBOARD_LOAD_ERROR, models.ErrorPayload{Message: msgs.MsgWhiteboardNotFound})
		return err
	}
	if err != nil {
		cs.metrics.PersistenceFailed(enums.SOCKET_EVENT_LOAD_WHITEBOARD)
		cs.logger.Error("Error loading whiteboard",
			zap.String("whiteboard_id", request.WhiteboardID),
			zap.Error(err),
		)
		cs.replyOrLog(participant, enums.SOCKET_EVENT_WHITEBOARD_LOAD_ERROR, models.ErrorPayload{Message: msgs.MsgFailedToLoadWhiteboard})
		return fmt.Errorf("%w: %w", errs.ErrWhiteboardLoadFailed, err)
	}

	frame, err := socket.Encode(enums.SOCKET_EVENT_LOAD_WHITEBOARD, whiteboard.ImageData)
	if err != nil {
		return err
	}
	cs.rooms.Broadcast(request.RoomID, "", frame)
	cs.metrics.EventRelayed(enums.SOCKET_EVENT_LOAD_WHITEBOARD)
	cs.logger.Info("Whiteboard loaded for room",
		zap.String("whiteboard_id", request.WhiteboardID),
		zap.String("room_id", request.RoomID),
	)
	return nil
}

func (cs *CanvasService) replyOrLog(participant rooms.Participant, event string, payload any) {
	if err := reply(participant, event, payload); err != nil {
		cs.logger.Warn("Error replying to participant",
			zap.String("event", event),
			zap.String("participant_id", participant.ID()),
			zap.Error(err),
		)
	}
}
