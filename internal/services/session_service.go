package services

import (
	"context"
	"fmt"
	"socketBoard/internal/enums"
	"socketBoard/internal/errs"
	"socketBoard/internal/interfaces"
	"socketBoard/internal/metrics"
	"socketBoard/internal/models"
	"socketBoard/internal/msgs"
	"socketBoard/internal/rooms"

	"go.uber.org/zap"
)

// SessionService handles joinRoom: live room membership first, then the
// durable user, whiteboard and session records.
type SessionService struct {
	rooms       rooms.Broadcaster
	users       interfaces.UserStore
	whiteboards interfaces.WhiteboardStore
	sessions    interfaces.SessionStore
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewSessionService(
	broadcaster rooms.Broadcaster,
	users interfaces.UserStore,
	whiteboards interfaces.WhiteboardStore,
	sessions interfaces.SessionStore,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		rooms:       broadcaster,
		users:       users,
		whiteboards: whiteboards,
		sessions:    sessions,
		metrics:     metrics,
		logger:      logger.Named("session"),
	}
}

// Join runs EnterRoom and RecordJoin back to back.
func (ss *SessionService) Join(ctx context.Context, request *models.JoinRoomRequest, participant rooms.Participant) (*models.User, error) {
	ss.EnterRoom(request.RoomID, participant)
	return ss.RecordJoin(ctx, request, participant)
}

// EnterRoom registers the participant in the live room. It never touches
// the store, so it cannot fail.
func (ss *SessionService) EnterRoom(roomID string, participant rooms.Participant) {
	ss.rooms.Register(roomID, participant)
	ss.logger.Info("User joined room",
		zap.String("room_id", roomID),
		zap.String("participant_id", participant.ID()),
	)
}

// RecordJoin writes the join to the store and replies userCreated, or error
// on failure. The participant stays in the room either way.
func (ss *SessionService) RecordJoin(ctx context.Context, request *models.JoinRoomRequest, participant rooms.Participant) (*models.User, error) {
	user, err := ss.persistJoin(ctx, request)
	if err != nil {
		ss.metrics.PersistenceFailed(enums.SOCKET_EVENT_JOIN_ROOM)
		ss.logger.Error("Error creating whiteboard session",
			zap.String("room_id", request.RoomID),
			zap.String("participant_id", participant.ID()),
			zap.Error(err),
		)
		if replyErr := reply(participant, enums.SOCKET_EVENT_ERROR, models.ErrorPayload{Message: msgs.MsgFailedToJoinRoom}); replyErr != nil {
			ss.logger.Warn("Error replying to participant", zap.Error(replyErr))
		}
		return nil, fmt.Errorf("%w: %w", errs.ErrJoinRoomFailed, err)
	}

	ss.logger.Info("Created whiteboard session",
		zap.String("room_id", request.RoomID),
		zap.String("user_id", user.ID),
	)
	if err := reply(participant, enums.SOCKET_EVENT_USER_CREATED, user.ID); err != nil {
		ss.logger.Warn("Error replying to participant", zap.Error(err))
	}
	return user, nil
}

// persistJoin writes user, whiteboard and session in that order. There is no
// transaction: a failure part way leaves the earlier records in place.
func (ss *SessionService) persistJoin(ctx context.Context, request *models.JoinRoomRequest) (*models.User, error) {
	user, err := ss.users.UpsertByEmail(ctx, request.Email, request.Name)
	if err != nil {
		return nil, err
	}
	if _, err := ss.whiteboards.EnsureForRoom(ctx, request.RoomID, user.ID); err != nil {
		return nil, err
	}
	if _, err := ss.sessions.Create(ctx, request.RoomID, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}
