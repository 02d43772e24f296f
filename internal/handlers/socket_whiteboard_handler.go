package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"socketBoard/configs"
	"socketBoard/internal/enums"
	"socketBoard/internal/errs"
	"socketBoard/internal/metrics"
	"socketBoard/internal/models"
	"socketBoard/internal/models/socket"
	"socketBoard/internal/msgs"
	"socketBoard/internal/rooms"
	"socketBoard/internal/services"
	"socketBoard/internal/validators"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// SocketWhiteboardHandler is the websocket gateway. It owns every live
// connection and routes inbound events to the whiteboard services.
type SocketWhiteboardHandler struct {
	ctx               context.Context
	upgrader          websocket.Upgrader
	rooms             rooms.Broadcaster
	sessionService    *services.SessionService
	relayService      *services.RelayService
	canvasService     *services.CanvasService
	metrics           *metrics.Metrics
	logger            *zap.Logger
	requireMembership bool
	sendBuffer        int
	maxMessageSize    int64

	mu      sync.Mutex
	clients map[string]*SocketClient
	closing bool
	tasks   sync.WaitGroup
}

func NewSocketWhiteboardHandler(
	ctx context.Context,
	config *configs.Config,
	broadcaster rooms.Broadcaster,
	sessionService *services.SessionService,
	relayService *services.RelayService,
	canvasService *services.CanvasService,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) *SocketWhiteboardHandler {
	allowedOrigin := config.Viper.GetString("cors.origin")
	return &SocketWhiteboardHandler{
		ctx: ctx,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowedOrigin == "*" || origin == allowedOrigin
			},
		},
		rooms:             broadcaster,
		sessionService:    sessionService,
		relayService:      relayService,
		canvasService:     canvasService,
		metrics:           metrics,
		logger:            logger.Named("gateway"),
		requireMembership: config.Viper.GetBool("rooms.require_membership"),
		sendBuffer:        config.Viper.GetInt("rooms.send_buffer"),
		maxMessageSize:    config.Viper.GetInt64("rooms.max_message_size"),
		clients:           make(map[string]*SocketClient),
	}
}

// HandleSocketWhiteboardRoute godoc
// @Summary Whiteboard websocket
// @Description Upgrades to a websocket carrying {"event", "payload"} JSON frames.
// @Tags whiteboards
// @Success 101
// @Router /ws [get]
func (swh *SocketWhiteboardHandler) HandleSocketWhiteboardRoute(ctx *gin.Context) {
	ws, err := swh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		swh.logger.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}
	swh.HandleConnection(ws)
}

// HandleConnection serves one connection until it closes.
func (swh *SocketWhiteboardHandler) HandleConnection(ws *websocket.Conn) {
	client := NewSocketClient(ws, swh.sendBuffer)
	swh.addClient(client)
	swh.metrics.ConnectionOpened()
	swh.logger.Info("Client connected",
		zap.String("participant_id", client.ID()),
		zap.String("remote_addr", ws.RemoteAddr().String()),
	)

	go client.WritePump(swh.logger)

	swh.handleIncomingMessages(client, ws)

	swh.rooms.Deregister(client)
	swh.removeClient(client)
	client.Close()
	swh.metrics.ConnectionClosed()
	swh.logger.Info("Client disconnected", zap.String("participant_id", client.ID()))
}

func (swh *SocketWhiteboardHandler) handleIncomingMessages(client *SocketClient, ws *websocket.Conn) {
	if swh.maxMessageSize > 0 {
		ws.SetReadLimit(swh.maxMessageSize)
	}
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				swh.logger.Warn("Unexpected close", zap.String("participant_id", client.ID()), zap.Error(err))
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))

		var event socket.Event
		if err := json.Unmarshal(message, &event); err != nil {
			swh.logger.Warn("Error decoding message",
				zap.String("participant_id", client.ID()),
				zap.Error(err),
			)
			continue
		}
		swh.handleEvent(client, event)
	}
}

func (swh *SocketWhiteboardHandler) handleEvent(client *SocketClient, event socket.Event) {
	switch event.Event {
	case enums.SOCKET_EVENT_JOIN_ROOM:
		swh.handleJoinRoomEvent(client, event.Payload)
	case enums.SOCKET_EVENT_DRAW:
		swh.handleDrawEvent(client, event.Payload)
	case enums.SOCKET_EVENT_CLEAR_WHITEBOARD:
		swh.handleClearWhiteboardEvent(client, event.Payload)
	case enums.SOCKET_EVENT_SAVE_WHITEBOARD:
		swh.handleSaveWhiteboardEvent(client, event.Payload)
	case enums.SOCKET_EVENT_LOAD_WHITEBOARD:
		swh.handleLoadWhiteboardEvent(client, event.Payload)
	default:
		swh.logger.Warn("Ignoring event",
			zap.String("event", event.Event),
			zap.String("participant_id", client.ID()),
			zap.Error(errs.ErrUnknownEvent),
		)
		return
	}
	swh.metrics.EventReceived(event.Event)
}

func (swh *SocketWhiteboardHandler) handleJoinRoomEvent(client *SocketClient, payload json.RawMessage) {
	var request models.JoinRoomRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		swh.rejectEvent(client, enums.SOCKET_EVENT_JOIN_ROOM, enums.SOCKET_EVENT_ERROR, msgs.MsgFailedToJoinRoom, err)
		return
	}
	if err := validators.ValidateRoomID(request.RoomID); err != nil {
		swh.rejectEvent(client, enums.SOCKET_EVENT_JOIN_ROOM, enums.SOCKET_EVENT_ERROR, msgs.MsgFailedToJoinRoom, err)
		return
	}

	// Membership is live before the store round trip starts, so strokes
	// sent right after joinRoom are already routed. A join that cannot be
	// recorded still keeps the participant in the room.
	swh.sessionService.EnterRoom(request.RoomID, client)
	if validationErrs := validators.ValidateJoinRoom(&request); len(validationErrs) > 0 {
		swh.rejectEvent(client, enums.SOCKET_EVENT_JOIN_ROOM, enums.SOCKET_EVENT_ERROR, msgs.MsgFailedToJoinRoom, validationErrs[0])
		return
	}
	swh.goTask(func(ctx context.Context) {
		_, _ = swh.sessionService.RecordJoin(ctx, &request, client)
	})
}

func (swh *SocketWhiteboardHandler) handleDrawEvent(client *SocketClient, payload json.RawMessage) {
	var request models.DrawRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		swh.logger.Warn("Error decoding draw payload", zap.String("participant_id", client.ID()), zap.Error(err))
		return
	}
	if !swh.allowed(client, request.RoomID) {
		swh.logger.Debug("Dropping draw from non-member",
			zap.String("room_id", request.RoomID),
			zap.String("participant_id", client.ID()),
		)
		return
	}
	if err := swh.relayService.Draw(client, request.RoomID, payload); err != nil {
		swh.logger.Warn("Error relaying draw", zap.String("participant_id", client.ID()), zap.Error(err))
	}
}

func (swh *SocketWhiteboardHandler) handleClearWhiteboardEvent(client *SocketClient, payload json.RawMessage) {
	var request models.ClearWhiteboardRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		swh.logger.Warn("Error decoding clear payload", zap.String("participant_id", client.ID()), zap.Error(err))
		return
	}
	if !swh.allowed(client, request.RoomID) {
		swh.logger.Debug("Dropping clear from non-member",
			zap.String("room_id", request.RoomID),
			zap.String("participant_id", client.ID()),
		)
		return
	}
	if err := swh.relayService.Clear(client, request.RoomID); err != nil {
		swh.logger.Warn("Error relaying clear", zap.String("participant_id", client.ID()), zap.Error(err))
	}
}

func (swh *SocketWhiteboardHandler) handleSaveWhiteboardEvent(client *SocketClient, payload json.RawMessage) {
	var request models.SaveWhiteboardRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		swh.rejectEvent(client, enums.SOCKET_EVENT_SAVE_WHITEBOARD, enums.SOCKET_EVENT_WHITEBOARD_SAVE_ERROR, msgs.MsgFailedToSaveWhiteboard, err)
		return
	}
	if !swh.allowed(client, request.RoomID) {
		swh.rejectEvent(client, enums.SOCKET_EVENT_SAVE_WHITEBOARD, enums.SOCKET_EVENT_WHITEBOARD_SAVE_ERROR, msgs.MsgNotRoomMember, errs.ErrNotRoomMember)
		return
	}
	swh.goTask(func(ctx context.Context) {
		_, _ = swh.canvasService.Save(ctx, client, &request)
	})
}

func (swh *SocketWhiteboardHandler) handleLoadWhiteboardEvent(client *SocketClient, payload json.RawMessage) {
	var request models.LoadWhiteboardRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		swh.rejectEvent(client, enums.SOCKET_EVENT_LOAD_WHITEBOARD, enums.SOCKET_EVENT_WHITEBOARD_LOAD_ERROR, msgs.MsgFailedToLoadWhiteboard, err)
		return
	}
	if !swh.allowed(client, request.RoomID) {
		swh.rejectEvent(client, enums.SOCKET_EVENT_LOAD_WHITEBOARD, enums.SOCKET_EVENT_WHITEBOARD_LOAD_ERROR, msgs.MsgNotRoomMember, errs.ErrNotRoomMember)
		return
	}
	swh.goTask(func(ctx context.Context) {
		_ = swh.canvasService.Load(ctx, client, &request)
	})
}

// allowed applies the membership policy. Permissive mode processes events
// for any room id.
func (swh *SocketWhiteboardHandler) allowed(client *SocketClient, roomID string) bool {
	if !swh.requireMembership {
		return true
	}
	return swh.rooms.IsMember(roomID, client.ID())
}

// rejectEvent replies an error event to the sender only.
func (swh *SocketWhiteboardHandler) rejectEvent(client *SocketClient, event, replyEvent, message string, cause error) {
	swh.logger.Warn("Rejected event",
		zap.String("event", event),
		zap.String("participant_id", client.ID()),
		zap.String("reason", message),
		zap.NamedError("cause", cause),
	)
	frame, err := socket.Encode(replyEvent, models.ErrorPayload{Message: message})
	if err != nil {
		swh.logger.Error("Error encoding reply", zap.Error(err))
		return
	}
	if !client.Send(frame) {
		swh.logger.Warn("Dropped reply", zap.String("participant_id", client.ID()))
	}
}

// goTask runs a store-bound flow off the read loop. Once CloseAll has
// started no new flows are accepted.
func (swh *SocketWhiteboardHandler) goTask(task func(ctx context.Context)) bool {
	swh.mu.Lock()
	defer swh.mu.Unlock()
	if swh.closing {
		swh.logger.Debug("Dropping store flow during shutdown")
		return false
	}
	swh.tasks.Add(1)
	go func() {
		defer swh.tasks.Done()
		task(swh.ctx)
	}()
	return true
}

func (swh *SocketWhiteboardHandler) addClient(client *SocketClient) {
	swh.mu.Lock()
	defer swh.mu.Unlock()
	swh.clients[client.ID()] = client
}

func (swh *SocketWhiteboardHandler) removeClient(client *SocketClient) {
	swh.mu.Lock()
	defer swh.mu.Unlock()
	delete(swh.clients, client.ID())
}

// ClientCount is the number of open connections.
func (swh *SocketWhiteboardHandler) ClientCount() int {
	swh.mu.Lock()
	defer swh.mu.Unlock()
	return len(swh.clients)
}

// CloseAll closes every connection and waits for in-flight store flows.
func (swh *SocketWhiteboardHandler) CloseAll() {
	swh.mu.Lock()
	swh.closing = true
	for _, client := range swh.clients {
		if err := client.conn.Close(); err != nil {
			swh.logger.Debug("Error closing connection", zap.String("participant_id", client.ID()), zap.Error(err))
		}
	}
	swh.mu.Unlock()
	swh.tasks.Wait()
	swh.logger.Info("All websocket connections closed")
}
