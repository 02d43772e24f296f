package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// SocketClient is one websocket connection. All writes go through the send
// queue and the write pump so a broadcast never blocks on the network.
type SocketClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// NewSocketClient queues at least one frame; an unbuffered queue would drop
// nearly every send.
func NewSocketClient(conn *websocket.Conn, sendBuffer int) *SocketClient {
	if sendBuffer < 1 {
		sendBuffer = 1
	}
	return &SocketClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

func (sc *SocketClient) ID() string {
	return sc.id
}

// Send drops the frame when the queue is full or the client is closed.
func (sc *SocketClient) Send(message []byte) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.closed {
		return false
	}
	select {
	case sc.send <- message:
		return true
	default:
		return false
	}
}

// Close stops the write pump after it flushes what is already queued.
func (sc *SocketClient) Close() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.closed {
		return
	}
	sc.closed = true
	close(sc.send)
}

func (sc *SocketClient) WritePump(logger *zap.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = sc.conn.Close()
	}()

	for {
		select {
		case message, ok := <-sc.send:
			_ = sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = sc.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := sc.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("Error writing message", zap.String("participant_id", sc.id), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Debug("Error sending ping", zap.String("participant_id", sc.id), zap.Error(err))
				return
			}
		}
	}
}
