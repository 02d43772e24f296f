package enums

// Inbound socket events.
const (
	SOCKET_EVENT_JOIN_ROOM        = "joinRoom"
	SOCKET_EVENT_DRAW             = "draw"
	SOCKET_EVENT_CLEAR_WHITEBOARD = "clearWhiteboard"
	SOCKET_EVENT_SAVE_WHITEBOARD  = "saveWhiteboard"
	SOCKET_EVENT_LOAD_WHITEBOARD  = "loadWhiteboard"
)

// Outbound socket events. draw, clearWhiteboard and loadWhiteboard reuse the
// inbound names above.
const (
	SOCKET_EVENT_USER_CREATED          = "userCreated"
	SOCKET_EVENT_ERROR                 = "error"
	SOCKET_EVENT_WHITEBOARD_SAVED      = "whiteboardSaved"
	SOCKET_EVENT_WHITEBOARD_SAVE_ERROR = "whiteboardSaveError"
	SOCKET_EVENT_WHITEBOARD_LOAD_ERROR = "whiteboardLoadError"
)
