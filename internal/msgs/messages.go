package msgs

// Texts sent to clients. They are intentionally generic; details go to the log.
const (
	MsgFailedToJoinRoom       = "Failed to join room"
	MsgFailedToSaveWhiteboard = "Failed to save whiteboard"
	MsgFailedToLoadWhiteboard = "Failed to load whiteboard"
	MsgWhiteboardNotFound     = "Whiteboard not found"
	MsgUserCreationFailed     = "User creation failed"
	MsgNotRoomMember          = "Join the room first"
	MsgOperationFailed        = "Operation failed"
)
