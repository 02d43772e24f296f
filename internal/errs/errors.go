package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidEmail           = Error("invalid email")
	ErrInvalidRoomId          = Error("invalid room id")
	ErrInvalidPayload         = Error("invalid payload")
	ErrUserAlreadyExists      = Error("user already exists")
	ErrUserNotFound           = Error("user not found")
	ErrUserCreationFailed     = Error("user creation failed")
	ErrWhiteboardNotFound     = Error("whiteboard not found")
	ErrWhiteboardSaveFailed   = Error("whiteboard save failed")
	ErrWhiteboardLoadFailed   = Error("whiteboard load failed")
	ErrJoinRoomFailed         = Error("join room failed")
	ErrNotRoomMember          = Error("participant is not a member of the room")
	ErrParticipantUnavailable = Error("participant send queue unavailable")
	ErrUnknownEvent           = Error("unknown socket event")
)
