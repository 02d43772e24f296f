package rooms

// Participant is one connected client's addressable channel handle.
type Participant interface {
	// ID is unique per connection for the lifetime of the process.
	ID() string
	// Send enqueues an encoded frame without blocking. It reports false when
	// the frame could not be queued (closed or saturated connection).
	Send(message []byte) bool
}

// Broadcaster is the registry contract the services depend on.
type Broadcaster interface {
	Register(roomID string, participant Participant)
	Deregister(participant Participant)
	// Broadcast delivers message to every member of roomID except the
	// participant whose ID equals excluding. An empty excluding includes all.
	Broadcast(roomID, excluding string, message []byte)
	IsMember(roomID, participantID string) bool
}
