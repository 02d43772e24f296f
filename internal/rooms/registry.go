package rooms

import (
	"sync"

	"go.uber.org/zap"
)

// Registry maps room ids to the participants currently joined to them.
// It is in-memory only and safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	// [room_id] => [participant_id] => Participant
	rooms map[string]map[string]Participant
	// [participant_id] => set of room ids, for Deregister
	memberships map[string]map[string]struct{}
	logger      *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		rooms:       make(map[string]map[string]Participant),
		memberships: make(map[string]map[string]struct{}),
		logger:      logger.Named("rooms"),
	}
}

func (r *Registry) Register(roomID string, participant Participant) {
	id := participant.ID()

	r.mu.Lock()
	members, ok := r.rooms[roomID]
	if !ok {
		members = make(map[string]Participant)
		r.rooms[roomID] = members
	}
	members[id] = participant

	joined, ok := r.memberships[id]
	if !ok {
		joined = make(map[string]struct{})
		r.memberships[id] = joined
	}
	joined[roomID] = struct{}{}
	size := len(members)
	r.mu.Unlock()

	r.logger.Debug("participant registered",
		zap.String("room_id", roomID),
		zap.String("participant_id", id),
		zap.Int("members", size),
	)
}

// Deregister removes the participant from every room it joined. Rooms left
// without members are dropped.
func (r *Registry) Deregister(participant Participant) {
	id := participant.ID()

	r.mu.Lock()
	joined := r.memberships[id]
	for roomID := range joined {
		members := r.rooms[roomID]
		delete(members, id)
		if len(members) == 0 {
			delete(r.rooms, roomID)
		}
	}
	delete(r.memberships, id)
	r.mu.Unlock()

	if len(joined) > 0 {
		r.logger.Debug("participant deregistered",
			zap.String("participant_id", id),
			zap.Int("rooms", len(joined)),
		)
	}
}

func (r *Registry) Broadcast(roomID, excluding string, message []byte) {
	r.Deliver(roomID, excluding, message)
}

// Deliver sends message to the local members of roomID and returns how many
// accepted it. The lock is released before any frame is queued.
func (r *Registry) Deliver(roomID, excluding string, message []byte) int {
	recipients := r.Members(roomID)

	delivered := 0
	for _, participant := range recipients {
		if excluding != "" && participant.ID() == excluding {
			continue
		}
		if participant.Send(message) {
			delivered++
			continue
		}
		r.logger.Warn("dropping frame for participant",
			zap.String("room_id", roomID),
			zap.String("participant_id", participant.ID()),
		)
	}
	return delivered
}

// Members returns a snapshot of the participants joined to roomID.
func (r *Registry) Members(roomID string) []Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[roomID]
	snapshot := make([]Participant, 0, len(members))
	for _, participant := range members {
		snapshot = append(snapshot, participant)
	}
	return snapshot
}

func (r *Registry) IsMember(roomID, participantID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rooms[roomID][participantID]
	return ok
}

func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// ParticipantCount counts distinct participants joined to at least one room.
func (r *Registry) ParticipantCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.memberships)
}
