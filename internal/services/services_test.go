package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"socketBoard/internal/models/socket"

	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type fakeParticipant struct {
	id     string
	mu     sync.Mutex
	frames []socket.Event
}

func newFakeParticipant(id string) *fakeParticipant {
	return &fakeParticipant{id: id}
}

func (p *fakeParticipant) ID() string { return p.id }

func (p *fakeParticipant) Send(message []byte) bool {
	var event socket.Event
	if err := json.Unmarshal(message, &event); err != nil {
		return false
	}
	p.mu.Lock()
	p.frames = append(p.frames, event)
	p.mu.Unlock()
	return true
}

func (p *fakeParticipant) events() []socket.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]socket.Event(nil), p.frames...)
}

func (p *fakeParticipant) only(t *testing.T) socket.Event {
	t.Helper()
	events := p.events()
	require.Len(t, events, 1)
	return events[0]
}
