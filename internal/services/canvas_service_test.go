package services

import (
	"errors"
	"sync"
	"testing"

	"socketBoard/internal/errs"
	"socketBoard/internal/interfaces/mocks"
	"socketBoard/internal/models"
	"socketBoard/internal/rooms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingArchiver struct {
	mu       sync.Mutex
	archived []string
}

func (a *recordingArchiver) ArchiveInBackground(whiteboard *models.Whiteboard) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.archived = append(a.archived, whiteboard.ID)
}

func newCanvasFixture(archiver CanvasArchiver) (*rooms.Registry, *mocks.WhiteboardStore, *CanvasService) {
	registry := rooms.NewRegistry(zap.NewNop())
	store := new(mocks.WhiteboardStore)
	return registry, store, NewCanvasService(registry, store, archiver, nil, zap.NewNop())
}

func TestCanvasService_Save_RepliesToSaverOnly(t *testing.T) {
	archiver := &recordingArchiver{}
	registry, store, service := newCanvasFixture(archiver)
	saver, peer := newFakeParticipant("saver"), newFakeParticipant("peer")
	registry.Register("r1", saver)
	registry.Register("r1", peer)

	store.On("UpsertCanvas", ctx, "r1", "Board", "data:image/png;base64,AAA", "u1").
		Return(&models.Whiteboard{ID: "r1", ImageData: "data:image/png;base64,AAA"}, nil).Once()

	whiteboard, err := service.Save(ctx, saver, &models.SaveWhiteboardRequest{
		RoomID: "r1", ImageData: "data:image/png;base64,AAA", Name: "Board", UserID: "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, "r1", whiteboard.ID)

	event := saver.only(t)
	assert.Equal(t, "whiteboardSaved", event.Event)
	assert.JSONEq(t, `"r1"`, string(event.Payload))
	assert.Empty(t, peer.events())
	assert.Equal(t, []string{"r1"}, archiver.archived)
	store.AssertExpectations(t)
}

func TestCanvasService_Save_LastWriteWins(t *testing.T) {
	_, store, service := newCanvasFixture(nil)
	saver := newFakeParticipant("saver")

	store.On("UpsertCanvas", ctx, "r1", "", "first", "u1").Return(&models.Whiteboard{ID: "r1", ImageData: "first"}, nil).Once()
	store.On("UpsertCanvas", ctx, "r1", "", "second", "u1").Return(&models.Whiteboard{ID: "r1", ImageData: "second"}, nil).Once()

	_, err := service.Save(ctx, saver, &models.SaveWhiteboardRequest{RoomID: "r1", ImageData: "first", UserID: "u1"})
	require.NoError(t, err)
	last, err := service.Save(ctx, saver, &models.SaveWhiteboardRequest{RoomID: "r1", ImageData: "second", UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "second", last.ImageData)
	assert.Len(t, saver.events(), 2)
	store.AssertExpectations(t)
}

func TestCanvasService_Save_FailureRepliesSaveError(t *testing.T) {
	archiver := &recordingArchiver{}
	_, store, service := newCanvasFixture(archiver)
	saver := newFakeParticipant("saver")

	store.On("UpsertCanvas", ctx, "r1", "", "x", "missing-user").Return(nil, errors.New("foreign key violation")).Once()

	_, err := service.Save(ctx, saver, &models.SaveWhiteboardRequest{RoomID: "r1", ImageData: "x", UserID: "missing-user"})

	require.ErrorIs(t, err, errs.ErrWhiteboardSaveFailed)
	event := saver.only(t)
	assert.Equal(t, "whiteboardSaveError", event.Event)
	assert.JSONEq(t, `{"message":"Failed to save whiteboard"}`, string(event.Payload))
	assert.Empty(t, archiver.archived)
}

func TestCanvasService_Save_EmptyRoomNeverReachesStore(t *testing.T) {
	_, store, service := newCanvasFixture(nil)
	saver := newFakeParticipant("saver")

	_, err := service.Save(ctx, saver, &models.SaveWhiteboardRequest{ImageData: "x"})

	require.ErrorIs(t, err, errs.ErrInvalidRoomId)
	assert.Equal(t, "whiteboardSaveError", saver.only(t).Event)
	store.AssertNumberOfCalls(t, "UpsertCanvas", 0)
}

func TestCanvasService_Load_BroadcastsToWholeRoom(t *testing.T) {
	registry, store, service := newCanvasFixture(nil)
	requester, peer, outsider := newFakeParticipant("req"), newFakeParticipant("peer"), newFakeParticipant("out")
	registry.Register("r1", requester)
	registry.Register("r1", peer)
	registry.Register("r2", outsider)

	store.On("FindByID", ctx, "r1").Return(&models.Whiteboard{ID: "r1", ImageData: "data:image/png;base64,BBB"}, nil).Once()

	require.NoError(t, service.Load(ctx, requester, &models.LoadWhiteboardRequest{WhiteboardID: "r1", RoomID: "r1"}))

	for _, p := range []*fakeParticipant{requester, peer} {
		event := p.only(t)
		assert.Equal(t, "loadWhiteboard", event.Event)
		assert.JSONEq(t, `"data:image/png;base64,BBB"`, string(event.Payload))
	}
	assert.Empty(t, outsider.events())
}

func TestCanvasService_Load_NotFound(t *testing.T) {
	registry, store, service := newCanvasFixture(nil)
	requester, peer := newFakeParticipant("req"), newFakeParticipant("peer")
	registry.Register("r1", requester)
	registry.Register("r1", peer)

	store.On("FindByID", ctx, "nope").Return(nil, errs.ErrWhiteboardNotFound).Once()

	err := service.Load(ctx, requester, &models.LoadWhiteboardRequest{WhiteboardID: "nope", RoomID: "r1"})

	require.ErrorIs(t, err, errs.ErrWhiteboardNotFound)
	event := requester.only(t)
	assert.Equal(t, "whiteboardLoadError", event.Event)
	assert.JSONEq(t, `{"message":"Whiteboard not found"}`, string(event.Payload))
	assert.Empty(t, peer.events())
}

func TestCanvasService_Load_StoreFailure(t *testing.T) {
	_, store, service := newCanvasFixture(nil)
	requester := newFakeParticipant("req")

	store.On("FindByID", ctx, "r1").Return(nil, errors.New("connection reset")).Once()

	err := service.Load(ctx, requester, &models.LoadWhiteboardRequest{WhiteboardID: "r1", RoomID: "r1"})

	require.ErrorIs(t, err, errs.ErrWhiteboardLoadFailed)
	assert.JSONEq(t, `{"message":"Failed to load whiteboard"}`, string(requester.only(t).Payload))
}
