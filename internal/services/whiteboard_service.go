package services

import (
	"context"
	"socketBoard/internal/interfaces"
	"socketBoard/internal/models"
)

// WhiteboardService backs the read-only REST endpoints.
type WhiteboardService struct {
	whiteboards interfaces.WhiteboardStore
	sessions    interfaces.SessionStore
}

func NewWhiteboardService(whiteboards interfaces.WhiteboardStore, sessions interfaces.SessionStore) *WhiteboardService {
	return &WhiteboardService{
		whiteboards: whiteboards,
		sessions:    sessions,
	}
}

func (ws *WhiteboardService) GetAllWhiteboards(ctx context.Context) ([]models.WhiteboardSummaryResponse, error) {
	whiteboards, err := ws.whiteboards.FindAllWithOwner(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.WhiteboardSummaryResponse, 0, len(whiteboards))
	for i := range whiteboards {
		summaries = append(summaries, whiteboards[i].ToSummaryResponse())
	}
	return summaries, nil
}

func (ws *WhiteboardService) GetWhiteboard(ctx context.Context, id string) (*models.Whiteboard, error) {
	return ws.whiteboards.FindByIDWithOwner(ctx, id)
}

// GetWhiteboardSessions returns the join history, or ErrWhiteboardNotFound.
func (ws *WhiteboardService) GetWhiteboardSessions(ctx context.Context, id string) ([]models.WhiteboardSession, error) {
	if _, err := ws.whiteboards.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return ws.sessions.FindByWhiteboard(ctx, id)
}
