package repositories

import (
	"context"
	"fmt"
	"socketBoard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (sr *SessionRepository) Create(ctx context.Context, whiteboardID, userID string) (*models.WhiteboardSession, error) {
	session := &models.WhiteboardSession{
		ID:           uuid.NewString(),
		WhiteboardID: whiteboardID,
		UserID:       userID,
	}
	if err := sr.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("create session for whiteboard %q: %w", whiteboardID, err)
	}
	return session, nil
}

func (sr *SessionRepository) FindByWhiteboard(ctx context.Context, whiteboardID string) ([]models.WhiteboardSession, error) {
	var sessions []models.WhiteboardSession
	err := sr.db.WithContext(ctx).
		Preload("User").
		Where("whiteboard_id = ?", whiteboardID).
		Order("created_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list sessions for whiteboard %q: %w", whiteboardID, err)
	}
	return sessions, nil
}
