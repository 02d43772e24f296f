package interfaces

import (
	"context"
	"socketBoard/internal/models"
)

// UserStore persists users keyed by email.
type UserStore interface {
	// UpsertByEmail creates the user with a fresh id, or updates the name of
	// the existing one and keeps its id.
	UpsertByEmail(ctx context.Context, email, name string) (*models.User, error)
	Create(ctx context.Context, email, name string) (*models.User, error)
}

// WhiteboardStore persists one whiteboard per room, keyed by room id.
type WhiteboardStore interface {
	// EnsureForRoom creates an empty whiteboard owned by ownerID when the
	// room has none. An existing whiteboard is left untouched.
	EnsureForRoom(ctx context.Context, roomID, ownerID string) (*models.Whiteboard, error)
	// UpsertCanvas overwrites name and image data, creating the whiteboard
	// with ownerID as owner when absent.
	UpsertCanvas(ctx context.Context, roomID, name, imageData, ownerID string) (*models.Whiteboard, error)
	FindByID(ctx context.Context, id string) (*models.Whiteboard, error)
	FindByIDWithOwner(ctx context.Context, id string) (*models.Whiteboard, error)
	FindAllWithOwner(ctx context.Context) ([]models.Whiteboard, error)
}

// SessionStore appends join records.
type SessionStore interface {
	Create(ctx context.Context, whiteboardID, userID string) (*models.WhiteboardSession, error)
	FindByWhiteboard(ctx context.Context, whiteboardID string) ([]models.WhiteboardSession, error)
}
