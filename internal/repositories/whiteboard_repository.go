package repositories

import (
	"context"
	"errors"
	"fmt"
	"socketBoard/internal/errs"
	"socketBoard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultWhiteboardNamePrefix = "Whiteboard "

type WhiteboardRepository struct {
	db *gorm.DB
}

func NewWhiteboardRepository(db *gorm.DB) *WhiteboardRepository {
	return &WhiteboardRepository{
		db: db,
	}
}

func (wr *WhiteboardRepository) EnsureForRoom(ctx context.Context, roomID, ownerID string) (*models.Whiteboard, error) {
	whiteboard := &models.Whiteboard{
		ID:        roomID,
		Name:      defaultWhiteboardNamePrefix + roomID,
		ImageData: "",
		UserID:    ownerID,
	}
	err := wr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(whiteboard).Error
	if err != nil {
		return nil, fmt.Errorf("ensure whiteboard %q: %w", roomID, err)
	}
	return wr.FindByID(ctx, roomID)
}

func (wr *WhiteboardRepository) UpsertCanvas(ctx context.Context, roomID, name, imageData, ownerID string) (*models.Whiteboard, error) {
	whiteboard := &models.Whiteboard{
		ID:        roomID,
		Name:      name,
		ImageData: imageData,
		UserID:    ownerID,
	}
	err := wr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "image_data", "updated_at"}),
	}).Create(whiteboard).Error
	if err != nil {
		return nil, fmt.Errorf("save whiteboard %q: %w", roomID, err)
	}
	return wr.FindByID(ctx, roomID)
}

func (wr *WhiteboardRepository) FindByID(ctx context.Context, id string) (*models.Whiteboard, error) {
	var whiteboard models.Whiteboard
	err := wr.db.WithContext(ctx).Where("id = ?", id).First(&whiteboard).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWhiteboardNotFound
		}
		return nil, fmt.Errorf("find whiteboard %q: %w", id, err)
	}
	return &whiteboard, nil
}

// FindByIDWithOwner is FindByID with the owning user preloaded.
func (wr *WhiteboardRepository) FindByIDWithOwner(ctx context.Context, id string) (*models.Whiteboard, error) {
	var whiteboard models.Whiteboard
	err := wr.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&whiteboard).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWhiteboardNotFound
		}
		return nil, fmt.Errorf("find whiteboard %q: %w", id, err)
	}
	return &whiteboard, nil
}

// FindAllWithOwner lists whiteboards without their canvas data.
func (wr *WhiteboardRepository) FindAllWithOwner(ctx context.Context) ([]models.Whiteboard, error) {
	var whiteboards []models.Whiteboard
	err := wr.db.WithContext(ctx).
		Select("id", "name", "user_id", "created_at", "updated_at").
		Preload("User").
		Order("created_at ASC").
		Find(&whiteboards).Error
	if err != nil {
		return nil, fmt.Errorf("list whiteboards: %w", err)
	}
	return whiteboards, nil
}
