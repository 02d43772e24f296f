package repositories

import (
	"context"
	"errors"
	"fmt"
	"socketBoard/internal/errs"
	"socketBoard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (ur *UserRepository) UpsertByEmail(ctx context.Context, email, name string) (*models.User, error) {
	user := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	result := ur.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(user)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("upsert user %q: %w", email, err)
	}
	// On conflict the generated id is discarded, so read back the stored row.
	return ur.FindByEmail(ctx, email)
}

func (ur *UserRepository) Create(ctx context.Context, email, name string) (*models.User, error) {
	user := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	result := ur.db.WithContext(ctx).Create(user)
	if err := result.Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user %q: %w", email, err)
	}
	if result.RowsAffected <= 0 {
		return nil, errs.ErrUserCreationFailed
	}
	return user, nil
}

func (ur *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := ur.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", email, err)
	}
	return &user, nil
}
