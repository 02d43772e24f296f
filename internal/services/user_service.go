package services

import (
	"context"
	"socketBoard/internal/interfaces"
	"socketBoard/internal/models"
	"socketBoard/internal/validators"
)

type UserService struct {
	users interfaces.UserStore
}

func NewUserService(users interfaces.UserStore) *UserService {
	return &UserService{
		users: users,
	}
}

func (us *UserService) Register(ctx context.Context, request *models.CreateUserRequestBody) (*models.User, []error) {
	var errors []error
	validationErrs := validators.ValidateCreateUser(request)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	user, err := us.users.Create(ctx, request.Email, request.Name)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return user, nil
}
