package validators

import (
	"regexp"
	"socketBoard/internal/errs"
	"socketBoard/internal/models"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateJoinRoom only rejects requests that cannot be processed at all.
func ValidateJoinRoom(request *models.JoinRoomRequest) []error {
	var errors []error
	if strings.TrimSpace(request.RoomID) == "" {
		errors = append(errors, errs.ErrInvalidRoomId)
	}
	if strings.TrimSpace(request.Email) == "" {
		errors = append(errors, errs.ErrInvalidEmail)
	}
	return errors
}

func ValidateRoomID(roomID string) error {
	if strings.TrimSpace(roomID) == "" {
		return errs.ErrInvalidRoomId
	}
	return nil
}

func ValidateCreateUser(request *models.CreateUserRequestBody) []error {
	var errors []error
	if request.Email == "" || !ValidateEmail(request.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}
	return errors
}
