package validators

import (
	"testing"

	"socketBoard/internal/errs"
	"socketBoard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("a@x.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.org"))
	assert.False(t, ValidateEmail("a@x"))
	assert.False(t, ValidateEmail("not-an-email"))
}

func TestValidateJoinRoom(t *testing.T) {
	assert.Empty(t, ValidateJoinRoom(&models.JoinRoomRequest{RoomID: "r1", Email: "a@x.com"}))

	problems := ValidateJoinRoom(&models.JoinRoomRequest{RoomID: " ", Email: ""})
	assert.Equal(t, []error{errs.ErrInvalidRoomId, errs.ErrInvalidEmail}, problems)
}

func TestValidateCreateUser(t *testing.T) {
	assert.Empty(t, ValidateCreateUser(&models.CreateUserRequestBody{Email: "a@x.com", Name: "A"}))
	assert.Equal(t, []error{errs.ErrInvalidEmail}, ValidateCreateUser(&models.CreateUserRequestBody{Email: "nope"}))
}

func TestValidateRoomID(t *testing.T) {
	assert.NoError(t, ValidateRoomID("r1"))
	assert.ErrorIs(t, ValidateRoomID(""), errs.ErrInvalidRoomId)
}
