package models

type CreateUserRequestBody struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}
