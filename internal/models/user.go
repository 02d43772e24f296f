package models

import "time"

// User is identified by a unique email; joins with a known email reuse the id.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null;default:''" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (user *User) ToOwnerResponse() *OwnerResponse {
	return &OwnerResponse{Name: user.Name}
}
