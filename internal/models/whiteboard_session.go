package models

import "time"

// WhiteboardSession records that a user joined a whiteboard. Append-only.
type WhiteboardSession struct {
	ID           string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	WhiteboardID string      `gorm:"not null;index" json:"whiteboardId"`
	Whiteboard   *Whiteboard `gorm:"foreignKey:WhiteboardID" json:"-"`
	UserID       string      `gorm:"not null;index;type:varchar(36)" json:"userId"`
	User         *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}
