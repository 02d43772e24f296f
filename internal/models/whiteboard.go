package models

import "time"

// Whiteboard holds the last saved canvas of a room. Its ID is the room id.
type Whiteboard struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	ImageData string    `gorm:"type:text;not null;default:''" json:"imageData"`
	UserID    string    `gorm:"not null;index;type:varchar(36)" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (whiteboard *Whiteboard) ToSummaryResponse() WhiteboardSummaryResponse {
	summary := WhiteboardSummaryResponse{
		ID:        whiteboard.ID,
		Name:      whiteboard.Name,
		CreatedAt: whiteboard.CreatedAt,
	}
	if whiteboard.User != nil {
		summary.User = whiteboard.User.ToOwnerResponse()
	}
	return summary
}
