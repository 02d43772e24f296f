package models

import "time"

type OwnerResponse struct {
	Name string `json:"name"`
}

type WhiteboardSummaryResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	User      *OwnerResponse `json:"user"`
}
