package models

import (
	"time"

	"github.com/google/uuid"
)

type Campaign struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Title      string    `json:"title"`
	Objectives string    `json:"objectives"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Populated on the detail view only.
	Items []CampaignItem `json:"items,omitempty"`
}
