package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds per-user organization context. One row per user,
// created together with the user row at registration.
type Profile struct {
	UserID        uuid.UUID `json:"user_id"`
	OrgName       *string   `json:"org_name,omitempty"`
	OrgObjectives *string   `json:"org_objectives,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}
