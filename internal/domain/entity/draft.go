package entity

import (
	"time"

	"github.com/google/uuid"
)

// Draft is the saved snapshot of an in-progress service request.
// There is at most one draft per owner.
type Draft struct {
	OwnerID   uuid.UUID      `json:"owner_id"`
	RequestID string         `json:"request_id,omitempty"` // assigned on first submitted step
	Step      int            `json:"step"`
	Journey   Journey        `json:"journey"`
	Values    map[string]any `json:"values,omitempty"` // remaining form values, opaque to the planner
	UpdatedAt time.Time      `json:"updated_at"`
}
