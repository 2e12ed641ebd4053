package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JourneyDraftModel is the GORM-specific struct for the 'journey_drafts' table.
// One row per owner; journey and form values are stored as JSON documents.
type JourneyDraftModel struct {
	OwnerID    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RequestID  string         `gorm:"type:varchar(64);index"`
	Step       int            `gorm:"not null;default:0;check:chk_journey_drafts_step,step >= 0"`
	Journey    datatypes.JSON `gorm:"not null"`
	FormValues datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (JourneyDraftModel) TableName() string {
	return "journey_drafts"
}
