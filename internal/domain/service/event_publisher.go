package service

import (
	"context"
	"time"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
)

// JourneyStepEvent is emitted when an owner submits a step of a service request.
// The backend consumes it to create or update the request.
type JourneyStepEvent struct {
	RequestID   string         `json:"request_id"`
	TraceID     string         `json:"trace_id,omitempty"` // X-Request-Id of the submitting call
	OwnerID     string         `json:"owner_id"`
	Step        int            `json:"step"`
	Journey     entity.Journey `json:"journey"`
	Values      map[string]any `json:"values,omitempty"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishJourneyStep publishes a submitted step for the backend
	PublishJourneyStep(ctx context.Context, event *JourneyStepEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
