package usecase

import (
	"context"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitStepResult is the outcome of a submitted step.
type SubmitStepResult struct {
	RequestID string        `json:"request_id"`
	Step      int           `json:"step"`
	Draft     *entity.Draft `json:"draft"`
}

// DraftUsecase defines the use cases of the in-progress request session store.
type DraftUsecase interface {
	// Load returns the owner's saved draft.
	Load(ctx context.Context, ownerID uuid.UUID) (*entity.Draft, error)

	// Save validates and stores the owner's draft, replacing any previous one.
	Save(ctx context.Context, draft *entity.Draft) (*entity.Draft, error)

	// Clear removes the owner's draft.
	Clear(ctx context.Context, ownerID uuid.UUID) error

	// SubmitStep hands the saved draft to the backend as the given step.
	// The request id is assigned on the first submit and reused afterwards.
	SubmitStep(ctx context.Context, ownerID uuid.UUID, step int) (*SubmitStepResult, error)
}
