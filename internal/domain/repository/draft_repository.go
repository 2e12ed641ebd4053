// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for draft persistence.
var (
	// ErrDraftNotFound is returned when the owner has no saved draft.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrInvalidDraft is returned when the store rejects a draft row.
	ErrInvalidDraft = errors.New("invalid draft")
)

// DraftRepository is the session store for in-progress service requests.
// Each owner has at most one draft; Save replaces it.
type DraftRepository interface {
	// Load returns the owner's draft or ErrDraftNotFound.
	Load(ctx context.Context, ownerID uuid.UUID) (*entity.Draft, error)

	// Save inserts or replaces the owner's draft.
	Save(ctx context.Context, draft *entity.Draft) error

	// Clear removes the owner's draft. Clearing a missing draft is not an error.
	Clear(ctx context.Context, ownerID uuid.UUID) error
}
