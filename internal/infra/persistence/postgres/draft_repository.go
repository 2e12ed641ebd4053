// Package postgres contains the concrete implementation of the persistence layer using GORM.
// The repositories only rely on portable GORM features, so the same code serves SQLite.
package postgres

import (
	"context"
	"encoding/json"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/repository"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// draftRepository implements the repository.DraftRepository interface.
type draftRepository struct {
	db *gorm.DB
}

// NewDraftRepository is the constructor for draftRepository.
func NewDraftRepository(db *gorm.DB) repository.DraftRepository {
	return &draftRepository{
		db: db,
	}
}

// Load retrieves the owner's draft.
func (repo *draftRepository) Load(ctx context.Context, ownerID uuid.UUID) (*entity.Draft, error) {
	var draftM model.JourneyDraftModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&draftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDraftNotFound
		}

		return nil, errors.Wrap(err, "failed to find draft by owner")
	}

	return toDraftDomain(&draftM)
}

// Save upserts the owner's draft.
func (repo *draftRepository) Save(ctx context.Context, draft *entity.Draft) error {
	draftM, err := fromDraftDomain(draft)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"request_id", "step", "journey", "form_values", "updated_at"}),
		}).
		Create(draftM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return errors.Wrap(repository.ErrInvalidDraft, err.Error())
		}

		return errors.Wrap(err, "failed to save draft")
	}

	return nil
}

// Clear deletes the owner's draft.
func (repo *draftRepository) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.JourneyDraftModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear draft")
	}

	return nil
}

func fromDraftDomain(draft *entity.Draft) (*model.JourneyDraftModel, error) {
	journey := draft.Journey
	if journey == nil {
		journey = entity.Journey{}
	}
	journeyJSON, err := json.Marshal(journey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode draft journey")
	}

	var valuesJSON datatypes.JSON
	if len(draft.Values) > 0 {
		valuesJSON, err = json.Marshal(draft.Values)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode draft values")
		}
	}

	return &model.JourneyDraftModel{
		OwnerID:    draft.OwnerID,
		RequestID:  draft.RequestID,
		Step:       draft.Step,
		Journey:    datatypes.JSON(journeyJSON),
		FormValues: valuesJSON,
		UpdatedAt:  draft.UpdatedAt,
	}, nil
}

func toDraftDomain(draftM *model.JourneyDraftModel) (*entity.Draft, error) {
	draft := &entity.Draft{
		OwnerID:   draftM.OwnerID,
		RequestID: draftM.RequestID,
		Step:      draftM.Step,
		UpdatedAt: draftM.UpdatedAt,
	}

	if err := json.Unmarshal(draftM.Journey, &draft.Journey); err != nil {
		return nil, errors.Wrap(err, "failed to decode draft journey")
	}
	if len(draftM.FormValues) > 0 {
		if err := json.Unmarshal(draftM.FormValues, &draft.Values); err != nil {
			return nil, errors.Wrap(err, "failed to decode draft values")
		}
	}

	return draft, nil
}
