package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	deliverycontext "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/context"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	domainerrors "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/repository"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type draftService struct {
	drafts    repository.DraftRepository
	publisher service.EventPublisher
	journey   usecase.JourneyUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// DraftServiceParams holds dependencies for DraftService, injected by Fx.
type DraftServiceParams struct {
	fx.In

	Drafts    repository.DraftRepository
	Publisher service.EventPublisher
	Journey   usecase.JourneyUsecase
	Logger    *slog.Logger `optional:"true"`
}

// NewDraftService creates the draft session store service.
func NewDraftService(params DraftServiceParams) usecase.DraftUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &draftService{
		drafts:    params.Drafts,
		publisher: params.Publisher,
		journey:   params.Journey,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *draftService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load returns the owner's draft.
func (srv *draftService) Load(ctx context.Context, ownerID uuid.UUID) (*entity.Draft, error) {
	draft, err := srv.drafts.Load(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDraftNotFound, "load draft")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "load draft")
	}

	return draft, nil
}

// Save validates the journey structure and replaces the owner's draft.
// Link conflicts are allowed while editing and only rejected on submit.
func (srv *draftService) Save(ctx context.Context, draft *entity.Draft) (*entity.Draft, error) {
	if draft.Step < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidStep.WithDetails(fmt.Sprintf("step %d", draft.Step)), "save draft")
	}
	if err := draft.Journey.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidJourney.WithDetails(err.Error()), "save draft")
	}

	// The request id is owned by SubmitStep; keep the stored one.
	existing, err := srv.drafts.Load(ctx, draft.OwnerID)
	switch {
	case err == nil:
		draft.RequestID = existing.RequestID
	case errors.Is(err, repository.ErrDraftNotFound):
		draft.RequestID = ""
	default:
		return nil, domainerrors.NewDatabaseExecuteError(err, "load draft")
	}

	draft.UpdatedAt = srv.now().UTC()
	if err := srv.drafts.Save(ctx, draft); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "save draft")
	}

	return draft, nil
}

// Clear removes the owner's draft.
func (srv *draftService) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := srv.drafts.Clear(ctx, ownerID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "clear draft")
	}

	return nil
}

// SubmitStep publishes the saved draft as the given step.
// The draft, including a newly assigned request id, is persisted before
// publishing, so a failed publish can be retried without losing data.
func (srv *draftService) SubmitStep(ctx context.Context, ownerID uuid.UUID, step int) (*usecase.SubmitStepResult, error) {
	logger := srv.getLogger(ctx)

	if step < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidStep.WithDetails(fmt.Sprintf("step %d", step)), "submit step")
	}

	draft, err := srv.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := draft.Journey.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidJourney.WithDetails(err.Error()), "submit step")
	}
	if conflicts := srv.journey.ValidateLinks(draft.Journey); len(conflicts) > 0 {
		return nil, errors.Wrap(domainerrors.ErrLinkConflict.WithDetails(describeConflicts(conflicts)), "submit step")
	}

	if draft.RequestID == "" {
		draft.RequestID = uuid.NewString()
	}
	draft.Step = step
	draft.UpdatedAt = srv.now().UTC()

	if err := srv.drafts.Save(ctx, draft); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "save draft")
	}

	event := &service.JourneyStepEvent{
		RequestID:   draft.RequestID,
		TraceID:     deliverycontext.GetRequestIDFromContext(ctx),
		OwnerID:     ownerID.String(),
		Step:        step,
		Journey:     draft.Journey,
		Values:      draft.Values,
		SubmittedAt: draft.UpdatedAt,
	}
	if err := srv.publisher.PublishJourneyStep(ctx, event); err != nil {
		logger.Error("Failed to publish journey step",
			slog.String("request_id", draft.RequestID),
			slog.Int("step", step),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrStepSubmitFailed, err.Error())
	}

	logger.Info("Journey step submitted",
		slog.String("request_id", draft.RequestID),
		slog.Int("step", step),
		slog.Int("stops", len(draft.Journey)),
	)

	return &usecase.SubmitStepResult{
		RequestID: draft.RequestID,
		Step:      step,
		Draft:     draft,
	}, nil
}

func describeConflicts(conflicts []usecase.LinkConflict) string {
	parts := make([]string, len(conflicts))
	for i, c := range conflicts {
		parts[i] = fmt.Sprintf("%s: %s %v", c.ItemID, c.Reason, c.DropoffIndexes)
	}

	return strings.Join(parts, "; ")
}
