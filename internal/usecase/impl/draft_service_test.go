package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/context"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	domainerrors "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/repository"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	mockRepo "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/mocks/repository"
	mockService "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/mocks/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type draftServiceFixtures struct {
	service   usecase.DraftUsecase
	drafts    *mockRepo.MockDraftRepository
	publisher *mockService.MockEventPublisher
	now       time.Time
}

func createTestDraftService(t *testing.T) draftServiceFixtures {
	drafts := mockRepo.NewMockDraftRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	svc := NewDraftService(DraftServiceParams{
		Drafts:    drafts,
		Publisher: publisher,
		Journey:   newTestJourneyService(),
	})
	svc.(*draftService).now = func() time.Time { return now }

	return draftServiceFixtures{
		service:   svc,
		drafts:    drafts,
		publisher: publisher,
		now:       now,
	}
}

func TestDraftService_Load(t *testing.T) {
	fx := createTestDraftService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	saved := &entity.Draft{OwnerID: ownerID, Step: 2, Journey: linkageJourney()}

	fx.drafts.EXPECT().Load(ctx, ownerID).Return(saved, nil).Once()

	draft, err := fx.service.Load(ctx, ownerID)
	require.NoError(t, err)
	assert.Same(t, saved, draft)
}

func TestDraftService_Load_NotFound(t *testing.T) {
	fx := createTestDraftService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.drafts.EXPECT().Load(ctx, ownerID).Return(nil, repository.ErrDraftNotFound).Once()

	_, err := fx.service.Load(ctx, ownerID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDraftNotFound))
}

func TestDraftService_Save_KeepsStoredRequestID(t *testing.T) {
	fx := createTestDraftService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.drafts.EXPECT().Load(ctx, ownerID).
		Return(&entity.Draft{OwnerID: ownerID, RequestID: "req-1"}, nil).Once()
	fx.drafts.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Draft")).Return(nil).Once()

	draft, err := fx.service.Save(ctx, &entity.Draft{
		OwnerID:   ownerID,
		RequestID: "forged",
		Step:      1,
		Journey:   linkageJourney(),
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", draft.RequestID)
	assert.Equal(t, fx.now, draft.UpdatedAt)
}

func TestDraftService_Save_RejectsInvalidJourney(t *testing.T) {
	fx := createTestDraftService(t)

	journey := linkageJourney()
	journey[1].ID = journey[0].ID

	_, err := fx.service.Save(context.Background(), &entity.Draft{OwnerID: uuid.New(), Journey: journey})
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidJourney.ErrorCode(), appErrorCode(t, err))
}

func TestDraftService_Save_DatabaseError(t *testing.T) {
	fx := createTestDraftService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.drafts.EXPECT().Load(ctx, ownerID).Return(nil, repository.ErrDraftNotFound).Once()
	fx.drafts.EXPECT().Save(ctx, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := fx.service.Save(ctx, &entity.Draft{OwnerID: ownerID, Journey: linkageJourney()})
	require.Error(t, err)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErrorCode(t, err))
}

func TestDraftService_Clear(t *testing.T) {
	fx := createTestDraftService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.drafts.EXPECT().Clear(ctx, ownerID).Return(nil).Once()

	require.NoError(t, fx.service.Clear(ctx, ownerID))
}

func TestDraftService_SubmitStep_AssignsRequestIDOnce(t *testing.T) {
	fx := createTestDraftService(t)
	ownerID := uuid.New()
	ctx := deliverycontext.WithRequestID(context.Background(), "trace-1")

	stored := &entity.Draft{OwnerID: ownerID, Step: 1, Journey: linkageJourney()}
	fx.drafts.EXPECT().Load(ctx, ownerID).Return(stored, nil).Twice()
	fx.drafts.EXPECT().Save(ctx, stored).Return(nil).Twice()

	var events []*service.JourneyStepEvent
	fx.publisher.EXPECT().
		PublishJourneyStep(ctx, mock.AnythingOfType("*service.JourneyStepEvent")).
		Run(func(_ context.Context, event *service.JourneyStepEvent) {
			events = append(events, event)
		}).
		Return(nil).Twice()

	first, err := fx.service.SubmitStep(ctx, ownerID, 1)
	require.NoError(t, err)
	require.NotEmpty(t, first.RequestID)
	_, parseErr := uuid.Parse(first.RequestID)
	require.NoError(t, parseErr)

	second, err := fx.service.SubmitStep(ctx, ownerID, 2)
	require.NoError(t, err)
	assert.Equal(t, first.RequestID, second.RequestID)
	assert.Equal(t, 2, second.Draft.Step)

	require.Len(t, events, 2)
	assert.Equal(t, first.RequestID, events[0].RequestID)
	assert.Equal(t, "trace-1", events[0].TraceID)
	assert.Equal(t, ownerID.String(), events[0].OwnerID)
	assert.Equal(t, 1, events[0].Step)
	assert.Equal(t, 2, events[1].Step)
	assert.Equal(t, fx.now, events[1].SubmittedAt)
}

func TestDraftService_SubmitStep_PublishFailureKeepsDraft(t *testing.T) {
	fx := createTestDraftService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	stored := &entity.Draft{OwnerID: ownerID, Journey: linkageJourney()}
	fx.drafts.EXPECT().Load(ctx, ownerID).Return(stored, nil).Once()
	fx.drafts.EXPECT().Save(ctx, stored).Return(nil).Once()
	fx.publisher.EXPECT().PublishJourneyStep(ctx, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := fx.service.SubmitStep(ctx, ownerID, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStepSubmitFailed))

	fx.drafts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	assert.NotEmpty(t, stored.RequestID, "request id is persisted before publishing")
}

func TestDraftService_SubmitStep_RejectsLinkConflicts(t *testing.T) {
	fx := createTestDraftService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	journey := linkageJourney()
	journey[2].LinkedItems = []string{"X"}
	fx.drafts.EXPECT().Load(ctx, ownerID).Return(&entity.Draft{OwnerID: ownerID, Journey: journey}, nil).Once()

	_, err := fx.service.SubmitStep(ctx, ownerID, 1)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrLinkConflict.ErrorCode(), appErrorCode(t, err))
}

func TestDraftService_SubmitStep_InvalidStep(t *testing.T) {
	fx := createTestDraftService(t)

	_, err := fx.service.SubmitStep(context.Background(), uuid.New(), 0)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidStep.ErrorCode(), appErrorCode(t, err))
}
