package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/repository"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDraftRepository(t *testing.T) repository.DraftRepository {
	t.Helper()

	db, err := sqlite.Open(sqlite.MemoryPath, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewDraftRepository(db)
}

func sampleDraft(ownerID uuid.UUID) *entity.Draft {
	pickup := entity.NewJourneyStop(entity.StopTypePickup)
	pickup.Location.Address = "1 High Street"
	pickup.SetCoordinates(51.5074, -0.1278)
	pickup.Items = []entity.Item{{ID: "item-1", Name: "Wardrobe", Quantity: 1, NeedsDisassembly: true}}

	dropoff := entity.NewJourneyStop(entity.StopTypeDropoff)
	dropoff.Location.Address = "9 Low Road"
	dropoff.SetCoordinates(51.52, -0.1)
	dropoff.LinkedItems = []string{"item-1"}

	return &entity.Draft{
		OwnerID:   ownerID,
		Step:      1,
		Journey:   entity.Journey{pickup, dropoff},
		Values:    map[string]any{"contact_name": "Sam", "service_type": "removal"},
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDraftRepository_SaveLoadClear(t *testing.T) {
	repo := newTestDraftRepository(t)
	ctx := context.Background()
	ownerID := uuid.New()

	_, err := repo.Load(ctx, ownerID)
	require.ErrorIs(t, err, repository.ErrDraftNotFound)

	draft := sampleDraft(ownerID)
	require.NoError(t, repo.Save(ctx, draft))

	loaded, err := repo.Load(ctx, ownerID)
	require.NoError(t, err)

	assert.Equal(t, ownerID, loaded.OwnerID)
	assert.Equal(t, 1, loaded.Step)
	assert.Empty(t, loaded.RequestID)
	assert.Equal(t, "Sam", loaded.Values["contact_name"])
	require.Len(t, loaded.Journey, 2)
	assert.Equal(t, draft.Journey[0].ID, loaded.Journey[0].ID)
	assert.Equal(t, []string{"item-1"}, loaded.Journey[1].LinkedItems)
	assert.True(t, loaded.Journey[0].Items[0].NeedsDisassembly)

	lat, lng, ok := loaded.Journey[0].Coordinates()
	require.True(t, ok)
	assert.InDelta(t, 51.5074, lat, 1e-9)
	assert.InDelta(t, -0.1278, lng, 1e-9)

	require.NoError(t, repo.Clear(ctx, ownerID))
	_, err = repo.Load(ctx, ownerID)
	require.ErrorIs(t, err, repository.ErrDraftNotFound)

	require.NoError(t, repo.Clear(ctx, ownerID), "clearing a missing draft is not an error")
}

func TestDraftRepository_SaveReplaces(t *testing.T) {
	repo := newTestDraftRepository(t)
	ctx := context.Background()
	ownerID := uuid.New()

	require.NoError(t, repo.Save(ctx, sampleDraft(ownerID)))

	updated := sampleDraft(ownerID)
	updated.RequestID = "req-42"
	updated.Step = 3
	updated.Journey = updated.Journey[:1]
	updated.Values = nil
	require.NoError(t, repo.Save(ctx, updated))

	loaded, err := repo.Load(ctx, ownerID)
	require.NoError(t, err)

	assert.Equal(t, "req-42", loaded.RequestID)
	assert.Equal(t, 3, loaded.Step)
	assert.Len(t, loaded.Journey, 1)
	assert.Empty(t, loaded.Values)
}

func TestDraftRepository_OwnersAreIsolated(t *testing.T) {
	repo := newTestDraftRepository(t)
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	require.NoError(t, repo.Save(ctx, sampleDraft(first)))
	require.NoError(t, repo.Save(ctx, sampleDraft(second)))
	require.NoError(t, repo.Clear(ctx, first))

	_, err := repo.Load(ctx, first)
	require.ErrorIs(t, err, repository.ErrDraftNotFound)

	_, err = repo.Load(ctx, second)
	require.NoError(t, err)
}

func TestDraftRepository_RejectsNegativeStep(t *testing.T) {
	repo := newTestDraftRepository(t)
	ctx := context.Background()

	draft := sampleDraft(uuid.New())
	draft.Step = -1

	err := repo.Save(ctx, draft)
	require.ErrorIs(t, err, repository.ErrInvalidDraft)

	_, err = repo.Load(ctx, draft.OwnerID)
	require.ErrorIs(t, err, repository.ErrDraftNotFound)
}
