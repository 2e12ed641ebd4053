package impl

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJourneyService() usecase.JourneyUsecase {
	return NewJourneyService(JourneyServiceParams{})
}

func ptr(v float64) *float64 {
	return &v
}

func journeyStopAt(stopType entity.StopType, lat, lng float64) entity.JourneyStop {
	stop := entity.NewJourneyStop(stopType)
	stop.SetCoordinates(lat, lng)

	return stop
}

func TestNormalizeStops_CanonicalUnchanged(t *testing.T) {
	svc := newTestJourneyService()

	stops := []entity.Stop{
		{Lat: 51.5074, Lng: -0.1278, Role: entity.RoleStart},
		{Lat: 51.52, Lng: -0.1, Role: entity.RoleIntermediate},
		{Lat: 51.53, Lng: -0.09, Role: entity.RoleStop},
	}
	inputs := make([]entity.StopInput, len(stops))
	for i, stop := range stops {
		inputs[i] = entity.CanonicalInput(stop)
	}

	assert.Equal(t, stops, svc.NormalizeStops(inputs))
}

func TestNormalizeStops_ResolvesLocationCoordinates(t *testing.T) {
	svc := newTestJourneyService()

	payload := `[
		{"id": "a", "type": "pickup", "location": {"address": "1 High St", "latitude": 51.5, "longitude": -0.12}},
		{"id": "b", "type": "dropoff", "location": {"address": "2 Low St", "latitude": 51.6, "longitude": -0.2}}
	]`
	var journey entity.Journey
	require.NoError(t, json.Unmarshal([]byte(payload), &journey))

	got := svc.NormalizeStops(entity.JourneyInputs(journey))

	assert.Equal(t, []entity.Stop{
		{Lat: 51.5, Lng: -0.12, Role: entity.RoleStart},
		{Lat: 51.6, Lng: -0.2, Role: entity.RoleStop},
	}, got)
}

func TestNormalizeStops_DropsInvalidKeepingOrder(t *testing.T) {
	svc := newTestJourneyService()

	a := entity.Stop{Lat: 10, Lng: 10, Role: entity.RoleStart}
	c := entity.Stop{Lat: 30, Lng: 30, Role: entity.RoleStop}

	tests := []struct {
		name    string
		invalid entity.StopInput
	}{
		{name: "latitude out of range", invalid: entity.CanonicalInput(entity.Stop{Lat: 91, Lng: 0})},
		{name: "longitude out of range", invalid: entity.CanonicalInput(entity.Stop{Lat: 0, Lng: -180.5})},
		{name: "not a number", invalid: entity.CanonicalInput(entity.Stop{Lat: math.NaN(), Lng: 0})},
		{name: "infinite", invalid: entity.CanonicalInput(entity.Stop{Lat: 0, Lng: math.Inf(1)})},
		{name: "journey stop without coordinates", invalid: entity.JourneyInput(entity.NewJourneyStop(entity.StopTypeStop))},
		{name: "empty input", invalid: entity.StopInput{Kind: entity.StopKindRequest}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.NormalizeStops([]entity.StopInput{
				entity.CanonicalInput(a),
				tt.invalid,
				entity.CanonicalInput(c),
			})

			assert.Equal(t, []entity.Stop{a, c}, got)
		})
	}
}

func TestNormalizeStops_RoleAssignment(t *testing.T) {
	svc := newTestJourneyService()

	journey := entity.Journey{
		journeyStopAt(entity.StopTypePickup, 1, 1),
		journeyStopAt(entity.StopTypePickup, 2, 2),
		journeyStopAt(entity.StopTypeDropoff, 3, 3),
	}

	got := svc.NormalizeStops(entity.JourneyInputs(journey))

	require.Len(t, got, 3)
	assert.Equal(t, entity.RoleStart, got[0].Role)
	assert.Equal(t, entity.RoleIntermediate, got[1].Role)
	assert.Equal(t, entity.RoleStop, got[2].Role)
}

func TestNormalizeStops_RoleUsesInputIndex(t *testing.T) {
	svc := newTestJourneyService()

	// The first input has no coordinate, so the pickup at index 1 is not the start.
	journey := entity.Journey{
		entity.NewJourneyStop(entity.StopTypePickup),
		journeyStopAt(entity.StopTypePickup, 2, 2),
		journeyStopAt(entity.StopTypeStop, 3, 3),
		journeyStopAt(entity.StopTypeDropoff, 4, 4),
	}

	got := svc.NormalizeStops(entity.JourneyInputs(journey))

	require.Len(t, got, 3)
	assert.Equal(t, entity.RoleIntermediate, got[0].Role)
	assert.Equal(t, entity.RoleIntermediate, got[1].Role)
	assert.Equal(t, entity.RoleStop, got[2].Role)
}

func TestNormalizeStops_RequestStops(t *testing.T) {
	svc := newTestJourneyService()

	inputs := []entity.StopInput{
		entity.RequestInput(entity.RequestStop{
			ID: "r1", Type: entity.StopTypePickup, Sequence: 1,
			Location: entity.RequestLocation{Latitude: 40.7, Longitude: -74.0},
		}),
		entity.RequestInput(entity.RequestStop{
			ID: "r2", Type: entity.StopTypeDropoff, Sequence: 2,
			Location: entity.RequestLocation{Latitude: 40.8, Longitude: -73.9},
		}),
	}

	assert.Equal(t, []entity.Stop{
		{Lat: 40.7, Lng: -74.0, Role: entity.RoleStart},
		{Lat: 40.8, Lng: -73.9, Role: entity.RoleStop},
	}, svc.NormalizeStops(inputs))
}

func TestNormalizeStops_MixedList(t *testing.T) {
	svc := newTestJourneyService()

	payload := `[
		{"id": "j1", "type": "pickup", "coordinates": [1, 2]},
		{"lat": 3, "lng": 4, "role": "intermediate"},
		{"id": "r1", "type": "dropoff", "location": {"latitude": 5, "longitude": 6}}
	]`
	var inputs []entity.StopInput
	require.NoError(t, json.Unmarshal([]byte(payload), &inputs))

	assert.Equal(t, []entity.Stop{
		{Lat: 1, Lng: 2, Role: entity.RoleStart},
		{Lat: 3, Lng: 4, Role: entity.RoleIntermediate},
		{Lat: 5, Lng: 6, Role: entity.RoleStop},
	}, svc.NormalizeStops(inputs))
}

func TestNormalizeStops_Empty(t *testing.T) {
	svc := newTestJourneyService()

	got := svc.NormalizeStops(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
