package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopInput_ClassifiesEachElement(t *testing.T) {
	payload := `[
		{"lat": 51.5, "lng": -0.12, "role": "start"},
		{"id": "j1", "type": "pickup", "coordinates": [52.0, -1.0]},
		{"id": "r1", "type": "dropoff", "sequence": 2, "location": {"address": "x", "latitude": 53.0, "longitude": -2.0}},
		{"id": "j2", "type": "stop"}
	]`

	var inputs []StopInput
	require.NoError(t, json.Unmarshal([]byte(payload), &inputs))
	require.Len(t, inputs, 4)

	assert.Equal(t, StopKindCanonical, inputs[0].Kind)
	assert.Equal(t, Stop{Lat: 51.5, Lng: -0.12, Role: RoleStart}, *inputs[0].Canonical)

	assert.Equal(t, StopKindJourney, inputs[1].Kind)
	lat, lng, ok := inputs[1].Journey.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 52.0, lat)
	assert.Equal(t, -1.0, lng)

	assert.Equal(t, StopKindRequest, inputs[2].Kind)
	assert.Equal(t, 2, inputs[2].Request.Sequence)
	assert.Equal(t, 53.0, inputs[2].Request.Location.Latitude)

	assert.Equal(t, StopKindJourney, inputs[3].Kind)
	assert.Equal(t, "j2", inputs[3].Journey.ID)
}

func TestStopInput_SimpleShapeWithIDStaysCanonical(t *testing.T) {
	var in StopInput
	require.NoError(t, json.Unmarshal([]byte(`{"id": "x", "lat": 1, "lng": 2, "role": "stop"}`), &in))

	assert.Equal(t, StopKindCanonical, in.Kind)
	assert.Equal(t, RoleStop, in.Canonical.Role)
}

func TestStopInput_MissingCanonicalCoordinatesAreInvalid(t *testing.T) {
	var in StopInput
	require.NoError(t, json.Unmarshal([]byte(`{"lat": 1, "role": "stop"}`), &in))

	require.Equal(t, StopKindCanonical, in.Kind)
	assert.True(t, math.IsNaN(in.Canonical.Lng))
	assert.False(t, in.Canonical.Valid())
}

func TestStopInput_RejectsNonObjects(t *testing.T) {
	var in StopInput
	err := json.Unmarshal([]byte(`[1, 2]`), &in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStopFormat)
}

func TestStopInput_MarshalRoundTripKeepsKind(t *testing.T) {
	inputs := []StopInput{
		CanonicalInput(Stop{Lat: 1, Lng: 2, Role: RoleStart}),
		RequestInput(RequestStop{ID: "r", Type: StopTypeDropoff, Location: RequestLocation{Latitude: 3, Longitude: 4}}),
	}

	data, err := json.Marshal(inputs)
	require.NoError(t, err)

	var back []StopInput
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 2)
	assert.Equal(t, StopKindCanonical, back[0].Kind)
	assert.Equal(t, StopKindRequest, back[1].Kind)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.0001, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}
