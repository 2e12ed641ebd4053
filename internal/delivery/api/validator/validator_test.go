package validator

import (
	"testing"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRequest struct {
	ItemID string `json:"item_id" validate:"required"`
	Step   int    `json:"step" validate:"gte=0"`
	Format string `json:"-" validate:"omitempty,oneof=json geojson"`
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&linkRequest{Step: -1, Format: "kml"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []FieldError{
		{Field: "item_id", Rule: "required"},
		{Field: "step", Rule: "gte", Param: "0"},
		{Field: "Format", Rule: "oneof", Param: "json geojson"},
	}, validationErr.Fields)
	assert.Equal(t, "validation failed: item_id failed required, step failed gte=0, Format failed oneof=json geojson", err.Error())
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&linkRequest{ItemID: "sofa", Format: "geojson"}))
}
