package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoader_LoadStops(t *testing.T) {
	tmpDir := t.TempDir()

	stopsCSV := `type,lat,lng,address,postcode
pickup,51.5074,-0.1278,1 High Street,EC1A 1BB
stop,51.5100,-0.1100
dropoff,51.5200,-0.1000,9 Low Road
`
	path := filepath.Join(tmpDir, "stops.csv")
	err := os.WriteFile(path, []byte(stopsCSV), 0644)
	require.NoError(t, err)

	loader := NewCSVLoader(path)
	stops, err := loader.LoadStops()
	require.NoError(t, err)

	require.Len(t, stops, 3)
	for _, stop := range stops {
		assert.Equal(t, entity.StopKindRequest, stop.Kind)
	}

	// Verify first stop
	first := stops[0].Request
	assert.Equal(t, entity.StopTypePickup, first.Type)
	assert.Equal(t, 1, first.Sequence)
	assert.InDelta(t, 51.5074, first.Location.Latitude, 0.0001)
	assert.InDelta(t, -0.1278, first.Location.Longitude, 0.0001)
	assert.Equal(t, "1 High Street", first.Location.Address)
	assert.Equal(t, "EC1A 1BB", first.Location.Postcode)

	// Verify optional columns
	assert.Empty(t, stops[1].Request.Location.Address)
	assert.Equal(t, "9 Low Road", stops[2].Request.Location.Address)
	assert.Equal(t, 3, stops[2].Request.Sequence)
}

func TestReadStops_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{name: "empty", csv: "", wantErr: "failed to read stops header"},
		{name: "bad header", csv: "lat,lng,type\n", wantErr: "column 1"},
		{name: "short row", csv: "type,lat,lng\npickup,51.5\n", wantErr: "line 2"},
		{name: "unknown type", csv: "type,lat,lng\nwarehouse,51.5,-0.1\n", wantErr: `unknown stop type "warehouse"`},
		{name: "bad lat", csv: "type,lat,lng\npickup,north,-0.1\n", wantErr: "invalid lat at line 2"},
		{name: "bad lng", csv: "type,lat,lng\npickup,51.5,-0.1\ndropoff,51.5,west\n", wantErr: "invalid lng at line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadStops(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCSVLoader_MissingFile(t *testing.T) {
	loader := NewCSVLoader(filepath.Join(t.TempDir(), "missing.csv"))
	_, err := loader.LoadStops()
	require.Error(t, err)
}
