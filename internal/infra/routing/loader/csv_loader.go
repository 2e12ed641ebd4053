// Package loader reads stop lists from CSV exports.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
)

// stopColumns is the expected header of a stops CSV. address and postcode may be omitted.
var stopColumns = []string{"type", "lat", "lng", "address", "postcode"}

// CSVLoader handles loading of stops from a CSV file
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a new CSV loader for the given file
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// LoadStops loads the file as request stops in row order.
// Expected CSV format: type,lat,lng[,address[,postcode]]
func (l *CSVLoader) LoadStops() ([]entity.StopInput, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return ReadStops(file)
}

// ReadStops parses a stops CSV. Sequence follows the row order starting at 1.
func ReadStops(r io.Reader) ([]entity.StopInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stops header")
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var stops []entity.StopInput
	lineNum := 1 // header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < 3 || len(record) > len(stopColumns) {
			return nil, errors.Errorf("invalid stops csv format at line %d: expected 3 to %d columns, got %d",
				lineNum, len(stopColumns), len(record))
		}

		stop, parseErr := parseStop(record, lineNum, len(stops)+1)
		if parseErr != nil {
			return nil, parseErr
		}

		stops = append(stops, entity.RequestInput(stop))
	}

	return stops, nil
}

func checkHeader(header []string) error {
	if len(header) < 3 || len(header) > len(stopColumns) {
		return errors.Errorf("invalid stops csv header: expected %s", strings.Join(stopColumns, ","))
	}
	for i, column := range header {
		if !strings.EqualFold(strings.TrimSpace(column), stopColumns[i]) {
			return errors.Errorf("invalid stops csv header: column %d is %q, expected %q", i+1, column, stopColumns[i])
		}
	}

	return nil
}

func parseStop(record []string, lineNum, sequence int) (entity.RequestStop, error) {
	stopType := entity.StopType(strings.ToLower(strings.TrimSpace(record[0])))
	if !stopType.Valid() {
		return entity.RequestStop{}, errors.Errorf("unknown stop type %q at line %d", record[0], lineNum)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return entity.RequestStop{}, errors.Wrapf(err, "invalid lat at line %d", lineNum)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return entity.RequestStop{}, errors.Wrapf(err, "invalid lng at line %d", lineNum)
	}

	stop := entity.RequestStop{
		ID:       strconv.Itoa(sequence),
		Type:     stopType,
		Sequence: sequence,
		Location: entity.RequestLocation{Latitude: lat, Longitude: lng},
	}
	if len(record) > 3 {
		stop.Location.Address = record[3]
	}
	if len(record) > 4 {
		stop.Location.Postcode = record[4]
	}

	return stop, nil
}
