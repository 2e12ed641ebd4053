package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// StopType is the role a stop plays in a journey.
type StopType string

const (
	StopTypePickup  StopType = "pickup"
	StopTypeDropoff StopType = "dropoff"
	StopTypeStop    StopType = "stop"
)

// Valid reports whether t is a known stop type.
func (t StopType) Valid() bool {
	switch t {
	case StopTypePickup, StopTypeDropoff, StopTypeStop:
		return true
	default:
		return false
	}
}

// Location is the address and contact information of a stop.
// Latitude and Longitude are the only stored coordinate of a JourneyStop.
type Location struct {
	Address      string   `json:"address"`
	Postcode     string   `json:"postcode,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	ContactName  string   `json:"contact_name,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// UnmarshalJSON accepts only JSON numbers for latitude and longitude.
// Anything else is treated as missing rather than failing the whole stop.
func (l *Location) UnmarshalJSON(data []byte) error {
	type alias Location
	aux := struct {
		*alias
		Latitude  json.RawMessage `json:"latitude"`
		Longitude json.RawMessage `json:"longitude"`
	}{alias: (*alias)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	l.Latitude = jsonNumberPtr(aux.Latitude)
	l.Longitude = jsonNumberPtr(aux.Longitude)

	return nil
}

// ServiceDetails holds the per-stop service attributes collected by the planner.
type ServiceDetails struct {
	Floor            int    `json:"floor,omitempty"`
	UnitNumber       string `json:"unit_number,omitempty"`
	ParkingInfo      string `json:"parking_info,omitempty"`
	PropertyType     string `json:"property_type,omitempty"`
	NumberOfRooms    int    `json:"number_of_rooms,omitempty"`
	NumberOfFloors   int    `json:"number_of_floors,omitempty"`
	HasElevator      bool   `json:"has_elevator,omitempty"`
	NeedsDisassembly bool   `json:"needs_disassembly,omitempty"`
	IsFragile        bool   `json:"is_fragile,omitempty"`
	Notes            string `json:"service_notes,omitempty"`
}

// JourneyStop is one stop of a multi-stop journey.
type JourneyStop struct {
	ID          string   `json:"id"`
	Type        StopType `json:"type"`
	Location    Location `json:"location"`
	Items       []Item   `json:"items,omitempty"`
	LinkedItems []string `json:"linked_items,omitempty"`
	ServiceDetails
}

// NewJourneyStop creates a stop with a fresh client-side identifier.
func NewJourneyStop(stopType StopType) JourneyStop {
	return JourneyStop{
		ID:   uuid.NewString(),
		Type: stopType,
	}
}

// Coordinates returns the stop coordinate when both components are known.
func (s JourneyStop) Coordinates() (lat, lng float64, ok bool) {
	if s.Location.Latitude == nil || s.Location.Longitude == nil {
		return 0, 0, false
	}

	return *s.Location.Latitude, *s.Location.Longitude, true
}

// SetCoordinates stores the coordinate on the location.
func (s *JourneyStop) SetCoordinates(lat, lng float64) {
	s.Location.Latitude = &lat
	s.Location.Longitude = &lng
}

// HasLinkedItem reports whether itemID is linked to this stop.
func (s JourneyStop) HasLinkedItem(itemID string) bool {
	for _, id := range s.LinkedItems {
		if id == itemID {
			return true
		}
	}

	return false
}

// UnmarshalJSON collapses the legacy coordinate sources into Location.
// Priority: the coordinates tuple, then location latitude/longitude,
// then latitude/longitude set directly on the stop.
func (s *JourneyStop) UnmarshalJSON(data []byte) error {
	type alias JourneyStop
	aux := struct {
		*alias
		Coordinates json.RawMessage `json:"coordinates"`
		Latitude    json.RawMessage `json:"latitude"`
		Longitude   json.RawMessage `json:"longitude"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if lat, lng, ok := coordinateTuple(aux.Coordinates); ok {
		s.SetCoordinates(lat, lng)

		return nil
	}

	if _, _, ok := s.Coordinates(); ok {
		return nil
	}

	lat, latOK := jsonNumber(aux.Latitude)
	lng, lngOK := jsonNumber(aux.Longitude)
	if latOK && lngOK {
		s.SetCoordinates(lat, lng)
	}

	return nil
}

// MarshalJSON emits the derived coordinates tuple for map consumers.
func (s JourneyStop) MarshalJSON() ([]byte, error) {
	type alias JourneyStop
	aux := struct {
		alias
		Coordinates *[2]float64 `json:"coordinates,omitempty"`
	}{alias: alias(s)}

	if lat, lng, ok := s.Coordinates(); ok {
		aux.Coordinates = &[2]float64{lat, lng}
	}

	return json.Marshal(aux)
}

func coordinateTuple(raw json.RawMessage) (lat, lng float64, ok bool) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) < 2 {
		return 0, 0, false
	}

	lat, latOK := jsonNumber(pair[0])
	lng, lngOK := jsonNumber(pair[1])

	return lat, lng, latOK && lngOK
}
