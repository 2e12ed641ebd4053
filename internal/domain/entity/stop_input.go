package entity

import (
	"encoding/json"
	"math"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
)

// StopKind tags which representation a StopInput carries.
type StopKind int

const (
	StopKindCanonical StopKind = iota
	StopKindJourney
	StopKindRequest
)

func (k StopKind) String() string {
	switch k {
	case StopKindCanonical:
		return "canonical"
	case StopKindJourney:
		return "journey"
	case StopKindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// StopInput is one stop in any of the accepted representations.
// Exactly one of Canonical, Journey or Request is set, matching Kind.
type StopInput struct {
	Kind      StopKind
	Canonical *Stop
	Journey   *JourneyStop
	Request   *RequestStop
}

// CanonicalInput wraps an already-canonical stop.
func CanonicalInput(stop Stop) StopInput {
	return StopInput{Kind: StopKindCanonical, Canonical: &stop}
}

// JourneyInput wraps a planner stop.
func JourneyInput(stop JourneyStop) StopInput {
	return StopInput{Kind: StopKindJourney, Journey: &stop}
}

// RequestInput wraps a backend request stop.
func RequestInput(stop RequestStop) StopInput {
	return StopInput{Kind: StopKindRequest, Request: &stop}
}

// JourneyInputs wraps every stop of a journey.
func JourneyInputs(journey Journey) []StopInput {
	inputs := make([]StopInput, len(journey))
	for i := range journey {
		inputs[i] = JourneyInput(journey[i])
	}

	return inputs
}

// UnmarshalJSON decides the representation of this element on its own,
// so mixed lists decode correctly.
func (in *StopInput) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.Wrap(ErrUnknownStopFormat, "stop must be a JSON object")
	}

	switch classifyStop(fields) {
	case StopKindRequest:
		var stop RequestStop
		if err := json.Unmarshal(data, &stop); err != nil {
			return errors.Wrap(err, "decode request stop")
		}
		*in = RequestInput(stop)
	case StopKindJourney:
		var stop JourneyStop
		if err := json.Unmarshal(data, &stop); err != nil {
			return errors.Wrap(err, "decode journey stop")
		}
		*in = JourneyInput(stop)
	default:
		*in = CanonicalInput(canonicalFromFields(fields))
	}

	return nil
}

// MarshalJSON writes the wrapped representation unchanged.
func (in StopInput) MarshalJSON() ([]byte, error) {
	switch {
	case in.Kind == StopKindRequest && in.Request != nil:
		return json.Marshal(in.Request)
	case in.Kind == StopKindJourney && in.Journey != nil:
		return json.Marshal(in.Journey)
	case in.Kind == StopKindCanonical && in.Canonical != nil:
		return json.Marshal(in.Canonical)
	default:
		return nil, errors.Wrapf(ErrUnknownStopFormat, "empty %s stop input", in.Kind)
	}
}

func classifyStop(fields map[string]json.RawMessage) StopKind {
	if raw, ok := fields["location"]; ok {
		var location map[string]json.RawMessage
		if err := json.Unmarshal(raw, &location); err == nil {
			_, latOK := jsonNumber(location["latitude"])
			_, lngOK := jsonNumber(location["longitude"])
			if latOK && lngOK {
				return StopKindRequest
			}
		}
	}

	_, latOK := jsonNumber(fields["lat"])
	_, lngOK := jsonNumber(fields["lng"])
	if latOK && lngOK {
		return StopKindCanonical
	}

	for _, key := range []string{"location", "type", "coordinates", "id"} {
		if _, ok := fields[key]; ok {
			return StopKindJourney
		}
	}

	return StopKindCanonical
}

// canonicalFromFields reads lat/lng/role; missing or non-numeric
// coordinates become NaN so the stop fails validation instead of landing on 0,0.
func canonicalFromFields(fields map[string]json.RawMessage) Stop {
	stop := Stop{Lat: math.NaN(), Lng: math.NaN()}
	if lat, ok := jsonNumber(fields["lat"]); ok {
		stop.Lat = lat
	}
	if lng, ok := jsonNumber(fields["lng"]); ok {
		stop.Lng = lng
	}

	var role string
	if raw, ok := fields["role"]; ok {
		_ = json.Unmarshal(raw, &role)
	}
	stop.Role = Role(role)

	return stop
}
