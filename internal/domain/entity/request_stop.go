package entity

// RequestLocation is the location shape returned by the backend for a saved request.
type RequestLocation struct {
	Address   string  `json:"address"`
	Postcode  string  `json:"postcode,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RequestStop is a stop of a service request as stored by the backend.
type RequestStop struct {
	ID       string          `json:"id"`
	Type     StopType        `json:"type"`
	Sequence int             `json:"sequence"`
	Location RequestLocation `json:"location"`
}
