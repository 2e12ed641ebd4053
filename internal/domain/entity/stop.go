// Package entity contains the core business objects of the journey planner.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Role is the position of a canonical stop within a routed trip.
type Role string

const (
	RoleStart        Role = "start"
	RoleIntermediate Role = "intermediate"
	RoleStop         Role = "stop"
)

// Stop is the canonical routing shape every stop representation is normalized into.
type Stop struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Role Role    `json:"role"`
}

// Point returns the stop as an orb.Point ([lng, lat]).
func (s Stop) Point() orb.Point {
	return orb.Point{s.Lng, s.Lat}
}

// Valid reports whether the stop carries a usable coordinate.
func (s Stop) Valid() bool {
	return ValidCoordinate(s.Lat, s.Lng)
}

// ValidCoordinate reports whether lat/lng are finite and inside Earth bounds.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
