package entity

import (
	"strconv"

	"github.com/paulmach/orb"
)

// RouteSegment is the routed path between two consecutive canonical stops.
// Coords are in [lng, lat] order. An empty Coords means no path is available.
type RouteSegment struct {
	Coords   orb.LineString `json:"coords"`
	Duration float64        `json:"duration"` // seconds
	Distance float64        `json:"distance"` // meters
}

// EmptySegment is the degraded segment returned when routing fails.
func EmptySegment() RouteSegment {
	return RouteSegment{Coords: orb.LineString{}}
}

// Empty reports whether the segment has no drawable path.
func (s RouteSegment) Empty() bool {
	return len(s.Coords) == 0
}

// SegmentKey is the cache key of the segment between from and to: "lat,lng-lat,lng".
func SegmentKey(from, to Stop) string {
	return formatCoord(from.Lat) + "," + formatCoord(from.Lng) + "-" +
		formatCoord(to.Lat) + "," + formatCoord(to.Lng)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
