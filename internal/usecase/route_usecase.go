package usecase

import (
	"context"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrSessionClosed is returned by RouteSession.Plan after Close.
var ErrSessionClosed = errors.New("route session closed")

// MessageTooFewStops replaces the map when fewer than two stops can be placed.
const MessageTooFewStops = "At least two stops with valid coordinates are needed to show a route"

// PlanRouteInput is a request to route a stop list.
// When both Distance and Time are set the plan uses them verbatim and fetches nothing.
type PlanRouteInput struct {
	Stops    []entity.StopInput `json:"stops"`
	Distance *float64           `json:"distance,omitempty"` // meters
	Time     *float64           `json:"time,omitempty"`     // seconds
}

// Bypassed reports whether backend-supplied totals replace routing.
func (in PlanRouteInput) Bypassed() bool {
	return in.Distance != nil && in.Time != nil
}

// Leg is the breakdown row of one stop.
// Segment values describe the segment arriving at the stop; stop 0 has none.
type Leg struct {
	Index                  int         `json:"index"`
	Stop                   entity.Stop `json:"stop"`
	SegmentDuration        float64     `json:"segment_duration"`
	SegmentDistance        float64     `json:"segment_distance"`
	CumulativeDuration     float64     `json:"cumulative_duration"`
	SegmentDurationText    string      `json:"segment_duration_text"`
	SegmentDistanceText    string      `json:"segment_distance_text"`
	CumulativeDurationText string      `json:"cumulative_duration_text"`
}

// RoutePlan is the routed view of a stop list.
type RoutePlan struct {
	Stops             []entity.Stop         `json:"stops"`
	Segments          []entity.RouteSegment `json:"segments"`
	Legs              []Leg                 `json:"legs"`
	TotalDuration     float64               `json:"total_duration"`
	TotalDistance     float64               `json:"total_distance"`
	TotalDurationText string                `json:"total_duration_text"`
	TotalDistanceText string                `json:"total_distance_text"`
	Bypassed          bool                  `json:"bypassed"`
	Bounds            *orb.Bound            `json:"bounds,omitempty"`
	Message           string                `json:"message,omitempty"`
}

// FeatureCollection renders the plan as GeoJSON: one point per stop and
// one line per segment that has a path.
func (p *RoutePlan) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, stop := range p.Stops {
		f := geojson.NewFeature(stop.Point())
		f.Properties["kind"] = "stop"
		f.Properties["index"] = i
		f.Properties["role"] = string(stop.Role)
		fc.Append(f)
	}

	for i, segment := range p.Segments {
		if segment.Empty() {
			continue
		}
		f := geojson.NewFeature(segment.Coords)
		f.Properties["kind"] = "segment"
		f.Properties["from"] = i
		f.Properties["to"] = i + 1
		f.Properties["duration"] = segment.Duration
		f.Properties["distance"] = segment.Distance
		fc.Append(f)
	}

	if p.Bounds != nil {
		fc.BBox = geojson.NewBBox(*p.Bounds)
	}

	return fc
}

// RouteSession plans routes for one map view.
// Segments are cached for the lifetime of the session and a new Plan
// cancels the batch of the previous one.
type RouteSession interface {
	// Plan routes the stop list. A superseded or closed plan returns a context error.
	Plan(ctx context.Context, input PlanRouteInput) (*RoutePlan, error)

	// Close cancels any in-flight batch. Later calls to Plan return ErrSessionClosed.
	Close()
}

// RouteUsecase defines the route planning use cases.
type RouteUsecase interface {
	// PlanRoute routes the stop list in a throwaway session.
	PlanRoute(ctx context.Context, input PlanRouteInput) (*RoutePlan, error)

	// NewSession opens a session with its own segment cache.
	NewSession() RouteSession
}
