package impl

import (
	"context"
	"io"
	"log/slog"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/util"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type routeService struct {
	journey  usecase.JourneyUsecase
	provider service.RouteProvider
	logger   *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	Journey  usecase.JourneyUsecase
	Provider service.RouteProvider
	Logger   *slog.Logger `optional:"true"`
}

// NewRouteService creates the route planning service.
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &routeService{
		journey:  params.Journey,
		provider: params.Provider,
		logger:   logger,
	}
}

// PlanRoute plans once in a fresh session that is closed on return.
func (s *routeService) PlanRoute(ctx context.Context, input usecase.PlanRouteInput) (*usecase.RoutePlan, error) {
	session := s.NewSession()
	defer session.Close()

	return session.Plan(ctx, input)
}

// NewSession opens a session with an empty segment cache.
func (s *routeService) NewSession() usecase.RouteSession {
	return newRouteSession(s)
}

// buildPlan assembles totals and per-stop legs from segments.
// segments is nil when the plan has no routing (bypass or too few stops).
func buildPlan(stops []entity.Stop, segments []entity.RouteSegment, input usecase.PlanRouteInput) *usecase.RoutePlan {
	plan := &usecase.RoutePlan{
		Stops:    stops,
		Segments: segments,
		Legs:     make([]usecase.Leg, len(stops)),
		Bypassed: input.Bypassed(),
	}
	if plan.Segments == nil {
		plan.Segments = []entity.RouteSegment{}
	}

	var cumulative float64
	for i, stop := range stops {
		leg := usecase.Leg{Index: i, Stop: stop}
		if !plan.Bypassed && i > 0 && i-1 < len(segments) {
			leg.SegmentDuration = segments[i-1].Duration
			leg.SegmentDistance = segments[i-1].Distance
			cumulative += leg.SegmentDuration
			leg.CumulativeDuration = cumulative
		}
		leg.SegmentDurationText = util.FormatSeconds(leg.SegmentDuration)
		leg.SegmentDistanceText = util.FormatDistance(leg.SegmentDistance)
		leg.CumulativeDurationText = util.FormatSeconds(leg.CumulativeDuration)
		plan.Legs[i] = leg
	}

	if plan.Bypassed {
		plan.TotalDistance = *input.Distance
		plan.TotalDuration = *input.Time
	} else {
		for _, segment := range segments {
			plan.TotalDistance += segment.Distance
			plan.TotalDuration += segment.Duration
		}
	}
	plan.TotalDurationText = util.FormatSeconds(plan.TotalDuration)
	plan.TotalDistanceText = util.FormatDistance(plan.TotalDistance)

	if len(stops) < 2 {
		plan.Message = usecase.MessageTooFewStops
	}
	if len(stops) > 0 {
		bound := stopsBound(stops)
		plan.Bounds = &bound
	}

	return plan
}

func stopsBound(stops []entity.Stop) orb.Bound {
	points := make(orb.MultiPoint, len(stops))
	for i, stop := range stops {
		points[i] = stop.Point()
	}

	return points.Bound()
}
