package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type routeSession struct {
	svc *routeService

	cacheMu sync.RWMutex
	cache   map[string]entity.RouteSegment

	mu     sync.Mutex
	cancel context.CancelFunc
	batch  uint64
	closed bool
}

func newRouteSession(svc *routeService) *routeSession {
	return &routeSession{
		svc:   svc,
		cache: make(map[string]entity.RouteSegment),
	}
}

// Plan normalizes the stops and fetches every segment in parallel.
func (s *routeSession) Plan(ctx context.Context, input usecase.PlanRouteInput) (*usecase.RoutePlan, error) {
	// Any new stop list supersedes the previous batch, even one that needs no fetching.
	batchCtx, done, err := s.startBatch(ctx)
	if err != nil {
		return nil, err
	}
	defer done()

	stops := s.svc.journey.NormalizeStops(input.Stops)

	if input.Bypassed() || len(stops) < 2 {
		return buildPlan(stops, nil, input), nil
	}

	segments, err := s.fetchSegments(batchCtx, stops)
	if err != nil {
		return nil, err
	}

	return buildPlan(stops, segments, input), nil
}

// Close cancels the in-flight batch and rejects further plans.
func (s *routeSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// startBatch cancels the previous batch and derives the context of the new one.
// done releases the batch context once the batch ends.
func (s *routeSession) startBatch(ctx context.Context) (context.Context, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, nil, usecase.ErrSessionClosed
	}
	if s.cancel != nil {
		s.cancel()
	}

	batchCtx, cancel := context.WithCancel(ctx)
	s.batch++
	s.cancel = cancel
	batch := s.batch

	done := func() {
		cancel()

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.batch == batch {
			s.cancel = nil
		}
	}

	return batchCtx, done, nil
}

func (s *routeSession) fetchSegments(ctx context.Context, stops []entity.Stop) ([]entity.RouteSegment, error) {
	segments := make([]entity.RouteSegment, len(stops)-1)

	g, gctx := errgroup.WithContext(ctx)
	for i := range segments {
		from, to := stops[i], stops[i+1]
		g.Go(func() error {
			key := entity.SegmentKey(from, to)
			if cached, ok := s.cached(key); ok {
				segments[i] = cached

				return nil
			}

			segment, err := s.svc.provider.FetchSegment(gctx, from, to)
			if err != nil {
				return err
			}
			if !segment.Empty() {
				s.store(key, segment)
			}
			segments[i] = segment

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "route batch cancelled")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "route batch cancelled")
	}

	s.svc.logger.Debug("Route batch completed", slog.Int("segments", len(segments)))

	return segments, nil
}

func (s *routeSession) cached(key string) (entity.RouteSegment, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	segment, ok := s.cache[key]

	return segment, ok
}

func (s *routeSession) store(key string, segment entity.RouteSegment) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cache[key] = segment
}
