package service

import (
	"context"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
)

// RouteProvider fetches the driving path between two canonical stops.
type RouteProvider interface {
	// FetchSegment returns the routed segment from -> to.
	// Routing failures degrade to entity.EmptySegment with a nil error;
	// an error is returned only when ctx is cancelled.
	FetchSegment(ctx context.Context, from, to entity.Stop) (entity.RouteSegment, error)
}
