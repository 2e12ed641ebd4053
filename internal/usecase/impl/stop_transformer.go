package impl

import (
	"io"
	"log/slog"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"go.uber.org/fx"
)

type journeyService struct {
	logger *slog.Logger
}

// JourneyServiceParams holds dependencies for JourneyService, injected by Fx.
type JourneyServiceParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// NewJourneyService creates the stop normalization and item linkage service.
func NewJourneyService(params JourneyServiceParams) usecase.JourneyUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &journeyService{
		logger: logger,
	}
}

// NormalizeStops converts each input on its own and drops stops without a valid coordinate.
func (s *journeyService) NormalizeStops(stops []entity.StopInput) []entity.Stop {
	out := make([]entity.Stop, 0, len(stops))
	for i, input := range stops {
		stop, ok := toCanonical(input, i)
		if !ok || !stop.Valid() {
			s.logger.Debug("Dropping stop without a valid coordinate",
				slog.Int("index", i),
				slog.String("kind", input.Kind.String()),
			)

			continue
		}
		out = append(out, stop)
	}

	return out
}

func toCanonical(input entity.StopInput, index int) (entity.Stop, bool) {
	switch input.Kind {
	case entity.StopKindCanonical:
		if input.Canonical == nil {
			return entity.Stop{}, false
		}

		return *input.Canonical, true
	case entity.StopKindJourney:
		if input.Journey == nil {
			return entity.Stop{}, false
		}
		lat, lng, ok := input.Journey.Coordinates()
		if !ok {
			return entity.Stop{}, false
		}

		return entity.Stop{Lat: lat, Lng: lng, Role: roleFor(input.Journey.Type, index)}, true
	case entity.StopKindRequest:
		if input.Request == nil {
			return entity.Stop{}, false
		}
		loc := input.Request.Location

		return entity.Stop{Lat: loc.Latitude, Lng: loc.Longitude, Role: roleFor(input.Request.Type, index)}, true
	default:
		return entity.Stop{}, false
	}
}

// roleFor maps a stop type to a role; index is the position in the input list.
func roleFor(stopType entity.StopType, index int) entity.Role {
	switch stopType {
	case entity.StopTypePickup:
		if index == 0 {
			return entity.RoleStart
		}

		return entity.RoleIntermediate
	case entity.StopTypeDropoff:
		return entity.RoleStop
	default:
		return entity.RoleIntermediate
	}
}
