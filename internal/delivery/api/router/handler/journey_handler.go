package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/response"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	domainerrors "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JourneyHandlerParams holds dependencies for JourneyHandler, injected by Fx.
type JourneyHandlerParams struct {
	fx.In

	JourneyUC usecase.JourneyUsecase
	Logger    *slog.Logger
}

// JourneyHandler serves stop normalization and item linkage.
type JourneyHandler struct {
	journeyUC usecase.JourneyUsecase
	logger    *slog.Logger
}

// NewJourneyHandler is the constructor for JourneyHandler
func NewJourneyHandler(params JourneyHandlerParams) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: params.JourneyUC,
		logger:    params.Logger,
	}
}

// NormalizeStopsRequest is a list of stops in any supported shape.
type NormalizeStopsRequest struct {
	Stops []entity.StopInput `json:"stops" validate:"required"`
}

// NormalizeStopsResponse lists the canonical stops that have a valid coordinate.
type NormalizeStopsResponse struct {
	Stops   []entity.Stop `json:"stops"`
	Dropped int           `json:"dropped"`
}

// JourneyRequest carries the journey a pure operation works on.
type JourneyRequest struct {
	Journey entity.Journey `json:"journey" validate:"required"`
}

// LinkItemRequest links or unlinks one pickup item.
type LinkItemRequest struct {
	Journey entity.Journey `json:"journey" validate:"required"`
	ItemID  string         `json:"item_id" validate:"required"`
}

// ValidateJourneyResponse reports link conflicts of a structurally valid journey.
type ValidateJourneyResponse struct {
	Valid     bool                   `json:"valid"`
	Conflicts []usecase.LinkConflict `json:"conflicts"`
}

// NormalizeStops handles POST /journeys/stops/normalize
func (h *JourneyHandler) NormalizeStops(c echo.Context) error {
	var req NormalizeStopsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stop list")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	stops := h.journeyUC.NormalizeStops(req.Stops)

	return response.Success(c, http.StatusOK, NormalizeStopsResponse{
		Stops:   stops,
		Dropped: len(req.Stops) - len(stops),
	})
}

// AvailableItems handles POST /journeys/dropoffs/:index/available-items
func (h *JourneyHandler) AvailableItems(c echo.Context) error {
	index, err := dropoffIndex(c)
	if err != nil {
		return err
	}

	var req JourneyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid journey")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	items, err := h.journeyUC.AvailableItemsForDropoff(req.Journey, index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"items": items})
}

// LinkItem handles POST /journeys/dropoffs/:index/link
func (h *JourneyHandler) LinkItem(c echo.Context) error {
	return h.changeLink(c, h.journeyUC.LinkItem)
}

// UnlinkItem handles POST /journeys/dropoffs/:index/unlink
func (h *JourneyHandler) UnlinkItem(c echo.Context) error {
	return h.changeLink(c, h.journeyUC.UnlinkItem)
}

func (h *JourneyHandler) changeLink(c echo.Context, change func(entity.Journey, int, string) (entity.Journey, error)) error {
	index, err := dropoffIndex(c)
	if err != nil {
		return err
	}

	var req LinkItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link request")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	journey, err := change(req.Journey, index, req.ItemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, JourneyRequest{Journey: journey})
}

// ValidateJourney handles POST /journeys/validate
func (h *JourneyHandler) ValidateJourney(c echo.Context) error {
	var req JourneyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid journey")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := req.Journey.Validate(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidJourney.WithDetails(err.Error()))
	}

	conflicts := h.journeyUC.ValidateLinks(req.Journey)
	if conflicts == nil {
		conflicts = []usecase.LinkConflict{}
	}

	return response.Success(c, http.StatusOK, ValidateJourneyResponse{
		Valid:     len(conflicts) == 0,
		Conflicts: conflicts,
	})
}

func dropoffIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, domainerrors.ErrStopIndexOutOfRange.WithDetails(fmt.Sprintf("invalid index %q", c.Param("index")))
	}

	return index, nil
}
