package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/response"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatGeoJSON = "geojson"

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler serves one-shot route plans.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// PlanRouteRequest is the body of a plan request.
type PlanRouteRequest struct {
	usecase.PlanRouteInput
	Format string `json:"-" validate:"omitempty,oneof=json geojson"`
}

// PlanRoute handles POST /routes/plan. Each request gets its own session,
// so concurrent plans never cancel each other.
func (h *RouteHandler) PlanRoute(c echo.Context) error {
	var req PlanRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route request")
	}
	// echo binds query params only for GET and DELETE
	req.Format = c.QueryParam("format")

	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.routeUC.PlanRoute(c.Request().Context(), req.PlanRouteInput)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if req.Format == formatGeoJSON {
		document, err := plan.FeatureCollection().MarshalJSON()
		if err != nil {
			return errors.WithStack(err)
		}

		return response.GeoJSON(c, http.StatusOK, document)
	}

	return response.Success(c, http.StatusOK, plan)
}
