package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/middleware"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/response"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	domainerrors "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DraftHandlerParams holds dependencies for DraftHandler, injected by Fx.
type DraftHandlerParams struct {
	fx.In

	DraftUC usecase.DraftUsecase
	Logger  *slog.Logger
}

// DraftHandler serves the authenticated user's in-progress request.
type DraftHandler struct {
	draftUC usecase.DraftUsecase
	logger  *slog.Logger
}

// NewDraftHandler is the constructor for DraftHandler
func NewDraftHandler(params DraftHandlerParams) *DraftHandler {
	return &DraftHandler{
		draftUC: params.DraftUC,
		logger:  params.Logger,
	}
}

// SaveDraftRequest represents the request body for saving a draft
type SaveDraftRequest struct {
	Step    int            `json:"step" validate:"gte=0"`
	Journey entity.Journey `json:"journey"`
	Values  map[string]any `json:"values"`
}

// GetDraft handles GET /drafts
func (h *DraftHandler) GetDraft(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	draft, err := h.draftUC.Load(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

// SaveDraft handles PUT /drafts
func (h *DraftHandler) SaveDraft(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveDraftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid draft")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	draft, err := h.draftUC.Save(c.Request().Context(), &entity.Draft{
		OwnerID: userID,
		Step:    req.Step,
		Journey: req.Journey,
		Values:  req.Values,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

// ClearDraft handles DELETE /drafts
func (h *DraftHandler) ClearDraft(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.draftUC.Clear(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// SubmitStep handles POST /drafts/steps/:step/submit
func (h *DraftHandler) SubmitStep(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidStep.WithDetails(fmt.Sprintf("step %q", c.Param("step"))))
	}

	result, err := h.draftUC.SubmitStep(c.Request().Context(), userID, step)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Debug("Journey step submitted",
		slog.String("request_id", result.RequestID),
		slog.Int("step", result.Step),
	)

	return response.Success(c, http.StatusOK, result)
}
