package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/response"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/validator"
	deliverycontext "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/context"
	domainerrors "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusClientClosedRequest is the nginx convention for a client that went away mid-request.
const statusClientClosedRequest = 499

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", validationErr.Fields)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// The caller disconnected while routes were being fetched.
	if errors.Is(err, context.Canceled) && c.Request().Context().Err() != nil {
		_ = c.NoContent(statusClientClosedRequest)

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
