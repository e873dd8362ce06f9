package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
	"surfcast/internal/forecast"
	"surfcast/internal/location"
	"surfcast/internal/providers/openmeteo"
	"surfcast/internal/types"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error" example:"school 7 not found"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

func isInvalidInput(err error) bool {
	return errors.Is(err, location.ErrEmptyQuery) ||
		errors.Is(err, types.ErrInvalidLatitude) ||
		errors.Is(err, types.ErrInvalidLongitude)
}

// writeLocationError maps a failed geocoding step. Anything that is not a
// bad request means the place could not be resolved.
func (app *App) writeLocationError(c *gin.Context, err error) {
	if !errors.Is(err, location.ErrLocationNotFound) && isInvalidInput(err) {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	app.logger.Warn("location lookup failed", "error", err, "request_id", c.GetString(requestIDKey))
	abortWithError(c, http.StatusUnprocessableEntity, "Location not found: "+err.Error())
}

// writeForecastError maps a failed forecast build for a resolved point
func (app *App) writeForecastError(c *gin.Context, err error) {
	var validationErr *forecast.ValidationError
	switch {
	case isInvalidInput(err):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, openmeteo.ErrUpstream), errors.As(err, &validationErr):
		app.logger.Error("forecast upstream failed", "error", err, "request_id", c.GetString(requestIDKey))
		abortWithError(c, http.StatusBadGateway, "Forecast service error: "+err.Error())
	default:
		app.logger.Error("failed to build forecast", "error", err, "request_id", c.GetString(requestIDKey))
		abortWithError(c, http.StatusInternalServerError, "failed to build forecast")
	}
}

// writeBookingError maps booking service errors
func (app *App) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case booking.IsRuleViolation(err):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		app.logger.Error("booking request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
			"request_id", c.GetString(requestIDKey),
		)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
