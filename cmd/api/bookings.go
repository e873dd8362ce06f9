package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
)

// handleCreateBooking godoc
// @Summary Book a lesson
// @Description Books the schedule for a student. The schedule must be available and belong to the lesson; it becomes unavailable once booked.
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body booking.BookingInput true "Student and schedule"
// @Success 201 {object} booking.Booking
// @Failure 400 {object} ErrorResponse
// @Router /bookings [post]
func (app *App) handleCreateBooking(c *gin.Context) {
	var in booking.BookingInput
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.CreateBooking(c.Request.Context(), in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// handleGetBooking godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} booking.Booking
// @Failure 404 {object} ErrorResponse
// @Router /bookings/{id} [get]
func (app *App) handleGetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := app.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleCancelBooking godoc
// @Summary Cancel a booking
// @Description Cancels the booking and reopens its schedule. Cancelling twice is a no-op.
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} booking.CancelResult
// @Failure 404 {object} ErrorResponse
// @Router /bookings/{id}/cancel [patch]
func (app *App) handleCancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := app.bookingService.CancelBooking(c.Request.Context(), id)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking.CancelResult{ID: out.ID, Status: out.Status})
}
