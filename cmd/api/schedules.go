package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
)

// handleListSchedules godoc
// @Summary List schedules
// @Tags schedules
// @Produce json
// @Param skip query int false "Records to skip" minimum(0)
// @Param limit query int false "Maximum records to return" minimum(0) maximum(1000) default(100)
// @Success 200 {array} booking.Schedule
// @Failure 400 {object} ErrorResponse
// @Router /schedules [get]
func (app *App) handleListSchedules(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	out, err := app.bookingService.ListSchedules(c.Request.Context(), page)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleGetSchedule godoc
// @Summary Get a schedule
// @Tags schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} booking.Schedule
// @Failure 404 {object} ErrorResponse
// @Router /schedules/{id} [get]
func (app *App) handleGetSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := app.bookingService.GetSchedule(c.Request.Context(), id)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleCreateSchedule godoc
// @Summary Create a schedule
// @Description Times are HH:MM or HH:MM:SS and end_time must be after start_time. Schedules are available unless stated otherwise.
// @Tags schedules
// @Accept json
// @Produce json
// @Param body body booking.ScheduleInput true "New schedule"
// @Success 201 {object} booking.Schedule
// @Failure 400 {object} ErrorResponse
// @Router /schedules [post]
func (app *App) handleCreateSchedule(c *gin.Context) {
	var in booking.ScheduleInput
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.CreateSchedule(c.Request.Context(), in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// handleUpdateSchedule godoc
// @Summary Update a schedule
// @Description Only the fields present in the body are changed; the merged time range is checked again
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param body body booking.ScheduleUpdate true "Fields to change"
// @Success 200 {object} booking.Schedule
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /schedules/{id} [put]
func (app *App) handleUpdateSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in booking.ScheduleUpdate
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.UpdateSchedule(c.Request.Context(), id, in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleDeleteSchedule godoc
// @Summary Delete a schedule
// @Tags schedules
// @Param id path int true "Schedule ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /schedules/{id} [delete]
func (app *App) handleDeleteSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := app.bookingService.DeleteSchedule(c.Request.Context(), id); err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
