package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
)

// handleListInstructors godoc
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Param skip query int false "Records to skip" minimum(0)
// @Param limit query int false "Maximum records to return" minimum(0) maximum(1000) default(100)
// @Success 200 {array} booking.Instructor
// @Failure 400 {object} ErrorResponse
// @Router /instructors [get]
func (app *App) handleListInstructors(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	out, err := app.bookingService.ListInstructors(c.Request.Context(), page)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleGetInstructor godoc
// @Summary Get an instructor
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} booking.Instructor
// @Failure 404 {object} ErrorResponse
// @Router /instructors/{id} [get]
func (app *App) handleGetInstructor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := app.bookingService.GetInstructor(c.Request.Context(), id)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleCreateInstructor godoc
// @Summary Create an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param body body booking.InstructorInput true "New instructor"
// @Success 201 {object} booking.Instructor
// @Failure 400 {object} ErrorResponse
// @Router /instructors [post]
func (app *App) handleCreateInstructor(c *gin.Context) {
	var in booking.InstructorInput
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.CreateInstructor(c.Request.Context(), in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// handleUpdateInstructor godoc
// @Summary Update an instructor
// @Description Only the fields present in the body are changed
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Param body body booking.InstructorUpdate true "Fields to change"
// @Success 200 {object} booking.Instructor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /instructors/{id} [put]
func (app *App) handleUpdateInstructor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in booking.InstructorUpdate
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.UpdateInstructor(c.Request.Context(), id, in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleDeleteInstructor godoc
// @Summary Delete an instructor
// @Tags instructors
// @Param id path int true "Instructor ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /instructors/{id} [delete]
func (app *App) handleDeleteInstructor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := app.bookingService.DeleteInstructor(c.Request.Context(), id); err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
