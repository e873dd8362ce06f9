package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
)

// handleListSchools godoc
// @Summary List schools
// @Tags schools
// @Produce json
// @Param skip query int false "Records to skip" minimum(0)
// @Param limit query int false "Maximum records to return" minimum(0) maximum(1000) default(100)
// @Success 200 {array} booking.SurfSchool
// @Failure 400 {object} ErrorResponse
// @Router /schools [get]
func (app *App) handleListSchools(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	out, err := app.bookingService.ListSchools(c.Request.Context(), page)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleGetSchool godoc
// @Summary Get a school
// @Tags schools
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} booking.SurfSchool
// @Failure 404 {object} ErrorResponse
// @Router /schools/{id} [get]
func (app *App) handleGetSchool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := app.bookingService.GetSchool(c.Request.Context(), id)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleCreateSchool godoc
// @Summary Create a school
// @Tags schools
// @Accept json
// @Produce json
// @Param body body booking.SchoolInput true "New school"
// @Success 201 {object} booking.SurfSchool
// @Failure 400 {object} ErrorResponse
// @Router /schools [post]
func (app *App) handleCreateSchool(c *gin.Context) {
	var in booking.SchoolInput
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.CreateSchool(c.Request.Context(), in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// handleUpdateSchool godoc
// @Summary Update a school
// @Description Only the fields present in the body are changed
// @Tags schools
// @Accept json
// @Produce json
// @Param id path int true "School ID"
// @Param body body booking.SchoolUpdate true "Fields to change"
// @Success 200 {object} booking.SurfSchool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /schools/{id} [put]
func (app *App) handleUpdateSchool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in booking.SchoolUpdate
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.UpdateSchool(c.Request.Context(), id, in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleDeleteSchool godoc
// @Summary Delete a school
// @Tags schools
// @Param id path int true "School ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /schools/{id} [delete]
func (app *App) handleDeleteSchool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := app.bookingService.DeleteSchool(c.Request.Context(), id); err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
