package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surfcast/internal/booking"
)

// handleListLessons godoc
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Param skip query int false "Records to skip" minimum(0)
// @Param limit query int false "Maximum records to return" minimum(0) maximum(1000) default(100)
// @Success 200 {array} booking.Lesson
// @Failure 400 {object} ErrorResponse
// @Router /lessons [get]
func (app *App) handleListLessons(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	out, err := app.bookingService.ListLessons(c.Request.Context(), page)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleGetLesson godoc
// @Summary Get a lesson
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} booking.Lesson
// @Failure 404 {object} ErrorResponse
// @Router /lessons/{id} [get]
func (app *App) handleGetLesson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := app.bookingService.GetLesson(c.Request.Context(), id)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleCreateLesson godoc
// @Summary Create a lesson
// @Description The school and instructor must exist; level is beginner, intermediate or advanced
// @Tags lessons
// @Accept json
// @Produce json
// @Param body body booking.LessonInput true "New lesson"
// @Success 201 {object} booking.Lesson
// @Failure 400 {object} ErrorResponse
// @Router /lessons [post]
func (app *App) handleCreateLesson(c *gin.Context) {
	var in booking.LessonInput
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.CreateLesson(c.Request.Context(), in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// handleUpdateLesson godoc
// @Summary Update a lesson
// @Description Only the fields present in the body are changed
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param body body booking.LessonUpdate true "Fields to change"
// @Success 200 {object} booking.Lesson
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lessons/{id} [put]
func (app *App) handleUpdateLesson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in booking.LessonUpdate
	if !bindBody(c, &in) {
		return
	}
	out, err := app.bookingService.UpdateLesson(c.Request.Context(), id, in)
	if err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// handleDeleteLesson godoc
// @Summary Delete a lesson
// @Tags lessons
// @Param id path int true "Lesson ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /lessons/{id} [delete]
func (app *App) handleDeleteLesson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := app.bookingService.DeleteLesson(c.Request.Context(), id); err != nil {
		app.writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
