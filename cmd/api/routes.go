package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health endpoints
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/health", app.handleHealth)
	app.router.GET("/info", app.handleInfo)

	// Forecast endpoints
	app.router.GET("/forecast", app.handleGetForecast)
	app.router.GET("/forecast/report", app.handleGetForecastReport)

	// Booking endpoints
	schools := app.router.Group("/schools")
	schools.GET("", app.handleListSchools)
	schools.POST("", app.handleCreateSchool)
	schools.GET("/:id", app.handleGetSchool)
	schools.PUT("/:id", app.handleUpdateSchool)
	schools.DELETE("/:id", app.handleDeleteSchool)

	instructors := app.router.Group("/instructors")
	instructors.GET("", app.handleListInstructors)
	instructors.POST("", app.handleCreateInstructor)
	instructors.GET("/:id", app.handleGetInstructor)
	instructors.PUT("/:id", app.handleUpdateInstructor)
	instructors.DELETE("/:id", app.handleDeleteInstructor)

	lessons := app.router.Group("/lessons")
	lessons.GET("", app.handleListLessons)
	lessons.POST("", app.handleCreateLesson)
	lessons.GET("/:id", app.handleGetLesson)
	lessons.PUT("/:id", app.handleUpdateLesson)
	lessons.DELETE("/:id", app.handleDeleteLesson)

	schedules := app.router.Group("/schedules")
	schedules.GET("", app.handleListSchedules)
	schedules.POST("", app.handleCreateSchedule)
	schedules.GET("/:id", app.handleGetSchedule)
	schedules.PUT("/:id", app.handleUpdateSchedule)
	schedules.DELETE("/:id", app.handleDeleteSchedule)

	bookings := app.router.Group("/bookings")
	bookings.POST("", app.handleCreateBooking)
	bookings.GET("/:id", app.handleGetBooking)
	bookings.PATCH("/:id/cancel", app.handleCancelBooking)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
