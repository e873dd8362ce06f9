package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// HealthResponse is returned to load balancers and monitoring
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

const serverInfo = `surfcast

capabilities:
- surf and wave forecasts for any coastal location worldwide
- current conditions, the next 12 hours and a 5-day outlook
- wave height, direction and period analysis
- wind conditions (speed, direction, gusts) in knots
- surf quality assessment
- surf school lessons, schedules and bookings

data sources:
- open-meteo marine forecast api
- open-meteo weather forecast api
- nominatim geocoding service

usage:
GET /forecast?city=<name> for JSON, GET /forecast/report?city=<name> for a plain-text report.
`

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleHealth godoc
// @Summary Health check
// @Description Health check for load balancers and monitoring
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleInfo godoc
// @Summary Server information
// @Description Capabilities, data sources and usage of the forecast server
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router /info [get]
func (app *App) handleInfo(c *gin.Context) {
	c.String(http.StatusOK, serverInfo)
}
