package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"surfcast/internal/forecast"
	"surfcast/internal/types"
)

// GetForecastInput selects the forecast location by name or by coordinates
type GetForecastInput struct {
	City      string   `form:"city"`      // City or location name
	Latitude  *float64 `form:"latitude"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude"` // Longitude in decimal degrees
}

// handleGetForecast godoc
// @Summary Get surf forecast
// @Description Current conditions, the next hours and a 5-day outlook for a place name or a coordinate pair
// @Tags forecast
// @Produce json
// @Param city query string false "City or location name" example(biarritz)
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180)
// @Success 200 {object} forecast.SurfForecast
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	f, ok := app.buildForecast(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, f)
}

// handleGetForecastReport godoc
// @Summary Get surf forecast as text
// @Description The forecast rendered as a plain-text report with compass directions
// @Tags forecast
// @Produce plain
// @Param city query string false "City or location name" example(biarritz)
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /forecast/report [get]
func (app *App) handleGetForecastReport(c *gin.Context) {
	f, ok := app.buildForecast(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, forecast.RenderText(f))
}

// buildForecast resolves the requested location and fetches its forecast,
// writing the error response itself when something fails.
func (app *App) buildForecast(c *gin.Context) (*forecast.SurfForecast, bool) {
	var input GetForecastInput
	if err := c.ShouldBindQuery(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}

	ctx := c.Request.Context()
	var (
		point *types.ForecastPoint
		err   error
	)
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		point, err = app.locationService.Describe(ctx, *input.Latitude, *input.Longitude)
	case input.Latitude != nil || input.Longitude != nil:
		abortWithError(c, http.StatusBadRequest, "latitude and longitude must be given together")
		return nil, false
	default:
		if strings.TrimSpace(input.City) == "" {
			abortWithError(c, http.StatusBadRequest, "Query parameter 'city' cannot be empty or only spaces.")
			return nil, false
		}
		point, err = app.locationService.Resolve(ctx, input.City)
	}
	if err != nil {
		app.writeLocationError(c, err)
		return nil, false
	}

	f, err := app.forecastService.GetForecastForPoint(ctx, *point)
	if err != nil {
		app.writeForecastError(c, err)
		return nil, false
	}
	return f, true
}
