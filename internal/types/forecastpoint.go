package types

// ForecastPoint represents a geographic location with metadata
// used for surf forecasting
type ForecastPoint struct {
	Coordinates Coords       `json:"coordinates"`
	Location    LocationInfo `json:"location"`
}
