package forecast

// Numeric fields are pointers: nil means the upstream API had no value for
// that hour or day and is serialized as null, never as zero.

// SurfForecast is built once per request from a marine and a weather response
type SurfForecast struct {
	Location          string              `json:"location"`
	Latitude          float64             `json:"latitude"`
	Longitude         float64             `json:"longitude"`
	Timezone          string              `json:"timezone,omitempty"`
	CurrentConditions CurrentConditions   `json:"current_conditions"`
	HourlyForecast    []CurrentConditions `json:"hourly_forecast"`
	Forecast5Day      []DailyForecast     `json:"forecast_5day"`
	SurfQualityNotes  string              `json:"surf_quality_notes"`
}

// CurrentConditions is one hourly data point. It is also used for the
// short lookahead in SurfForecast.HourlyForecast.
type CurrentConditions struct {
	Timestamp             string   `json:"timestamp"`
	WaveHeightM           *float64 `json:"wave_height_m"`
	SwellWaveHeightM      *float64 `json:"swell_wave_height_m"`
	WindWaveHeightM       *float64 `json:"wind_wave_height_m"`
	WaveDirectionDeg      *float64 `json:"wave_direction_deg"`
	SwellWaveDirectionDeg *float64 `json:"swell_wave_direction_deg"`
	WavePeriodS           *float64 `json:"wave_period_s"`
	SwellWavePeriodS      *float64 `json:"swell_wave_period_s"`
	WindSpeedKnots        *float64 `json:"wind_speed_knots"`
	WindDirectionDeg      *float64 `json:"wind_direction_deg"`
	WindGustsKnots        *float64 `json:"wind_gusts_knots"`
	TemperatureC          *float64 `json:"temperature_c"`
}

// DailyForecast holds one calendar day's extremes and dominant directions
type DailyForecast struct {
	Date                          string   `json:"date"`
	WaveHeightMaxM                *float64 `json:"wave_height_max_m"`
	SwellWaveHeightMaxM           *float64 `json:"swell_wave_height_max_m"`
	WindWaveHeightMaxM            *float64 `json:"wind_wave_height_max_m"`
	WaveDirectionDominantDeg      *float64 `json:"wave_direction_dominant_deg"`
	SwellWaveDirectionDominantDeg *float64 `json:"swell_wave_direction_dominant_deg"`
	WavePeriodMaxS                *float64 `json:"wave_period_max_s"`
	SwellWavePeriodMaxS           *float64 `json:"swell_wave_period_max_s"`
	WindSpeedMaxKnots             *float64 `json:"wind_speed_max_knots"`
	WindDirectionDominantDeg      *float64 `json:"wind_direction_dominant_deg"`
	WindGustsMaxKnots             *float64 `json:"wind_gusts_max_knots"`
	TemperatureMaxC               *float64 `json:"temperature_max_c"`
	TemperatureMinC               *float64 `json:"temperature_min_c"`
}
