package forecast

import (
	"surfcast/internal/providers/openmeteo"
	"surfcast/internal/types"
)

func f(v float64) *float64 { return &v }

func series(values ...any) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		switch n := v.(type) {
		case float64:
			out[i] = f(n)
		case int:
			out[i] = f(float64(n))
		}
	}
	return out
}

func testPoint() types.ForecastPoint {
	return types.ForecastPoint{
		Coordinates: types.NewCoords(10, 20),
		Location: types.LocationInfo{
			Name:        "Test Beach",
			DisplayName: "Test Beach, Somewhere",
		},
	}
}

// marineFixture has five hourly points and two days
func marineFixture() *openmeteo.MarineAPIResponse {
	return &openmeteo.MarineAPIResponse{
		Timezone: "Europe/Lisbon",
		Hourly: openmeteo.MarineHourly{
			Time: []string{
				"2026-02-10T00:00",
				"2026-02-10T01:00",
				"2026-02-10T02:00",
				"2026-02-10T03:00",
				"2026-02-10T04:00",
			},
			WaveHeight:         series(1.0, nil, 2.0, nil, 1.5),
			WaveDirection:      series(10, nil, 20, 30, 40),
			WavePeriod:         series(8, 9, 10, 11, 12),
			WindWaveHeight:     series(0.3, 0.3, 0.4, 0.4, 0.5),
			WindWaveDirection:  series(50, 60, 70, 80, 90),
			WindWavePeriod:     series(5, 5, 6, 6, 7),
			SwellWaveHeight:    series(0.7, 0.8, 0.9, 1.0, 1.1),
			SwellWaveDirection: series(200, 210, 220, 230, 240),
			SwellWavePeriod:    series(12, 12, 13, 13, 14),
		},
		Daily: openmeteo.MarineDaily{
			Time:                       []string{"2026-02-10", "2026-02-11"},
			WaveHeightMax:              series(2.0, 3.0),
			WaveDirectionDominant:      series(280, 290),
			WavePeriodMax:              series(10, 11),
			WindWaveHeightMax:          series(0.8, 1.0),
			WindWaveDirectionDominant:  series(260, 270),
			WindWavePeriodMax:          series(6, 7),
			SwellWaveHeightMax:         series(1.5, 2.0),
			SwellWaveDirectionDominant: series(300, 310),
			SwellWavePeriodMax:         series(12, 13),
		},
	}
}

// weatherFixture is shorter than the marine axis on purpose
func weatherFixture() *openmeteo.ForecastAPIResponse {
	return &openmeteo.ForecastAPIResponse{
		Timezone: "Europe/Lisbon",
		Hourly: openmeteo.WeatherHourly{
			Time:             []string{"2026-02-10T00:00", "2026-02-10T01:00"},
			Temperature2M:    series(20.0, nil),
			Windspeed10M:     series(5.0, nil),
			Winddirection10M: series(180.0, nil),
			Windgusts10M:     series(8.0, nil),
		},
		Daily: openmeteo.WeatherDaily{
			Time:                     []string{"2026-02-10", "2026-02-11"},
			Temperature2MMax:         series(22.0, 23.0),
			Temperature2MMin:         series(18.0, 17.0),
			Windspeed10MMax:          series(10.0, 11.0),
			Winddirection10MDominant: series(190.0, 200.0),
			Windgusts10MMax:          series(15.0, 16.0),
		},
	}
}
