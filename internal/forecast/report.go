package forecast

import (
	"fmt"
	"math"
	"strings"
	"time"

	"surfcast/internal/types"
)

const notAvailable = "N/A"

// RenderText formats the forecast as a plain-text report with fixed
// section headers. Missing values render as N/A.
func RenderText(f *SurfForecast) string {
	var b strings.Builder

	cc := f.CurrentConditions
	fmt.Fprintf(&b, "# Surf Forecast: %s\n\n", f.Location)

	b.WriteString("## Current Conditions\n")
	fmt.Fprintf(&b, "Waves: %s (%s period)\n", height(cc.WaveHeightM), period(cc.WavePeriodS))
	fmt.Fprintf(&b, "  - Swell: %s from %s\n", height(cc.SwellWaveHeightM), direction(cc.SwellWaveDirectionDeg))
	fmt.Fprintf(&b, "  - Wind waves: %s\n", height(cc.WindWaveHeightM))
	fmt.Fprintf(&b, "Wind: %s from %s (gusts %s)\n",
		withUnit(cc.WindSpeedKnots, " knots"), direction(cc.WindDirectionDeg), withUnit(cc.WindGustsKnots, " knots"))
	fmt.Fprintf(&b, "Temperature: %s\n\n", withUnit(cc.TemperatureC, "°C"))

	if len(f.HourlyForecast) > 0 {
		b.WriteString("## Next Hours\n")
		for _, h := range f.HourlyForecast {
			fmt.Fprintf(&b, "%s: %s waves (swell %s from %s), %s wind from %s\n",
				timeLabel(h.Timestamp),
				height(h.WaveHeightM),
				height(h.SwellWaveHeightM),
				direction(h.SwellWaveDirectionDeg),
				withUnit(h.WindSpeedKnots, "kn"),
				direction(h.WindDirectionDeg),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString("## 5-Day Forecast")
	for _, d := range f.Forecast5Day {
		fmt.Fprintf(&b, "\n%s:\n", d.Date)
		fmt.Fprintf(&b, "  Waves: %s max (swell %s from %s)\n",
			height(d.WaveHeightMaxM), height(d.SwellWaveHeightMaxM), direction(d.SwellWaveDirectionDominantDeg))
		fmt.Fprintf(&b, "  Wind: %s from %s\n", withUnit(d.WindSpeedMaxKnots, " knots"), direction(d.WindDirectionDominantDeg))
		fmt.Fprintf(&b, "  Temp: %s-%s°C", integer(d.TemperatureMinC), integer(d.TemperatureMaxC))
	}

	return b.String()
}

func height(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.1fm", *v)
}

func period(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.0fs", *v)
}

func integer(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%d", int(math.RoundToEven(*v)))
}

func withUnit(v *float64, unit string) string {
	if v == nil {
		return notAvailable
	}
	return integer(v) + unit
}

func direction(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return strings.ToUpper(types.DegreesToCompass(*v))
}

// timeLabel returns HH:MM for ISO timestamps and the last five characters otherwise
func timeLabel(ts string) string {
	if strings.Contains(ts, "T") {
		for _, layout := range []string{"2006-01-02T15:04", time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, strings.Replace(ts, "Z", "+00:00", 1)); err == nil {
				return t.Format("15:04")
			}
		}
		return ts[strings.Index(ts, "T")+1:]
	}
	if len(ts) <= 5 {
		return ts
	}
	return ts[len(ts)-5:]
}
