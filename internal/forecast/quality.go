package forecast

import "strings"

type band struct {
	limit float64
	note  string
}

var waveHeightBands = []band{
	{0.5, "very small waves - flat conditions"},
	{1.0, "small waves - suitable for beginners"},
	{2.0, "good wave height for most surfers"},
	{3.0, "solid waves - intermediate to advanced"},
}

var windSpeedBands = []band{
	{5, "light winds - glassy conditions"},
	{10, "light breeze - good conditions"},
	{15, "moderate wind - textured surface"},
	{20, "strong wind - challenging conditions"},
}

// periodBands are checked as lower bounds, longest first
var periodBands = []band{
	{12, "long period swell - clean waves expected"},
	{8, "moderate period - decent wave quality"},
}

const (
	bigWaves       = "big waves - advanced surfers only"
	veryStrongWind = "very strong wind - difficult surfing"
	shortPeriod    = "short period - choppy conditions likely"
	swellDominant  = "swell dominant - cleaner conditions"
	windWaves      = "wind waves present - may be choppy"

	swellDominanceRatio = 0.7
	noteSeparator       = " | "
)

// AssessQuality classifies wave height, wind speed and wave period into
// fixed bands and adds a swell dominance note when both heights are known.
// Missing values classify as zero.
func AssessQuality(c CurrentConditions) string {
	wave := orZero(c.WaveHeightM)
	swell := orZero(c.SwellWaveHeightM)
	period := orZero(c.WavePeriodS)
	wind := orZero(c.WindSpeedKnots)

	notes := []string{
		below(wave, waveHeightBands, bigWaves),
		below(wind, windSpeedBands, veryStrongWind),
		above(period, periodBands, shortPeriod),
	}

	if swell > 0 && wave > 0 {
		if swell/wave > swellDominanceRatio {
			notes = append(notes, swellDominant)
		} else {
			notes = append(notes, windWaves)
		}
	}

	return strings.Join(notes, noteSeparator)
}

func below(v float64, bands []band, otherwise string) string {
	for _, b := range bands {
		if v < b.limit {
			return b.note
		}
	}
	return otherwise
}

func above(v float64, bands []band, otherwise string) string {
	for _, b := range bands {
		if v > b.limit {
			return b.note
		}
	}
	return otherwise
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
