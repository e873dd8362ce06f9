package forecast

import (
	"strings"
	"testing"
)

func TestAssessQuality(t *testing.T) {
	tests := []struct {
		name       string
		conditions CurrentConditions
		want       string
	}{
		{
			name:       "all missing",
			conditions: CurrentConditions{},
			want:       "very small waves - flat conditions | light winds - glassy conditions | short period - choppy conditions likely",
		},
		{
			name: "clean beginner day",
			conditions: CurrentConditions{
				WaveHeightM:      f(0.8),
				SwellWaveHeightM: f(0.7),
				WavePeriodS:      f(13),
				WindSpeedKnots:   f(4),
			},
			want: "small waves - suitable for beginners | light winds - glassy conditions | long period swell - clean waves expected | swell dominant - cleaner conditions",
		},
		{
			name: "choppy wind swell",
			conditions: CurrentConditions{
				WaveHeightM:      f(1.5),
				SwellWaveHeightM: f(0.5),
				WavePeriodS:      f(9),
				WindSpeedKnots:   f(12),
			},
			want: "good wave height for most surfers | moderate wind - textured surface | moderate period - decent wave quality | wind waves present - may be choppy",
		},
		{
			name: "big and windy",
			conditions: CurrentConditions{
				WaveHeightM:    f(3.5),
				WavePeriodS:    f(8),
				WindSpeedKnots: f(25),
			},
			want: "big waves - advanced surfers only | very strong wind - difficult surfing | short period - choppy conditions likely",
		},
		{
			name: "solid with strong wind",
			conditions: CurrentConditions{
				WaveHeightM:    f(2.5),
				WavePeriodS:    f(12),
				WindSpeedKnots: f(17),
			},
			want: "solid waves - intermediate to advanced | strong wind - challenging conditions | moderate period - decent wave quality",
		},
		{
			name: "light breeze",
			conditions: CurrentConditions{
				WaveHeightM:    f(0.4),
				WindSpeedKnots: f(7),
			},
			want: "very small waves - flat conditions | light breeze - good conditions | short period - choppy conditions likely",
		},
		{
			name: "ratio exactly at threshold is not dominant",
			conditions: CurrentConditions{
				WaveHeightM:      f(1.0),
				SwellWaveHeightM: f(0.7),
			},
			want: "good wave height for most surfers | light winds - glassy conditions | short period - choppy conditions likely | wind waves present - may be choppy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessQuality(tt.conditions)
			if got != tt.want {
				t.Errorf("AssessQuality() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestAssessQuality_UsesWavePeriodNotSwellPeriod(t *testing.T) {
	got := AssessQuality(CurrentConditions{
		WavePeriodS:      f(6),
		SwellWavePeriodS: f(15),
	})
	if !strings.Contains(got, shortPeriod) {
		t.Errorf("AssessQuality() = %q, want short period note", got)
	}
}
