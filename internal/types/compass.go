package types

import (
	"fmt"
	"math"
	"strings"
)

// compassPoints is the 16-point compass rose, each sector 22.5 degrees wide
// and centred on its heading.
var compassPoints = [16]string{
	"n", "nne", "ne", "ene",
	"e", "ese", "se", "sse",
	"s", "ssw", "sw", "wsw",
	"w", "wnw", "nw", "nnw",
}

// DegreesToCompass converts a bearing to a lower-case 16-point compass
// direction. Values outside [0, 360) wrap around first.
func DegreesToCompass(degrees float64) string {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}

	index := int((degrees+11.25)/22.5) % 16
	return compassPoints[index]
}

// FormatDirection formats a bearing as "270° (W)" or "270° (w)".
func FormatDirection(degrees float64, uppercase bool) string {
	compass := DegreesToCompass(degrees)
	if uppercase {
		compass = strings.ToUpper(compass)
	}
	return fmt.Sprintf("%.0f° (%s)", degrees, compass)
}
