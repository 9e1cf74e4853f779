package pkg

import "math"

// Round2 rounds a monetary value to 2 decimal places. Internal computation
// keeps full float precision; rounding happens only at the output boundary.
func Round2(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Round(value*100) / 100
}
