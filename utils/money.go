package utils

import "math"

// Round2 rounds x to 2 decimal places. Core computations keep full
// precision; this is applied only to values leaving for storage or
// display, such as an invoice's denormalized amount.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
