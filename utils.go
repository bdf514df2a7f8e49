package pdfpin

import "math"

// clamp restricts a value to a range
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// roundCoord rounds a coordinate to the nearest whole point for label text
func roundCoord(v float64) int {
	return int(math.Round(v))
}
