package ruler

import (
	"math"
	"strconv"
)

// Precision returns the number of decimals to display for a measurement at
// editor zoom scale. Zooming in reveals more decimals.
func Precision(scale float64) int {
	switch {
	case scale < 3:
		return 0
	case scale < 5:
		return 1
	case scale < 7:
		return 2
	}
	return 3
}

// Round rounds value to the given number of decimals, halves to even.
func Round(value float64, decimals int) float64 {
	if decimals <= 0 {
		return math.RoundToEven(value)
	}
	f := math.Pow(10, float64(decimals))
	return math.RoundToEven(value*f) / f
}

// Format renders a measurement for display at editor zoom scale. Trailing
// zeros are dropped.
func Format(value, scale float64) string {
	return strconv.FormatFloat(Round(value, Precision(scale)), 'f', -1, 64)
}
