package core

import "math"

// Round converts a fractional coordinate to a cell index
// Ties round away from zero; every paint and collision path goes through here
func Round(v float64) int {
	return int(math.Round(v))
}
