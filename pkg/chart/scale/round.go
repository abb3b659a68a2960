package scale

import "math"

// roundHalfUp rounds halves toward positive infinity.
// math.Round rounds them away from zero, which differs for negative offsets.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
