package workout

import "math"

// floorDiv divides two floats rounding the quotient toward negative infinity.
// The quotient is derived from the fmod remainder rather than from x/y so
// results stay exact when x/y lands just below an integer.
// The caller guarantees y != 0.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div -= 1.0
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1.0
	}
	return floor
}
