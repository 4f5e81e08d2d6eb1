package glm

import (
	"math"

	"golang.org/x/exp/constraints"
)

type float interface {
	constraints.Float
}

// Rad is an angle in radians.
type Rad float32

func DegToRad[T float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T float](rad Rad) (deg T) {
	return T(rad * (180 / math.Pi))
}

// Clamp bounds n into [min, max].
func Clamp[T float](n, min, max T) T {
	if n < min {
		return min
	}

	if n > max {
		return max
	}

	return n
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp[T float](a, b, t T) T {
	return a + (b-a)*t
}
