package glm

import "math"

const epsilon = 1e-6

// fastSincos reads a 4096 entry sine table, so anything derived from it is
// only accurate to about the table step (pi/4096), worse once several trig
// factors multiply together.
const trigEpsilon = 1e-2

func near[T float](got, want T) bool {
	return within(got, want, epsilon)
}

func within[T float](got, want T, eps float64) bool {
	return math.Abs(float64(got-want)) < eps
}

func vec3Near[T float](got, want *Vec3[T]) bool {
	return near(got[0], want[0]) && near(got[1], want[1]) && near(got[2], want[2])
}

func mat4Near[T float](got, want *Mat4[T]) bool {
	for i := range got {
		if !near(got[i], want[i]) {
			return false
		}
	}
	return true
}
