package glm

import (
	"golang.org/x/mobile/exp/f32"
)

// fastSincos evaluates sine and cosine through the f32 lookup table.
// Accuracy is bounded by the table step, roughly 1e-3 in the worst case,
// which is plenty for per-frame transform building.
func fastSincos(r Rad) (float32, float32) {
	return fastSin(r), fastCos(r)
}

func fastSin(r Rad) float32 {
	return f32.Sin(float32(r))
}

func fastCos(r Rad) float32 {
	return f32.Cos(float32(r))
}
