package glm

import (
	"fmt"
	"math"
)

// Vec2 is a mutable two component vector. Arithmetic methods operate in
// place and return the receiver for chaining; the pooled, non mutating
// variants live on Vec2Pool.
type Vec2[T float] [2]T

func V2[T float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

func ZeroVec2[T float]() Vec2[T] {
	return Vec2[T]{}
}

func OneVec2[T float]() Vec2[T] {
	return Vec2[T]{1, 1}
}

func UnitXVec2[T float]() Vec2[T] {
	return Vec2[T]{1, 0}
}

func UnitYVec2[T float]() Vec2[T] {
	return Vec2[T]{0, 1}
}

func UpVec2[T float]() Vec2[T] {
	return Vec2[T]{0, 1}
}

func DownVec2[T float]() Vec2[T] {
	return Vec2[T]{0, -1}
}

func LeftVec2[T float]() Vec2[T] {
	return Vec2[T]{-1, 0}
}

func RightVec2[T float]() Vec2[T] {
	return Vec2[T]{1, 0}
}

func (lhs *Vec2[T]) Set(x, y T) *Vec2[T] {
	lhs[0] = x
	lhs[1] = y
	return lhs
}

func (lhs *Vec2[T]) Add(rhs *Vec2[T]) *Vec2[T] {
	lhs[0] += rhs[0]
	lhs[1] += rhs[1]
	return lhs
}

func (lhs *Vec2[T]) Sub(rhs *Vec2[T]) *Vec2[T] {
	lhs[0] -= rhs[0]
	lhs[1] -= rhs[1]
	return lhs
}

// Mul multiplies component-wise (Hadamard product).
func (lhs *Vec2[T]) Mul(rhs *Vec2[T]) *Vec2[T] {
	lhs[0] *= rhs[0]
	lhs[1] *= rhs[1]
	return lhs
}

func (lhs *Vec2[T]) Div(rhs *Vec2[T]) *Vec2[T] {
	lhs[0] /= rhs[0]
	lhs[1] /= rhs[1]
	return lhs
}

func (lhs *Vec2[T]) AddScalar(s T) *Vec2[T] {
	lhs[0] += s
	lhs[1] += s
	return lhs
}

func (lhs *Vec2[T]) SubScalar(s T) *Vec2[T] {
	lhs[0] -= s
	lhs[1] -= s
	return lhs
}

func (lhs *Vec2[T]) MulScalar(s T) *Vec2[T] {
	lhs[0] *= s
	lhs[1] *= s
	return lhs
}

func (lhs *Vec2[T]) DivScalar(s T) *Vec2[T] {
	lhs[0] /= s
	lhs[1] /= s
	return lhs
}

// Invert negates both components.
func (lhs *Vec2[T]) Invert() *Vec2[T] {
	lhs[0] = -lhs[0]
	lhs[1] = -lhs[1]
	return lhs
}

// Normalize scales the vector to unit length. The zero vector has no unit
// form; its components become NaN.
func (lhs *Vec2[T]) Normalize() *Vec2[T] {
	return lhs.DivScalar(lhs.Length())
}

// Reflect mirrors the vector against the plane described by the given
// normal. The normal is assumed to be unit length.
func (lhs *Vec2[T]) Reflect(normal *Vec2[T]) *Vec2[T] {
	d := 2 * lhs.Dot(normal)
	lhs[0] -= d * normal[0]
	lhs[1] -= d * normal[1]
	return lhs
}

func (lhs *Vec2[T]) Dot(rhs *Vec2[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1])
}

func (lhs *Vec2[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs *Vec2[T]) LengthSq() T {
	return lhs.Dot(lhs)
}

func (lhs *Vec2[T]) DistanceTo(rhs *Vec2[T]) T {
	return T(math.Sqrt(float64(lhs.DistanceToSq(rhs))))
}

func (lhs *Vec2[T]) DistanceToSq(rhs *Vec2[T]) T {
	dx := lhs[0] - rhs[0]
	dy := lhs[1] - rhs[1]
	return dx*dx + dy*dy
}

func (lhs *Vec2[T]) Equals(rhs *Vec2[T]) bool {
	return *lhs == *rhs
}

// Clone returns an independent heap copy, bypassing any pool.
func (lhs *Vec2[T]) Clone() *Vec2[T] {
	out := *lhs
	return &out
}

func (lhs *Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

func (lhs *Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

func (lhs *Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", lhs[0], lhs[1])
}

const vecPoolLimit = 128

// Vec2Pool is a free-list of Vec2 instances plus the non mutating forms of
// the vector operations, which draw their results from the pool. One pool
// per owner; not safe for concurrent use.
type Vec2Pool[T float] struct {
	pool[Vec2[T]]
}

func NewVec2Pool[T float]() *Vec2Pool[T] {
	return &Vec2Pool[T]{pool[Vec2[T]]{limit: vecPoolLimit}}
}

// Request returns a zero vector, reusing a released instance when one is
// available.
func (p *Vec2Pool[T]) Request() *Vec2[T] {
	return p.request().Set(0, 0)
}

func (p *Vec2Pool[T]) RequestXY(x, y T) *Vec2[T] {
	return p.request().Set(x, y)
}

// Release hands the instance back to the pool. The caller must not touch
// it afterwards. Once the pool is at its limit the instance is dropped.
func (p *Vec2Pool[T]) Release(v *Vec2[T]) {
	p.release(v)
}

func (p *Vec2Pool[T]) Flush() {
	p.flush()
}

func (p *Vec2Pool[T]) Size() int {
	return p.size()
}

// Clone returns a pooled copy of v.
func (p *Vec2Pool[T]) Clone(v *Vec2[T]) *Vec2[T] {
	return p.RequestXY(v[0], v[1])
}

func (p *Vec2Pool[T]) Add(lhs, rhs *Vec2[T]) *Vec2[T] {
	return p.Clone(lhs).Add(rhs)
}

func (p *Vec2Pool[T]) Sub(lhs, rhs *Vec2[T]) *Vec2[T] {
	return p.Clone(lhs).Sub(rhs)
}

func (p *Vec2Pool[T]) Mul(lhs, rhs *Vec2[T]) *Vec2[T] {
	return p.Clone(lhs).Mul(rhs)
}

func (p *Vec2Pool[T]) Div(lhs, rhs *Vec2[T]) *Vec2[T] {
	return p.Clone(lhs).Div(rhs)
}

func (p *Vec2Pool[T]) AddScalar(lhs *Vec2[T], s T) *Vec2[T] {
	return p.Clone(lhs).AddScalar(s)
}

func (p *Vec2Pool[T]) SubScalar(lhs *Vec2[T], s T) *Vec2[T] {
	return p.Clone(lhs).SubScalar(s)
}

func (p *Vec2Pool[T]) MulScalar(lhs *Vec2[T], s T) *Vec2[T] {
	return p.Clone(lhs).MulScalar(s)
}

func (p *Vec2Pool[T]) DivScalar(lhs *Vec2[T], s T) *Vec2[T] {
	return p.Clone(lhs).DivScalar(s)
}

func (p *Vec2Pool[T]) Invert(v *Vec2[T]) *Vec2[T] {
	return p.Clone(v).Invert()
}

func (p *Vec2Pool[T]) Normalize(v *Vec2[T]) *Vec2[T] {
	return p.Clone(v).Normalize()
}

func (p *Vec2Pool[T]) Reflect(v, normal *Vec2[T]) *Vec2[T] {
	return p.Clone(v).Reflect(normal)
}

func (p *Vec2Pool[T]) Lerp(lhs, rhs *Vec2[T], t T) *Vec2[T] {
	return p.RequestXY(
		Lerp(lhs[0], rhs[0], t),
		Lerp(lhs[1], rhs[1], t),
	)
}

func (p *Vec2Pool[T]) Clamp(v, lo, hi *Vec2[T]) *Vec2[T] {
	return p.RequestXY(
		Clamp(v[0], lo[0], hi[0]),
		Clamp(v[1], lo[1], hi[1]),
	)
}

func (p *Vec2Pool[T]) Min(lhs, rhs *Vec2[T]) *Vec2[T] {
	return p.RequestXY(
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
	)
}

func (p *Vec2Pool[T]) Max(lhs, rhs *Vec2[T]) *Vec2[T] {
	return p.RequestXY(
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
	)
}

func (p *Vec2Pool[T]) Floor(v *Vec2[T]) *Vec2[T] {
	return p.RequestXY(
		T(math.Floor(float64(v[0]))),
		T(math.Floor(float64(v[1]))),
	)
}

func (p *Vec2Pool[T]) Ceil(v *Vec2[T]) *Vec2[T] {
	return p.RequestXY(
		T(math.Ceil(float64(v[0]))),
		T(math.Ceil(float64(v[1]))),
	)
}
