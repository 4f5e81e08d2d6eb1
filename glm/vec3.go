package glm

import (
	"fmt"
	"math"
)

// Vec3 is a mutable three component vector with the same in-place calling
// convention as Vec2.
type Vec3[T float] [3]T

func V3[T float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

func ZeroVec3[T float]() Vec3[T] {
	return Vec3[T]{}
}

func OneVec3[T float]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

func UnitXVec3[T float]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

func UnitYVec3[T float]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

func UnitZVec3[T float]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

func UpVec3[T float]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

func DownVec3[T float]() Vec3[T] {
	return Vec3[T]{0, -1, 0}
}

func LeftVec3[T float]() Vec3[T] {
	return Vec3[T]{-1, 0, 0}
}

func RightVec3[T float]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

// ForwardVec3 points along negative z, the direction a freshly built
// look-at camera faces.
func ForwardVec3[T float]() Vec3[T] {
	return Vec3[T]{0, 0, -1}
}

func BackwardVec3[T float]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

func (lhs *Vec3[T]) Set(x, y, z T) *Vec3[T] {
	lhs[0] = x
	lhs[1] = y
	lhs[2] = z
	return lhs
}

func (lhs *Vec3[T]) Add(rhs *Vec3[T]) *Vec3[T] {
	lhs[0] += rhs[0]
	lhs[1] += rhs[1]
	lhs[2] += rhs[2]
	return lhs
}

func (lhs *Vec3[T]) Sub(rhs *Vec3[T]) *Vec3[T] {
	lhs[0] -= rhs[0]
	lhs[1] -= rhs[1]
	lhs[2] -= rhs[2]
	return lhs
}

// Mul multiplies component-wise (Hadamard product).
func (lhs *Vec3[T]) Mul(rhs *Vec3[T]) *Vec3[T] {
	lhs[0] *= rhs[0]
	lhs[1] *= rhs[1]
	lhs[2] *= rhs[2]
	return lhs
}

func (lhs *Vec3[T]) Div(rhs *Vec3[T]) *Vec3[T] {
	lhs[0] /= rhs[0]
	lhs[1] /= rhs[1]
	lhs[2] /= rhs[2]
	return lhs
}

func (lhs *Vec3[T]) AddScalar(s T) *Vec3[T] {
	lhs[0] += s
	lhs[1] += s
	lhs[2] += s
	return lhs
}

func (lhs *Vec3[T]) SubScalar(s T) *Vec3[T] {
	lhs[0] -= s
	lhs[1] -= s
	lhs[2] -= s
	return lhs
}

func (lhs *Vec3[T]) MulScalar(s T) *Vec3[T] {
	lhs[0] *= s
	lhs[1] *= s
	lhs[2] *= s
	return lhs
}

func (lhs *Vec3[T]) DivScalar(s T) *Vec3[T] {
	lhs[0] /= s
	lhs[1] /= s
	lhs[2] /= s
	return lhs
}

// Invert negates every component.
func (lhs *Vec3[T]) Invert() *Vec3[T] {
	lhs[0] = -lhs[0]
	lhs[1] = -lhs[1]
	lhs[2] = -lhs[2]
	return lhs
}

// Normalize scales the vector to unit length. The zero vector has no unit
// form; its components become NaN.
func (lhs *Vec3[T]) Normalize() *Vec3[T] {
	return lhs.DivScalar(lhs.Length())
}

// Reflect mirrors the vector against the plane described by the given
// normal. The normal is assumed to be unit length.
func (lhs *Vec3[T]) Reflect(normal *Vec3[T]) *Vec3[T] {
	d := 2 * lhs.Dot(normal)
	lhs[0] -= d * normal[0]
	lhs[1] -= d * normal[1]
	lhs[2] -= d * normal[2]
	return lhs
}

// Cross replaces the receiver with the right-handed cross product
// lhs x rhs.
func (lhs *Vec3[T]) Cross(rhs *Vec3[T]) *Vec3[T] {
	return lhs.Set(
		lhs[1]*rhs[2]-rhs[1]*lhs[2],
		lhs[2]*rhs[0]-rhs[2]*lhs[0],
		lhs[0]*rhs[1]-rhs[0]*lhs[1],
	)
}

func (lhs *Vec3[T]) Dot(rhs *Vec3[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1]) + (lhs[2] * rhs[2])
}

func (lhs *Vec3[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs *Vec3[T]) LengthSq() T {
	return lhs.Dot(lhs)
}

func (lhs *Vec3[T]) DistanceTo(rhs *Vec3[T]) T {
	return T(math.Sqrt(float64(lhs.DistanceToSq(rhs))))
}

func (lhs *Vec3[T]) DistanceToSq(rhs *Vec3[T]) T {
	dx := lhs[0] - rhs[0]
	dy := lhs[1] - rhs[1]
	dz := lhs[2] - rhs[2]
	return dx*dx + dy*dy + dz*dz
}

func (lhs *Vec3[T]) Equals(rhs *Vec3[T]) bool {
	return *lhs == *rhs
}

// Clone returns an independent heap copy, bypassing any pool.
func (lhs *Vec3[T]) Clone() *Vec3[T] {
	out := *lhs
	return &out
}

func (lhs *Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}

func (lhs *Vec3[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

func (lhs *Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", lhs[0], lhs[1], lhs[2])
}

// Vec3Pool is a free-list of Vec3 instances plus the non mutating forms of
// the vector operations. One pool per owner; not safe for concurrent use.
type Vec3Pool[T float] struct {
	pool[Vec3[T]]
}

func NewVec3Pool[T float]() *Vec3Pool[T] {
	return &Vec3Pool[T]{pool[Vec3[T]]{limit: vecPoolLimit}}
}

// Request returns a zero vector, reusing a released instance when one is
// available.
func (p *Vec3Pool[T]) Request() *Vec3[T] {
	return p.request().Set(0, 0, 0)
}

func (p *Vec3Pool[T]) RequestXYZ(x, y, z T) *Vec3[T] {
	return p.request().Set(x, y, z)
}

// Release hands the instance back to the pool. The caller must not touch
// it afterwards. Once the pool is at its limit the instance is dropped.
func (p *Vec3Pool[T]) Release(v *Vec3[T]) {
	p.release(v)
}

func (p *Vec3Pool[T]) Flush() {
	p.flush()
}

func (p *Vec3Pool[T]) Size() int {
	return p.size()
}

// Clone returns a pooled copy of v.
func (p *Vec3Pool[T]) Clone(v *Vec3[T]) *Vec3[T] {
	return p.RequestXYZ(v[0], v[1], v[2])
}

func (p *Vec3Pool[T]) Add(lhs, rhs *Vec3[T]) *Vec3[T] {
	return p.Clone(lhs).Add(rhs)
}

func (p *Vec3Pool[T]) Sub(lhs, rhs *Vec3[T]) *Vec3[T] {
	return p.Clone(lhs).Sub(rhs)
}

func (p *Vec3Pool[T]) Mul(lhs, rhs *Vec3[T]) *Vec3[T] {
	return p.Clone(lhs).Mul(rhs)
}

func (p *Vec3Pool[T]) Div(lhs, rhs *Vec3[T]) *Vec3[T] {
	return p.Clone(lhs).Div(rhs)
}

func (p *Vec3Pool[T]) AddScalar(lhs *Vec3[T], s T) *Vec3[T] {
	return p.Clone(lhs).AddScalar(s)
}

func (p *Vec3Pool[T]) SubScalar(lhs *Vec3[T], s T) *Vec3[T] {
	return p.Clone(lhs).SubScalar(s)
}

func (p *Vec3Pool[T]) MulScalar(lhs *Vec3[T], s T) *Vec3[T] {
	return p.Clone(lhs).MulScalar(s)
}

func (p *Vec3Pool[T]) DivScalar(lhs *Vec3[T], s T) *Vec3[T] {
	return p.Clone(lhs).DivScalar(s)
}

func (p *Vec3Pool[T]) Invert(v *Vec3[T]) *Vec3[T] {
	return p.Clone(v).Invert()
}

func (p *Vec3Pool[T]) Normalize(v *Vec3[T]) *Vec3[T] {
	return p.Clone(v).Normalize()
}

func (p *Vec3Pool[T]) Reflect(v, normal *Vec3[T]) *Vec3[T] {
	return p.Clone(v).Reflect(normal)
}

func (p *Vec3Pool[T]) Cross(lhs, rhs *Vec3[T]) *Vec3[T] {
	return p.Clone(lhs).Cross(rhs)
}

func (p *Vec3Pool[T]) Lerp(lhs, rhs *Vec3[T], t T) *Vec3[T] {
	return p.RequestXYZ(
		Lerp(lhs[0], rhs[0], t),
		Lerp(lhs[1], rhs[1], t),
		Lerp(lhs[2], rhs[2], t),
	)
}

func (p *Vec3Pool[T]) Clamp(v, lo, hi *Vec3[T]) *Vec3[T] {
	return p.RequestXYZ(
		Clamp(v[0], lo[0], hi[0]),
		Clamp(v[1], lo[1], hi[1]),
		Clamp(v[2], lo[2], hi[2]),
	)
}

func (p *Vec3Pool[T]) Min(lhs, rhs *Vec3[T]) *Vec3[T] {
	return p.RequestXYZ(
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
		min(lhs[2], rhs[2]),
	)
}

func (p *Vec3Pool[T]) Max(lhs, rhs *Vec3[T]) *Vec3[T] {
	return p.RequestXYZ(
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
		max(lhs[2], rhs[2]),
	)
}

func (p *Vec3Pool[T]) Floor(v *Vec3[T]) *Vec3[T] {
	return p.RequestXYZ(
		T(math.Floor(float64(v[0]))),
		T(math.Floor(float64(v[1]))),
		T(math.Floor(float64(v[2]))),
	)
}

func (p *Vec3Pool[T]) Ceil(v *Vec3[T]) *Vec3[T] {
	return p.RequestXYZ(
		T(math.Ceil(float64(v[0]))),
		T(math.Ceil(float64(v[1]))),
		T(math.Ceil(float64(v[2]))),
	)
}
