package glm

import (
	"fmt"
	"strings"
)

// Mat4 is a mutable 4x4 matrix stored in row-major order, so index
// row*4 + col:
//
//	|  0  1  2  3 |
//	|  4  5  6  7 |
//	|  8  9 10 11 |
//	| 12 13 14 15 |
//
// For an affine transform the upper-left 3x3 block holds rotation and
// scale, column 3 (indices 3, 7, 11) holds the translation, and row 3 is
// [0 0 0 1]. Applying the matrix to a column vector [x y z 1] transforms
// the point.
type Mat4[T float] [16]T

func IdentityMat4[T float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetIdentity rewrites all sixteen slots, independent of prior contents.
func (lhs *Mat4[T]) SetIdentity() *Mat4[T] {
	*lhs = IdentityMat4[T]()
	return lhs
}

// Mul post-multiplies the receiver in place: lhs = lhs * rhs.
func (lhs *Mat4[T]) Mul(rhs *Mat4[T]) *Mat4[T] {
	*lhs = Mat4[T]{
		lhs[0]*rhs[0] + lhs[1]*rhs[4] + lhs[2]*rhs[8] + lhs[3]*rhs[12],
		lhs[0]*rhs[1] + lhs[1]*rhs[5] + lhs[2]*rhs[9] + lhs[3]*rhs[13],
		lhs[0]*rhs[2] + lhs[1]*rhs[6] + lhs[2]*rhs[10] + lhs[3]*rhs[14],
		lhs[0]*rhs[3] + lhs[1]*rhs[7] + lhs[2]*rhs[11] + lhs[3]*rhs[15],
		lhs[4]*rhs[0] + lhs[5]*rhs[4] + lhs[6]*rhs[8] + lhs[7]*rhs[12],
		lhs[4]*rhs[1] + lhs[5]*rhs[5] + lhs[6]*rhs[9] + lhs[7]*rhs[13],
		lhs[4]*rhs[2] + lhs[5]*rhs[6] + lhs[6]*rhs[10] + lhs[7]*rhs[14],
		lhs[4]*rhs[3] + lhs[5]*rhs[7] + lhs[6]*rhs[11] + lhs[7]*rhs[15],
		lhs[8]*rhs[0] + lhs[9]*rhs[4] + lhs[10]*rhs[8] + lhs[11]*rhs[12],
		lhs[8]*rhs[1] + lhs[9]*rhs[5] + lhs[10]*rhs[9] + lhs[11]*rhs[13],
		lhs[8]*rhs[2] + lhs[9]*rhs[6] + lhs[10]*rhs[10] + lhs[11]*rhs[14],
		lhs[8]*rhs[3] + lhs[9]*rhs[7] + lhs[10]*rhs[11] + lhs[11]*rhs[15],
		lhs[12]*rhs[0] + lhs[13]*rhs[4] + lhs[14]*rhs[8] + lhs[15]*rhs[12],
		lhs[12]*rhs[1] + lhs[13]*rhs[5] + lhs[14]*rhs[9] + lhs[15]*rhs[13],
		lhs[12]*rhs[2] + lhs[13]*rhs[6] + lhs[14]*rhs[10] + lhs[15]*rhs[14],
		lhs[12]*rhs[3] + lhs[13]*rhs[7] + lhs[14]*rhs[11] + lhs[15]*rhs[15],
	}
	return lhs
}

// TransformPoint applies the matrix to the point (x, y, z, 1), writing the
// transformed position into out. No perspective divide is performed.
func (lhs *Mat4[T]) TransformPoint(v, out *Vec3[T]) *Vec3[T] {
	return out.Set(
		lhs[0]*v[0]+lhs[1]*v[1]+lhs[2]*v[2]+lhs[3],
		lhs[4]*v[0]+lhs[5]*v[1]+lhs[6]*v[2]+lhs[7],
		lhs[8]*v[0]+lhs[9]*v[1]+lhs[10]*v[2]+lhs[11],
	)
}

// Row returns the first three components of row i, the basis part of an
// affine transform. The translation/W column is dropped.
func (lhs *Mat4[T]) Row(i int) Vec3[T] {
	return Vec3[T]{
		lhs[i*4+0],
		lhs[i*4+1],
		lhs[i*4+2],
	}
}

func (lhs *Mat4[T]) Equals(rhs *Mat4[T]) bool {
	return *lhs == *rhs
}

func (lhs *Mat4[T]) IsZero() bool {
	return *lhs == Mat4[T]{}
}

// Clone returns an independent heap copy, bypassing any pool.
func (lhs *Mat4[T]) Clone() *Mat4[T] {
	out := *lhs
	return &out
}

func (lhs *Mat4[T]) String() string {
	var sb strings.Builder

	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "%v %v %v %v",
			lhs[row*4+0], lhs[row*4+1], lhs[row*4+2], lhs[row*4+3])
	}

	return sb.String()
}

const mat4PoolLimit = 64

// Mat4Pool is a free-list of Mat4 instances and the home of the matrix
// builders. One pool per owner; not safe for concurrent use.
type Mat4Pool[T float] struct {
	pool[Mat4[T]]
}

func NewMat4Pool[T float]() *Mat4Pool[T] {
	return &Mat4Pool[T]{pool[Mat4[T]]{limit: mat4PoolLimit}}
}

// Request returns an identity matrix, reusing a released instance when one
// is available.
func (p *Mat4Pool[T]) Request() *Mat4[T] {
	return p.request().SetIdentity()
}

// Release hands the instance back to the pool. The caller must not touch
// it afterwards. Once the pool is at its limit the instance is dropped.
func (p *Mat4Pool[T]) Release(m *Mat4[T]) {
	p.release(m)
}

func (p *Mat4Pool[T]) Flush() {
	p.flush()
}

func (p *Mat4Pool[T]) Size() int {
	return p.size()
}

// Clone returns a pooled copy of m.
func (p *Mat4Pool[T]) Clone(m *Mat4[T]) *Mat4[T] {
	out := p.request()
	*out = *m
	return out
}
