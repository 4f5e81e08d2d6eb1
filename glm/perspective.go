package glm

import "math"

// Perspective builds a symmetric right-handed perspective projection from
// the pool, mapping depth the OpenGL way and dividing W by negative Z.
// Degenerate inputs (near == far, fovY >= pi, aspect <= 0) are not
// validated and propagate as division by zero.
func (p *Mat4Pool[T]) Perspective(fovY Rad, near, far, aspect T) *Mat4[T] {
	top := near * T(math.Tan(float64(fovY)*0.5))
	bottom := -top
	right := top * aspect
	left := -right

	m := p.Request()

	m[0] = 2 * near / (right - left)
	m[2] = (right + left) / (right - left)

	m[5] = 2 * near / (top - bottom)
	m[6] = (top + bottom) / (top - bottom)

	m[10] = -(far + near) / (far - near)
	m[11] = -2 * far * near / (far - near)

	m[14] = -1
	m[15] = 0

	return m
}

// LookAt builds a world-to-camera matrix from the pool. The camera sits at
// eye facing target; down is the world reference axis used to derive the
// horizontal basis. Temporary axis vectors come from vecs and are released
// before returning. When down is parallel to the view direction the basis
// degenerates to NaN.
func (p *Mat4Pool[T]) LookAt(vecs *Vec3Pool[T], eye, target, down *Vec3[T]) *Mat4[T] {
	zAxis := vecs.Sub(eye, target).Normalize()
	xAxis := vecs.Cross(down, zAxis).Normalize()
	yAxis := vecs.Cross(zAxis, xAxis)

	m := p.Request()

	m[0] = xAxis[0]
	m[1] = xAxis[1]
	m[2] = xAxis[2]
	m[3] = -xAxis.Dot(eye)

	m[4] = yAxis[0]
	m[5] = yAxis[1]
	m[6] = yAxis[2]
	m[7] = -yAxis.Dot(eye)

	m[8] = zAxis[0]
	m[9] = zAxis[1]
	m[10] = zAxis[2]
	m[11] = -zAxis.Dot(eye)

	vecs.Release(yAxis)
	vecs.Release(xAxis)
	vecs.Release(zAxis)

	return m
}
