package glm

// Transform builds a combined scale, rotate, translate matrix from the
// pool. Rotation is Euler angles in radians, applied X then Y then Z
// (Rz * Ry * Rx on a column vector); scale is applied along the local axes
// before translation.
func (p *Mat4Pool[T]) Transform(translation, rotation, scale *Vec3[T]) *Mat4[T] {
	m := p.Request()

	m[3] = translation[0]
	m[7] = translation[1]
	m[11] = translation[2]

	fsx, fcx := fastSincos(Rad(rotation[0]))
	fsy, fcy := fastSincos(Rad(rotation[1]))
	fsz, fcz := fastSincos(Rad(rotation[2]))

	sx, cx := T(fsx), T(fcx)
	sy, cy := T(fsy), T(fcy)
	sz, cz := T(fsz), T(fcz)

	m[0] = cy * cz
	m[1] = sx*sy*cz - cx*sz
	m[2] = cx*sy*cz + sx*sz

	m[4] = cy * sz
	m[5] = sx*sy*sz + cx*cz
	m[6] = cx*sy*sz - sx*cz

	m[8] = -sy
	m[9] = sx * cy
	m[10] = cx * cy

	// scale each basis column; row 3 keeps the identity base
	m[0] *= scale[0]
	m[4] *= scale[0]
	m[8] *= scale[0]

	m[1] *= scale[1]
	m[5] *= scale[1]
	m[9] *= scale[1]

	m[2] *= scale[2]
	m[6] *= scale[2]
	m[10] *= scale[2]

	return m
}
