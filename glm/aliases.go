package glm

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Mat4f = Mat4[float32]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Mat4d = Mat4[float64]
