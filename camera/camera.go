package camera

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/constraints"

	"github.com/zombrodo/toolbox/glm"
)

// cache a handful of recent parameter sets so a camera that cuts between
// a few fixed shots never rebuilds
const cacheSize = 16

type viewKey[T constraints.Float] struct {
	Eye    glm.Vec3[T]
	Target glm.Vec3[T]
	Down   glm.Vec3[T]
}

type projKey[T constraints.Float] struct {
	Fov    glm.Rad
	Near   T
	Far    T
	Aspect T
}

// Camera derives view and projection matrices from its public fields,
// rebuilding only when the defining parameters change. Built matrices are
// cached by value, keyed on the parameters that produced them; every
// matrix handed out is a fresh pooled copy, so callers may mutate or
// release it without touching the cache. Like the pools it owns, a Camera
// has a single logical owner.
type Camera[T constraints.Float] struct {
	Eye    glm.Vec3[T]
	Target glm.Vec3[T]
	Down   glm.Vec3[T]

	Fov    glm.Rad
	Near   T
	Far    T
	Aspect T

	mats *glm.Mat4Pool[T]
	vecs *glm.Vec3Pool[T]

	views *lru.Cache[viewKey[T], glm.Mat4[T]]
	projs *lru.Cache[projKey[T], glm.Mat4[T]]
}

func New[T constraints.Float](mats *glm.Mat4Pool[T], vecs *glm.Vec3Pool[T]) *Camera[T] {
	views, _ := lru.New[viewKey[T], glm.Mat4[T]](cacheSize)
	projs, _ := lru.New[projKey[T], glm.Mat4[T]](cacheSize)

	return &Camera[T]{
		Down:   glm.UpVec3[T](),
		Fov:    glm.DegToRad[T](60),
		Near:   0.1,
		Far:    100,
		Aspect: 16.0 / 9.0,

		mats:  mats,
		vecs:  vecs,
		views: views,
		projs: projs,
	}
}

// View returns the world-to-camera matrix for the current Eye, Target and
// Down. The result is a pooled instance owned by the caller.
func (c *Camera[T]) View() *glm.Mat4[T] {
	key := viewKey[T]{Eye: c.Eye, Target: c.Target, Down: c.Down}

	if cached, ok := c.views.Get(key); ok {
		return c.mats.Clone(&cached)
	}

	m := c.mats.LookAt(c.vecs, &c.Eye, &c.Target, &c.Down)
	c.views.Add(key, *m)

	return m
}

// Projection returns the perspective matrix for the current Fov, Near, Far
// and Aspect. The result is a pooled instance owned by the caller.
func (c *Camera[T]) Projection() *glm.Mat4[T] {
	key := projKey[T]{Fov: c.Fov, Near: c.Near, Far: c.Far, Aspect: c.Aspect}

	if cached, ok := c.projs.Get(key); ok {
		return c.mats.Clone(&cached)
	}

	m := c.mats.Perspective(c.Fov, c.Near, c.Far, c.Aspect)
	c.projs.Add(key, *m)

	return m
}

// ViewProjection returns projection * view as a single pooled matrix.
func (c *Camera[T]) ViewProjection() *glm.Mat4[T] {
	view := c.View()
	out := c.Projection().Mul(view)
	c.mats.Release(view)

	return out
}

// Purge drops all cached matrices, for example at scene teardown.
func (c *Camera[T]) Purge() {
	c.views.Purge()
	c.projs.Purge()
}
