package camera

import (
	"math"
	"testing"

	"github.com/zombrodo/toolbox/glm"
)

func newTestCamera() *Camera[float64] {
	return New(glm.NewMat4Pool[float64](), glm.NewVec3Pool[float64]())
}

func TestViewMatchesLookAt(t *testing.T) {
	cam := newTestCamera()
	cam.Eye.Set(0, 0, 5)

	mats := glm.NewMat4Pool[float64]()
	vecs := glm.NewVec3Pool[float64]()
	want := mats.LookAt(vecs, &cam.Eye, &cam.Target, &cam.Down)

	if got := cam.View(); !got.Equals(want) {
		t.Fatalf("view =\n%v\nwant\n%v", got, want)
	}
}

func TestProjectionMatchesPerspective(t *testing.T) {
	cam := newTestCamera()
	cam.Fov = glm.Rad(math.Pi / 2)
	cam.Near = 1
	cam.Far = 100
	cam.Aspect = 1

	want := glm.NewMat4Pool[float64]().Perspective(cam.Fov, cam.Near, cam.Far, cam.Aspect)

	if got := cam.Projection(); !got.Equals(want) {
		t.Fatalf("projection =\n%v\nwant\n%v", got, want)
	}
}

func TestViewCacheHandsOutIndependentCopies(t *testing.T) {
	cam := newTestCamera()
	cam.Eye.Set(1, 2, 3)

	first := cam.View()
	second := cam.View()

	if first == second {
		t.Fatalf("cached view returned the same instance twice")
	}

	if !first.Equals(second) {
		t.Fatalf("cached view differs from rebuilt view")
	}

	// mutating a handed-out matrix must not poison the cache
	first[0] = 42

	if third := cam.View(); !third.Equals(second) {
		t.Fatalf("cache entry was mutated through an alias")
	}
}

func TestViewRebuildsOnParameterChange(t *testing.T) {
	cam := newTestCamera()
	cam.Eye.Set(0, 0, 5)

	before := cam.View()

	cam.Eye.Set(5, 0, 0)
	after := cam.View()

	if before.Equals(after) {
		t.Fatalf("moving the eye did not change the view matrix")
	}
}

func TestViewProjection(t *testing.T) {
	cam := newTestCamera()
	cam.Eye.Set(0, 3, 8)
	cam.Aspect = 1

	view := cam.View()
	want := cam.Projection().Mul(view)

	if got := cam.ViewProjection(); !got.Equals(want) {
		t.Fatalf("viewProjection =\n%v\nwant\n%v", got, want)
	}
}

func TestPurge(t *testing.T) {
	cam := newTestCamera()
	cam.Eye.Set(0, 0, 5)

	before := cam.View()
	cam.Purge()
	after := cam.View()

	if !before.Equals(after) {
		t.Fatalf("rebuild after purge produced a different matrix")
	}
}
