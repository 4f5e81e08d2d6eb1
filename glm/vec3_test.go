package glm

import (
	"math"
	"testing"
)

func TestVec3Identities(t *testing.T) {
	pool := NewVec3Pool[float64]()

	cases := []Vec3[float64]{
		{1, 2, 3},
		{-4, 0.5, 7},
		{0, 0, 0},
		{1e6, -1e-6, 3.25},
	}

	zero := ZeroVec3[float64]()
	one := OneVec3[float64]()

	for _, v := range cases {
		if got := pool.Add(&v, &zero); !got.Equals(&v) {
			t.Errorf("%v + zero = %v", &v, got)
		}

		if got := pool.Sub(&v, &v); !got.Equals(&zero) {
			t.Errorf("%v - %v = %v", &v, &v, got)
		}

		if got := pool.Mul(&v, &one); !got.Equals(&v) {
			t.Errorf("%v * one = %v", &v, got)
		}
	}
}

func TestVec3NormalizeLength(t *testing.T) {
	cases := []Vec3[float64]{
		{1, 0, 0},
		{1, 2, 3},
		{-0.001, 4, -17},
	}

	for _, v := range cases {
		n := v.Clone().Normalize()
		if !near(n.Length(), 1) {
			t.Errorf("length(normalize(%v)) = %v", &v, n.Length())
		}
	}
}

func TestVec3NormalizeZeroIsNaN(t *testing.T) {
	v := ZeroVec3[float64]()
	v.Normalize()

	if !math.IsNaN(v[0]) {
		t.Fatalf("normalize(zero) = %v, want NaN components", &v)
	}
}

func TestVec3CrossAntiCommutative(t *testing.T) {
	pool := NewVec3Pool[float64]()

	a := V3[float64](1, 2, 3)
	b := V3[float64](-4, 5, 0.5)

	ab := pool.Cross(&a, &b)
	ba := pool.Cross(&b, &a).Invert()

	if !ab.Equals(ba) {
		t.Fatalf("cross(a,b) = %v, -cross(b,a) = %v", ab, ba)
	}
}

func TestVec3CrossRightHanded(t *testing.T) {
	pool := NewVec3Pool[float64]()

	x := UnitXVec3[float64]()
	y := UnitYVec3[float64]()
	z := UnitZVec3[float64]()

	if got := pool.Cross(&x, &y); !got.Equals(&z) {
		t.Fatalf("x cross y = %v, want %v", got, &z)
	}
}

func TestVec3DotCommutative(t *testing.T) {
	a := V3[float64](1.5, -2, 8)
	b := V3[float64](3, 0.25, -1)

	if a.Dot(&b) != b.Dot(&a) {
		t.Fatalf("dot(a,b) = %v, dot(b,a) = %v", a.Dot(&b), b.Dot(&a))
	}
}

func TestVec3Distance(t *testing.T) {
	a := V3[float64](1, 2, 3)
	b := V3[float64](1, 2, 7)

	if got := a.DistanceTo(&b); got != 4 {
		t.Fatalf("distance = %v, want 4", got)
	}

	if got := a.DistanceToSq(&b); got != 16 {
		t.Fatalf("distanceSq = %v, want 16", got)
	}
}

func TestVec3Reflect(t *testing.T) {
	up := UpVec3[float64]()

	v := V3[float64](1, -1, 0)
	v.Reflect(&up)

	want := V3[float64](1, 1, 0)
	if !v.Equals(&want) {
		t.Fatalf("reflect = %v, want %v", &v, &want)
	}
}

func TestVec3StaticOpsLeaveOperandsUntouched(t *testing.T) {
	pool := NewVec3Pool[float64]()

	a := V3[float64](1, 2, 3)
	b := V3[float64](4, 5, 6)

	first := pool.Add(&a, &b)
	second := pool.Add(&a, &b)

	if first == second {
		t.Fatalf("static op returned the same instance twice")
	}

	if !first.Equals(second) {
		t.Fatalf("results differ: %v vs %v", first, second)
	}

	if a != (Vec3[float64]{1, 2, 3}) || b != (Vec3[float64]{4, 5, 6}) {
		t.Fatalf("operands mutated: a=%v b=%v", &a, &b)
	}
}

func TestVec3ComponentWiseStatics(t *testing.T) {
	pool := NewVec3Pool[float64]()

	a := V3[float64](1.25, -2.5, 3.75)
	b := V3[float64](2, -3, 3)

	if got, want := pool.Min(&a, &b), V3[float64](1.25, -3, 3); !got.Equals(&want) {
		t.Errorf("min = %v, want %v", got, &want)
	}

	if got, want := pool.Max(&a, &b), V3[float64](2, -2.5, 3.75); !got.Equals(&want) {
		t.Errorf("max = %v, want %v", got, &want)
	}

	if got, want := pool.Floor(&a), V3[float64](1, -3, 3); !got.Equals(&want) {
		t.Errorf("floor = %v, want %v", got, &want)
	}

	if got, want := pool.Ceil(&a), V3[float64](2, -2, 4); !got.Equals(&want) {
		t.Errorf("ceil = %v, want %v", got, &want)
	}

	lo := ZeroVec3[float64]()
	hi := OneVec3[float64]()
	if got, want := pool.Clamp(&a, &lo, &hi), V3[float64](1, 0, 1); !got.Equals(&want) {
		t.Errorf("clamp = %v, want %v", got, &want)
	}

	if got, want := pool.Lerp(&lo, &hi, 0.25), V3[float64](0.25, 0.25, 0.25); !got.Equals(&want) {
		t.Errorf("lerp = %v, want %v", got, &want)
	}
}

func TestVec3Chaining(t *testing.T) {
	v := V3[float64](1, 2, 3)
	one := OneVec3[float64]()

	got := v.Add(&one).MulScalar(2).Invert()

	if got != &v {
		t.Fatalf("mutators must return the receiver")
	}

	want := V3[float64](-4, -6, -8)
	if !v.Equals(&want) {
		t.Fatalf("chained result = %v, want %v", &v, &want)
	}
}
