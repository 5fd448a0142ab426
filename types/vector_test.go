package types

import (
	"math"
	"math/rand"
	"testing"
)

const testEpsilon = 1e-9

func randVec3(rng *rand.Rand) Vec3 {
	return Vec3{rng.Float64()*20 - 10, rng.Float64()*20 - 10, rng.Float64()*20 - 10}
}

func vecApproxEqual(v1, v2 Vec3, eps float64) bool {
	return math.Abs(v1[0]-v2[0]) < eps && math.Abs(v1[1]-v2[1]) < eps && math.Abs(v1[2]-v2[2]) < eps
}

func TestVectorOps(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, -5, 6)

	type spec struct {
		name string
		got  Vec3
		exp  Vec3
	}
	specs := []spec{
		{"add", a.Add(b), Vec3{5, -3, 9}},
		{"sub", a.Sub(b), Vec3{-3, 7, -3}},
		{"mul", a.Mul(2), Vec3{2, 4, 6}},
		{"neg", a.Neg(), Vec3{-1, -2, -3}},
		{"cross", Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}), Vec3{0, 0, 1}},
		{"min", MinVec3(a, b), Vec3{1, -5, 3}},
		{"max", MaxVec3(a, b), Vec3{4, 2, 6}},
	}

	for index, s := range specs {
		if s.got != s.exp {
			t.Fatalf("[spec %d] expected %s to return %v; got %v", index, s.name, s.exp, s.got)
		}
	}

	if d := a.Dot(b); d != 12 {
		t.Fatalf("expected dot product to be 12; got %f", d)
	}

	if l := XYZ(3, 4, 0).Len(); l != 5 {
		t.Fatalf("expected length to be 5; got %f", l)
	}
}

func TestNormalizeNegateCommute(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := randVec3(rng)
		if v.Len() < 1e-6 {
			continue
		}

		lhs := v.Neg().Normalize()
		rhs := v.Normalize().Neg()
		if !vecApproxEqual(lhs, rhs, testEpsilon) {
			t.Fatalf("expected normalize(negate(%v)) == negate(normalize(%v)); got %v and %v", v, v, lhs, rhs)
		}

		if l := lhs.Len(); math.Abs(l-1) > testEpsilon {
			t.Fatalf("expected normalized vector to have unit length; got %f", l)
		}
	}
}

func TestCrossProductOrthogonality(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a, b := randVec3(rng), randVec3(rng)
		c := a.Cross(b)

		// Scale tolerance by magnitude; components are in [-10, 10]
		tol := 1e-9 * (1 + c.Len()*a.Len()*b.Len())
		if d := c.Dot(a); math.Abs(d) > tol {
			t.Fatalf("expected cross(a,b).a == 0 for a=%v b=%v; got %g", a, b, d)
		}
		if d := c.Dot(b); math.Abs(d) > tol {
			t.Fatalf("expected cross(a,b).b == 0 for a=%v b=%v; got %g", a, b, d)
		}
	}
}

func TestMatrixVectorProduct(t *testing.T) {
	v := XYZ(1, 2, 3)
	if out := Ident3().Mul3x1(v); out != v {
		t.Fatalf("expected identity matrix to leave %v unchanged; got %v", v, out)
	}

	m := Mat3{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	exp := Vec3{-2, 1, 3}
	if out := m.Mul3x1(v); out != exp {
		t.Fatalf("expected %v; got %v", exp, out)
	}

	if out := m.Mul3(Ident3()); out != m {
		t.Fatalf("expected M*I == M; got %v", out)
	}
}

func TestQuaternionMatrixMatchesRotate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		q := QuatFromYawPitchRoll(rng.Float64()*360, rng.Float64()*360, rng.Float64()*360)
		v := randVec3(rng)

		byQuat := q.Rotate(v)
		byMat := q.Mat3().Mul3x1(v)
		if !vecApproxEqual(byQuat, byMat, 1e-9) {
			t.Fatalf("expected quaternion and matrix rotations to agree; got %v and %v", byQuat, byMat)
		}
	}

	// Yaw 90 degrees maps +Z onto +X
	out := QuatFromYawPitchRoll(90, 0, 0).Mat3().Mul3x1(Vec3{0, 0, 1})
	if !vecApproxEqual(out, Vec3{1, 0, 0}, 1e-12) {
		t.Fatalf("expected yaw(90) to rotate +Z to +X; got %v", out)
	}
}
