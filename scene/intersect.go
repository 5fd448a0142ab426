package scene

import (
	"math"

	"github.com/achilleasa/whitted/types"
)

// Intersect ray (o + t*d) with the sphere. Both roots are returned unordered;
// if the ray misses the sphere both roots are set to +Inf.
func (s *Sphere) Intersect(o, d types.Vec3) (t1, t2 float64) {
	co := o.Sub(s.Center)

	a := d.Dot(d)
	b := 2 * co.Dot(d)
	c := co.Dot(co) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return math.Inf(1), math.Inf(1)
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 = (-b + sqrtDisc) / (2 * a)
	t2 = (-b - sqrtDisc) / (2 * a)
	return t1, t2
}

// Intersect ray with the wall rectangle. Rays parallel to the wall plane and
// plane hits behind the ray origin are reported as misses.
func (w *Wall) Intersect(o, d types.Vec3, eps float64) (float64, bool) {
	denom := w.Normal.Dot(d)
	if math.Abs(denom) < eps {
		return 0, false
	}

	t := w.Center.Sub(o).Dot(w.Normal) / denom
	if t < 0 {
		return 0, false
	}

	// Project hit point on the wall's local axes and clip to its extents
	local := o.Add(d.Mul(t)).Sub(w.Center)
	if math.Abs(local.Dot(w.u)) > w.Width/2 || math.Abs(local.Dot(w.v)) > w.Height/2 {
		return 0, false
	}

	return t, true
}

// Get the checkerboard tile parity for a point on the wall. Returns true for
// odd tiles.
func (w *Wall) OddTile(p types.Vec3) bool {
	local := p.Sub(w.Center)
	tu := int64(math.Floor(local.Dot(w.u)))
	tv := int64(math.Floor(local.Dot(w.v)))
	return (tu+tv)&1 != 0
}

// Intersect ray with the triangle using the Moller-Trumbore algorithm. Only
// hits with t > eps are reported.
func (tri *Triangle) Intersect(o, d types.Vec3, eps float64) (float64, bool) {
	e1 := tri.Vertices[1].Sub(tri.Vertices[0])
	e2 := tri.Vertices[2].Sub(tri.Vertices[0])

	pvec := d.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < eps {
		return 0, false
	}
	invDet := 1.0 / det

	tvec := o.Sub(tri.Vertices[0])
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(e1)
	v := d.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(qvec) * invDet
	if t <= eps {
		return 0, false
	}
	return t, true
}

const slabTolerance = 1e-9

// An axis-aligned bounding box stored as [min, max].
type AABB [2]types.Vec3

// Test whether the ray overlaps the box anywhere inside [tMin, tMax] using
// the slab method. Exit distances are padded by a relative tolerance so that
// rounding never culls a primitive lying on the box boundary.
func (box AABB) Hit(o, d types.Vec3, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			// Ray runs parallel to this slab
			if o[axis] < box[0][axis] || o[axis] > box[1][axis] {
				return false
			}
			continue
		}

		invD := 1.0 / d[axis]
		t0 := (box[0][axis] - o[axis]) * invD
		t1 := (box[1][axis] - o[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		t0 -= math.Abs(t0) * slabTolerance
		t1 += math.Abs(t1) * slabTolerance

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}
