package scene

import (
	"math"

	"github.com/achilleasa/whitted/types"
)

type PrimitiveType uint8

// The closed set of primitive kinds. Code that dispatches on a primitive
// type must handle every value listed here.
const (
	NoPrimitive PrimitiveType = iota
	SpherePrimitive
	WallPrimitive
	TrianglePrimitive
)

func (pt PrimitiveType) String() string {
	switch pt {
	case NoPrimitive:
		return "none"
	case SpherePrimitive:
		return "sphere"
	case WallPrimitive:
		return "wall"
	case TrianglePrimitive:
		return "triangle"
	}
	return "unknown"
}

// A sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float64

	Material
}

// A wall is an infinite plane clipped to a width x height rectangle centered
// at Center. Width is measured along U and height along V where U, V, Normal
// form an orthonormal basis.
type Wall struct {
	Center types.Vec3
	Normal types.Vec3
	Width  float64
	Height float64

	// Alternate between full and half intensity over unit tiles.
	Checkerboard bool

	Material

	u, v types.Vec3
}

// A triangle primitive. Its geometric normal is derived from the vertex
// winding order.
type Triangle struct {
	Vertices [3]types.Vec3

	Material
}

// Create a new wall primitive. The normal is normalized and the local
// tangent basis is precalculated.
func NewWall(center, normal types.Vec3, width, height float64, material Material) Wall {
	w := Wall{
		Center:   center,
		Normal:   normal,
		Width:    width,
		Height:   height,
		Material: material,
	}
	w.setupBasis()
	return w
}

func (w *Wall) setupBasis() {
	if w.Normal.Len() == 0 {
		return
	}
	w.Normal = w.Normal.Normalize()

	// Pick a fallback tangent that is never parallel to the normal
	tangent := types.Vec3{0, 1, 0}
	if math.Abs(w.Normal[1]) > 0.9 {
		tangent = types.Vec3{1, 0, 0}
	}
	w.u = tangent.Cross(w.Normal).Normalize()
	w.v = w.Normal.Cross(w.u)
}

// Get the wall's local (U, V) axes.
func (w *Wall) Basis() (u, v types.Vec3) {
	return w.u, w.v
}

// Get the triangle's axis-aligned bounding box.
func (tri *Triangle) BBox() [2]types.Vec3 {
	return [2]types.Vec3{
		types.MinVec3(tri.Vertices[0], types.MinVec3(tri.Vertices[1], tri.Vertices[2])),
		types.MaxVec3(tri.Vertices[0], types.MaxVec3(tri.Vertices[1], tri.Vertices[2])),
	}
}

// Get the mean of the triangle vertices.
func (tri *Triangle) Center() types.Vec3 {
	return tri.Vertices[0].Add(tri.Vertices[1]).Add(tri.Vertices[2]).Mul(1.0 / 3.0)
}

// Get the unit geometric normal using the triangle winding order.
func (tri *Triangle) Normal() types.Vec3 {
	e1 := tri.Vertices[1].Sub(tri.Vertices[0])
	e2 := tri.Vertices[2].Sub(tri.Vertices[0])
	return e1.Cross(e2).Normalize()
}

// Hit describes the closest intersection found along a ray. Index refers to
// Scene.Spheres, Scene.Walls or Bvh.Triangles depending on Type.
type Hit struct {
	Type  PrimitiveType
	Index int
	T     float64
}

// Returns true if the hit refers to a primitive.
func (h Hit) Valid() bool {
	return h.Type != NoPrimitive
}

func noHit() Hit {
	return Hit{Type: NoPrimitive, Index: -1, T: math.Inf(1)}
}
