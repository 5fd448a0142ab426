package scene

import (
	"errors"
	"fmt"

	"github.com/achilleasa/whitted/types"
)

var (
	ErrCameraNotDefined = errors.New("scene: no camera defined")
)

// Config describes the scene contents before construction. Triangles must
// already be in world space.
type Config struct {
	Spheres   []Sphere
	Walls     []Wall
	Triangles []Triangle
	Lights    []Light
	Camera    *Camera

	// Max triangles per BVH leaf; DefaultBvhLeafSize if zero.
	BvhLeafSize int
}

// Scene is the immutable render input. Once created by New it is never
// modified and can be shared by any number of goroutines. New copies its
// inputs; callers must treat the exported fields as read-only.
type Scene struct {
	Spheres []Sphere
	Walls   []Wall
	Lights  []Light
	Camera  Camera

	// All triangles are stored and queried through the BVH.
	Bvh *Bvh
}

// Validate config and build a new scene.
func New(cfg Config) (*Scene, error) {
	if cfg.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if cfg.BvhLeafSize < 0 {
		return nil, fmt.Errorf("scene: invalid BVH leaf size %d", cfg.BvhLeafSize)
	}

	for index, s := range cfg.Spheres {
		if s.Radius <= 0 {
			return nil, fmt.Errorf("scene: sphere %d: non-positive radius %f", index, s.Radius)
		}
		if err := s.Material.validate(); err != nil {
			return nil, fmt.Errorf("scene: sphere %d: %w", index, err)
		}
	}

	walls := make([]Wall, len(cfg.Walls))
	for index, w := range cfg.Walls {
		if w.Width <= 0 || w.Height <= 0 {
			return nil, fmt.Errorf("scene: wall %d: non-positive extents %fx%f", index, w.Width, w.Height)
		}
		if w.Normal.Len() == 0 {
			return nil, fmt.Errorf("scene: wall %d: zero-length normal", index)
		}
		if err := w.Material.validate(); err != nil {
			return nil, fmt.Errorf("scene: wall %d: %w", index, err)
		}
		w.setupBasis()
		walls[index] = w
	}

	for index, tri := range cfg.Triangles {
		if err := tri.Material.validate(); err != nil {
			return nil, fmt.Errorf("scene: triangle %d: %w", index, err)
		}
	}

	for index, l := range cfg.Lights {
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("scene: light %d: %w", index, err)
		}
	}

	return &Scene{
		Spheres: append([]Sphere(nil), cfg.Spheres...),
		Walls:   walls,
		Lights:  append([]Light(nil), cfg.Lights...),
		Camera:  *cfg.Camera,
		Bvh:     BuildBvh(cfg.Triangles, cfg.BvhLeafSize),
	}, nil
}

// Find the closest sphere, wall or triangle hit with t in [tMin, tMax).
func (sc *Scene) ClosestHit(o, d types.Vec3, tMin, tMax, eps float64) Hit {
	closest := noHit()

	for index := range sc.Spheres {
		t1, t2 := sc.Spheres[index].Intersect(o, d)
		if t1 >= tMin && t1 < tMax && t1 < closest.T {
			closest = Hit{Type: SpherePrimitive, Index: index, T: t1}
		}
		if t2 >= tMin && t2 < tMax && t2 < closest.T {
			closest = Hit{Type: SpherePrimitive, Index: index, T: t2}
		}
	}

	for index := range sc.Walls {
		t, ok := sc.Walls[index].Intersect(o, d, eps)
		if ok && t >= tMin && t < tMax && t < closest.T {
			closest = Hit{Type: WallPrimitive, Index: index, T: t}
		}
	}

	if closest.Valid() {
		tMax = closest.T
	}
	if triHit := sc.Bvh.ClosestHit(o, d, tMin, tMax, eps); triHit.Valid() {
		closest = triHit
	}

	return closest
}

// Returns true if any primitive is hit with t in [tMin, tMax).
func (sc *Scene) AnyHit(o, d types.Vec3, tMin, tMax, eps float64) bool {
	for index := range sc.Spheres {
		t1, t2 := sc.Spheres[index].Intersect(o, d)
		if (t1 >= tMin && t1 < tMax) || (t2 >= tMin && t2 < tMax) {
			return true
		}
	}

	for index := range sc.Walls {
		if t, ok := sc.Walls[index].Intersect(o, d, eps); ok && t >= tMin && t < tMax {
			return true
		}
	}

	return sc.Bvh.AnyHit(o, d, tMin, tMax, eps)
}

// Lookup the material of the primitive referenced by a hit.
func (sc *Scene) Material(h Hit) Material {
	switch h.Type {
	case SpherePrimitive:
		return sc.Spheres[h.Index].Material
	case WallPrimitive:
		return sc.Walls[h.Index].Material
	case TrianglePrimitive:
		return sc.Bvh.Triangles[h.Index].Material
	default:
		panic(fmt.Sprintf("scene: no material rule for primitive type %s", h.Type))
	}
}

// Scene statistics.
type Stats struct {
	Spheres   int
	Walls     int
	Triangles int
	Lights    map[LightType]int
	Bvh       BvhStats
}

// Collect scene statistics.
func (sc *Scene) Stats() Stats {
	st := Stats{
		Spheres:   len(sc.Spheres),
		Walls:     len(sc.Walls),
		Triangles: len(sc.Bvh.Triangles),
		Lights:    make(map[LightType]int),
		Bvh:       sc.Bvh.Stats,
	}
	for _, l := range sc.Lights {
		st.Lights[l.Type]++
	}
	return st
}
