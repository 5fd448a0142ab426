package mesh

import (
	"errors"

	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
)

var ErrInvalidScale = errors.New("mesh: scale must be positive")

// Placement of a mesh in world space. The mesh is first recentered on its
// bbox center, then scaled, rotated and finally translated.
type Transform struct {
	// Uniform scale; 1 if zero.
	Scale float64

	// Rotation angles in degrees.
	Yaw, Pitch, Roll float64

	Translation types.Vec3
}

// Get the mesh bounding box.
func (m *Mesh) BBox() [2]types.Vec3 {
	if len(m.Vertices) == 0 {
		return [2]types.Vec3{}
	}

	bbox := [2]types.Vec3{m.Vertices[0], m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bbox[0] = types.MinVec3(bbox[0], v)
		bbox[1] = types.MaxVec3(bbox[1], v)
	}
	return bbox
}

// Generate world-space triangles for the mesh using the given transform. All
// triangles share the supplied material.
func (m *Mesh) Triangles(xform Transform, material scene.Material) ([]scene.Triangle, error) {
	scale := xform.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return nil, ErrInvalidScale
	}

	bbox := m.BBox()
	center := bbox[0].Add(bbox[1]).Mul(0.5)
	rot := types.QuatFromYawPitchRoll(xform.Yaw, xform.Pitch, xform.Roll).Mat3()

	world := make([]types.Vec3, len(m.Vertices))
	for index, v := range m.Vertices {
		world[index] = rot.Mul3x1(v.Sub(center).Mul(scale)).Add(xform.Translation)
	}

	tris := make([]scene.Triangle, len(m.Faces))
	for index, face := range m.Faces {
		tris[index] = scene.Triangle{
			Vertices: [3]types.Vec3{world[face[0]], world[face[1]], world[face[2]]},
			Material: material,
		}
	}
	return tris, nil
}
