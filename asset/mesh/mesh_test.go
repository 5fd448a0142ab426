package mesh

import (
	"math"
	"strings"
	"testing"

	"github.com/achilleasa/whitted/asset"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
)

func mockResource(payload string) *asset.Resource {
	return asset.NewResourceFromStream("embedded.obj", strings.NewReader(payload))
}

func TestReadMesh(t *testing.T) {
	payload := `
# a quad and a triangle
o plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
usemtl ignored
f 1//1 2//1 3//1 4//1
v 0 0 1
f -1/1 1/1 2/1
`
	m, err := Read(mockResource(payload))
	if err != nil {
		t.Fatal(err)
	}

	if m.Name != "plane" {
		t.Fatalf("expected mesh name to be %q; got %q", "plane", m.Name)
	}
	if len(m.Vertices) != 5 {
		t.Fatalf("expected 5 vertices; got %d", len(m.Vertices))
	}

	expFaces := [][3]int{{0, 1, 2}, {0, 2, 3}, {4, 0, 1}}
	if len(m.Faces) != len(expFaces) {
		t.Fatalf("expected %d faces; got %d", len(expFaces), len(m.Faces))
	}
	for index, exp := range expFaces {
		if m.Faces[index] != exp {
			t.Fatalf("[face %d] expected indices %v; got %v", index, exp, m.Faces[index])
		}
	}
}

func TestReadMeshDefaultsNameToResource(t *testing.T) {
	m, err := Read(mockResource("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "embedded.obj" {
		t.Fatalf("expected mesh name to default to the resource name; got %q", m.Name)
	}
}

func TestReadMeshErrors(t *testing.T) {
	type spec struct {
		payload  string
		expError string
	}
	specs := []spec{
		{"v 0 0\n", "[embedded.obj: 1] error: unsupported syntax for \"v\"; expected 3 arguments; got 2"},
		{"v 0 0 zero\n", "[embedded.obj: 1] error: strconv.ParseFloat"},
		{"v 0 0 0\nv 1 0 0\nf 1 2 3\n", "[embedded.obj: 3] error: could not parse vertex coord for face argument 2: index 3 out of bounds"},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n", "[embedded.obj: 4] error: unsupported syntax for \"f\""},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3 1 2\n", "[embedded.obj: 4] error: unsupported syntax for \"f\""},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2 3\n", "[embedded.obj: 4] error: expected each face argument to contain 2 indices; arg 1 contains 1 indices"},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf /1 2 3\n", "[embedded.obj: 4] error: face argument 0 does not include a vertex index"},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 2 3\n", "[embedded.obj: 4] error: could not parse vertex coord for face argument 0: index -4 out of bounds"},
		{"o\n", "[embedded.obj: 1] error: unsupported syntax for \"o\""},
		{"v 0 0 0\n", "[embedded.obj] error: mesh contains no faces"},
	}

	for index, s := range specs {
		_, err := Read(mockResource(s.payload))
		if err == nil || !strings.HasPrefix(err.Error(), s.expError) {
			t.Fatalf("[spec %d] expected error with prefix %q; got %v", index, s.expError, err)
		}
	}
}

func TestMeshTriangles(t *testing.T) {
	m := &Mesh{
		Vertices: []types.Vec3{{4, 4, 4}, {6, 4, 4}, {5, 6, 4}, {5, 5, 6}},
		Faces:    [][3]int{{0, 1, 2}, {0, 1, 3}},
	}
	mat := scene.Material{Color: types.RGB(10, 20, 30), Specular: 5}

	type spec struct {
		xform   Transform
		vertex  types.Vec3
		expVert types.Vec3
	}
	specs := []spec{
		// recenter on bbox center (5, 5, 5)
		{Transform{}, m.Vertices[0], types.Vec3{-1, -1, -1}},
		{Transform{Scale: 2}, m.Vertices[1], types.Vec3{2, -2, -2}},
		{Transform{Scale: 1, Translation: types.Vec3{0, 0, 10}}, m.Vertices[0], types.Vec3{-1, -1, 9}},
		// yaw rotates +Z onto +X
		{Transform{Yaw: 90}, m.Vertices[3], types.Vec3{1, 0, 0}},
	}

	for index, s := range specs {
		tris, err := m.Triangles(s.xform, mat)
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if len(tris) != len(m.Faces) {
			t.Fatalf("[spec %d] expected %d triangles; got %d", index, len(m.Faces), len(tris))
		}

		var got types.Vec3
		found := false
		for faceIndex, face := range m.Faces {
			for i, vIndex := range face {
				if m.Vertices[vIndex] == s.vertex {
					got = tris[faceIndex].Vertices[i]
					found = true
				}
			}
			if tris[faceIndex].Material != mat {
				t.Fatalf("[spec %d] expected triangle %d to use the mesh material", index, faceIndex)
			}
		}
		if !found {
			t.Fatalf("[spec %d] vertex %v is not referenced by any face", index, s.vertex)
		}
		if got.Sub(s.expVert).Len() > 1e-9 {
			t.Fatalf("[spec %d] expected world vertex %v; got %v", index, s.expVert, got)
		}
	}

	if _, err := m.Triangles(Transform{Scale: -1}, mat); err != ErrInvalidScale {
		t.Fatalf("expected error %v; got %v", ErrInvalidScale, err)
	}
}

func TestMeshBBox(t *testing.T) {
	m := &Mesh{Vertices: []types.Vec3{{1, -2, 3}, {-1, 5, 0}, {0, 0, -math.Pi}}}
	bbox := m.BBox()
	if bbox[0] != (types.Vec3{-1, -2, -math.Pi}) || bbox[1] != (types.Vec3{1, 5, 3}) {
		t.Fatalf("unexpected bbox %v", bbox)
	}
}
