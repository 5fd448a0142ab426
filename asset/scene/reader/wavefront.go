package reader

import (
	"github.com/achilleasa/whitted/asset"
	"github.com/achilleasa/whitted/asset/mesh"
	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
)

// Presents a standalone obj file as a scene. The mesh is centered at the
// origin and viewed from -Z under a fixed light rig.
type wavefrontSceneReader struct {
	logger log.Logger
}

func newWavefrontSceneReader() *wavefrontSceneReader {
	return &wavefrontSceneReader{
		logger: log.New("wavefront scene reader"),
	}
}

// Read scene definition.
func (r *wavefrontSceneReader) Read(sceneRes *asset.Resource) (*scene.Config, error) {
	r.logger.Noticef(`parsing mesh scene from "%s"`, sceneRes.Path())

	m, err := mesh.Read(sceneRes)
	if err != nil {
		return nil, err
	}

	mat := scene.Material{Color: types.RGB(180, 180, 180), Specular: 100}
	tris, err := m.Triangles(mesh.Transform{}, mat)
	if err != nil {
		return nil, err
	}

	// Back the camera off far enough for the whole mesh to fit a 1x1
	// viewport at unit projection distance.
	bbox := m.BBox()
	extent := bbox[1].Sub(bbox[0]).Len()
	if extent == 0 {
		extent = 1
	}

	return &scene.Config{
		Triangles: tris,
		Lights: []scene.Light{
			scene.NewAmbientLight(0.2),
			scene.NewDirectionalLight(0.8, types.Vec3{1, 1, -1}),
		},
		Camera: scene.NewCamera(types.Vec3{0, 0, -1.5 * extent}),
	}, nil
}
