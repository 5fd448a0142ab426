package reader

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/achilleasa/whitted/asset"
	"github.com/achilleasa/whitted/asset/mesh"
	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
)

type sceneCfg struct {
	Camera      *cameraCfg    `json:"camera"`
	Spheres     []sphereCfg   `json:"spheres,omitempty"`
	Walls       []wallCfg     `json:"walls,omitempty"`
	Triangles   []triangleCfg `json:"triangles,omitempty"`
	Meshes      []meshCfg     `json:"meshes,omitempty"`
	Lights      []lightCfg    `json:"lights,omitempty"`
	BvhLeafSize int           `json:"bvhLeafSize,omitempty"`
}

// Rotation in degrees.
type rotDeg struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

type cameraCfg struct {
	Position types.Vec3 `json:"position"`
	RotDeg   *rotDeg    `json:"rotDeg,omitempty"`

	// Explicit row-major rotation matrix; mutually exclusive with rotDeg.
	Rotation *types.Mat3 `json:"rotation,omitempty"`
}

type materialCfg struct {
	Color types.Color `json:"color"`

	// Omitted for matte surfaces.
	Specular     *int    `json:"specular,omitempty"`
	Reflectivity float64 `json:"reflectivity,omitempty"`
}

type sphereCfg struct {
	Center   types.Vec3  `json:"center"`
	Radius   float64     `json:"radius"`
	Material materialCfg `json:"material"`
}

type wallCfg struct {
	Center       types.Vec3  `json:"center"`
	Normal       types.Vec3  `json:"normal"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	Checkerboard bool        `json:"checkerboard,omitempty"`
	Material     materialCfg `json:"material"`
}

type triangleCfg struct {
	Vertices [3]types.Vec3 `json:"vertices"`
	Material materialCfg   `json:"material"`
}

type meshCfg struct {
	// Path or URL of a wavefront obj file; relative paths resolve against
	// the scene file location.
	File        string      `json:"file"`
	Scale       float64     `json:"scale,omitempty"`
	RotDeg      rotDeg      `json:"rotDeg"`
	Translation types.Vec3  `json:"translation"`
	Material    materialCfg `json:"material"`
}

type lightCfg struct {
	Type      string     `json:"type"`
	Intensity float64    `json:"intensity"`
	Position  types.Vec3 `json:"position"`
	Direction types.Vec3 `json:"direction"`
}

func (mc materialCfg) Build() scene.Material {
	mat := scene.Material{
		Color:        mc.Color,
		Specular:     scene.NoSpecular,
		Reflectivity: mc.Reflectivity,
	}
	if mc.Specular != nil {
		mat.Specular = *mc.Specular
	}
	return mat
}

func (cc cameraCfg) Build() (*scene.Camera, error) {
	switch {
	case cc.RotDeg != nil && cc.Rotation != nil:
		return nil, fmt.Errorf("camera: rotDeg and rotation are mutually exclusive")
	case cc.RotDeg != nil:
		return scene.NewCameraFromAngles(cc.Position, cc.RotDeg.Yaw, cc.RotDeg.Pitch, cc.RotDeg.Roll), nil
	case cc.Rotation != nil:
		cam := scene.NewCamera(cc.Position)
		cam.Rotation = *cc.Rotation
		return cam, nil
	}
	return scene.NewCamera(cc.Position), nil
}

func (lc lightCfg) Build() (scene.Light, error) {
	switch lc.Type {
	case "ambient":
		return scene.NewAmbientLight(lc.Intensity), nil
	case "point":
		return scene.NewPointLight(lc.Intensity, lc.Position), nil
	case "directional":
		return scene.NewDirectionalLight(lc.Intensity, lc.Direction), nil
	}
	return scene.Light{}, fmt.Errorf("unknown light type %q", lc.Type)
}

type jsonSceneReader struct {
	logger log.Logger
}

func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("json scene reader"),
	}
}

// Read scene definition.
func (r *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Config, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	var sc sceneCfg
	dec := json.NewDecoder(sceneRes)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("[%s] error: %w", sceneRes.Path(), err)
	}

	cfg, err := r.build(&sc, sceneRes)
	if err != nil {
		return nil, fmt.Errorf("[%s] error: %w", sceneRes.Path(), err)
	}

	r.logger.Noticef("parsed scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return cfg, nil
}

func (r *jsonSceneReader) build(sc *sceneCfg, sceneRes *asset.Resource) (*scene.Config, error) {
	cfg := &scene.Config{
		BvhLeafSize: sc.BvhLeafSize,
	}

	if sc.Camera != nil {
		cam, err := sc.Camera.Build()
		if err != nil {
			return nil, err
		}
		cfg.Camera = cam
	}

	for _, s := range sc.Spheres {
		cfg.Spheres = append(cfg.Spheres, scene.Sphere{
			Center:   s.Center,
			Radius:   s.Radius,
			Material: s.Material.Build(),
		})
	}

	for _, w := range sc.Walls {
		cfg.Walls = append(cfg.Walls, scene.Wall{
			Center:       w.Center,
			Normal:       w.Normal,
			Width:        w.Width,
			Height:       w.Height,
			Checkerboard: w.Checkerboard,
			Material:     w.Material.Build(),
		})
	}

	for _, tri := range sc.Triangles {
		cfg.Triangles = append(cfg.Triangles, scene.Triangle{
			Vertices: tri.Vertices,
			Material: tri.Material.Build(),
		})
	}

	for index, mc := range sc.Meshes {
		tris, err := r.loadMesh(mc, sceneRes)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", index, err)
		}
		cfg.Triangles = append(cfg.Triangles, tris...)
	}

	for index, lc := range sc.Lights {
		light, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", index, err)
		}
		cfg.Lights = append(cfg.Lights, light)
	}

	return cfg, nil
}

func (r *jsonSceneReader) loadMesh(mc meshCfg, sceneRes *asset.Resource) ([]scene.Triangle, error) {
	if mc.File == "" {
		return nil, fmt.Errorf("missing mesh file")
	}

	res, err := asset.NewResource(mc.File, sceneRes)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	m, err := mesh.Read(res)
	if err != nil {
		return nil, err
	}
	r.logger.Infof(`loaded mesh "%s" from "%s" (%d faces)`, m.Name, res.Path(), len(m.Faces))

	xform := mesh.Transform{
		Scale:       mc.Scale,
		Yaw:         mc.RotDeg.Yaw,
		Pitch:       mc.RotDeg.Pitch,
		Roll:        mc.RotDeg.Roll,
		Translation: mc.Translation,
	}
	return m.Triangles(xform, mc.Material.Build())
}
