package reader

import (
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
)

// Get the built-in scene: three unit spheres lit by a single ambient light
// and viewed from the origin.
func DefaultConfig() *scene.Config {
	matte := func(c types.Color) scene.Material {
		return scene.Material{Color: c, Specular: scene.NoSpecular}
	}

	return &scene.Config{
		Spheres: []scene.Sphere{
			{Center: types.Vec3{0, -1, 3}, Radius: 1, Material: matte(types.RGB(255, 0, 0))},
			{Center: types.Vec3{2, 0, 4}, Radius: 1, Material: matte(types.RGB(0, 0, 255))},
			{Center: types.Vec3{-2, 0, 4}, Radius: 1, Material: matte(types.RGB(0, 255, 0))},
		},
		Lights: []scene.Light{scene.NewAmbientLight(1)},
		Camera: scene.NewCamera(types.Vec3{}),
	}
}
