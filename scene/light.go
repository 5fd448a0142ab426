package scene

import (
	"fmt"

	"github.com/achilleasa/whitted/types"
)

type LightType uint8

// The closed set of light kinds.
const (
	AmbientLight LightType = iota
	PointLight
	DirectionalLight
)

func (lt LightType) String() string {
	switch lt {
	case AmbientLight:
		return "ambient"
	case PointLight:
		return "point"
	case DirectionalLight:
		return "directional"
	}
	return "unknown"
}

// A scene light. Position is only used by point lights and Direction only by
// directional lights. Directions need not be unit length.
type Light struct {
	Type      LightType
	Intensity float64
	Position  types.Vec3
	Direction types.Vec3
}

// Create an ambient light.
func NewAmbientLight(intensity float64) Light {
	return Light{Type: AmbientLight, Intensity: intensity}
}

// Create a point light.
func NewPointLight(intensity float64, position types.Vec3) Light {
	return Light{Type: PointLight, Intensity: intensity, Position: position}
}

// Create a directional light.
func NewDirectionalLight(intensity float64, direction types.Vec3) Light {
	return Light{Type: DirectionalLight, Intensity: intensity, Direction: direction}
}

func (l Light) validate() error {
	if l.Intensity < 0 {
		return fmt.Errorf("negative intensity %f", l.Intensity)
	}

	switch l.Type {
	case AmbientLight, PointLight:
	case DirectionalLight:
		if l.Direction.Len() == 0 {
			return fmt.Errorf("zero-length direction")
		}
	default:
		return fmt.Errorf("unknown light type %d", l.Type)
	}
	return nil
}
