package scene

import (
	"fmt"

	"github.com/achilleasa/whitted/types"
)

// Specular exponent value that disables the specular term.
const NoSpecular = -1

// Defines the surface properties shared by all primitives.
type Material struct {
	// Base color.
	Color types.Color

	// Phong shininess exponent or NoSpecular.
	Specular int

	// Fraction of the final color taken from the reflected ray, in [0, 1].
	Reflectivity float64
}

func (m Material) validate() error {
	if m.Specular < 0 && m.Specular != NoSpecular {
		return fmt.Errorf("invalid specular exponent %d", m.Specular)
	}
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("reflectivity %f outside [0, 1]", m.Reflectivity)
	}
	return nil
}
