package scene

import (
	"fmt"

	"github.com/achilleasa/whitted/types"
)

// The camera type positions the eye and orients view-space rays.
type Camera struct {
	Position types.Vec3

	// Rotation applied to view-space ray directions.
	Rotation types.Mat3
}

// Create a camera at position looking down +Z.
func NewCamera(position types.Vec3) *Camera {
	return &Camera{
		Position: position,
		Rotation: types.Ident3(),
	}
}

// Create a camera whose orientation is given by yaw, pitch and roll angles in degrees.
func NewCameraFromAngles(position types.Vec3, yaw, pitch, roll float64) *Camera {
	return &Camera{
		Position: position,
		Rotation: types.QuatFromYawPitchRoll(yaw, pitch, roll).Mat3(),
	}
}

// Rotate a view-space direction into world space.
func (c *Camera) WorldDir(viewDir types.Vec3) types.Vec3 {
	return c.Rotation.Mul3x1(viewDir)
}

func (c *Camera) String() string {
	r := c.Rotation
	return fmt.Sprintf(
		"Camera:\nPos : (%3.3f, %3.3f, %3.3f)\nRot : (%3.3f, %3.3f, %3.3f)\n      (%3.3f, %3.3f, %3.3f)\n      (%3.3f, %3.3f, %3.3f)",
		c.Position[0], c.Position[1], c.Position[2],
		r[0], r[1], r[2],
		r[3], r[4], r[5],
		r[6], r[7], r[8],
	)
}
