package renderer

import (
	"github.com/achilleasa/whitted/tracer"
	"github.com/achilleasa/whitted/types"
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Viewport dims in world units.
	ViewportW float64
	ViewportH float64

	// Distance from the camera to the projection plane.
	ProjectionPlaneD float64

	// Color for rays that escape the scene.
	Background types.Color

	// Threshold for treating near-zero quantities as zero.
	Epsilon float64

	// Number of reflection bounces.
	MaxDepth int

	// Size of the row worker pool. If zero, one worker per logical CPU is used.
	Workers int
}

// Get the default render options.
func DefaultOptions() Options {
	return Options{
		FrameW:           600,
		FrameH:           600,
		ViewportW:        1,
		ViewportH:        1,
		ProjectionPlaneD: 1,
		Background:       types.RGB(255, 255, 255),
		Epsilon:          1e-4,
		MaxDepth:         3,
	}
}

// Check options for errors.
func (opts Options) Validate() error {
	switch {
	case opts.FrameW == 0 || opts.FrameH == 0:
		return ErrInvalidFrameDims
	case opts.ViewportW <= 0 || opts.ViewportH <= 0:
		return ErrInvalidViewport
	case opts.ProjectionPlaneD <= 0:
		return ErrInvalidProjection
	case opts.Epsilon <= 0:
		return ErrInvalidEpsilon
	case opts.MaxDepth < 0:
		return ErrInvalidDepth
	case opts.Workers < 0:
		return ErrInvalidWorkers
	}
	return nil
}

func (opts Options) tracerOptions() tracer.Options {
	return tracer.Options{
		Background: opts.Background,
		Epsilon:    opts.Epsilon,
		MaxDepth:   opts.MaxDepth,
	}
}
