package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrInvalidFrameDims  = errors.New("renderer: frame dimensions must be positive")
	ErrInvalidViewport   = errors.New("renderer: viewport dimensions must be positive")
	ErrInvalidProjection = errors.New("renderer: projection plane distance must be positive")
	ErrInvalidEpsilon    = errors.New("renderer: epsilon must be positive")
	ErrInvalidDepth      = errors.New("renderer: max reflection depth must not be negative")
	ErrInvalidWorkers    = errors.New("renderer: worker count must not be negative")
	ErrRowFailed         = errors.New("renderer: row render failed")
)
