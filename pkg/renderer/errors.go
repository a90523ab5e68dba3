package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("renderer: max depth must be positive")
	ErrInvalidTileSize   = errors.New("renderer: tile size must be positive")
	ErrInvalidWorkers    = errors.New("renderer: worker count must not be negative")
	ErrInvalidCamera     = errors.New("renderer: invalid camera configuration")
	ErrNilWorld          = errors.New("renderer: world is nil")
	ErrInterrupted       = errors.New("renderer: render interrupted")
)
