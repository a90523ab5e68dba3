package renderer

import (
	"fmt"
	"math"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Config describes a single render
type Config struct {
	Width    int
	Height   int
	Sampling SamplingConfig
	Seed     int64 // Base seed; tile t renders with Seed + t

	TileSize   int // Edge length of a square tile in pixels
	NumWorkers int // Parallel workers, 0 = use CPU count
}

// DefaultConfig returns a 16:9 image at 400 pixels wide
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     ImageHeight(400, 16.0/9.0),
		Sampling:   DefaultSamplingConfig(),
		Seed:       42,
		TileSize:   32,
		NumWorkers: 0,
	}
}

// ImageHeight derives the pixel height for a width and aspect ratio, truncating
func ImageHeight(width int, aspectRatio float64) int {
	if !(aspectRatio > 0) || math.IsInf(aspectRatio, 0) {
		return 0
	}
	return int(float64(width) / aspectRatio)
}

// Validate reports the first configuration problem found
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Sampling.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.Sampling.SamplesPerPixel)
	}
	if c.Sampling.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.Sampling.MaxDepth)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTileSize, c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.NumWorkers)
	}
	return nil
}
