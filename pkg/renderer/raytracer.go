package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Raytracer turns a world and a camera into a framebuffer of color sums
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	config     Config
	logger     log.Logger
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX    int // Tile coordinates (not pixel coordinates)
	TileY    int
	Bounds   image.Rectangle
	WorkerID int

	// Progress information
	TileNumber int // Tiles completed so far, including this one (1-based)
	TotalTiles int
}

// NewRaytracer creates a new raytracer.
// A nil integrator selects path tracing against the default sky; a nil logger
// logs under the "renderer" module.
func NewRaytracer(world geometry.Shape, camera *Camera, integ integrator.Integrator, config Config, logger log.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is nil", ErrInvalidCamera)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if integ == nil {
		integ = integrator.NewPathTracingIntegrator(integrator.DefaultBackground())
	}
	if logger == nil {
		logger = log.New("renderer")
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
		logger:     logger,
	}, nil
}

// samplePixel returns the sum of SamplesPerPixel color estimates for viewport
// column i and viewport row j, where row 0 is the bottom of the image
func (rt *Raytracer) samplePixel(i, j int, sampler core.Sampler) core.Vec3 {
	// A single-pixel axis would divide by zero
	denomX := float64(max(1, rt.config.Width-1))
	denomY := float64(max(1, rt.config.Height-1))

	sum := core.Vec3{X: 0, Y: 0, Z: 0}
	for sample := 0; sample < rt.config.Sampling.SamplesPerPixel; sample++ {
		u := (float64(i) + sampler.Get1D()) / denomX
		v := (float64(j) + sampler.Get1D()) / denomY

		ray := rt.camera.GetRay(u, v, sampler)
		sum = sum.Add(rt.integrator.RayColor(ray, rt.world, sampler, rt.config.Sampling.MaxDepth))
	}
	return sum
}

// RenderBounds renders the pixels inside bounds into fb and returns the number
// of samples taken. Pixels are visited top row first, left to right.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *Framebuffer, sampler core.Sampler) int {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		j := rt.config.Height - 1 - y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			fb.Set(x, y, rt.samplePixel(x, j, sampler))
		}
	}
	return bounds.Dx() * bounds.Dy() * rt.config.Sampling.SamplesPerPixel
}

// RenderSequential renders the image on the calling goroutine with a single
// generator seeded from Config.Seed. The context is checked between scanlines.
func (rt *Raytracer) RenderSequential(ctx context.Context) (fb *Framebuffer, stats RenderStats, err error) {
	width, height := rt.config.Width, rt.config.Height
	fb = NewFramebuffer(width, height, rt.config.Sampling.SamplesPerPixel)
	sampler := core.NewSeededSampler(rt.config.Seed)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			fb = nil
			if rErr, ok := r.(error); ok {
				err = fmt.Errorf("sequential render: %w", rErr)
			} else {
				err = fmt.Errorf("sequential render: panic: %v", r)
			}
		}
	}()

	rt.logger.Infof("Rendering %dx%d sequentially (%d spp, depth %d)",
		width, height, rt.config.Sampling.SamplesPerPixel, rt.config.Sampling.MaxDepth)

	for y := 0; y < height; y++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, RenderStats{}, fmt.Errorf("%w: %w", ErrInterrupted, ctxErr)
		}
		rt.logger.Infof("Scanlines remaining: %d", height-y)
		rt.RenderBounds(image.Rect(0, y, width, y+1), fb, sampler)
	}

	stats = rt.newStats(1)
	stats.Duration = time.Since(start)
	stats.Workers = []WorkerStats{{
		ID:      0,
		Tiles:   1,
		Pixels:  stats.TotalPixels,
		Samples: stats.TotalSamples,
		Busy:    stats.Duration,
	}}

	rt.logger.Infof("Sequential render finished in %v", stats.Duration)
	return fb, stats, nil
}

// Render renders the image in parallel tiles. Tile t samples with a generator
// seeded from Config.Seed + t, so the result does not depend on the worker count.
// onTile, if set, is called from the calling goroutine after every finished tile.
func (rt *Raytracer) Render(ctx context.Context, onTile func(TileCompletionResult)) (*Framebuffer, RenderStats, error) {
	width, height, tileSize := rt.config.Width, rt.config.Height, rt.config.TileSize
	fb := NewFramebuffer(width, height, rt.config.Sampling.SamplesPerPixel)
	tiles := NewTileGrid(width, height, tileSize, rt.config.Seed)
	start := time.Now()

	// Workers stop picking up tiles once a tile fails
	renderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(renderCtx, rt, len(tiles), rt.config.NumWorkers)
	numWorkers := pool.GetNumWorkers()

	rt.logger.Infof("Rendering %dx%d in %d tiles using %d workers (%d spp, depth %d)",
		width, height, len(tiles), numWorkers, rt.config.Sampling.SamplesPerPixel, rt.config.Sampling.MaxDepth)

	pool.Start()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:        tile,
			TaskID:      taskID,
			Framebuffer: fb,
		})
	}

	workers := make([]WorkerStats, numWorkers)
	for i := range workers {
		workers[i].ID = i
	}

	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = errors.New("renderer: worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
				cancel()
			}
			continue
		}
		if renderErr != nil {
			continue
		}

		workers[result.WorkerID].addTile(result.Pixels, result.Samples, result.Elapsed)

		tile := tiles[result.TaskID]
		rt.logger.Debugf("Tile %d/%d done by worker %d in %v", i+1, len(tiles), result.WorkerID, result.Elapsed)
		if onTile != nil {
			onTile(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / tileSize,
				TileY:      tile.Bounds.Min.Y / tileSize,
				Bounds:     tile.Bounds,
				WorkerID:   result.WorkerID,
				TileNumber: i + 1,
				TotalTiles: len(tiles),
			})
		}
	}
	pool.Stop()

	if ctxErr := ctx.Err(); ctxErr != nil {
		rt.logger.Warningf("Render cancelled: %v", ctxErr)
		return nil, RenderStats{}, fmt.Errorf("%w: %w", ErrInterrupted, ctxErr)
	}
	if renderErr != nil {
		return nil, RenderStats{}, renderErr
	}

	stats := rt.newStats(len(tiles))
	stats.Duration = time.Since(start)
	stats.Workers = workers

	rt.logger.Infof("Render finished in %v", stats.Duration)
	return fb, stats, nil
}

func (rt *Raytracer) newStats(tiles int) RenderStats {
	pixels := rt.config.Width * rt.config.Height
	return RenderStats{
		TotalPixels:     pixels,
		TotalSamples:    pixels * rt.config.Sampling.SamplesPerPixel,
		SamplesPerPixel: rt.config.Sampling.SamplesPerPixel,
		MaxDepth:        rt.config.Sampling.MaxDepth,
		Tiles:           tiles,
	}
}
