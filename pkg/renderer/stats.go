package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for every pixel
	MaxDepth        int           // Bounce budget per camera ray
	Tiles           int           // Number of tiles, 1 for a sequential render
	Duration        time.Duration // Wall-clock render time
	Workers         []WorkerStats // Per-worker breakdown, ordered by worker ID
}

// WorkerStats records the work done by one worker goroutine
type WorkerStats struct {
	ID      int
	Tiles   int
	Pixels  int
	Samples int
	Busy    time.Duration // Time spent inside tiles
}

// SamplesPerSecond returns the camera-ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// addTile folds a finished tile into the worker's record
func (ws *WorkerStats) addTile(pixels, samples int, busy time.Duration) {
	ws.Tiles++
	ws.Pixels += pixels
	ws.Samples += samples
	ws.Busy += busy
}
