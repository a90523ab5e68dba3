package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile        *Tile
	TaskID      int          // Index into the tile grid
	Framebuffer *Framebuffer // Shared framebuffer; tiles never overlap
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Pixels   int
	Samples  int
	Elapsed  time.Duration
	Error    error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	ctx         context.Context
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with room for numTasks queued tiles.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(ctx context.Context, raytracer *Raytracer, numTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, numTasks),   // Buffer for all tiles
		resultQueue: make(chan TileResult, numTasks), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			ctx:         ctx,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.renderTile(task)
	}
}

// renderTile renders one tile, skipping it once the context is done.
// A panic while tracing becomes the tile's error.
func (w *Worker) renderTile(task TileTask) (result TileResult) {
	result = TileResult{TaskID: task.TaskID, WorkerID: w.ID}

	if err := w.ctx.Err(); err != nil {
		result.Error = err
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				result.Error = fmt.Errorf("tile %d: %w", task.Tile.ID, err)
			} else {
				result.Error = fmt.Errorf("tile %d: panic: %v", task.Tile.ID, r)
			}
		}
	}()

	start := time.Now()
	sampler := core.NewRandomSampler(task.Tile.Random)
	result.Samples = w.raytracer.RenderBounds(task.Tile.Bounds, task.Framebuffer, sampler)
	result.Pixels = task.Tile.Bounds.Dx() * task.Tile.Bounds.Dy()
	result.Elapsed = time.Since(start)

	return result
}
