package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// Framebuffer holds per-pixel color sums. Row 0 is the top of the image.
type Framebuffer struct {
	Width   int
	Height  int
	Samples int // Samples accumulated into every pixel
	pixels  []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height, samples int) *Framebuffer {
	return &Framebuffer{
		Width:   width,
		Height:  height,
		Samples: samples,
		pixels:  make([]core.Vec3, width*height),
	}
}

// At returns the color sum of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.Width+x]
}

// Set stores the color sum of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, sum core.Vec3) {
	fb.pixels[y*fb.Width+x] = sum
}
