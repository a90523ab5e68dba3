package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ToImage converts fb to an opaque RGBA image using the same quantization as the PPM writer
func ToImage(fb *renderer.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := Quantize(fb.At(x, y), fb.Samples)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes fb as a PNG image
func WritePNG(w io.Writer, fb *renderer.Framebuffer) error {
	return png.Encode(w, ToImage(fb))
}
