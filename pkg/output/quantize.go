package output

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// maxIntensity keeps a channel of exactly 1.0 from overflowing to 256
const maxIntensity = 0.999

// Quantize averages a pixel's color sum over samples, applies gamma 2 and maps
// each channel to [0, 255]. Negative and NaN channels become 0.
func Quantize(sum core.Vec3, samples int) (r, g, b uint8) {
	scale := 1.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}
	return quantizeChannel(sum.X * scale), quantizeChannel(sum.Y * scale), quantizeChannel(sum.Z * scale)
}

func quantizeChannel(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	c = math.Min(math.Sqrt(c), maxIntensity)
	return uint8(256 * c)
}
