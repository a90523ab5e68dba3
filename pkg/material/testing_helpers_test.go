package material

import "github.com/df07/go-pathtracer/pkg/core"

// fixedSampler replays the same value for every draw
type fixedSampler struct {
	value core.Vec3
}

func (f fixedSampler) Get1D() float64 { return f.value.X }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value.X, f.value.Y)
}
func (f fixedSampler) Get3D() core.Vec3 { return f.value }
