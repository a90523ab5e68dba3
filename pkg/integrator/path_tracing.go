package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

const (
	// ShadowAcneEpsilon is the minimum hit distance, which keeps scattered rays
	// from re-hitting the surface they leave
	ShadowAcneEpsilon = 0.001

	// RecursionLimit is the largest bounce budget traced by recursion.
	// Larger budgets run as a loop to keep the call stack flat.
	RecursionLimit = 64
)

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		background: background,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	if depth > RecursionLimit {
		return pt.rayColorIterative(ray, world, sampler, depth)
	}
	return pt.rayColorRecursive(ray, world, sampler, depth)
}

func (pt *PathTracingIntegrator) rayColorRecursive(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.background.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColorRecursive(scatter.Scattered, world, sampler, depth-1))
}

// rayColorIterative traces the same path as rayColorRecursive, carrying the product
// of attenuations forward instead of applying it on the way back
func (pt *PathTracingIntegrator) rayColorIterative(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.background.Color(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{X: 0, Y: 0, Z: 0}
}
