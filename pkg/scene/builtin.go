package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// DefaultRandomSceneSeed fixes the layout of the registered random scene
const DefaultRandomSceneSeed = 1

// NewTwoSpheresScene creates a small diffuse sphere resting on a huge one.
// Rendered at 1 sample and depth 1 with a fixed seed it is the regression scene.
func NewTwoSpheresScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
	}

	b := &builder{}
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	b.sphere(core.NewVec3(0, -100.5, -1), 100, gray)
	b.sphere(core.NewVec3(0, 0, -1), 0.5, gray)
	if b.err != nil {
		return nil, b.err
	}

	return &Scene{
		Name:         "two-spheres",
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		World:        b.shapes,
		Background:   integrator.DefaultBackground(),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		Width: DefaultWidth,
	}, nil
}

// NewMaterialsScene creates one sphere per material on a diffuse ground.
// The left sphere is hollow glass: a glass shell around an air bubble.
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 16.0 / 9.0,
	}

	b := &builder{}
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := b.dielectric(1.5)
	bubble := b.dielectric(1.0 / 1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	b.sphere(core.NewVec3(0, -100.5, -1), 100, ground)
	b.sphere(core.NewVec3(0, 0, -1), 0.5, center)
	b.sphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	b.sphere(core.NewVec3(-1, 0, -1), 0.4, bubble)
	b.sphere(core.NewVec3(1, 0, -1), 0.5, gold)
	if b.err != nil {
		return nil, b.err
	}

	return &Scene{
		Name:         "materials",
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		World:        b.shapes,
		Background:   integrator.DefaultBackground(),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		Width: DefaultWidth,
	}, nil
}

// NewRandomScene creates a field of small random spheres around three large ones.
// The layout depends only on layoutSeed.
func NewRandomScene(layoutSeed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	random := rand.New(rand.NewSource(layoutSeed))
	sampler := core.NewRandomSampler(random)

	b := &builder{}
	b.sphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for c := -11; c < 11; c++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())

			// Keep the space around the large metal sphere free
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = b.dielectric(1.5)
			}
			b.sphere(center, 0.2, mat)
		}
	}

	b.sphere(core.NewVec3(0, 1, 0), 1.0, b.dielectric(1.5))
	b.sphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	b.sphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	if b.err != nil {
		return nil, b.err
	}

	return &Scene{
		Name:         "random",
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		World:        b.shapes,
		Background:   integrator.DefaultBackground(),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 50,
			MaxDepth:        50,
		},
		Width: 600,
	}, nil
}

// NewMirrorsScene creates two facing mirror spheres. Rays caught between them
// bounce until the depth limit, so the gap darkens as the budget shrinks.
func NewMirrorsScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60.0,
		AspectRatio: 16.0 / 9.0,
	}

	b := &builder{}
	mirror := material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0.0)
	b.sphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.3, 0.5, 0.3)))
	b.sphere(core.NewVec3(-1.02, 0.3, -1), 1.0, mirror)
	b.sphere(core.NewVec3(1.02, 0.3, -1), 1.0, mirror)
	b.sphere(core.NewVec3(0, -0.3, -0.5), 0.2, material.NewLambertian(core.NewVec3(0.8, 0.2, 0.1)))
	if b.err != nil {
		return nil, b.err
	}

	return &Scene{
		Name:         "mirrors",
		CameraConfig: applyCameraOverrides(defaultCameraConfig, cameraOverrides),
		World:        b.shapes,
		Background:   integrator.DefaultBackground(),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 50,
			MaxDepth:        200,
		},
		Width: DefaultWidth,
	}, nil
}
