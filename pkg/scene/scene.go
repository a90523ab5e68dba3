package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// DefaultWidth is the image width used when a scene does not set one
const DefaultWidth = 400

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	CameraConfig   renderer.CameraConfig
	World          geometry.ShapeList // Objects in the scene
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
	Width          int // Image width; height follows from the camera aspect ratio
}

// Height returns the image height implied by the width and aspect ratio
func (s *Scene) Height() int {
	return renderer.ImageHeight(s.Width, s.CameraConfig.AspectRatio)
}

// NewCamera builds the scene camera
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.CameraConfig)
}

// applyCameraOverrides merges overrides into the scene camera, last one winning
func applyCameraOverrides(config renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) renderer.CameraConfig {
	for _, override := range cameraOverrides {
		config = renderer.MergeCameraConfig(config, override)
	}
	return config
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return countShapes(s.World)
}

func countShapes(shape geometry.Shape) int {
	if list, ok := shape.(geometry.ShapeList); ok {
		total := 0
		for _, child := range list {
			total += countShapes(child)
		}
		return total
	}
	return 1
}

// builder collects spheres and materials, keeping the first construction error
type builder struct {
	shapes geometry.ShapeList
	err    error
}

func (b *builder) sphere(center core.Vec3, radius float64, mat material.Material) {
	if b.err != nil {
		return
	}
	s, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		b.err = err
		return
	}
	b.shapes.Add(s)
}

func (b *builder) dielectric(refractiveIndex float64) material.Material {
	d, err := material.NewDielectric(refractiveIndex)
	if err != nil && b.err == nil {
		b.err = err
	}
	return d
}
