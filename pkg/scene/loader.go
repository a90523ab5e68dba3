package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// fileVec is a vector written as a three-element JSON array
type fileVec [3]float64

func (v fileVec) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// orZero converts an optional vector, treating a missing one as the origin
func (v *fileVec) orZero() core.Vec3 {
	if v == nil {
		return core.Vec3{}
	}
	return v.toVec3()
}

// File is the JSON scene description
type File struct {
	Name       string                  `json:"name"`
	Width      int                     `json:"width,omitempty"`
	Camera     FileCamera              `json:"camera"`
	Sampling   *FileSampling           `json:"sampling,omitempty"`
	Background *FileBackground         `json:"background,omitempty"`
	Materials  map[string]FileMaterial `json:"materials"`
	Spheres    []FileSphere            `json:"spheres"`
}

type FileCamera struct {
	LookFrom      *fileVec `json:"lookfrom,omitempty"`
	LookAt        *fileVec `json:"lookat,omitempty"`
	Up            fileVec  `json:"vup"`
	VFov          float64  `json:"vfov"`
	AspectRatio   float64  `json:"aspect"`
	Aperture      float64  `json:"aperture,omitempty"`
	FocusDistance float64  `json:"focusDist,omitempty"`
}

type FileSampling struct {
	SamplesPerPixel int `json:"samplesPerPixel"`
	MaxDepth        int `json:"maxDepth"`
}

type FileBackground struct {
	Top    fileVec `json:"top"`
	Bottom fileVec `json:"bottom"`
}

// FileMaterial is one of "lambertian" (albedo), "metal" (albedo, fuzz) or
// "dielectric" (ior)
type FileMaterial struct {
	Type   string  `json:"type"`
	Albedo fileVec `json:"albedo,omitempty"`
	Fuzz   float64 `json:"fuzz,omitempty"`
	IOR    float64 `json:"ior,omitempty"`
}

type FileSphere struct {
	Center   fileVec `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// LoadFile reads a Scene from a JSON file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Decode reads a JSON scene description and builds the scene
func Decode(r io.Reader) (*Scene, error) {
	var file File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return file.Build()
}

// Build validates the description and constructs its materials and spheres
func (f *File) Build() (*Scene, error) {
	materials := make(map[string]material.Material, len(f.Materials))
	for id, m := range f.Materials {
		mat, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", id, err)
		}
		materials[id] = mat
	}

	if len(f.Spheres) == 0 {
		return nil, fmt.Errorf("%w: no spheres", ErrInvalidScene)
	}

	b := &builder{}
	for i, s := range f.Spheres {
		mat, ok := materials[s.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q", i, ErrUnknownMaterial, s.Material)
		}
		b.sphere(s.Center.toVec3(), s.Radius, mat)
		if b.err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, b.err)
		}
	}

	sc := &Scene{
		Name: f.Name,
		CameraConfig: renderer.CameraConfig{
			Center:        f.Camera.LookFrom.orZero(),
			LookAt:        f.Camera.LookAt.orZero(),
			Up:            f.Camera.Up.toVec3(),
			VFov:          f.Camera.VFov,
			AspectRatio:   f.Camera.AspectRatio,
			Aperture:      f.Camera.Aperture,
			FocusDistance: f.Camera.FocusDistance,
		},
		World:          b.shapes,
		Background:     integrator.DefaultBackground(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		Width:          f.Width,
	}

	// Unset camera fields fall back to a forward-looking 16:9 camera
	if sc.CameraConfig.Up == (core.Vec3{}) {
		sc.CameraConfig.Up = core.NewVec3(0, 1, 0)
	}
	if sc.CameraConfig.VFov == 0 {
		sc.CameraConfig.VFov = 90
	}
	if sc.CameraConfig.AspectRatio == 0 {
		sc.CameraConfig.AspectRatio = 16.0 / 9.0
	}
	// Without either point the camera sits at the origin looking down -z.
	// Any explicit placement is left for Validate to judge.
	if f.Camera.LookFrom == nil && f.Camera.LookAt == nil {
		sc.CameraConfig.LookAt = core.NewVec3(0, 0, -1)
	}
	if err := sc.CameraConfig.Validate(); err != nil {
		return nil, err
	}

	if sc.Width == 0 {
		sc.Width = DefaultWidth
	}
	if sc.Width < 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidScene, sc.Width)
	}
	if f.Sampling != nil {
		if f.Sampling.SamplesPerPixel > 0 {
			sc.SamplingConfig.SamplesPerPixel = f.Sampling.SamplesPerPixel
		}
		if f.Sampling.MaxDepth > 0 {
			sc.SamplingConfig.MaxDepth = f.Sampling.MaxDepth
		}
	}
	if f.Background != nil {
		sc.Background = integrator.Background{
			Top:    f.Background.Top.toVec3(),
			Bottom: f.Background.Bottom.toVec3(),
		}
	}

	return sc, nil
}

func (m FileMaterial) build() (material.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian":
		return material.NewLambertian(m.Albedo.toVec3()), nil
	case "metal":
		return material.NewMetal(m.Albedo.toVec3(), m.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(m.IOR)
	}
	return nil, fmt.Errorf("%w: type %q", ErrUnknownMaterial, m.Type)
}
