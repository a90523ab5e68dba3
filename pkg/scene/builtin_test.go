package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestBuiltinScenesBuild(t *testing.T) {
	for _, info := range ListBuiltins() {
		t.Run(info.ID, func(t *testing.T) {
			sc, err := NewBuiltin(info.ID)
			if err != nil {
				t.Fatalf("NewBuiltin(%q): %v", info.ID, err)
			}
			if sc.Name != info.ID {
				t.Errorf("Expected name %q, got %q", info.ID, sc.Name)
			}
			if sc.GetPrimitiveCount() == 0 {
				t.Error("Expected at least one sphere")
			}
			if _, err := sc.NewCamera(); err != nil {
				t.Errorf("Camera: %v", err)
			}
			if sc.Height() <= 0 {
				t.Errorf("Expected positive height, got %d", sc.Height())
			}
			if sc.SamplingConfig.SamplesPerPixel <= 0 || sc.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Invalid sampling config %+v", sc.SamplingConfig)
			}
			if info.Description == "" {
				t.Error("Expected a description")
			}
		})
	}
}

func TestNewBuiltinUnknown(t *testing.T) {
	if _, err := NewBuiltin("cornell"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestTwoSpheresScene(t *testing.T) {
	sc, err := NewTwoSpheresScene()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Width != 400 || sc.Height() != 225 {
		t.Errorf("Expected 400x225, got %dx%d", sc.Width, sc.Height())
	}

	// A ray straight ahead hits the small sphere at t = 0.5
	hit, ok := sc.World.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 1000)
	if !ok || hit.T != 0.5 {
		t.Errorf("Expected hit at t=0.5, got %v %v", hit, ok)
	}
}

func TestMaterialsSceneHollowGlass(t *testing.T) {
	sc, err := NewMaterialsScene()
	if err != nil {
		t.Fatal(err)
	}

	var shells []*geometry.Sphere
	for _, shape := range sc.World {
		if s, ok := shape.(*geometry.Sphere); ok {
			if _, glass := s.Material.(*material.Dielectric); glass {
				shells = append(shells, s)
			}
		}
	}
	if len(shells) != 2 {
		t.Fatalf("Expected two glass spheres, got %d", len(shells))
	}

	outer, inner := shells[0], shells[1]
	if outer.Center != inner.Center || inner.Radius >= outer.Radius {
		t.Errorf("Expected a concentric inner sphere, got %v r=%v and %v r=%v", outer.Center, outer.Radius, inner.Center, inner.Radius)
	}
	outerIOR := outer.Material.(*material.Dielectric).RefractiveIndex
	innerIOR := inner.Material.(*material.Dielectric).RefractiveIndex
	if outerIOR*innerIOR < 1-1e-12 || outerIOR*innerIOR > 1+1e-12 {
		t.Errorf("Expected reciprocal indices, got %v and %v", outerIOR, innerIOR)
	}
}

func TestRandomSceneLayoutIsSeeded(t *testing.T) {
	a, err := NewRandomScene(7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRandomScene(7)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewRandomScene(8)
	if err != nil {
		t.Fatal(err)
	}

	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("Same seed produced %d and %d spheres", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	for i := range a.World {
		if a.World[i].(*geometry.Sphere).Center != b.World[i].(*geometry.Sphere).Center {
			t.Fatalf("Sphere %d differs for the same seed", i)
		}
	}

	same := a.GetPrimitiveCount() == c.GetPrimitiveCount()
	if same {
		for i := range a.World {
			if a.World[i].(*geometry.Sphere).Center != c.World[i].(*geometry.Sphere).Center {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced the same layout")
	}
}

func TestBuiltinCameraOverrides(t *testing.T) {
	override := renderer.CameraConfig{
		Center: core.NewVec3(1, 1, 1),
		VFov:   45,
	}
	sc, err := NewBuiltin("two-spheres", override)
	if err != nil {
		t.Fatal(err)
	}

	if sc.CameraConfig.Center != override.Center || sc.CameraConfig.VFov != 45 {
		t.Errorf("Overrides not applied: %+v", sc.CameraConfig)
	}
	if sc.CameraConfig.LookAt != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected default look-at to survive, got %v", sc.CameraConfig.LookAt)
	}
}
