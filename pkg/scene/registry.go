package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	Description string
	build       func(cameraOverrides ...renderer.CameraConfig) (*Scene, error)
}

var builtins = []SceneInfo{
	{
		ID:          "two-spheres",
		Description: "Diffuse sphere on a diffuse ground sphere",
		build:       NewTwoSpheresScene,
	},
	{
		ID:          "materials",
		Description: "Diffuse, metal and hollow glass spheres side by side",
		build:       NewMaterialsScene,
	},
	{
		ID:          "random",
		Description: "Field of random small spheres with depth of field",
		build: func(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
			return NewRandomScene(DefaultRandomSceneSeed, cameraOverrides...)
		},
	},
	{
		ID:          "mirrors",
		Description: "Two facing mirrors that trap rays until the depth limit",
		build:       NewMirrorsScene,
	},
}

// DefaultSceneID names the scene rendered when none is given
const DefaultSceneID = "two-spheres"

// ListBuiltins returns the built-in scenes in registration order
func ListBuiltins() []SceneInfo {
	return append([]SceneInfo(nil), builtins...)
}

// NewBuiltin creates the built-in scene with the given ID
func NewBuiltin(id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, info := range builtins {
		if info.ID == id {
			return info.build(cameraOverrides...)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}
