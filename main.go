package main

import (
	"os"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// renderFlags are accepted both by the render command and at the top level,
// where render is the default action
var renderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: scene.DefaultSceneID,
		Usage: "built-in scene to render (see the scenes command)",
	},
	cli.StringFlag{
		Name:  "scene-file",
		Usage: "render a JSON scene description instead of a built-in scene",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width in pixels (0 = scene default)",
	},
	cli.Float64Flag{
		Name:  "aspect",
		Usage: "image aspect ratio, width / height (default: the scene's)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (0 = scene default)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum ray bounces (0 = scene default)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "random seed; the same seed reproduces the same image",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "parallel workers (0 = one per CPU)",
	},
	cli.IntFlag{
		Name:  "tile-size",
		Value: 32,
		Usage: "tile edge length in pixels for parallel rendering",
	},
	cli.BoolFlag{
		Name:  "sequential",
		Usage: "render scanline by scanline on a single goroutine",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "-",
		Usage: "output image file, - for stdout",
	},
	cli.StringFlag{
		Name:  "format",
		Usage: "output format, ppm or png (default: from the file extension, else ppm)",
	},
	cli.StringFlag{
		Name:  "lookfrom",
		Usage: "camera position as x,y,z",
	},
	cli.StringFlag{
		Name:  "lookat",
		Usage: "camera target as x,y,z",
	},
	cli.StringFlag{
		Name:  "vup",
		Usage: "camera up vector as x,y,z",
	},
	cli.Float64Flag{
		Name:  "vfov",
		Usage: "vertical field of view in degrees",
	},
	cli.Float64Flag{
		Name:  "aperture",
		Usage: "lens aperture for depth of field, 0 for a pinhole camera",
	},
	cli.Float64Flag{
		Name:  "focus-dist",
		Usage: "distance to the focus plane (0 = distance to the look-at point)",
	},
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render sphere scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}, renderFlags...)
	app.Action = RenderImage
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image",
			Description: `
Render a built-in scene or a JSON scene file. The image is written as plain
PPM to stdout unless --out names a file.

Rendering is deterministic for a given seed: parallel renders produce the same
image regardless of the number of workers.`,
			Flags:  renderFlags,
			Action: RenderImage,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
