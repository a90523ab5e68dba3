package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still image.
func RenderImage(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	camera, err := sc.NewCamera()
	if err != nil {
		return err
	}

	width := pickInt(ctx.Int("width"), sc.Width)
	config := renderer.Config{
		Width:  width,
		Height: renderer.ImageHeight(width, sc.CameraConfig.AspectRatio),
		Sampling: renderer.SamplingConfig{
			SamplesPerPixel: pickInt(ctx.Int("spp"), sc.SamplingConfig.SamplesPerPixel),
			MaxDepth:        pickInt(ctx.Int("depth"), sc.SamplingConfig.MaxDepth),
		},
		Seed:       ctx.Int64("seed"),
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
	}

	rt, err := renderer.NewRaytracer(sc.World, camera,
		integrator.NewPathTracingIntegrator(sc.Background), config, log.New("renderer"))
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q at %dx%d, %d spp, depth %d",
		sc.Name, config.Width, config.Height, config.Sampling.SamplesPerPixel, config.Sampling.MaxDepth)

	// Ctrl-C stops the render between tiles
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		fb    *renderer.Framebuffer
		stats renderer.RenderStats
	)
	if ctx.Bool("sequential") {
		fb, stats, err = rt.RenderSequential(renderCtx)
	} else {
		fb, stats, err = rt.Render(renderCtx, func(result renderer.TileCompletionResult) {
			logger.Infof("tiles remaining: %d", result.TotalTiles-result.TileNumber)
		})
	}
	if err != nil {
		return err
	}

	if err := writeImage(ctx.String("out"), ctx.String("format"), fb, ctx.App.Writer); err != nil {
		return err
	}

	displayRenderStats(stats)
	return nil
}

// loadScene builds the selected scene and applies the camera flags to it
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	sc, err := createScene(ctx.String("scene"), ctx.String("scene-file"))
	if err != nil {
		return nil, err
	}
	if err := applyCameraFlags(ctx, &sc.CameraConfig); err != nil {
		return nil, err
	}
	return sc, nil
}

// createScene loads the scene file if one is given, otherwise the named built-in scene
func createScene(sceneID, sceneFile string) (*scene.Scene, error) {
	if sceneFile == "" {
		return scene.NewBuiltin(sceneID)
	}
	return scene.LoadFile(sceneFile)
}

// applyCameraFlags copies every camera flag given on the command line onto
// config. A flag set to zero still counts, so --lookat 0,0,0 aims at the origin.
func applyCameraFlags(ctx *cli.Context, config *renderer.CameraConfig) error {
	scalars := []struct {
		flag   string
		target *float64
	}{
		{"vfov", &config.VFov},
		{"aspect", &config.AspectRatio},
		{"aperture", &config.Aperture},
		{"focus-dist", &config.FocusDistance},
	}
	for _, s := range scalars {
		if ctx.IsSet(s.flag) {
			*s.target = ctx.Float64(s.flag)
		}
	}

	vectors := []struct {
		flag   string
		target *core.Vec3
	}{
		{"lookfrom", &config.Center},
		{"lookat", &config.LookAt},
		{"vup", &config.Up},
	}
	for _, v := range vectors {
		if !ctx.IsSet(v.flag) {
			continue
		}
		parsed, err := parseVec3(ctx.String(v.flag))
		if err != nil {
			return fmt.Errorf("--%s: %w", v.flag, err)
		}
		*v.target = parsed
	}

	return nil
}

// parseVec3 parses "x,y,z"
func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: expected x,y,z, got %q", renderer.ErrInvalidCamera, value)
	}

	var components [3]float64
	for i, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("%w: %q: %v", renderer.ErrInvalidCamera, value, err)
		}
		components[i] = c
	}

	v := core.NewVec3(components[0], components[1], components[2])
	if !v.IsFinite() {
		return core.Vec3{}, fmt.Errorf("%w: %q is not finite", renderer.ErrInvalidCamera, value)
	}
	return v, nil
}

func pickInt(flagValue, sceneValue int) int {
	if flagValue != 0 {
		return flagValue
	}
	return sceneValue
}

// writeImage encodes fb to path, or to stdout when path is "-"
func writeImage(path, formatName string, fb *renderer.Framebuffer, stdout io.Writer) error {
	format := output.FormatForPath(path, output.FormatPPM)
	if formatName != "" {
		var err error
		if format, err = output.ParseFormat(formatName); err != nil {
			return err
		}
	}

	if path == "-" {
		return output.Write(stdout, fb, format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := output.Write(f, fb, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Noticef("wrote %s image to %s", format, path)
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "% of frame", "Busy time"})
	for _, stat := range stats.Workers {
		percent := 0.0
		if stats.TotalSamples > 0 {
			percent = 100 * float64(stat.Samples) / float64(stats.TotalSamples)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Tiles),
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			stat.Busy.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f/s", stats.SamplesPerSecond()),
		stats.Duration.String(),
	})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
