package main

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Spheres", "Resolution", "Samples", "Depth", "Description"})

	for _, info := range scene.ListBuiltins() {
		sc, err := scene.NewBuiltin(info.ID)
		if err != nil {
			return err
		}
		table.Append([]string{
			info.ID,
			fmt.Sprintf("%d", sc.GetPrimitiveCount()),
			fmt.Sprintf("%dx%d", sc.Width, sc.Height()),
			fmt.Sprintf("%d", sc.SamplingConfig.SamplesPerPixel),
			fmt.Sprintf("%d", sc.SamplingConfig.MaxDepth),
			info.Description,
		})
	}

	table.Render()
	return nil
}
