package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/whitted/asset/scene/reader"
	"github.com/achilleasa/whitted/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Load the scene config from the first command argument or fall back to the
// built-in scene.
func loadSceneConfig(ctx *cli.Context) (*scene.Config, error) {
	if ctx.NArg() == 0 {
		logger.Notice("no scene file specified; using built-in scene")
		return reader.DefaultConfig(), nil
	}
	return reader.ReadConfig(ctx.Args().First())
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadSceneConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet("leaf-size") {
		cfg.BvhLeafSize = ctx.Int("leaf-size")
	}

	sc, err := scene.New(*cfg)
	if err != nil {
		return err
	}

	displaySceneStats(sc)
	return nil
}

func displaySceneStats(sc *scene.Scene) {
	stats := sc.Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Element", "Count"})
	table.Append([]string{"Spheres", fmt.Sprintf("%d", stats.Spheres)})
	table.Append([]string{"Walls", fmt.Sprintf("%d", stats.Walls)})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", stats.Triangles)})
	for _, lt := range []scene.LightType{scene.AmbientLight, scene.PointLight, scene.DirectionalLight} {
		table.Append([]string{fmt.Sprintf("Lights (%s)", lt), fmt.Sprintf("%d", stats.Lights[lt])})
	}
	table.Append([]string{"BVH nodes", fmt.Sprintf("%d", stats.Bvh.Nodes)})
	table.Append([]string{"BVH leafs", fmt.Sprintf("%d", stats.Bvh.Leafs)})
	table.Append([]string{"BVH max depth", fmt.Sprintf("%d", stats.Bvh.MaxDepth)})
	table.SetFooter([]string{"BVH build time", stats.Bvh.BuildTime.String()})

	table.Render()
	logger.Noticef("scene information\n%s\n%s", sc.Camera.String(), buf.String())
}
