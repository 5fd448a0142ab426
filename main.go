package main

import (
	"os"

	"github.com/achilleasa/whitted/cmd"
	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/scene"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	leafSizeFlag := cli.IntFlag{
		Name:  "leaf-size",
		Value: scene.DefaultBvhLeafSize,
		Usage: "max triangles per BVH leaf; overrides the scene file value",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "notice",
			Usage: "log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a scene described by a json file or a standalone wavefront obj file
and write the frame to an image file. The image format (png, bmp or tiff) is
selected by the output file extension.

If no scene file is specified, a built-in scene with three spheres is rendered.`,
			ArgsUsage: "[scene_file]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 600,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "viewport-width",
					Value: 1,
					Usage: "viewport width in world units",
				},
				cli.Float64Flag{
					Name:  "viewport-height",
					Value: 1,
					Usage: "viewport height in world units",
				},
				cli.Float64Flag{
					Name:  "projection-dist",
					Value: 1,
					Usage: "distance from the camera to the projection plane",
				},
				cli.StringFlag{
					Name:  "background",
					Value: "255,255,255",
					Usage: "background color as r,g,b",
				},
				cli.Float64Flag{
					Name:  "epsilon",
					Value: 1e-4,
					Usage: "threshold for treating near-zero quantities as zero",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 3,
					Usage: "max number of reflection bounces",
				},
				leafSizeFlag,
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of row workers; 0 uses one per logical cpu",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "scene-info",
			Usage:     "display scene and BVH statistics",
			ArgsUsage: "[scene_file]",
			Flags:     []cli.Flag{leafSizeFlag},
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:   "list-cpus",
			Usage:  "list cpus available for rendering",
			Action: cmd.ListCPUs,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
