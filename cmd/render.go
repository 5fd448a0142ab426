package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/whitted/asset/frame/writer"
	"github.com/achilleasa/whitted/renderer"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	background, err := types.ParseColor(ctx.String("background"))
	if err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW:           uint32(ctx.Int("width")),
		FrameH:           uint32(ctx.Int("height")),
		ViewportW:        ctx.Float64("viewport-width"),
		ViewportH:        ctx.Float64("viewport-height"),
		ProjectionPlaneD: ctx.Float64("projection-dist"),
		Background:       background,
		Epsilon:          ctx.Float64("epsilon"),
		MaxDepth:         ctx.Int("depth"),
		Workers:          ctx.Int("workers"),
	}
	if ctx.Int("width") <= 0 || ctx.Int("height") <= 0 {
		return renderer.ErrInvalidFrameDims
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

	r, err := renderer.NewDefault(sc, opts)
	if err != nil {
		return err
	}

	if cpuInfo, err := cpu.Info(); err == nil && len(cpuInfo) > 0 {
		logger.Infof("rendering on %s", cpuInfo[0].ModelName)
	}

	frame, err := r.Render()
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	if err = writer.WriteFrame(frame.Image(), outFile); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outFile)

	displayFrameStats(r.Stats())
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Workers", "Row time (mean)", "Row time (std dev)", "Row time (max)"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.FrameW, stats.FrameH),
		fmt.Sprintf("%d", stats.Workers),
		stats.RowTimeMean.String(),
		stats.RowTimeStdDev.String(),
		stats.RowTimeMax.String(),
	})
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
