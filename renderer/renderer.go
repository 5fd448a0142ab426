package renderer

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/tracer"
	"github.com/achilleasa/whitted/types"
	"github.com/shirou/gopsutil/cpu"
	"golang.org/x/sync/errgroup"
)

// A Renderer is safe for concurrent use. When Render calls overlap, Stats
// reports whichever frame finished last.
type Renderer interface {
	// Render frame.
	Render() (*Frame, error)

	// Get render statistics for the last rendered frame.
	Stats() FrameStats
}

// The output of a single row task.
type rowResult struct {
	index      int
	colors     []types.Color
	renderTime time.Duration
}

// A renderer that traces each frame row as a separate task on a fixed-size
// worker pool.
type defaultRenderer struct {
	logger log.Logger

	scene   *scene.Scene
	tracer  *tracer.Tracer
	options Options
	workers int

	statsMu sync.Mutex
	stats   FrameStats
}

// Create a new default renderer for the given scene.
func NewDefault(sc *scene.Scene, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:  log.New("renderer"),
		scene:   sc,
		tracer:  tracer.New(sc, opts.tracerOptions()),
		options: opts,
		workers: opts.Workers,
	}
	if r.workers == 0 {
		r.workers = defaultWorkerCount()
	}

	r.logger.Infof("using %d row workers", r.workers)
	return r, nil
}

// Render frame.
func (r *defaultRenderer) Render() (*Frame, error) {
	start := time.Now()
	frameW, frameH := int(r.options.FrameW), int(r.options.FrameH)
	r.logger.Noticef("rendering %dx%d frame", frameW, frameH)

	results := make(chan rowResult, frameH)
	var g errgroup.Group
	g.SetLimit(r.workers)
	for row := 0; row < frameH; row++ {
		row := row
		g.Go(func() error {
			return r.renderRow(row, results)
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	// Rows complete in arbitrary order; place them by index.
	frame := newFrame(frameW, frameH)
	rowTimes := make([]time.Duration, frameH)
	for res := range results {
		frame.Rows[res.index] = res.colors
		rowTimes[res.index] = res.renderTime
	}

	stats := FrameStats{
		FrameW:     r.options.FrameW,
		FrameH:     r.options.FrameH,
		Workers:    r.workers,
		RenderTime: time.Since(start),
	}
	stats.setRowTimes(rowTimes)

	r.statsMu.Lock()
	r.stats = stats
	r.statsMu.Unlock()

	r.logger.Noticef("rendered %dx%d frame in %s", frameW, frameH, stats.RenderTime)
	return frame, nil
}

// Get render statistics for the last rendered frame.
func (r *defaultRenderer) Stats() FrameStats {
	r.statsMu.Lock()
	defer r.statsMu.Unlock()
	return r.stats
}

// Trace all pixels in a frame row. Row 0 is the top of the image.
func (r *defaultRenderer) renderRow(row int, results chan<- rowResult) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: row %d: %v", ErrRowFailed, row, rec)
		}
	}()

	start := time.Now()
	frameW, frameH := int(r.options.FrameW), int(r.options.FrameH)
	cam := &r.scene.Camera

	y := frameH/2 - row - 1
	colors := make([]types.Color, frameW)
	for px := 0; px < frameW; px++ {
		x := px - frameW/2
		dir := cam.WorldDir(r.canvasToViewport(x, y))
		colors[px] = r.tracer.TraceRay(cam.Position, dir, 1, math.Inf(1), r.options.MaxDepth)
	}

	elapsed := time.Since(start)
	r.logger.Debugf("row %d completed in %s", row, elapsed)
	results <- rowResult{index: row, colors: colors, renderTime: elapsed}
	return nil
}

// Map a canvas coordinate to a point on the projection plane. The canvas
// origin is at its center with y pointing up.
func (r *defaultRenderer) canvasToViewport(x, y int) types.Vec3 {
	return types.Vec3{
		float64(x) * r.options.ViewportW / float64(r.options.FrameW),
		float64(y) * r.options.ViewportH / float64(r.options.FrameH),
		r.options.ProjectionPlaneD,
	}
}

// Get the number of logical CPUs.
func defaultWorkerCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}
