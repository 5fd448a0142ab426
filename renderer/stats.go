package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

type FrameStats struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Size of the worker pool that rendered the frame.
	Workers int

	// Row render time distribution.
	RowTimeMean   time.Duration
	RowTimeStdDev time.Duration
	RowTimeMax    time.Duration

	// Total render time for entire frame.
	RenderTime time.Duration
}

// Summarize the per-row render times.
func (fs *FrameStats) setRowTimes(rowTimes []time.Duration) {
	if len(rowTimes) == 0 {
		return
	}

	samples := make([]float64, len(rowTimes))
	var max time.Duration
	for index, rt := range rowTimes {
		samples[index] = float64(rt)
		if rt > max {
			max = rt
		}
	}

	mean, stdDev := stat.MeanStdDev(samples, nil)
	fs.RowTimeMean = time.Duration(mean)
	if len(samples) > 1 {
		fs.RowTimeStdDev = time.Duration(stdDev)
	}
	fs.RowTimeMax = max
}
