package renderer

import (
	"image"

	"github.com/achilleasa/whitted/types"
)

// A rendered frame. Row 0 is the top of the image.
type Frame struct {
	Width  int
	Height int
	Rows   [][]types.Color
}

func newFrame(w, h int) *Frame {
	return &Frame{
		Width:  w,
		Height: h,
		Rows:   make([][]types.Color, h),
	}
}

// Get the color of the pixel at (x, y).
func (f *Frame) At(x, y int) types.Color {
	return f.Rows[y][x]
}

// Convert frame to an RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y, row := range f.Rows {
		offset := y * img.Stride
		for x, c := range row {
			img.Pix[offset+4*x+0] = c[0]
			img.Pix[offset+4*x+1] = c[1]
			img.Pix[offset+4*x+2] = c[2]
			img.Pix[offset+4*x+3] = 255
		}
	}
	return img
}
