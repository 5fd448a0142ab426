package writer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 60), uint8(y * 100), 200, 255})
		}
	}
	return img
}

func TestWriteFrame(t *testing.T) {
	type spec struct {
		file   string
		decode func(f *os.File) (image.Image, error)
	}
	specs := []spec{
		{"frame.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{"frame.bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
		{"frame.tif", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }},
		{"FRAME.TIFF", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }},
	}

	frame := testFrame()
	for index, s := range specs {
		path := filepath.Join(t.TempDir(), s.file)
		if err := WriteFrame(frame, path); err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("[spec %d] %v", index, err)
		}
		img, err := s.decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("[spec %d] could not decode written frame: %v", index, err)
		}

		if img.Bounds() != frame.Bounds() {
			t.Fatalf("[spec %d] expected bounds %v; got %v", index, frame.Bounds(), img.Bounds())
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				r1, g1, b1, _ := frame.At(x, y).RGBA()
				r2, g2, b2, _ := img.At(x, y).RGBA()
				if r1 != r2 || g1 != g2 || b1 != b2 {
					t.Fatalf("[spec %d] pixel (%d, %d) mismatch", index, x, y)
				}
			}
		}
	}
}

func TestUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.jpg")
	err := WriteFrame(testFrame(), path)
	if err == nil || !strings.Contains(err.Error(), `unsupported image format ".jpg"`) {
		t.Fatalf("expected unsupported format error; got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatal("expected no file to be created for an unsupported format")
	}
}
