package writer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/achilleasa/whitted/log"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// The Writer interface is implemented by all frame encoders.
type Writer interface {
	// Encode frame to w.
	Write(w io.Writer, frame image.Image) error
}

type pngWriter struct{}

func (pngWriter) Write(w io.Writer, frame image.Image) error {
	return png.Encode(w, frame)
}

type bmpWriter struct{}

func (bmpWriter) Write(w io.Writer, frame image.Image) error {
	return bmp.Encode(w, frame)
}

type tiffWriter struct{}

func (tiffWriter) Write(w io.Writer, frame image.Image) error {
	return tiff.Encode(w, frame, &tiff.Options{Compression: tiff.Deflate})
}

var logger = log.New("frame writer")

// Get a frame writer for a file extension.
func ForExtension(ext string) (Writer, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return pngWriter{}, nil
	case ".bmp":
		return bmpWriter{}, nil
	case ".tif", ".tiff":
		return tiffWriter{}, nil
	}
	return nil, fmt.Errorf("writer: unsupported image format %q", ext)
}

// Write frame to a file. The image format is selected by the file extension.
func WriteFrame(frame image.Image, filename string) (err error) {
	writer, err := ForExtension(filepath.Ext(filename))
	if err != nil {
		return err
	}

	start := time.Now()
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = writer.Write(f, frame); err != nil {
		return fmt.Errorf("writer: could not encode %s: %w", filename, err)
	}

	logger.Infof("wrote frame to %s in %d ms", filename, time.Since(start).Nanoseconds()/1e6)
	return nil
}
