package raster

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/findclip/internal/domain"
)

// Options control decoding.
type Options struct {
	// LumiOnly keeps the top two thirds of the image (the luma plane of a
	// YUV 4:2:0 dump).
	LumiOnly bool
}

// Decode reads one frame from r, choosing PGM or a registered image format
// from the leading bytes.
func Decode(r io.Reader, opts Options) (domain.Frame, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(1)
	if err != nil {
		return domain.Frame{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	switch head[0] {
	case 'P', '#', '\n':
		return decodePGM(br, opts)
	default:
		return decodeImage(br, opts)
	}
}

// Load decodes the frame stored at path.
func Load(path string, opts Options) (domain.Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return domain.Frame{}, err
	}
	defer fh.Close()

	f, err := Decode(fh, opts)
	if err != nil {
		return domain.Frame{}, fmt.Errorf("read %s: %w", path, err)
	}
	f.Name = path
	return f, nil
}

// MarkerPath returns the file name used for the marker image of path.
func MarkerPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "-m.pgm"
}

// WriteMarkers stores f with the outline of r drawn in, next to the source file.
func WriteMarkers(f domain.Frame, r domain.ClipRect) (string, error) {
	out := MarkerPath(f.Name)
	fh, err := os.Create(out)
	if err != nil {
		return "", err
	}
	if err := Encode(fh, DrawMarkers(f, r)); err != nil {
		fh.Close()
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, fh.Close()
}

// Files loads frames from and writes marker images to the file system.
type Files struct {
	Options Options
}

// Load decodes the frame at path.
func (fs Files) Load(ctx context.Context, path string) (domain.Frame, error) {
	if err := ctx.Err(); err != nil {
		return domain.Frame{}, err
	}
	return Load(path, fs.Options)
}

// WriteMarkers stores f with the outline of r next to its source file.
func (fs Files) WriteMarkers(f domain.Frame, r domain.ClipRect) (string, error) {
	return WriteMarkers(f, r)
}
