// Package screenshot writes rasterized frames to PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/bitarcade/internal/core"
)

// Scale enlarges a frame by an integer factor with nearest-neighbour
// sampling, so game pixels stay sharp squares.
func Scale(f *core.Frame, scale int) *image.RGBA {
	src := f.RGBA()
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, f.Width()*scale, f.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Encode writes the scaled frame as PNG.
func Encode(w io.Writer, f *core.Frame, scale int) error {
	if err := png.Encode(w, Scale(f, scale)); err != nil {
		return fmt.Errorf("screenshot: encode: %w", err)
	}
	return nil
}

// FileName returns the screenshot name for a game at a point in time.
func FileName(gameID string, tick uint64, at time.Time) string {
	return fmt.Sprintf("%s_%s_t%d.png", gameID, at.Format("20060102_150405"), tick)
}

// Save writes the frame into dir, creating it if needed, and returns the file path.
func Save(f *core.Frame, dir, gameID string, tick uint64, scale int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(gameID, tick, time.Now()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot: create %s: %w", path, err)
	}
	defer file.Close()

	if err := Encode(file, f, scale); err != nil {
		return "", err
	}
	return path, file.Close()
}
