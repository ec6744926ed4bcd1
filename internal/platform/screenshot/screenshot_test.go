package screenshot

import (
	"bytes"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bitarcade/internal/core"
)

func testFrame() *core.Frame {
	d := core.NewDrawList()
	d.Rect(2, 1, 2, 2, core.ColorGreen)
	return core.Rasterize(d, 4, 3, core.ClipExcludeOrigin)
}

func TestScale(t *testing.T) {
	img := Scale(testFrame(), 3)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 9, img.Bounds().Dy())

	// Every source pixel becomes a 3x3 block
	green := core.ColorGreen.ToRGBA()
	black := core.ColorBlack.ToRGBA()
	assert.Equal(t, green, img.RGBAAt(6, 3))
	assert.Equal(t, green, img.RGBAAt(11, 8))
	assert.Equal(t, black, img.RGBAAt(5, 3))
	assert.Equal(t, black, img.RGBAAt(6, 2))
}

func TestScaleOneIsIdentity(t *testing.T) {
	f := testFrame()
	img := Scale(f, 1)
	assert.Equal(t, f.RGBA().Pix, img.Pix)
}

func TestEncodeDecodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testFrame(), 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	r, g, b, a := img.At(4, 2).RGBA()
	assert.Equal(t, [4]uint32{0, 0xFFFF, 0, 0xFFFF}, [4]uint32{r, g, b, a})
}

func TestSave(t *testing.T) {
	dir := t.TempDir() + "/shots"
	path, err := Save(testFrame(), dir, "snake", 42, 2)
	require.NoError(t, err)
	assert.Contains(t, path, "snake_")
	assert.Contains(t, path, "_t42.png")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, 10, 18, 9, 30, 5, 0, time.UTC)
	assert.Equal(t, "lightsout_20261018_093005_t7.png", FileName("lightsout", 7, at))
}
