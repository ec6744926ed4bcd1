package core

import "image"

// ClipMode selects how the rasterizer treats the frame's first row and column.
type ClipMode uint8

const (
	// ClipExcludeOrigin never writes column 0 or row 0. This reproduces the
	// reference renderer pixel for pixel.
	ClipExcludeOrigin ClipMode = iota
	// ClipInclusive clips to [0,w) x [0,h).
	ClipInclusive
)

// String returns the config spelling of the mode.
func (m ClipMode) String() string {
	if m == ClipInclusive {
		return "inclusive"
	}
	return "exclude_origin"
}

// ParseClipMode parses the config spelling of a clip mode.
func ParseClipMode(s string) (ClipMode, bool) {
	switch s {
	case "", "exclude_origin":
		return ClipExcludeOrigin, true
	case "inclusive":
		return ClipInclusive, true
	}
	return ClipExcludeOrigin, false
}

// Frame is a dense row-major pixel buffer. Each pixel is a Color.Packed value.
type Frame struct {
	width  int
	height int
	clip   ClipMode
	pix    []uint32
}

// NewFrame creates a black frame with the given dimensions.
func NewFrame(width, height int, clip ClipMode) *Frame {
	return &Frame{
		width:  width,
		height: height,
		clip:   clip,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Pix returns the underlying pixel slice.
func (f *Frame) Pix() []uint32 {
	return f.pix
}

// Clear zeroes every pixel.
func (f *Frame) Clear() {
	clear(f.pix)
}

// At returns the packed pixel at (x, y), or 0 outside the frame.
func (f *Frame) At(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pix[y*f.width+x]
}

// bounds returns the writable region for the frame's clip mode.
func (f *Frame) bounds() Rect {
	if f.clip == ClipInclusive {
		return NewRect(0, 0, uint(f.width), uint(f.height))
	}
	if f.width < 1 || f.height < 1 {
		return Rect{}
	}
	return NewRect(1, 1, uint(f.width-1), uint(f.height-1))
}

// Rasterize overwrites the whole frame with the commands in d.
// Pixels outside the writable region are dropped silently.
func (f *Frame) Rasterize(d *DrawList) {
	f.Clear()
	bounds := f.bounds()
	for _, cmd := range d.Commands() {
		switch c := cmd.(type) {
		case RectCommand:
			f.fillRect(c.Rect.Intersect(bounds), c.Color.Packed())
		}
	}
}

// fillRect writes p over an already clipped rectangle.
func (f *Frame) fillRect(r Rect, p uint32) {
	for y := r.Y; y < r.Bottom(); y++ {
		row := f.pix[y*f.width : (y+1)*f.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = p
		}
	}
}

// Rasterize renders a draw list into a new frame.
func Rasterize(d *DrawList, width, height int, clip ClipMode) *Frame {
	f := NewFrame(width, height, clip)
	f.Rasterize(d)
	return f
}

// RGBA copies the frame into a standard library image. The result is fully
// opaque, as presented on screen.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.WriteRGBA(img.Pix)
	return img
}

// WriteRGBA fills dst with the frame as opaque 8-bit RGBA, four bytes per
// pixel in row-major order. dst must hold at least 4*width*height bytes.
func (f *Frame) WriteRGBA(dst []byte) {
	for i, p := range f.pix {
		dst[i*4+0] = uint8(p)
		dst[i*4+1] = uint8(p >> 8)
		dst[i*4+2] = uint8(p >> 16)
		dst[i*4+3] = 0xFF
	}
}
