package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/bitarcade/internal/core"
)

func TestRenderFrameSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		sample     int
		cols, rows int
	}{
		{"snake at 8", 256, 320, 8, 32, 20},
		{"lights out at 8", 240, 272, 8, 30, 17},
		{"odd size", 5, 5, 2, 3, 2},
		{"sample clamps to 1", 3, 4, 0, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := core.NewFrame(tt.w, tt.h, core.ClipInclusive)
			out := ansi.Strip(RenderFrame(f, tt.sample))
			lines := strings.Split(out, "\n")
			if len(lines) != tt.rows {
				t.Fatalf("got %d rows, want %d", len(lines), tt.rows)
			}
			for i, line := range lines {
				if n := strings.Count(line, string(upperHalf)); n != tt.cols {
					t.Errorf("row %d has %d cells, want %d", i, n, tt.cols)
				}
			}
		})
	}
}

func TestFrameSize(t *testing.T) {
	f := core.NewFrame(256, 320, core.ClipExcludeOrigin)
	cols, rows := frameSize(f, 4)
	if cols != 64 || rows != 40 {
		t.Errorf("frameSize = %dx%d, want 64x40", cols, rows)
	}
}
