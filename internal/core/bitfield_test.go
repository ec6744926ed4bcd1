package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldGetPut(t *testing.T) {
	f := NewField("dir", 8, 2)

	assert.Equal(t, uint64(3), f.Max())
	assert.Equal(t, uint64(0b11<<8), f.Mask())

	packed := f.Put(0, 2)
	assert.Equal(t, uint64(2<<8), packed)
	assert.Equal(t, uint64(2), f.Get(packed))

	// Replacing a value clears the old bits first
	packed = f.Put(packed|0xFF, 1)
	assert.Equal(t, uint64(1), f.Get(packed))
	assert.Equal(t, uint64(0xFF), packed&0xFF, "neighbouring bits must survive")

	// Oversized values are masked, not shifted into other fields
	packed = f.Put(0, 0b111)
	assert.Equal(t, uint64(0b11<<8), packed)
}

func TestFieldFullWidth(t *testing.T) {
	f := NewField("all", 0, 64)
	assert.Equal(t, ^uint64(0), f.Max())
	assert.Equal(t, uint64(0xDEADBEEF), f.Get(f.Put(0, 0xDEADBEEF)))
}

func TestFieldTopBit(t *testing.T) {
	f := NewField("dead", 63, 1)
	packed := f.PutFlag(0, true)
	assert.Equal(t, uint64(1)<<63, packed)
	assert.True(t, f.Flag(packed))
	assert.False(t, f.Flag(f.PutFlag(packed, false)))
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr string
	}{
		{
			name:   "valid with gap",
			layout: Layout{NewField("a", 0, 8), NewField("b", 10, 6), NewField("c", 63, 1)},
		},
		{
			name:    "overlap",
			layout:  Layout{NewField("a", 0, 8), NewField("b", 7, 2)},
			wantErr: "overlaps",
		},
		{
			name:    "past 64 bits",
			layout:  Layout{NewField("a", 60, 5)},
			wantErr: "past bit 64",
		},
		{
			name:    "zero width",
			layout:  Layout{NewField("a", 0, 0)},
			wantErr: "zero width",
		},
		{
			name:    "duplicate name",
			layout:  Layout{NewField("a", 0, 1), NewField("a", 1, 1)},
			wantErr: "duplicate",
		},
		{
			name:    "unnamed",
			layout:  Layout{NewField("", 0, 1)},
			wantErr: "no name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.layout.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLayoutMaskAndCanonical(t *testing.T) {
	l := Layout{NewField("a", 0, 4), NewField("b", 8, 4)}

	assert.Equal(t, uint(8), l.Bits())
	assert.Equal(t, uint64(0x0F0F), l.Mask())
	assert.Equal(t, uint64(0x0A05), l.Canonical(0xFFFF_FA35))

	f, ok := l.Field("b")
	require.True(t, ok)
	assert.Equal(t, uint(8), f.Offset)

	_, ok = l.Field("missing")
	assert.False(t, ok)
}

func TestLayoutDescribe(t *testing.T) {
	l := Layout{NewField("a", 0, 4), NewField("b", 8, 4)}
	out := l.Describe(0x0305)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a")
	assert.True(t, strings.HasSuffix(lines[0], " 5"))
	assert.True(t, strings.HasSuffix(lines[1], " 3"))
}
