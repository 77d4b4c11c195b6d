package ipt

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ color.Color = Packed(0)

func TestStandardRGBARoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		maxd    int
	}{
		{"red", 255, 0, 0, 0},
		{"yellow", 255, 255, 0, 0},
		{"cyan", 0, 255, 255, 0},
		{"blue", 0, 0, 255, 0},
		{"green", 0, 255, 0, 2},
		{"magenta", 255, 0, 255, 4},
		{"maroon", 128, 0, 0, 1},
		{"steel blue", 70, 130, 180, 2},
		{"tan", 210, 180, 140, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRGBA(tt.r, tt.g, tt.b, 255).StandardRGBA()
			assert.LessOrEqual(t, absDiff(got.R, tt.r), tt.maxd, "red channel")
			assert.LessOrEqual(t, absDiff(got.G, tt.g), tt.maxd, "green channel")
			assert.LessOrEqual(t, absDiff(got.B, tt.b), tt.maxd, "blue channel")
			assert.Equal(t, uint8(254), got.A)
		})
	}
}

func TestGrayRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v += 3 {
		got := FromRGBA(uint8(v), uint8(v), uint8(v), 255).StandardRGBA()
		require.LessOrEqual(t, absDiff(got.R, uint8(v)), 3, "gray %d", v)
		require.LessOrEqual(t, absDiff(got.G, uint8(v)), 3, "gray %d", v)
		require.LessOrEqual(t, absDiff(got.B, uint8(v)), 3, "gray %d", v)
	}
}

func TestFromColor(t *testing.T) {
	direct := FromRGBA(200, 100, 50, 255)
	viaNRGBA := FromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	assert.Equal(t, direct.Bits(), viaNRGBA.Bits())

	// premultiplied input unwinds back to straight channels
	viaRGBA := FromColor(color.RGBA{R: 100, G: 50, B: 25, A: 128})
	assert.Equal(t, uint32(128), viaRGBA.Bits()>>24&0xFF)

	clear := FromColor(color.NRGBA{})
	assert.Equal(t, uint32(0), clear.Bits()>>24&0xFF)
}

func TestAlphaPreserved(t *testing.T) {
	for _, a := range []uint8{0, 1, 127, 128, 254, 255} {
		c := FromRGBA(10, 20, 30, a)
		assert.Equal(t, uint32(a&0xFE), c.Bits()>>24&0xFF, "alpha %d", a)
		assert.Equal(t, a&0xFE, c.StandardRGBA().A, "alpha %d", a)
	}
}

func TestDecodeOutOfGamutClamps(t *testing.T) {
	// strong chroma at low intensity reaches outside sRGB; decode must clamp
	// instead of wrapping
	c := FromBits(0xFE2C861F)
	got := c.StandardRGBA()
	assert.Equal(t, uint8(0), got.G)
	assert.Greater(t, got.B, got.R)
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
