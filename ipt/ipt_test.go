package ipt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizeRoundTrip(t *testing.T) {
	// every channel byte must survive decode then re-encode exactly
	for k := 0; k <= 255; k++ {
		v := float32(k) / 255
		got := Pack(v, v, v, v).Bits()
		require.Equal(t, uint32(k), got&0xFF, "intensity byte %d", k)
		require.Equal(t, uint32(k), got>>8&0xFF, "protan byte %d", k)
		require.Equal(t, uint32(k), got>>16&0xFF, "tritan byte %d", k)
		require.Equal(t, uint32(k&0xFE), got>>24&0xFF, "alpha byte %d", k)
	}
}

func TestPackRange(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name string
		in   [4]float32
		want uint32
	}{
		{"mid", [4]float32{0.5, 0.5, 0.5, 1}, 0xFE7F7F7F},
		{"zero", [4]float32{0, 0, 0, 0}, 0x00000000},
		{"clamp high", [4]float32{2, 1.5, 8, 3}, 0xFEFFFFFF},
		{"clamp low", [4]float32{-1, -0.25, -8, -0.01}, 0x00000000},
		{"nan", [4]float32{nan, nan, nan, nan}, 0x00000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Pack(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			assert.Equal(t, tt.want, c.Bits())
		})
	}
}

func TestPackedNeverNaN(t *testing.T) {
	// the alpha mask keeps the float32 exponent out of the NaN/Inf range
	for _, c := range []Packed{
		Pack(1, 1, 1, 1),
		Pack(0, 1, 1, 1),
		FromBits(0xFEFFFFFF),
		FromBits(0xFE2C861F),
	} {
		f := float64(float32(c))
		assert.False(t, math.IsNaN(f), "bits %#08x", c.Bits())
		assert.False(t, math.IsInf(f, 0), "bits %#08x", c.Bits())
	}
}

func TestBitsRoundTrip(t *testing.T) {
	for _, b := range []uint32{0x00000000, 0x007F7F00, 0xFE7F7F00, 0xFE2C861F, 0xFEFFFFFF} {
		assert.Equal(t, b, FromBits(b).Bits())
	}
}

func TestChannelAccessors(t *testing.T) {
	c := FromBits(0xFE2C861F)
	assert.InDelta(t, 0.12156863, float64(c.Intensity()), 1e-6)
	assert.InDelta(t, 0.52549020, float64(c.Protan()), 1e-6)
	assert.InDelta(t, 0.17254902, float64(c.Tritan()), 1e-6)
	assert.InDelta(t, 0.99607843, float64(c.Alpha()), 1e-6)
}

func TestHuePrimaryOrder(t *testing.T) {
	primaries := []struct {
		name    string
		r, g, b uint8
		hue     float64
	}{
		{"red", 255, 0, 0, 0.0983},
		{"yellow", 255, 255, 0, 0.2755},
		{"green", 0, 255, 0, 0.3637},
		{"cyan", 0, 255, 255, 0.5609},
		{"blue", 0, 0, 255, 0.7008},
		{"magenta", 255, 0, 255, 0.9047},
	}
	prev := float32(-1)
	for _, p := range primaries {
		h := FromRGBA(p.r, p.g, p.b, 255).Hue()
		assert.InDelta(t, p.hue, float64(h), 0.005, p.name)
		assert.Greater(t, h, prev, "%s must sort after the previous primary", p.name)
		prev = h
	}
}

func TestGrayHueShared(t *testing.T) {
	base := FromRGBA(128, 128, 128, 255).Hue()
	for _, v := range []uint8{0, 1, 17, 64, 127, 200, 254, 255} {
		c := FromRGBA(v, v, v, 255)
		assert.Equal(t, base, c.Hue(), "gray %d", v)
		assert.Less(t, float64(c.Saturation()), 0.01, "gray %d", v)
	}
	assert.InDelta(t, 0.625, float64(base), 1e-6)
}

func TestSaturation(t *testing.T) {
	assert.Greater(t, FromRGBA(255, 0, 0, 255).Saturation(), float32(0.7))
	assert.Greater(t, FromRGBA(0, 0, 255, 255).Saturation(), float32(0.7))
	assert.Equal(t, float32(1), FromBits(0xFE00FF7F).Saturation(), "cap at full saturation")
}

func TestLerp(t *testing.T) {
	black := FromRGBA(0, 0, 0, 255)
	white := FromRGBA(255, 255, 255, 255)
	assert.Equal(t, black.Bits(), black.Lerp(white, 0).Bits())
	assert.Equal(t, white.Bits(), black.Lerp(white, 1).Bits())
	assert.Equal(t, uint32(0xFE7F7F7F), black.Lerp(white, 0.5).Bits())

	opaque := Pack(0.5, 0.5, 0.5, 1)
	clear := Pack(0.5, 0.5, 0.5, 0)
	mid := opaque.Lerp(clear, 0.5)
	assert.InDelta(t, 0.5, float64(mid.Alpha()), 0.01)
}

func TestString(t *testing.T) {
	assert.Equal(t, "ipt(0.12157, 0.52549, 0.17255, 0.99608)", FromBits(0xFE2C861F).String())
}
