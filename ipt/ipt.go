// Package ipt packs perceptual colors into float32 bit patterns.
//
// A color is stored as four 8-bit channels inside the bits of a single
// float32: intensity in the low byte, then protan, tritan, and alpha.
// Intensity runs dark to light in [0,1]; the two chroma channels keep 0.5 at
// the neutral axis, protan running green to red and tritan blue to yellow.
// The alpha byte is always even, so a packed value never forms a NaN or Inf
// bit pattern and survives any float32 round trip bit for bit.
package ipt

import (
	"fmt"
	"math"
)

// Packed is a color encoded as channel bytes inside a float32.
type Packed float32

const (
	alphaMask  = 0xFE
	quantScale = 255.999
)

// Pack quantizes four channels in [0,1] into a Packed value. Out-of-range
// channels clamp; NaN channels quantize to zero.
func Pack(i, p, t, a float32) Packed {
	return FromBits(quantize(float64(i)) |
		quantize(float64(p))<<8 |
		quantize(float64(t))<<16 |
		(quantize(float64(a))&alphaMask)<<24)
}

// FromBits reinterprets a bit pattern as a Packed value.
func FromBits(b uint32) Packed {
	return Packed(math.Float32frombits(b))
}

// Bits returns the bit pattern of c.
func (c Packed) Bits() uint32 {
	return math.Float32bits(float32(c))
}

// Intensity returns the stored intensity channel in [0,1].
func (c Packed) Intensity() float32 { return float32(c.byteAt(0)) / 255 }

// Protan returns the stored protan channel in [0,1], 0.5 at neutral.
func (c Packed) Protan() float32 { return float32(c.byteAt(1)) / 255 }

// Tritan returns the stored tritan channel in [0,1], 0.5 at neutral.
func (c Packed) Tritan() float32 { return float32(c.byteAt(2)) / 255 }

// Alpha returns the stored alpha channel in [0,1]. Fully opaque colors
// report 254/255 because of the alpha byte mask.
func (c Packed) Alpha() float32 { return float32(c.byteAt(3)) / 255 }

// Hue returns the angle of the chroma vector as a fraction of a full turn,
// in [0,1) counterclockwise from the protan axis: red near 0.10, yellow near
// 0.28, green near 0.36, blue near 0.70. Every fully neutral value carries
// the same quantized chroma bytes and therefore reports one shared hue.
func (c Packed) Hue() float32 {
	dp := float64(c.byteAt(1))/255 - 0.5
	dt := float64(c.byteAt(2))/255 - 0.5
	h := math.Atan2(dt, dp) / (2 * math.Pi)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return float32(h)
}

// Saturation returns twice the chroma radius, capped at 1. Neutral colors
// report a small nonzero residual left by quantization.
func (c Packed) Saturation() float32 {
	dp := float64(c.byteAt(1))/255 - 0.5
	dt := float64(c.byteAt(2))/255 - 0.5
	s := 2 * math.Hypot(dp, dt)
	if s > 1 {
		s = 1
	}
	return float32(s)
}

// Lerp interpolates channel-wise from c to o by t and repacks the result.
func (c Packed) Lerp(o Packed, t float32) Packed {
	return Pack(
		c.Intensity()+(o.Intensity()-c.Intensity())*t,
		c.Protan()+(o.Protan()-c.Protan())*t,
		c.Tritan()+(o.Tritan()-c.Tritan())*t,
		c.Alpha()+(o.Alpha()-c.Alpha())*t,
	)
}

func (c Packed) String() string {
	return fmt.Sprintf("ipt(%.5f, %.5f, %.5f, %.5f)",
		c.Intensity(), c.Protan(), c.Tritan(), c.Alpha())
}

func (c Packed) byteAt(n uint) uint8 {
	return uint8(c.Bits() >> (8 * n))
}

// quantize maps [0,1] to a channel byte, truncating so that every k/255
// comes back out as k. NaN and negatives quantize to zero.
func quantize(v float64) uint32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint32(v * quantScale)
}
