package ipt

import (
	"image/color"
	"math"
)

// Matrices for the linear-sRGB to LMS step, composed from the IEC 61966-2-1
// sRGB-to-XYZ matrix and the Ebner-Fairchild XYZ-to-LMS matrix. Each forward
// row is scaled so the reference white maps to LMS (1,1,1) exactly; every
// gray then quantizes to the same neutral chroma bytes.
var (
	lmsFromLinear = [3][3]float64{
		{0.31396787, 0.63944721, 0.04658492},
		{0.15172773, 0.74824509, 0.10002718},
		{0.01775658, 0.10946796, 0.87277546},
	}
	linearFromLMS = [3][3]float64{
		{5.43181101, -4.67802453, 0.24621352},
		{-1.10521037, 2.31108870, -0.20587832},
		{0.02811117, -0.19469435, 1.16658318},
	}
)

// Weights mixing shaped LMS into intensity, protan, and tritan, and back.
// The protan and tritan rows each sum to zero, so the neutral axis lands on
// exactly (0.5, 0.5) before quantization.
var (
	iptFromLMS = [3][3]float64{
		{0.4000, 0.4000, 0.2000},
		{4.4550, -4.8510, 0.3960},
		{0.8056, 0.3572, -1.1628},
	}
	lmsFromIPT = [3][3]float64{
		{1.0, 0.09756893, 0.20522643},
		{1.0, -0.11387649, 0.13321716},
		{1.0, 0.03261511, -0.67688718},
	}
)

// shapeExp is the power curve applied to LMS before mixing.
const shapeExp = 0.43

// FromRGBA encodes an 8-bit sRGB color with straight alpha.
func FromRGBA(r, g, b, a uint8) Packed {
	lr := linearize(float64(r) / 255)
	lg := linearize(float64(g) / 255)
	lb := linearize(float64(b) / 255)
	l := shape(lmsFromLinear[0][0]*lr + lmsFromLinear[0][1]*lg + lmsFromLinear[0][2]*lb)
	m := shape(lmsFromLinear[1][0]*lr + lmsFromLinear[1][1]*lg + lmsFromLinear[1][2]*lb)
	s := shape(lmsFromLinear[2][0]*lr + lmsFromLinear[2][1]*lg + lmsFromLinear[2][2]*lb)
	i := iptFromLMS[0][0]*l + iptFromLMS[0][1]*m + iptFromLMS[0][2]*s
	p := iptFromLMS[1][0]*l + iptFromLMS[1][1]*m + iptFromLMS[1][2]*s
	t := iptFromLMS[2][0]*l + iptFromLMS[2][1]*m + iptFromLMS[2][2]*s
	return FromBits(quantize(i) |
		quantize(0.5+p*0.5)<<8 |
		quantize(0.5+t*0.5)<<16 |
		uint32(a&alphaMask)<<24)
}

// FromColor encodes any color.Color, preserving straight alpha.
func FromColor(c color.Color) Packed {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, n.A)
}

// StandardRGBA decodes c back to 8-bit sRGB with straight alpha. Chroma
// outside the sRGB gamut clamps channel-wise, so saturated packed values can
// decode a few steps away from the color they were encoded from.
func (c Packed) StandardRGBA() color.NRGBA {
	i := float64(c.byteAt(0)) / 255
	p := (float64(c.byteAt(1))/255 - 0.5) * 2
	t := (float64(c.byteAt(2))/255 - 0.5) * 2
	l := unshape(lmsFromIPT[0][0]*i + lmsFromIPT[0][1]*p + lmsFromIPT[0][2]*t)
	m := unshape(lmsFromIPT[1][0]*i + lmsFromIPT[1][1]*p + lmsFromIPT[1][2]*t)
	s := unshape(lmsFromIPT[2][0]*i + lmsFromIPT[2][1]*p + lmsFromIPT[2][2]*t)
	r := clamp01(delinearize(clamp01(linearFromLMS[0][0]*l + linearFromLMS[0][1]*m + linearFromLMS[0][2]*s)))
	g := clamp01(delinearize(clamp01(linearFromLMS[1][0]*l + linearFromLMS[1][1]*m + linearFromLMS[1][2]*s)))
	b := clamp01(delinearize(clamp01(linearFromLMS[2][0]*l + linearFromLMS[2][1]*m + linearFromLMS[2][2]*s)))
	return color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: c.byteAt(3),
	}
}

// RGBA implements color.Color.
func (c Packed) RGBA() (r, g, b, a uint32) {
	return c.StandardRGBA().RGBA()
}

func linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func delinearize(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// shape applies the perceptual power curve, keeping sign for out-of-gamut
// negatives.
func shape(v float64) float64 {
	if v < 0 {
		return -math.Pow(-v, shapeExp)
	}
	return math.Pow(v, shapeExp)
}

func unshape(v float64) float64 {
	if v < 0 {
		return -math.Pow(-v, 1/shapeExp)
	}
	return math.Pow(v, 1/shapeExp)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
