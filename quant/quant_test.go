package quant

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill paints the rectangle from x0 to x1 with c.
func fill(img *image.NRGBA, x0, x1 int, c color.NRGBA) {
	b := img.Bounds()
	for x := x0; x < x1; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestDominantOrdersByCoverage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 10))
	fill(img, 0, 30, color.NRGBA{R: 255, A: 255})
	fill(img, 30, 40, color.NRGBA{B: 255, A: 255})

	ccs := Dominant(img, 2)
	require.NotEmpty(t, ccs)

	total := 0
	for i, cc := range ccs {
		total += cc.Count
		if i > 0 {
			assert.LessOrEqual(t, cc.Count, ccs[i-1].Count, "coverage must not increase")
		}
	}
	assert.Equal(t, 400, total, "every pixel counted once")

	// the red three quarters dominate
	r, _, b, _ := ccs[0].Color.RGBA()
	assert.Greater(t, r, b)
}

func TestDominantSkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fill(img, 0, 5, color.NRGBA{G: 200, A: 255})

	ccs := Dominant(img, 4)
	total := 0
	for _, cc := range ccs {
		total += cc.Count
		_, _, _, a := cc.Color.RGBA()
		assert.NotZero(t, a, "transparent pixels must not be counted")
	}
	assert.Equal(t, 50, total)
}

func TestDominantFlatImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fill(img, 0, 8, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	ccs := Dominant(img, 16)
	require.Len(t, ccs, 1)
	assert.Equal(t, 64, ccs[0].Count)
}
