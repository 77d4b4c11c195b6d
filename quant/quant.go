// Package quant reduces an image to its dominant colors for palette
// drafting.
package quant

import (
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"
)

// ColorCount is one quantized color and the number of sampled pixels that
// mapped to it.
type ColorCount struct {
	Color color.Color
	Count int
}

type byCount []ColorCount

func (ccs byCount) Len() int { return len(ccs) }
func (ccs byCount) Less(i, j int) bool {
	if ccs[i].Count != ccs[j].Count {
		return ccs[i].Count > ccs[j].Count
	}
	// equal coverage orders by channel value so repeated runs agree
	return less(ccs[i].Color, ccs[j].Color)
}
func (ccs byCount) Swap(i, j int) { ccs[i], ccs[j] = ccs[j], ccs[i] }

// Dominant quantizes img down to at most num colors and returns them ordered
// by coverage, most common first. Fully transparent pixels are not counted.
// Images with less variation than num return fewer colors.
func Dominant(img image.Image, num int) []ColorCount {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)

	m := make(map[color.Color]int)
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			c := o.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			m[c]++
		}
	}

	ccs := make([]ColorCount, 0, len(m))
	for c, n := range m {
		ccs = append(ccs, ColorCount{c, n})
	}
	sort.Sort(byCount(ccs))
	return ccs
}

func less(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	ak := uint64(ar)<<48 | uint64(ag)<<32 | uint64(ab)<<16 | uint64(aa)
	bk := uint64(br)<<48 | uint64(bg)<<32 | uint64(bb)<<16 | uint64(ba)
	return ak < bk
}
