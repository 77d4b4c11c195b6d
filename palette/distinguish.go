package palette

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/iptcolor/ipt"
)

// CIE Lab conversion used for perceptual distance between table entries.
var (
	labIlluminant = &chromath.IlluminantRefD50
	rgbToXyz      = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		labIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	labFromXyz = chromath.NewLabTransformer(labIlluminant)
	klch       = &deltae.KLChDefault
)

// DeltaE returns the CIEDE2000 difference between two packed colors,
// computed over their sRGB decodes. Alpha is ignored.
func DeltaE(a, b ipt.Packed) float64 {
	return deltae.CIE2000(lab(a), lab(b), klch)
}

// Distinct returns n registered names that are mutually easy to tell apart,
// picked greedily by CIEDE2000 distance starting from the most saturated
// entry. The result is in selection order, most distinct first. Fully
// transparent entries are never picked; n at or above the number of opaque
// entries returns all of them alphabetically.
func Distinct(n int) []string {
	if n <= 0 {
		return nil
	}
	cands := make([]string, 0, len(alphaOrder))
	labs := make(map[string]chromath.Lab, len(alphaOrder))
	for _, name := range alphaOrder {
		c := Named[name]
		if c.Bits()>>24&0xFF == 0 {
			continue
		}
		cands = append(cands, name)
		labs[name] = lab(c)
	}
	if n >= len(cands) {
		return cands
	}

	seed := cands[0]
	for _, name := range cands[1:] {
		if Named[name].Saturation() > Named[seed].Saturation() {
			seed = name
		}
	}
	picked := map[string]bool{seed: true}
	order := []string{seed}
	minD := make(map[string]float64, len(cands))
	for _, name := range cands {
		if !picked[name] {
			minD[name] = deltae.CIE2000(labs[name], labs[seed], klch)
		}
	}
	for len(order) < n {
		next := ""
		for _, name := range cands {
			if picked[name] {
				continue
			}
			if next == "" || minD[name] > minD[next] {
				next = name
			}
		}
		order = append(order, next)
		picked[next] = true
		for _, name := range cands {
			if picked[name] {
				continue
			}
			if d := deltae.CIE2000(labs[name], labs[next], klch); d < minD[name] {
				minD[name] = d
			}
		}
	}
	return order
}

// lab converts a packed color to Lab by way of its sRGB decode.
func lab(c ipt.Packed) chromath.Lab {
	s := c.StandardRGBA()
	rgb := chromath.RGB{float64(s.R), float64(s.G), float64(s.B)}
	return labFromXyz.Invert(rgbToXyz.Convert(rgb))
}
