package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/mmuldo/iptcolor/quant"
)

var (
	draftCount int
	draftOut   string
)

// for RGB-to-Lab conversion of draft candidates and the CSS reference set
var (
	draftIlluminant = &chromath.IlluminantRefD50
	draftRGB2Xyz    = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		draftIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	draftLab  = chromath.NewLabTransformer(draftIlluminant)
	draftKlch = &deltae.KLChDefault
)

// draftCmd represents the draft command
var draftCmd = &cobra.Command{
	Use:   "draft [image]",
	Short: "Seeds a colors file from an image",
	Long: `Seeds a new colors file from an image.

The image is quantized down to a set of representative colors, each named
by its nearest CSS color, and the result is written as a colors file for
hand curation. Draft names are working labels; rename them before running
generate. draft never writes the generated table directly.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := quant.Load(args[0])
		if err != nil {
			log.Fatal(err)
		}

		ccs := quant.Dominant(img, draftCount)
		if len(ccs) == 0 {
			log.Fatalf("%s has no opaque pixels to draft from", args[0])
		}

		var b strings.Builder
		taken := make(map[string]int)
		for _, cc := range ccs {
			n := color.NRGBAModel.Convert(cc.Color).(color.NRGBA)
			name := nearestCSSName(n)
			taken[name]++
			if k := taken[name]; k > 1 {
				name = fmt.Sprintf("%s %d", name, k)
			}
			fmt.Fprintf(&b, "%s\t#%02X%02X%02X\n", name, n.R, n.G, n.B)
			fmt.Printf("\033[38;2;%d;%d;%dm%-24s\033[0m #%02X%02X%02X (%d px)\n",
				n.R, n.G, n.B, name, n.R, n.G, n.B, cc.Count)
		}

		if err := os.WriteFile(draftOut, []byte(b.String()), 0644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d draft colors to %s\n", len(ccs), draftOut)
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)

	draftCmd.Flags().IntVarP(&draftCount, "num", "n", 16, "number of colors to draft")
	draftCmd.Flags().StringVarP(&draftOut, "out", "o", "draft.tsv", "output colors file")
}

// nearestCSSName returns the CSS/SVG color name closest to c by CIEDE2000.
func nearestCSSName(c color.NRGBA) string {
	target := draftLabOf(c.R, c.G, c.B)
	best := ""
	bestD := math.MaxFloat64
	for _, name := range colornames.Names {
		ref := colornames.Map[name]
		d := deltae.CIE2000(draftLabOf(ref.R, ref.G, ref.B), target, draftKlch)
		if d < bestD {
			bestD = d
			best = name
		}
	}
	return best
}

func draftLabOf(r, g, b uint8) chromath.Lab {
	rgb := chromath.RGB{float64(r), float64(g), float64(b)}
	return draftLab.Invert(draftRGB2Xyz.Convert(rgb))
}
