// Package palette registers a table of named colors packed in the ipt
// encoding and serves them by name or in derived orderings. The table is
// generated by palettegen from its source data; everything else here is
// derived from the generated table at startup.
package palette

import (
	"math"
	"sort"

	"github.com/mmuldo/iptcolor/ipt"
)

type byHue []string

func (ns byHue) Len() int           { return len(ns) }
func (ns byHue) Less(i, j int) bool { return Named[ns[i]].Hue() < Named[ns[j]].Hue() }
func (ns byHue) Swap(i, j int)      { ns[i], ns[j] = ns[j], ns[i] }

type byLightness []string

func (ns byLightness) Len() int { return len(ns) }
func (ns byLightness) Less(i, j int) bool {
	return Named[ns[i]].Intensity() < Named[ns[j]].Intensity()
}
func (ns byLightness) Swap(i, j int) { ns[i], ns[j] = ns[j], ns[i] }

// The three orderings, built once from the generated table. hueOrder and
// lightOrder are stable sorts of alphaOrder, so names with equal sort keys
// stay in alphabetical order.
var (
	alphaOrder []string
	hueOrder   []string
	lightOrder []string
)

func init() {
	alphaOrder = make([]string, 0, len(Named))
	for n := range Named {
		alphaOrder = append(alphaOrder, n)
	}
	sort.Strings(alphaOrder)
	hueOrder = append([]string(nil), alphaOrder...)
	sort.Stable(byHue(hueOrder))
	lightOrder = append([]string(nil), alphaOrder...)
	sort.Stable(byLightness(lightOrder))
}

// Get returns the color registered under name, or def when the name is
// absent. Names match exactly, case and spaces included. No registered
// color packs to the zero bit pattern, so Get(name, 0) misses are
// distinguishable from every hit.
func Get(name string, def ipt.Packed) ipt.Packed {
	if c, ok := Named[name]; ok {
		return c
	}
	return def
}

// Lookup returns the color registered under name and whether it exists.
func Lookup(name string) (ipt.Packed, bool) {
	c, ok := Named[name]
	return c, ok
}

// Count returns the number of registered names.
func Count() int {
	return len(Named)
}

// Names returns the registered names in alphabetical order. The returned
// slice is a copy and safe to mutate.
func Names() []string {
	return append([]string(nil), alphaOrder...)
}

// ByHue returns the names ordered by hue angle, neutral grays grouped at
// their shared hue; ties keep alphabetical order.
func ByHue() []string {
	return append([]string(nil), hueOrder...)
}

// ByLightness returns the names ordered dark to light; ties keep
// alphabetical order.
func ByLightness() []string {
	return append([]string(nil), lightOrder...)
}

// Closest returns the registered name whose channels sit nearest to c by
// squared distance over intensity, protan, and tritan. Alpha is ignored and
// fully transparent entries are never returned, so the answer always names a
// renderable color. Ties resolve to the alphabetically first name.
func Closest(c ipt.Packed) string {
	best := ""
	bestD := math.MaxFloat64
	for _, n := range alphaOrder {
		e := Named[n]
		if e.Bits()>>24&0xFF == 0 {
			continue
		}
		d := sq(e.Intensity()-c.Intensity()) + sq(e.Protan()-c.Protan()) + sq(e.Tritan()-c.Tritan())
		if d < bestD {
			bestD = d
			best = n
		}
	}
	return best
}

func sq(v float32) float64 {
	return float64(v) * float64(v)
}
