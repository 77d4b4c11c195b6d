package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/flosch/pongo2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/mmuldo/iptcolor/ipt"
)

// entry is one palette color parsed from the colors file.
type entry struct {
	Name    string // display name, the lookup key ("Ocean Blue")
	VarName string // Go identifier ("OceanBlue")
	Bits    uint32 // packed ipt value
	Hex     string // six hex digits, empty for pinned entries
}

// parseColors reads the tab-separated colors file: one "name<TAB>value" pair
// per line, where value is #RRGGBB, #RRGGBBAA, or a 0x-prefixed packed bit
// pattern pinned from an earlier table revision. Blank lines and lines
// starting with # are skipped. Entries come back sorted by display name.
func parseColors(r io.Reader) ([]entry, error) {
	var entries []entry
	seen := make(map[string]bool)

	s := bufio.NewScanner(r)
	ln := 0
	for s.Scan() {
		ln++
		line := strings.TrimRight(s.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: want name<TAB>value, got %q", ln, line)
		}
		if seen[name] {
			return nil, fmt.Errorf("line %d: duplicate name %q", ln, name)
		}
		seen[name] = true

		e, err := buildEntry(name, value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func buildEntry(name, value string) (entry, error) {
	e := entry{Name: name, VarName: strings.ReplaceAll(name, " ", "")}
	switch {
	case strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X"):
		bits, err := strconv.ParseUint(value[2:], 16, 32)
		if err != nil {
			return entry{}, fmt.Errorf("packed value %q: %w", value, err)
		}
		e.Bits = uint32(bits)
	case strings.HasPrefix(value, "#") && (len(value) == 7 || len(value) == 9):
		alpha := uint8(255)
		hex := value
		if len(value) == 9 {
			a, err := strconv.ParseUint(value[7:], 16, 8)
			if err != nil {
				return entry{}, fmt.Errorf("alpha in %q: %w", value, err)
			}
			alpha = uint8(a)
			hex = value[:7]
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return entry{}, err
		}
		r, g, b := c.RGB255()
		e.Bits = ipt.FromRGBA(r, g, b, alpha).Bits()
		e.Hex = strings.ToUpper(hex[1:])
	default:
		return entry{}, fmt.Errorf("value %q: want #RRGGBB, #RRGGBBAA, or 0x bits", value)
	}
	return e, nil
}

// tableChecksum fingerprints the name to bits mapping: the XXH64 of
// "name=bits" lines in name order. The palette package's table test
// recomputes the same digest over the live table.
func tableChecksum(entries []entry) uint64 {
	d := xxhash.New()
	for _, e := range entries {
		fmt.Fprintf(d, "%s=%08x\n", e.Name, e.Bits)
	}
	return d.Sum64()
}

// doc renders the entry's comment block. The channel, hue, and saturation
// values are computed in float64 so the printed figures are the decoded
// values, not re-rounded float32s.
func (e entry) doc() string {
	i := float64(e.Bits&0xFF) / 255
	p := float64(e.Bits>>8&0xFF) / 255
	t := float64(e.Bits>>16&0xFF) / 255
	a := float64(e.Bits>>24&0xFF) / 255
	h := math.Atan2(t-0.5, p-0.5) / (2 * math.Pi)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	s := 2 * math.Hypot(p-0.5, t-0.5)
	if s > 1 {
		s = 1
	}

	if e.Hex == "" {
		return fmt.Sprintf("// %s holds the packed value 0x%08X imported from the previous palette\n"+
			"// revision. It decodes to intensity %.8f, protan %.8f, tritan\n"+
			"// %.8f, alpha %.8f, hue %.4f, and saturation %.4f.",
			e.VarName, e.Bits, i, p, t, a, h, s)
	}
	return fmt.Sprintf("// %s has hex code #%s, intensity %.8f, protan %.8f, tritan\n"+
		"// %.8f, alpha %.8f, hue %.4f, and saturation %.4f.",
		e.VarName, e.Hex, i, p, t, a, h, s)
}

// entryView is the template-facing shape of an entry.
type entryView struct {
	Name    string
	VarName string
	Bits    string
	Doc     string
}

// renderTable produces the palette/table.go source for entries.
func renderTable(entries []entry) (string, error) {
	tpl, err := pongo2.FromString(tableTemplate)
	if err != nil {
		return "", err
	}

	views := make([]entryView, len(entries))
	for i, e := range entries {
		views[i] = entryView{
			Name:    e.Name,
			VarName: e.VarName,
			Bits:    fmt.Sprintf("0x%08x", e.Bits),
			Doc:     e.doc(),
		}
	}

	return tpl.Execute(pongo2.Context{
		"entries":  views,
		"size":     len(entries),
		"checksum": fmt.Sprintf("0x%016x", tableChecksum(entries)),
	})
}
