package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntry(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		varName string
		bits    uint32
	}{
		{"Apricot", "#FBCEB1", "Apricot", 0xfe948ed2},
		{"Transparent", "#00000000", "Transparent", 0x007f7f00},
		{"Ocean Blue", "0xFE2C861F", "OceanBlue", 0xfe2c861f},
		{"Air Force Blue", "#5D8AA8", "AirForceBlue", 0xfe6d738e},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := buildEntry(tt.name, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.varName, e.VarName)
			assert.Equal(t, tt.bits, e.Bits)
		})
	}
}

func TestBuildEntryRejectsBadValues(t *testing.T) {
	for _, v := range []string{"", "FBCEB1", "#FBCE", "#GGGGGG", "0xZZ", "#FBCEB1FF00"} {
		_, err := buildEntry("X", v)
		assert.Error(t, err, "value %q", v)
	}
}

func TestParseColors(t *testing.T) {
	in := "Blue\t#0000FF\n\n# comment line\nApricot\t#FBCEB1\nBlack\t#000000\n"
	entries, err := parseColors(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Apricot", entries[0].Name)
	assert.Equal(t, "Black", entries[1].Name)
	assert.Equal(t, "Blue", entries[2].Name)
}

func TestParseColorsRejectsDuplicates(t *testing.T) {
	in := "Blue\t#0000FF\nBlue\t#0000FE\n"
	_, err := parseColors(strings.NewReader(in))
	assert.ErrorContains(t, err, "duplicate")
}

func TestParseColorsRejectsUntabbedLines(t *testing.T) {
	_, err := parseColors(strings.NewReader("Blue #0000FF\n"))
	assert.Error(t, err)
}

func TestEntryDoc(t *testing.T) {
	apricot, err := buildEntry("Apricot", "#FBCEB1")
	require.NoError(t, err)
	assert.Equal(t,
		"// Apricot has hex code #FBCEB1, intensity 0.82352941, protan 0.55686275, tritan\n"+
			"// 0.58039216, alpha 0.99607843, hue 0.1520, and saturation 0.1969.",
		apricot.doc())

	ocean, err := buildEntry("Ocean Blue", "0xFE2C861F")
	require.NoError(t, err)
	assert.Equal(t,
		"// OceanBlue holds the packed value 0xFE2C861F imported from the previous palette\n"+
			"// revision. It decodes to intensity 0.12156863, protan 0.52549020, tritan\n"+
			"// 0.17254902, alpha 0.99607843, hue 0.7624, and saturation 0.6569.",
		ocean.doc())
}

func TestEmbeddedColorsChecksum(t *testing.T) {
	entries, err := parseColors(strings.NewReader(defaultColors))
	require.NoError(t, err)
	assert.Len(t, entries, 256)
	assert.Equal(t, uint64(0xd9257543eb73f7bc), tableChecksum(entries))
}

// The embedded colors file rendered through the template must reproduce the
// checked-in generated source exactly.
func TestRenderMatchesGeneratedTable(t *testing.T) {
	entries, err := parseColors(strings.NewReader(defaultColors))
	require.NoError(t, err)

	got, err := renderTable(entries)
	require.NoError(t, err)

	want, err := os.ReadFile("../../palette/table.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}
