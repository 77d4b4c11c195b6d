package palette

import (
	"fmt"
	"sort"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/iptcolor/ipt"
)

// Recomputing the fingerprint over the live table catches hand edits to the
// generated source.
func TestTableChecksum(t *testing.T) {
	names := make([]string, 0, len(Named))
	for n := range Named {
		names = append(names, n)
	}
	sort.Strings(names)

	d := xxhash.New()
	for _, n := range names {
		fmt.Fprintf(d, "%s=%08x\n", n, Named[n].Bits())
	}
	assert.Equal(t, tableChecksum, d.Sum64())
}

func TestTableSize(t *testing.T) {
	assert.Equal(t, tableSize, len(Named))
	assert.Equal(t, 256, len(Named))
}

// Every entry must survive decode then re-encode bit for bit.
func TestTableRoundTrips(t *testing.T) {
	for name, c := range Named {
		got := ipt.Pack(c.Intensity(), c.Protan(), c.Tritan(), c.Alpha())
		require.Equal(t, c.Bits(), got.Bits(), "%q", name)
	}
}

func TestTableAlphaMasked(t *testing.T) {
	for name, c := range Named {
		a := c.Bits() >> 24 & 0xFF
		assert.Zero(t, a&1, "%q alpha byte must be even", name)
		if name != "Transparent" {
			assert.Equal(t, uint32(0xFE), a, "%q must be opaque", name)
		}
	}
}

func TestPinnedEntries(t *testing.T) {
	assert.Equal(t, uint32(0xFE2C861F), OceanBlue.Bits())
	assert.Equal(t, uint32(0x007F7F00), Transparent.Bits())
	assert.Equal(t, uint32(0xFE7F7F00), Black.Bits())
}
