package palette

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/iptcolor/ipt"
)

func TestGet(t *testing.T) {
	got := Get("Ocean Blue", 0)
	assert.Equal(t, uint32(0xFE2C861F), got.Bits())
	assert.Equal(t, OceanBlue, got)
}

func TestGetMissReturnsDefault(t *testing.T) {
	defaults := []ipt.Packed{
		0,
		Transparent,
		ipt.Pack(1, 0.25, 0.75, 1),
		ipt.FromBits(0xFEFFFFFF),
	}
	for _, def := range defaults {
		assert.Equal(t, def, Get("Nonexistent Color", def), "default %#08x", def.Bits())
	}
	// misses must not register anything
	assert.Equal(t, tableSize, Count())
}

func TestGetIsExactMatch(t *testing.T) {
	for _, miss := range []string{"ocean blue", "OceanBlue", "Ocean Blue ", " Ocean Blue", "OCEAN BLUE"} {
		_, ok := Lookup(miss)
		assert.False(t, ok, "%q must not match", miss)
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("Raspberry")
	require.True(t, ok)
	assert.Equal(t, Raspberry, c)

	_, ok = Lookup("Nonexistent Color")
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	assert.Equal(t, tableSize, Count())
	assert.Equal(t, len(Named), Count())
}

func TestNamesAlphabetical(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, names, Count())

	apricot := sort.SearchStrings(names, "Apricot")
	black := sort.SearchStrings(names, "Black")
	blue := sort.SearchStrings(names, "Blue")
	assert.Less(t, apricot, black)
	assert.Less(t, black, blue)
}

func TestOrderingsArePermutations(t *testing.T) {
	names := Names()
	assert.ElementsMatch(t, names, ByHue())
	assert.ElementsMatch(t, names, ByLightness())
}

func TestByHueSorted(t *testing.T) {
	order := ByHue()
	for i := 1; i < len(order); i++ {
		a, b := Named[order[i-1]], Named[order[i]]
		assert.LessOrEqual(t, a.Hue(), b.Hue(), "%q before %q", order[i-1], order[i])
	}
}

func TestByLightnessSorted(t *testing.T) {
	order := ByLightness()
	for i := 1; i < len(order); i++ {
		a, b := Named[order[i-1]], Named[order[i]]
		assert.LessOrEqual(t, a.Intensity(), b.Intensity(), "%q before %q", order[i-1], order[i])
	}
}

// Names with exactly equal sort keys must keep their alphabetical order, so
// every run of equal keys is itself alphabetically sorted.
func TestByHueStable(t *testing.T) {
	order := ByHue()
	ties := 0
	for i := 1; i < len(order); i++ {
		if Named[order[i-1]].Hue() == Named[order[i]].Hue() {
			ties++
			assert.Less(t, order[i-1], order[i], "tie at hue %v", Named[order[i]].Hue())
		}
	}
	// the grays guarantee tie material exists
	assert.Greater(t, ties, 5)
}

func TestByLightnessStable(t *testing.T) {
	order := ByLightness()
	for i := 1; i < len(order); i++ {
		if Named[order[i-1]].Intensity() == Named[order[i]].Intensity() {
			assert.Less(t, order[i-1], order[i], "tie at intensity %v", Named[order[i]].Intensity())
		}
	}
}

func TestGraysShareHue(t *testing.T) {
	grays := []ipt.Packed{AshGray, BasaltGray, DustyGray, Gray, Silver, White, Black}
	for _, g := range grays[1:] {
		assert.Equal(t, grays[0].Hue(), g.Hue())
	}
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	names := Names()
	names[0] = "Vandalized"
	assert.NotEqual(t, "Vandalized", Names()[0])

	hue := ByHue()
	hue[0] = "Vandalized"
	assert.NotEqual(t, "Vandalized", ByHue()[0])
}

// The zero packed value is reserved: no registered name stores it, so a miss
// against the zero default is distinguishable from every hit, the Transparent
// entry included. The palette this table descends from reused Transparent's
// value as the conventional default, conflating the two.
func TestZeroSentinelDistinct(t *testing.T) {
	miss := Get("Nonexistent Color", 0)
	hit := Get("Transparent", 0)
	assert.NotEqual(t, miss.Bits(), hit.Bits())

	for name, c := range Named {
		assert.NotZero(t, c.Bits(), "%q must not collide with the sentinel", name)
	}
}

func TestTransparentVersusBlack(t *testing.T) {
	assert.Equal(t, Black.Intensity(), Transparent.Intensity())
	assert.Equal(t, Black.Protan(), Transparent.Protan())
	assert.Equal(t, Black.Tritan(), Transparent.Tritan())
	assert.Equal(t, float32(0), Transparent.Alpha())
	assert.NotEqual(t, Black.Bits(), Transparent.Bits())
}

func TestClosest(t *testing.T) {
	assert.Equal(t, "Ocean Blue", Closest(OceanBlue))
	assert.Equal(t, "White", Closest(ipt.Pack(1, 0.5, 0.5, 1)))

	// transparent entries are skipped even for a transparent query
	assert.Equal(t, "Black", Closest(Transparent))
}
