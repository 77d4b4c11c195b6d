package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaE(t *testing.T) {
	assert.Zero(t, DeltaE(Red, Red))
	assert.InDelta(t, DeltaE(Red, Blue), DeltaE(Blue, Red), 1e-9)
	assert.Greater(t, DeltaE(Black, White), 50.0)
	assert.Less(t, DeltaE(Gray, DustyGray), DeltaE(Gray, Red))
}

func TestDistinct(t *testing.T) {
	assert.Nil(t, Distinct(0))
	assert.Nil(t, Distinct(-3))

	got := Distinct(8)
	require.Len(t, got, 8)

	seen := make(map[string]bool)
	for _, name := range got {
		assert.NotEqual(t, "Transparent", name)
		_, ok := Lookup(name)
		assert.True(t, ok, "%q must be registered", name)
		assert.False(t, seen[name], "%q picked twice", name)
		seen[name] = true
	}

	// every later pick is no better separated than the pick before it
	for i := 2; i < len(got); i++ {
		di := minDeltaTo(got[i], got[:i])
		dp := minDeltaTo(got[i-1], got[:i-1])
		assert.LessOrEqual(t, di, dp+1e-9, "pick %d", i)
	}
}

func TestDistinctAskingForEverything(t *testing.T) {
	got := Distinct(Count() * 2)
	assert.Len(t, got, Count()-1, "all entries but Transparent")
}

func minDeltaTo(name string, prior []string) float64 {
	min := 0.0
	for i, p := range prior {
		d := DeltaE(Named[name], Named[p])
		if i == 0 || d < min {
			min = d
		}
	}
	return min
}
