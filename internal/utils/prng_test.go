// internal/utils/prng_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/defs"
)

func TestPRNGDeterministicWithSameSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestChanceBounds(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		assert.False(t, s.Chance(0))
		assert.False(t, s.Chance(-1))
		assert.True(t, s.Chance(1))
		assert.True(t, s.Chance(2))
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	s := NewPRNGService(1)
	entries := []defs.LootEntry{
		{ItemID: "A", Weight: 90},
		{ItemID: "B", Weight: 10},
	}

	counts := map[string]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		counts[s.ChooseWeighted(entries)]++
	}

	require.Equal(t, n, counts["A"]+counts["B"])
	// При весах 90/10 доля A должна лежать около 0.9
	ratio := float64(counts["A"]) / n
	assert.InDelta(t, 0.9, ratio, 0.03)
}

func TestChooseWeightedDegenerate(t *testing.T) {
	s := NewPRNGService(1)
	assert.Equal(t, "", s.ChooseWeighted(nil))
	assert.Equal(t, "X", s.ChooseWeighted([]defs.LootEntry{{ItemID: "X", Weight: 0}}))
}

func TestChooseClassCoversTable(t *testing.T) {
	s := NewPRNGService(5)
	seen := map[defs.EnemyClass]bool{}
	for i := 0; i < 5000; i++ {
		seen[s.ChooseClass(defs.DefaultClassWeights)] = true
	}
	for _, cw := range defs.DefaultClassWeights {
		assert.True(t, seen[cw.Class], "class %s never chosen", cw.Class)
	}
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(10, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
	assert.Equal(t, 7.5, Lerp(5, 10, 0.5))
}
