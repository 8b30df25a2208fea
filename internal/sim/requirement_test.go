package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForageRequirement_BaseAtZeroFills(t *testing.T) {
	for _, mono := range []int{0, 1, 4, 10} {
		assert.Equal(t, 100.0, ForageRequirement(100, 0, mono))
		assert.Equal(t, 0.0, ForageRequirement(0, 0, mono))
	}
}

func TestForageRequirement_NonDecreasingInFills(t *testing.T) {
	for _, base := range []float64{0, 5, 100, 10000} {
		for _, mono := range []int{0, 2, 4} {
			prev := ForageRequirement(base, 0, mono)
			for fills := 1; fills <= 200; fills++ {
				cur := ForageRequirement(base, fills, mono)
				assert.GreaterOrEqual(t, cur, prev, "base=%v mono=%d fills=%d", base, mono, fills)
				prev = cur
			}
		}
	}
}

func TestForageRequirement_NoMonolithicBonusIs102(t *testing.T) {
	// bonus^1 with zero monolithic pets is exactly 1.02
	assert.InDelta(t, 101*1.02, ForageRequirement(100, 1, 0), 1e-9)
}

func TestForageRequirement_MonolithicFlattensGrowth(t *testing.T) {
	const base = 100.0
	for fills := 1; fills <= 50; fills++ {
		prev := ForageRequirement(base, fills, 0)
		for mono := 1; mono <= 4; mono++ {
			cur := ForageRequirement(base, fills, mono)
			assert.Less(t, cur, prev, "fills=%d mono=%d", fills, mono)
			// never flattens below the linear floor
			assert.Greater(t, cur, base+float64(fills))
			prev = cur
		}
	}
}
