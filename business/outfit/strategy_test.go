package outfit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorationRate(t *testing.T) {
	tests := []struct {
		name       string
		swipeCount int
		want       float64
	}{
		{"cold start", 0, 0.30},
		{"five swipes", 5, 0.20},
		{"floor reached", 10, 0.10},
		{"beyond floor", 25, 0.10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ExplorationRate(tc.swipeCount), 1e-9)
		})
	}
}

func TestExplorationRate_NonIncreasing(t *testing.T) {
	prev := ExplorationRate(0)
	for swipes := 1; swipes <= 50; swipes++ {
		rate := ExplorationRate(swipes)
		assert.LessOrEqual(t, rate, prev, "rate must never grow with swipe count")
		assert.GreaterOrEqual(t, rate, 0.10)
		prev = rate
	}
}

func TestPickStrategy_Extremes(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		assert.Equal(t, StrategyExploratory, pickStrategy(r, 1.0))
		assert.Equal(t, StrategyOptimized, pickStrategy(r, 0.0))
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "optimized", StrategyOptimized.String())
	assert.Equal(t, "exploratory", StrategyExploratory.String())
}
