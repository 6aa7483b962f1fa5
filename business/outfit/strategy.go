package outfit

import "math/rand"

// Strategy is the per-attempt generation mode. Keeping it an explicit
// value (instead of an inline coin flip) lets the insight generator and
// the tests see which branch an attempt took.
type Strategy int

const (
	StrategyOptimized Strategy = iota
	StrategyExploratory
)

func (s Strategy) String() string {
	if s == StrategyExploratory {
		return "exploratory"
	}
	return "optimized"
}

// ExplorationRate tightens from 30% toward a 10% floor as swipes
// accumulate, so the system keeps surfacing some novelty indefinitely.
func ExplorationRate(swipeCount int) float64 {
	rate := explorationBase - explorationStep*float64(swipeCount)
	if rate < explorationFloor {
		return explorationFloor
	}
	return rate
}

func pickStrategy(r *rand.Rand, explorationRate float64) Strategy {
	if r.Float64() < explorationRate {
		return StrategyExploratory
	}
	return StrategyOptimized
}
