package outfit

import (
	"fmt"
	"strings"

	"styleLoop/domain"
)

// Sub-score thresholds above which an explanation phrase is included.
const (
	explainStyleThreshold   = 0.8
	explainHarmonyThreshold = 0.85
	explainPriceThreshold   = 0.8
)

func buildExplanation(score domain.OutfitScore, archetype string) string {
	var parts []string

	if score.StyleMatch > explainStyleThreshold {
		label := archetype
		if label == "" {
			label = "personal"
		}
		parts = append(parts, fmt.Sprintf("Strong match for your %s style", label))
	}
	if score.ColorHarmony > explainHarmonyThreshold {
		parts = append(parts, "Colors harmonize beautifully")
	}
	if score.PriceOptimization > explainPriceThreshold {
		parts = append(parts, "Excellent value for your budget")
	}

	if len(parts) == 0 {
		return "A balanced look based on your preferences."
	}

	return strings.Join(parts, ". ") + "."
}

// buildInsight produces the short per-outfit tip. Exploratory attempts
// always get the invitation phrasing regardless of score.
func buildInsight(outfit domain.CandidateOutfit, strategy Strategy) string {
	if strategy == StrategyExploratory {
		return "This is a new style direction for you. Let us know what you think!"
	}

	if outfit.Score.Overall > 0.9 {
		return "Top match! This fits your preferences perfectly."
	}
	if outfit.PriceBreakdown.ValueScore > 0.9 {
		return "Great find, premium quality at this price."
	}

	return "A solid pick based on your swipes."
}
