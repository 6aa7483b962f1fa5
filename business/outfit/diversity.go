package outfit

import (
	"sort"
	"strings"

	"styleLoop/domain"
)

// Diversity bonus contributions per new fingerprint component.
const (
	colorKeyBonus        = 0.3
	priceTierBonus       = 0.2
	formalityBonus       = 0.2
	acceptanceThreshold  = 0.3
	guaranteedAcceptance = 2
)

// DiversityFilter selects up to n outfits from a scored candidate set,
// preferring variety across color/price/formality fingerprints over raw
// score order. At least two outfits are accepted even when every
// candidate shares one fingerprint; remaining slots backfill by score.
// Scores are never altered; UI badges are attached to the selection.
func DiversityFilter(candidates []domain.CandidateOutfit, n int) []domain.CandidateOutfit {
	if n <= 0 || len(candidates) == 0 {
		return []domain.CandidateOutfit{}
	}

	sorted := make([]domain.CandidateOutfit, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score.Overall > sorted[j].Score.Overall
	})

	usedColorKeys := make(map[string]bool)
	usedPriceTiers := make(map[string]bool)
	usedFormality := make(map[int]bool)
	accepted := make(map[string]bool)

	selected := make([]domain.CandidateOutfit, 0, n)

	for _, outfit := range sorted {
		if len(selected) >= n {
			break
		}

		colorKey := fingerprintColorKey(outfit)
		tier := outfit.PriceBreakdown.Tier
		formalityBucket := outfit.VisualFeatures.FormalityScore / 2 * 2

		bonus := 0.0
		if !usedColorKeys[colorKey] {
			bonus += colorKeyBonus
		}
		if !usedPriceTiers[tier] {
			bonus += priceTierBonus
		}
		if !usedFormality[formalityBucket] {
			bonus += formalityBonus
		}

		if bonus > acceptanceThreshold || len(selected) < guaranteedAcceptance {
			selected = append(selected, outfit)
			accepted[outfit.ID] = true
			usedColorKeys[colorKey] = true
			usedPriceTiers[tier] = true
			usedFormality[formalityBucket] = true
		}
	}

	// backfill remaining slots with the best unaccepted outfits
	for _, outfit := range sorted {
		if len(selected) >= n {
			break
		}
		if accepted[outfit.ID] {
			continue
		}
		selected = append(selected, outfit)
		accepted[outfit.ID] = true
	}

	for i := range selected {
		selected[i].Badges = outfitBadges(selected[i], i)
	}

	return selected
}

func fingerprintColorKey(outfit domain.CandidateOutfit) string {
	colors := outfit.VisualFeatures.DominantColors
	if len(colors) > 2 {
		colors = colors[:2]
	}
	key := make([]string, len(colors))
	copy(key, colors)
	sort.Strings(key)
	return strings.Join(key, "-")
}

func outfitBadges(outfit domain.CandidateOutfit, index int) []string {
	var badges []string

	if index == 0 {
		badges = append(badges, "Top Match")
	}
	if outfit.PriceBreakdown.Tier == domain.PriceTierBudget {
		badges = append(badges, "Best Value")
	}
	if outfit.PriceBreakdown.Tier == domain.PriceTierPremium {
		badges = append(badges, "Premium")
	}
	if outfit.VisualFeatures.FormalityScore >= 7 {
		badges = append(badges, "Elegant")
	}
	if outfit.VisualFeatures.FormalityScore <= 3 {
		badges = append(badges, "Casual")
	}
	if outfit.VisualFeatures.PatternComplexity == domain.PatternMinimal {
		badges = append(badges, "Minimalist")
	}
	if len(outfit.VisualFeatures.DominantColors) == 1 {
		badges = append(badges, "Monochrome")
	}

	return badges
}
