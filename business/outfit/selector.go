package outfit

import (
	"math"
	"math/rand"
	"strings"

	"styleLoop/domain"
)

// Per-slot price window tolerance around the learned range.
const (
	priceWindowLow  = 0.8
	priceWindowHigh = 1.2
)

// selectForSlot picks one product for a garment slot. The optimized
// strategy narrows the slot pool by learned preferences before picking;
// the exploratory strategy picks over the raw slot pool. Both bound the
// random pick to the top fraction of the candidate ordering.
//
// The top-fraction window assumes the incoming pool is ordered by
// upstream relevance; with an unordered pool it degrades to a uniform
// pick over an arbitrary slice.
func selectForSlot(
	r *rand.Rand,
	pool []domain.Product,
	slot string,
	prefs PreferenceModel,
	strategy Strategy,
	topFraction float64,
) (domain.Product, bool) {
	slotPool := filterByCategory(pool, slot)
	if len(slotPool) == 0 {
		return domain.Product{}, false
	}

	candidates := slotPool
	if strategy == StrategyOptimized {
		candidates = applyPreferences(slotPool, prefs)
		if len(candidates) == 0 {
			// never return zero candidates if the slot has any at all
			candidates = slotPool
		}
	}

	return pickFromTop(r, candidates, topFraction), true
}

func filterByCategory(pool []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(pool))
	for _, p := range pool {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// applyPreferences narrows a slot pool: drop disliked colors, clamp to the
// learned price window, then prefer products matching both liked colors and
// liked styles, falling back to either subset, falling back to the filtered
// set when both are empty.
func applyPreferences(slotPool []domain.Product, prefs PreferenceModel) []domain.Product {
	filtered := make([]domain.Product, 0, len(slotPool))

	priceMin := prefs.PriceRange.Min * priceWindowLow
	priceMax := prefs.PriceRange.Max * priceWindowHigh

	for _, p := range slotPool {
		if hasAnyColor(p, prefs.DislikedColors) {
			continue
		}
		if p.Price < priceMin || p.Price > priceMax {
			continue
		}
		filtered = append(filtered, p)
	}

	var withLikedColors, withLikedStyles, both []domain.Product
	for _, p := range filtered {
		likedColor := hasAnyColor(p, prefs.LikedColors)
		likedStyle := matchesAnyStyle(p, prefs.LikedStyles)

		if likedColor {
			withLikedColors = append(withLikedColors, p)
		}
		if likedStyle {
			withLikedStyles = append(withLikedStyles, p)
		}
		if likedColor && likedStyle {
			both = append(both, p)
		}
	}

	switch {
	case len(both) > 0:
		return both
	case len(withLikedColors) > 0:
		return withLikedColors
	case len(withLikedStyles) > 0:
		return withLikedStyles
	default:
		return filtered
	}
}

func pickFromTop(r *rand.Rand, candidates []domain.Product, topFraction float64) domain.Product {
	topN := int(math.Ceil(float64(len(candidates)) * topFraction))
	if topN < 1 {
		topN = 1
	}
	return candidates[r.Intn(topN)]
}

func hasAnyColor(p domain.Product, colors []string) bool {
	for _, want := range colors {
		for _, have := range p.Colors {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

func matchesAnyStyle(p domain.Product, styles []string) bool {
	style := strings.ToLower(p.Style)
	if style == "" {
		return false
	}
	for _, want := range styles {
		if strings.Contains(style, strings.ToLower(want)) {
			return true
		}
	}
	return false
}
