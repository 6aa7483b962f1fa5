package outfit

import (
	"math"
	"strings"
)

// Color families used for harmony classification. Matching is substring
// based so compound names ("dark navy", "off-white") still classify.
var colorFamilies = map[string][]string{
	"neutrals": {"black", "white", "grey", "gray", "beige", "cream", "navy"},
	"warm":     {"red", "orange", "yellow", "brown", "burgundy", "coral"},
	"cool":     {"blue", "green", "purple", "teal", "cyan", "mint"},
	"earth":    {"brown", "tan", "olive", "khaki", "terracotta"},
}

var seasonalPalettes = map[string][]string{
	"spring": {"pastel", "pink", "mint", "yellow", "lavender", "peach", "coral"},
	"summer": {"white", "light blue", "yellow", "coral", "turquoise", "lime", "bright"},
	"autumn": {"burgundy", "brown", "orange", "olive", "rust", "camel", "terracotta"},
	"winter": {"navy", "black", "grey", "burgundy", "forest", "charcoal", "plum"},
}

// scoreColorHarmony rates an outfit's color combination. A single color is
// trivially harmonious; beyond that a neutral base or a shared family
// raises the score, and large palettes are penalized.
func scoreColorHarmony(colors []string) float64 {
	if len(colors) == 0 {
		return 0.50
	}
	if len(colors) == 1 {
		return 1.0
	}

	hasNeutral := false
	for _, c := range colors {
		if colorInFamily(c, colorFamilies["neutrals"]) {
			hasNeutral = true
			break
		}
	}

	sameFamily := false
	for _, family := range colorFamilies {
		count := 0
		for _, c := range colors {
			if colorInFamily(c, family) {
				count++
			}
		}
		if count == len(colors) {
			sameFamily = true
			break
		}
	}

	if len(colors) == 2 {
		if hasNeutral || sameFamily {
			return 0.95
		}
		return 0.85
	}

	if len(colors) == 3 {
		if hasNeutral && sameFamily {
			return 0.90
		}
		if hasNeutral || sameFamily {
			return 0.80
		}
		return 0.70
	}

	if hasNeutral {
		return 0.75
	}
	return 0.65
}

// applySeasonalBoost adds up to 0.10 depending on how much of the outfit's
// palette matches the season, capped at 1.0. Unknown seasons are a no-op.
func applySeasonalBoost(colors []string, baseScore float64, season string) float64 {
	palette, ok := seasonalPalettes[strings.ToLower(season)]
	if !ok {
		return baseScore
	}

	matching := 0
	for _, c := range colors {
		if colorInFamily(c, palette) {
			matching++
		}
	}

	total := len(colors)
	if total < 1 {
		total = 1
	}

	boost := float64(matching) / float64(total) * 0.10
	return math.Min(1.0, baseScore+boost)
}

func colorInFamily(color string, family []string) bool {
	lower := strings.ToLower(color)
	for _, member := range family {
		if strings.Contains(lower, member) {
			return true
		}
	}
	return false
}
