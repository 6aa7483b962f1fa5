package outfit

import (
	"testing"

	"styleLoop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id string, overall float64, tier string, formality int, colors ...string) domain.CandidateOutfit {
	return domain.CandidateOutfit{
		ID:    id,
		Score: domain.OutfitScore{Overall: overall},
		PriceBreakdown: domain.PriceBreakdown{
			Tier: tier,
		},
		VisualFeatures: domain.VisualFeatures{
			DominantColors: colors,
			FormalityScore: formality,
		},
	}
}

func TestDiversityFilter_EmptyInputs(t *testing.T) {
	assert.Empty(t, DiversityFilter(nil, 3))
	assert.Empty(t, DiversityFilter([]domain.CandidateOutfit{candidate("a", 0.9, domain.PriceTierMid, 5, "black")}, 0))
}

func TestDiversityFilter_CapsAtN(t *testing.T) {
	candidates := []domain.CandidateOutfit{
		candidate("a", 0.9, domain.PriceTierBudget, 2, "black"),
		candidate("b", 0.8, domain.PriceTierMid, 5, "red"),
		candidate("c", 0.7, domain.PriceTierPremium, 8, "blue"),
	}

	selected := DiversityFilter(candidates, 2)

	require.Len(t, selected, 2)
	assert.Equal(t, "a", selected[0].ID)
	assert.Equal(t, "b", selected[1].ID)
}

func TestDiversityFilter_PrefersVarietyOverScore(t *testing.T) {
	// three look-alikes outrank one distinct outfit; variety still wins
	// the third slot
	candidates := []domain.CandidateOutfit{
		candidate("dup-1", 0.90, domain.PriceTierMid, 5, "black", "white"),
		candidate("dup-2", 0.85, domain.PriceTierMid, 5, "black", "white"),
		candidate("dup-3", 0.80, domain.PriceTierMid, 5, "black", "white"),
		candidate("distinct", 0.70, domain.PriceTierBudget, 2, "red", "coral"),
	}

	selected := DiversityFilter(candidates, 3)

	require.Len(t, selected, 3)
	assert.Equal(t, "dup-1", selected[0].ID)
	assert.Equal(t, "dup-2", selected[1].ID) // guaranteed second acceptance
	assert.Equal(t, "distinct", selected[2].ID)
}

func TestDiversityFilter_BackfillsByScore(t *testing.T) {
	candidates := []domain.CandidateOutfit{
		candidate("a", 0.90, domain.PriceTierMid, 5, "black", "white"),
		candidate("b", 0.85, domain.PriceTierMid, 5, "black", "white"),
		candidate("c", 0.80, domain.PriceTierMid, 5, "black", "white"),
	}

	selected := DiversityFilter(candidates, 3)

	require.Len(t, selected, 3)
	assert.Equal(t, "c", selected[2].ID)
}

func TestDiversityFilter_ColorKeyIgnoresOrder(t *testing.T) {
	// same first-two colors in different order fingerprint identically
	a := candidate("a", 0.9, domain.PriceTierMid, 5, "black", "white")
	b := candidate("b", 0.8, domain.PriceTierMid, 5, "white", "black")

	assert.Equal(t, fingerprintColorKey(a), fingerprintColorKey(b))
}

func TestDiversityFilter_ScoresUnchanged(t *testing.T) {
	original := candidate("a", 0.87, domain.PriceTierMid, 5, "black")

	selected := DiversityFilter([]domain.CandidateOutfit{original}, 1)

	require.Len(t, selected, 1)
	assert.Equal(t, original.Score, selected[0].Score)
}

func TestOutfitBadges(t *testing.T) {
	t.Run("top match only on first", func(t *testing.T) {
		c := candidate("a", 0.9, domain.PriceTierMid, 5, "black", "white")
		assert.Contains(t, outfitBadges(c, 0), "Top Match")
		assert.NotContains(t, outfitBadges(c, 1), "Top Match")
	})

	t.Run("tier badges", func(t *testing.T) {
		budget := candidate("a", 0.9, domain.PriceTierBudget, 5, "black", "white")
		premium := candidate("b", 0.9, domain.PriceTierPremium, 5, "black", "white")

		assert.Contains(t, outfitBadges(budget, 1), "Best Value")
		assert.Contains(t, outfitBadges(premium, 1), "Premium")
	})

	t.Run("formality badges", func(t *testing.T) {
		elegant := candidate("a", 0.9, domain.PriceTierMid, 8, "black", "white")
		casual := candidate("b", 0.9, domain.PriceTierMid, 2, "black", "white")

		assert.Contains(t, outfitBadges(elegant, 1), "Elegant")
		assert.Contains(t, outfitBadges(casual, 1), "Casual")
	})

	t.Run("monochrome and minimalist", func(t *testing.T) {
		c := candidate("a", 0.9, domain.PriceTierMid, 5, "black")
		c.VisualFeatures.PatternComplexity = domain.PatternMinimal

		badges := outfitBadges(c, 1)
		assert.Contains(t, badges, "Monochrome")
		assert.Contains(t, badges, "Minimalist")
	})
}
