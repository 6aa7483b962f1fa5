package outfit

import (
	"math"
	"strings"

	"styleLoop/domain"
)

// Fixed weight vector for the overall score.
var scoringWeights = struct {
	styleMatch        float64
	colorHarmony      float64
	priceOptimization float64
	occasionFit       float64
	novelty           float64
}{
	styleMatch:        0.30,
	colorHarmony:      0.25,
	priceOptimization: 0.20,
	occasionFit:       0.15,
	novelty:           0.10,
}

// noveltyScore is a fixed placeholder.
// TODO: compare against previously shown outfits for this session.
const noveltyScore = 0.80

// Descriptive tag keywords per archetype label.
var archetypeStyleTags = map[string][]string{
	"Minimalist": {"clean", "simple", "monochrome", "modern", "sleek"},
	"Classic":    {"timeless", "elegant", "refined", "sophisticated", "traditional"},
	"Bold":       {"statement", "vibrant", "edgy", "dramatic", "colorful"},
	"Casual":     {"relaxed", "comfortable", "everyday", "laid-back", "easy"},
	"Streetwear": {"urban", "trendy", "street", "sporty", "contemporary"},
	"Bohemian":   {"free-spirited", "eclectic", "artistic", "flowing", "natural"},
	"Romantic":   {"feminine", "soft", "delicate", "pretty", "vintage"},
}

// Target formality per named occasion, 1-10.
var occasionFormality = map[string]int{
	"casual":       2,
	"everyday":     3,
	"work":         6,
	"business":     7,
	"smart-casual": 5,
	"evening":      7,
	"formal":       9,
	"party":        6,
	"date":         7,
	"weekend":      3,
	"sport":        1,
	"brunch":       4,
}

// Target total price per budget tier when no price preference is learned.
var budgetTierTargets = map[string]float64{
	"low":    150,
	"medium": 250,
	"high":   500,
}

// BudgetTierForMax maps a client-supplied budget ceiling onto a tier label,
// for callers that send a spend limit instead of a named tier.
func BudgetTierForMax(max float64) string {
	if max <= 200 {
		return "low"
	}
	if max <= 400 {
		return "medium"
	}
	return "high"
}

// ScoreOutfit computes the five sub-scores and their weighted overall for
// one assembled outfit. Every score is total (defined for all inputs) and
// returned rounded to 2 decimals in [0,1].
func ScoreOutfit(products []domain.Product, gc GenerationContext, colors []string, totalPrice float64) domain.OutfitScore {
	styleMatch := scoreStyleMatch(products, gc.Profile.Archetype, gc.VisualEmbedding)

	colorHarmony := scoreColorHarmony(colors)
	if gc.Season != "" {
		colorHarmony = applySeasonalBoost(colors, colorHarmony, gc.Season)
	}

	priceOptimization := scorePriceOptimization(totalPrice, gc.Profile.Budget, gc.Preferences)
	occasionFit := scoreOccasionFit(products, gc.Profile.Occasions)

	overall := styleMatch*scoringWeights.styleMatch +
		colorHarmony*scoringWeights.colorHarmony +
		priceOptimization*scoringWeights.priceOptimization +
		occasionFit*scoringWeights.occasionFit +
		noveltyScore*scoringWeights.novelty

	return domain.OutfitScore{
		StyleMatch:        round2(styleMatch),
		ColorHarmony:      round2(colorHarmony),
		PriceOptimization: round2(priceOptimization),
		OccasionFit:       round2(occasionFit),
		Novelty:           round2(noveltyScore),
		Overall:           round2(overall),
	}
}

// scoreStyleMatch counts archetype keyword hits across the products'
// style fields and tags. Unknown archetypes score a flat 0.75. A visual
// embedding can lift the base score by at most 15%.
func scoreStyleMatch(products []domain.Product, archetype string, visualEmbedding map[string]float64) float64 {
	targetTags := archetypeStyleTags[archetype]
	if len(targetTags) == 0 {
		return 0.75
	}

	matchCount := 0
	totalChecks := 0

	for _, p := range products {
		style := strings.ToLower(p.Style)
		tags := lowerAll(p.Tags)

		for _, tag := range targetTags {
			totalChecks++
			if strings.Contains(style, tag) || anyContains(tags, tag) {
				matchCount++
			}
		}
	}

	score := 0.75
	if totalChecks > 0 {
		score = math.Min(0.95, 0.60+float64(matchCount)/float64(totalChecks)*0.35)
	}

	if len(visualEmbedding) > 0 {
		boost := visualEmbeddingBoost(products, visualEmbedding)
		score = math.Min(1.0, score*(1+boost*0.15))
	}

	return score
}

// visualEmbeddingBoost averages the affinities of embedding dimensions
// (affinity > 0.5) whose names appear in a product's style+tags text.
func visualEmbeddingBoost(products []domain.Product, visualEmbedding map[string]float64) float64 {
	totalBoost := 0.0
	boostCount := 0

	for _, p := range products {
		searchText := strings.ToLower(p.Style + " " + strings.Join(p.Tags, " "))

		for dimension, affinity := range visualEmbedding {
			if affinity > 0.5 && strings.Contains(searchText, strings.ToLower(dimension)) {
				totalBoost += affinity
				boostCount++
			}
		}
	}

	if boostCount == 0 {
		return 0
	}
	return totalBoost / float64(boostCount)
}

// scorePriceOptimization falls off linearly from the target price,
// reaching 0 once deviation hits 50% of the target. The target is the
// learned preferred average when available, else the budget tier default.
func scorePriceOptimization(totalPrice float64, budget string, prefs PreferenceModel) float64 {
	target := prefs.PriceRange.PreferredAvg
	if !prefs.PriceLearned {
		var ok bool
		target, ok = budgetTierTargets[strings.ToLower(budget)]
		if !ok {
			target = budgetTierTargets["medium"]
		}
	}

	deviation := math.Abs(totalPrice - target)
	maxDeviation := target * 0.5

	return math.Max(0, 1-deviation/maxDeviation)
}

// scoreOccasionFit buckets by the distance between the outfit's formality
// and the mean target formality of the requested occasions (5 when none
// are given or an occasion is unknown).
func scoreOccasionFit(products []domain.Product, occasions []string) float64 {
	target := float64(defaultFormality)
	if len(occasions) > 0 {
		sum := 0
		for _, occ := range occasions {
			formality, ok := occasionFormality[strings.ToLower(occ)]
			if !ok {
				formality = defaultFormality
			}
			sum += formality
		}
		target = float64(sum) / float64(len(occasions))
	}

	diff := math.Abs(float64(CalculateFormalityScore(products)) - target)

	switch {
	case diff <= 1:
		return 0.95
	case diff <= 2:
		return 0.85
	case diff <= 3:
		return 0.70
	default:
		return 0.55
	}
}

// PriceTier classifies an outfit's total price into a coarse bucket.
func PriceTier(total float64) string {
	if total <= 200 {
		return domain.PriceTierBudget
	}
	if total <= 400 {
		return domain.PriceTierMid
	}
	return domain.PriceTierPremium
}

// valueScore is a quality/price proxy keyed on average item price.
func valueScore(productCount int, totalPrice float64) float64 {
	if productCount == 0 {
		return 0.6
	}
	avg := totalPrice / float64(productCount)
	if avg < 50 {
		return 0.6
	}
	if avg < 100 {
		return 0.8
	}
	return 0.95
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func anyContains(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
