package domain

// Price tiers derived from an outfit's total price.
const (
	PriceTierBudget  = "budget"
	PriceTierMid     = "mid"
	PriceTierPremium = "premium"
)

// Pattern complexity buckets.
const (
	PatternMinimal  = "minimal"
	PatternModerate = "moderate"
	PatternDetailed = "detailed"
)

// OutfitScore holds the five sub-scores plus the weighted overall score.
// Every value lies in [0,1], rounded to 2 decimals.
type OutfitScore struct {
	StyleMatch        float64 `json:"style_match"`
	ColorHarmony      float64 `json:"color_harmony"`
	PriceOptimization float64 `json:"price_optimization"`
	OccasionFit       float64 `json:"occasion_fit"`
	Novelty           float64 `json:"novelty"`
	Overall           float64 `json:"overall"`
}

type PriceBreakdown struct {
	Total      float64 `json:"total"`
	Tier       string  `json:"tier"`
	ValueScore float64 `json:"value_score"`
}

type VisualFeatures struct {
	DominantColors    []string `json:"dominant_colors"`
	StyleTags         []string `json:"style_tags"`
	FormalityScore    int      `json:"formality_score"`
	PatternComplexity string   `json:"pattern_complexity"`
}

// CandidateOutfit is one generated recommendation: exactly one product per
// required slot. Created fresh per generation attempt and never mutated
// afterwards; diversity filtering only selects a subset and attaches badges.
type CandidateOutfit struct {
	ID             string         `json:"id"`
	Products       []Product      `json:"products"`
	Score          OutfitScore    `json:"score"`
	PriceBreakdown PriceBreakdown `json:"price_breakdown"`
	VisualFeatures VisualFeatures `json:"visual_features"`
	Explanation    string         `json:"explanation"`
	Insight        string         `json:"insight,omitempty"`
	Badges         []string       `json:"badges,omitempty"`
}
