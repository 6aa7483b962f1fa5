package outfit

import "styleLoop/domain"

// PriceRange is the price envelope learned from liked outfits.
type PriceRange struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	PreferredAvg float64 `json:"preferred_avg"`
}

// PreferenceModel is derived fresh from persisted feedback on every
// generation call; nothing here is mutated in place between requests.
type PreferenceModel struct {
	LikedColors    []string
	DislikedColors []string
	LikedStyles    []string
	DislikedStyles []string
	PriceRange     PriceRange
	// PriceLearned is false until at least one liked event carries a
	// positive total price; scoring then targets the budget tier instead.
	PriceLearned        bool
	FormalityPreference float64
}

// Cold-start defaults for an empty (or unreadable) history.
const (
	defaultPriceMin     = 0
	defaultPriceMax     = 1000
	defaultPreferredAvg = 300
	defaultFormality    = 5
)

// BuildPreferenceModel partitions the feedback history by swipe direction
// and aggregates the feature snapshots. Liked events drive the price range
// and formality preference; neutral events are ignored. Event order does
// not matter.
func BuildPreferenceModel(history []domain.FeedbackEvent) PreferenceModel {
	model := PreferenceModel{
		PriceRange: PriceRange{
			Min:          defaultPriceMin,
			Max:          defaultPriceMax,
			PreferredAvg: defaultPreferredAvg,
		},
		FormalityPreference: defaultFormality,
	}

	var likedPrices []float64
	var formalitySum float64
	var formalityCount int

	for _, event := range history {
		features := event.Features.Data()

		switch event.Direction {
		case domain.DirectionLiked:
			model.LikedColors = appendUnique(model.LikedColors, features.Colors...)
			model.LikedStyles = appendUnique(model.LikedStyles, features.Styles...)

			if features.TotalPrice > 0 {
				likedPrices = append(likedPrices, features.TotalPrice)
			}

			formality := float64(features.FormalityScore)
			if formality == 0 {
				formality = defaultFormality
			}
			formalitySum += formality
			formalityCount++

		case domain.DirectionDisliked:
			model.DislikedColors = appendUnique(model.DislikedColors, features.Colors...)
			model.DislikedStyles = appendUnique(model.DislikedStyles, features.Styles...)
		}
	}

	if len(likedPrices) > 0 {
		minPrice, maxPrice, sum := likedPrices[0], likedPrices[0], 0.0
		for _, p := range likedPrices {
			if p < minPrice {
				minPrice = p
			}
			if p > maxPrice {
				maxPrice = p
			}
			sum += p
		}
		model.PriceRange = PriceRange{
			Min:          minPrice,
			Max:          maxPrice,
			PreferredAvg: sum / float64(len(likedPrices)),
		}
		model.PriceLearned = true
	}

	if formalityCount > 0 {
		model.FormalityPreference = formalitySum / float64(formalityCount)
	}

	return model
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
