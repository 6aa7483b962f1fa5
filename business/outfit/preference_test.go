package outfit

import (
	"testing"

	"styleLoop/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func feedbackEvent(direction string, features domain.OutfitFeatures) domain.FeedbackEvent {
	return domain.FeedbackEvent{
		SessionID: "session-1",
		OutfitID:  "outfit-1",
		Direction: direction,
		Features:  datatypes.NewJSONType(features),
	}
}

func TestBuildPreferenceModel_EmptyHistory(t *testing.T) {
	model := BuildPreferenceModel(nil)

	assert.Empty(t, model.LikedColors)
	assert.Empty(t, model.DislikedColors)
	assert.Empty(t, model.LikedStyles)
	assert.Empty(t, model.DislikedStyles)
	assert.Equal(t, PriceRange{Min: 0, Max: 1000, PreferredAvg: 300}, model.PriceRange)
	assert.False(t, model.PriceLearned)
	assert.Equal(t, 5.0, model.FormalityPreference)
}

func TestBuildPreferenceModel_PartitionsByDirection(t *testing.T) {
	history := []domain.FeedbackEvent{
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{
			Colors: []string{"black", "white"},
			Styles: []string{"minimal"},
		}),
		feedbackEvent(domain.DirectionDisliked, domain.OutfitFeatures{
			Colors: []string{"orange"},
			Styles: []string{"boho"},
		}),
		feedbackEvent(domain.DirectionNeutral, domain.OutfitFeatures{
			Colors: []string{"green"},
			Styles: []string{"sporty"},
		}),
	}

	model := BuildPreferenceModel(history)

	assert.Equal(t, []string{"black", "white"}, model.LikedColors)
	assert.Equal(t, []string{"minimal"}, model.LikedStyles)
	assert.Equal(t, []string{"orange"}, model.DislikedColors)
	assert.Equal(t, []string{"boho"}, model.DislikedStyles)
	assert.NotContains(t, model.LikedColors, "green")
	assert.NotContains(t, model.DislikedColors, "green")
}

func TestBuildPreferenceModel_DeduplicatesFeatures(t *testing.T) {
	history := []domain.FeedbackEvent{
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{Colors: []string{"black", "black"}}),
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{Colors: []string{"black", "navy"}}),
	}

	model := BuildPreferenceModel(history)

	assert.Equal(t, []string{"black", "navy"}, model.LikedColors)
}

func TestBuildPreferenceModel_LearnsPriceRangeFromLikes(t *testing.T) {
	history := []domain.FeedbackEvent{
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{TotalPrice: 100}),
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{TotalPrice: 300}),
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{TotalPrice: 200}),
		// disliked prices never move the range
		feedbackEvent(domain.DirectionDisliked, domain.OutfitFeatures{TotalPrice: 900}),
	}

	model := BuildPreferenceModel(history)

	assert.True(t, model.PriceLearned)
	assert.Equal(t, 100.0, model.PriceRange.Min)
	assert.Equal(t, 300.0, model.PriceRange.Max)
	assert.Equal(t, 200.0, model.PriceRange.PreferredAvg)
}

func TestBuildPreferenceModel_ZeroPriceLikesKeepDefaults(t *testing.T) {
	history := []domain.FeedbackEvent{
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{TotalPrice: 0}),
	}

	model := BuildPreferenceModel(history)

	assert.False(t, model.PriceLearned)
	assert.Equal(t, 300.0, model.PriceRange.PreferredAvg)
}

func TestBuildPreferenceModel_FormalityAveragesLikes(t *testing.T) {
	history := []domain.FeedbackEvent{
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{FormalityScore: 3}),
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{FormalityScore: 7}),
		// a zero snapshot counts as the neutral midpoint, not as zero
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{FormalityScore: 0}),
	}

	model := BuildPreferenceModel(history)

	assert.InDelta(t, 5.0, model.FormalityPreference, 1e-9)
}

func TestBuildPreferenceModel_OrderIndependent(t *testing.T) {
	forward := []domain.FeedbackEvent{
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{Colors: []string{"black"}, TotalPrice: 100}),
		feedbackEvent(domain.DirectionLiked, domain.OutfitFeatures{Colors: []string{"navy"}, TotalPrice: 200}),
	}
	reversed := []domain.FeedbackEvent{forward[1], forward[0]}

	a := BuildPreferenceModel(forward)
	b := BuildPreferenceModel(reversed)

	assert.Equal(t, a.PriceRange, b.PriceRange)
	assert.ElementsMatch(t, a.LikedColors, b.LikedColors)
}
