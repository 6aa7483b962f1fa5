package outfit

import (
	"math/rand"
	"testing"

	"styleLoop/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id uint64, name, category string, price float64, colors []string, style string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Colors:   colors,
		Style:    style,
		Active:   true,
	}
}

func TestSelectForSlot_EmptySlotPool(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pool := []domain.Product{
		testProduct(1, "Jeans", domain.SlotBottom, 80, []string{"blue"}, "casual"),
	}

	_, ok := selectForSlot(r, pool, domain.SlotFootwear, PreferenceModel{}, StrategyOptimized, 0.3)

	assert.False(t, ok)
}

func TestSelectForSlot_OptimizedDropsDislikedColors(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pool := []domain.Product{
		testProduct(1, "Orange Tee", domain.SlotTop, 40, []string{"orange"}, "casual"),
		testProduct(2, "Black Tee", domain.SlotTop, 40, []string{"black"}, "casual"),
	}
	prefs := BuildPreferenceModel(nil)
	prefs.DislikedColors = []string{"Orange"} // matching is case-insensitive

	for i := 0; i < 20; i++ {
		p, ok := selectForSlot(r, pool, domain.SlotTop, prefs, StrategyOptimized, 1.0)
		require.True(t, ok)
		assert.Equal(t, uint64(2), p.ID)
	}
}

func TestSelectForSlot_OptimizedClampsToPriceWindow(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pool := []domain.Product{
		testProduct(1, "Cheap Top", domain.SlotTop, 50, []string{"white"}, ""),
		testProduct(2, "Mid Top", domain.SlotTop, 150, []string{"white"}, ""),
		testProduct(3, "Pricey Top", domain.SlotTop, 300, []string{"white"}, ""),
	}
	prefs := PreferenceModel{
		PriceRange:          PriceRange{Min: 100, Max: 200, PreferredAvg: 150},
		PriceLearned:        true,
		FormalityPreference: 5,
	}

	// window is [80, 240]: only the mid product survives
	for i := 0; i < 20; i++ {
		p, ok := selectForSlot(r, pool, domain.SlotTop, prefs, StrategyOptimized, 1.0)
		require.True(t, ok)
		assert.Equal(t, uint64(2), p.ID)
	}
}

func TestSelectForSlot_PrefersColorAndStyleOverEither(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pool := []domain.Product{
		testProduct(1, "Plain Top", domain.SlotTop, 60, []string{"red"}, "sporty"),
		testProduct(2, "Liked Color", domain.SlotTop, 60, []string{"black"}, "sporty"),
		testProduct(3, "Liked Both", domain.SlotTop, 60, []string{"black"}, "minimal"),
	}
	prefs := BuildPreferenceModel(nil)
	prefs.LikedColors = []string{"black"}
	prefs.LikedStyles = []string{"minimal"}

	for i := 0; i < 20; i++ {
		p, ok := selectForSlot(r, pool, domain.SlotTop, prefs, StrategyOptimized, 1.0)
		require.True(t, ok)
		assert.Equal(t, uint64(3), p.ID)
	}
}

func TestSelectForSlot_FallsBackWhenEverythingFiltered(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pool := []domain.Product{
		testProduct(1, "Orange Top", domain.SlotTop, 60, []string{"orange"}, ""),
	}
	prefs := BuildPreferenceModel(nil)
	prefs.DislikedColors = []string{"orange"}

	p, ok := selectForSlot(r, pool, domain.SlotTop, prefs, StrategyOptimized, 0.3)

	require.True(t, ok)
	assert.Equal(t, uint64(1), p.ID)
}

func TestSelectForSlot_ExploratoryIgnoresPreferences(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pool := []domain.Product{
		testProduct(1, "Orange Top", domain.SlotTop, 999, []string{"orange"}, ""),
	}
	prefs := PreferenceModel{
		DislikedColors:      []string{"orange"},
		PriceRange:          PriceRange{Min: 10, Max: 20, PreferredAvg: 15},
		PriceLearned:        true,
		FormalityPreference: 5,
	}

	p, ok := selectForSlot(r, pool, domain.SlotTop, prefs, StrategyExploratory, 0.3)

	require.True(t, ok)
	assert.Equal(t, uint64(1), p.ID)
}

func TestPickFromTop_StaysInTopFraction(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	candidates := make([]domain.Product, 10)
	for i := range candidates {
		candidates[i] = testProduct(uint64(i+1), "Top", domain.SlotTop, 50, nil, "")
	}

	// ceil(10 * 0.3) = 3: only the first three ranks are eligible
	for i := 0; i < 200; i++ {
		p := pickFromTop(r, candidates, 0.3)
		assert.LessOrEqual(t, p.ID, uint64(3))
	}
}

func TestPickFromTop_SingleCandidateMinimum(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	candidates := []domain.Product{testProduct(1, "Only", domain.SlotTop, 50, nil, "")}

	p := pickFromTop(r, candidates, 0.01)

	assert.Equal(t, uint64(1), p.ID)
}
