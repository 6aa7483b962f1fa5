package outfit

import "styleLoop/domain"

type Config struct {
	// Slots every generated outfit must fill, in assembly order.
	RequiredSlots []string

	// Max products pulled from the catalog per generation request.
	PoolLimit int

	// Outfits returned when the caller does not ask for a count.
	DefaultCount int

	// Fraction of the ranked per-slot candidates the random pick draws from.
	TopFraction float64
}

const (
	defaultPoolLimit   = 100
	defaultCount       = 3
	defaultTopFraction = 0.3

	explorationBase  = 0.3
	explorationStep  = 0.02
	explorationFloor = 0.1
)

func DefaultConfig() Config {
	return Config{
		RequiredSlots: []string{domain.SlotTop, domain.SlotBottom, domain.SlotFootwear},
		PoolLimit:     defaultPoolLimit,
		DefaultCount:  defaultCount,
		TopFraction:   defaultTopFraction,
	}
}
