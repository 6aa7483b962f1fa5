package outfit

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"styleLoop/domain"
	"styleLoop/pkg/logger"

	"github.com/google/uuid"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	// FindActive returns the active product pool ordered by upstream
	// relevance (newest first).
	FindActive(ctx context.Context, limit int) ([]domain.Product, error)
}

type FeedbackRepository interface {
	SaveEvent(ctx context.Context, event domain.FeedbackEvent) error
	FindBySession(ctx context.Context, sessionID string) ([]domain.FeedbackEvent, error)
}

// ---- Request / context types ----

type UserProfile struct {
	Archetype string
	Colors    []string
	Budget    string // low | medium | high
	Occasions []string
}

// GenerationContext is assembled per request; attempts share it read-only.
type GenerationContext struct {
	SessionID       string
	SwipeCount      int
	ExplorationRate float64
	Profile         UserProfile
	Preferences     PreferenceModel
	VisualEmbedding map[string]float64
	Season          string
}

type GenerateRequest struct {
	SessionID       string
	UserID          string
	Count           int
	Archetype       string
	Colors          []string
	Budget          string
	Occasions       []string
	Season          string
	VisualEmbedding map[string]float64
}

// ---- Usecase / Service ----

type OutfitService struct {
	productRepo  ProductRepository
	feedbackRepo FeedbackRepository
	cfg          Config

	// newRand is called once per Generate so concurrent requests never
	// share a rand.Rand; tests override it for determinism.
	newRand func() *rand.Rand
}

func NewOutfitService(
	productRepo ProductRepository,
	feedbackRepo FeedbackRepository,
	cfg Config,
) *OutfitService {
	return &OutfitService{
		productRepo:  productRepo,
		feedbackRepo: feedbackRepo,
		cfg:          cfg,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// WithRand overrides the per-request random source factory.
func (s *OutfitService) WithRand(factory func() *rand.Rand) *OutfitService {
	s.newRand = factory
	return s
}

// Generate builds up to req.Count scored, diversity-filtered outfit
// candidates for a session. Store failures degrade: an unreadable pool
// yields an empty result, an unreadable history yields cold-start
// preferences. An empty result is "insufficient catalog data", not an
// error.
func (s *OutfitService) Generate(ctx context.Context, req GenerateRequest) ([]domain.CandidateOutfit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	count := req.Count
	if count <= 0 {
		count = s.cfg.DefaultCount
	}

	pool, err := s.productRepo.FindActive(ctx, s.cfg.PoolLimit)
	if err != nil {
		logger.Error("failed to load product pool",
			"session_id", req.SessionID,
			"error", err,
		)
		pool = nil
	}
	if len(pool) == 0 {
		return []domain.CandidateOutfit{}, nil
	}

	history, err := s.feedbackRepo.FindBySession(ctx, req.SessionID)
	if err != nil {
		logger.Error("failed to load feedback history, using cold-start defaults",
			"session_id", req.SessionID,
			"error", err,
		)
		history = nil
	}

	gc := GenerationContext{
		SessionID:       req.SessionID,
		SwipeCount:      len(history),
		ExplorationRate: ExplorationRate(len(history)),
		Profile: UserProfile{
			Archetype: req.Archetype,
			Colors:    req.Colors,
			Budget:    req.Budget,
			Occasions: req.Occasions,
		},
		Preferences:     BuildPreferenceModel(history),
		VisualEmbedding: req.VisualEmbedding,
		Season:          req.Season,
	}

	r := s.newRand()

	candidates := make([]domain.CandidateOutfit, 0, count)
	for i := 0; i < count; i++ {
		strategy := pickStrategy(r, gc.ExplorationRate)

		outfit, ok := s.assembleOutfit(r, pool, gc, strategy)
		if !ok {
			// slot exhaustion: skip the attempt, no partial outfits
			GenerationAttemptsTotal.WithLabelValues(strategy.String(), "failed").Inc()
			continue
		}
		GenerationAttemptsTotal.WithLabelValues(strategy.String(), "ok").Inc()

		candidates = append(candidates, outfit)
	}

	logger.Debug("outfit_generate",
		"session_id", req.SessionID,
		"swipe_count", gc.SwipeCount,
		"exploration_rate", gc.ExplorationRate,
		"pool_size", len(pool),
		"candidates", len(candidates),
	)

	return DiversityFilter(candidates, count), nil
}

// assembleOutfit runs slot selection for every required slot and scores
// the result. Returns false when any slot has no candidates at all.
func (s *OutfitService) assembleOutfit(
	r *rand.Rand,
	pool []domain.Product,
	gc GenerationContext,
	strategy Strategy,
) (domain.CandidateOutfit, bool) {
	products := make([]domain.Product, 0, len(s.cfg.RequiredSlots))
	for _, slot := range s.cfg.RequiredSlots {
		p, ok := selectForSlot(r, pool, slot, gc.Preferences, strategy, s.cfg.TopFraction)
		if !ok {
			return domain.CandidateOutfit{}, false
		}
		products = append(products, p)
	}

	totalPrice := 0.0
	for _, p := range products {
		totalPrice += p.Price
	}

	colors := collectColors(products)
	styles := collectStyles(products)

	score := ScoreOutfit(products, gc, colors, totalPrice)

	dominantColors := colors
	if len(dominantColors) > 3 {
		dominantColors = dominantColors[:3]
	}

	outfit := domain.CandidateOutfit{
		ID:       uuid.NewString(),
		Products: products,
		Score:    score,
		PriceBreakdown: domain.PriceBreakdown{
			Total:      totalPrice,
			Tier:       PriceTier(totalPrice),
			ValueScore: valueScore(len(products), totalPrice),
		},
		VisualFeatures: domain.VisualFeatures{
			DominantColors:    dominantColors,
			StyleTags:         styles,
			FormalityScore:    CalculateFormalityScore(products),
			PatternComplexity: assessPatternComplexity(products),
		},
		Explanation: buildExplanation(score, gc.Profile.Archetype),
	}
	outfit.Insight = buildInsight(outfit, strategy)

	return outfit, true
}

// RecordFeedback persists one swipe event. Callers must not block a
// user-visible response on this; the handler invokes it asynchronously.
func (s *OutfitService) RecordFeedback(ctx context.Context, event domain.FeedbackEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if event.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}

	switch event.Direction {
	case domain.DirectionLiked, domain.DirectionDisliked, domain.DirectionNeutral:
	default:
		return fmt.Errorf("unknown swipe direction: %s", event.Direction)
	}

	if err := s.feedbackRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save swipe event: %w", err)
	}

	FeedbackEventsTotal.WithLabelValues(event.Direction).Inc()

	return nil
}

func collectColors(products []domain.Product) []string {
	var colors []string
	for _, p := range products {
		colors = appendUnique(colors, p.Colors...)
	}
	return colors
}

func collectStyles(products []domain.Product) []string {
	var styles []string
	for _, p := range products {
		if p.Style != "" {
			styles = appendUnique(styles, p.Style)
		}
	}
	return styles
}
