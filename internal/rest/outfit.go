package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"styleLoop/business/outfit"
	"styleLoop/domain"
	"styleLoop/pkg/logger"
	"styleLoop/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	OutfitHandler struct {
		validate      *validator.Validate
		outfitService OutfitService
		timeout       time.Duration
	}

	OutfitService interface {
		Generate(ctx context.Context, req outfit.GenerateRequest) ([]domain.CandidateOutfit, error)
		RecordFeedback(ctx context.Context, event domain.FeedbackEvent) error
	}

	GenerateQuery struct {
		SessionID string  `query:"session_id" validate:"required"`
		Count     int     `query:"count"`
		Archetype string  `query:"archetype"`
		Colors    string  `query:"colors"`
		Budget    string  `query:"budget" validate:"omitempty,oneof=low medium high"`
		BudgetMax float64 `query:"budget_max" validate:"gte=0"`
		Occasions string  `query:"occasions"`
		Season    string  `query:"season" validate:"omitempty,oneof=spring summer autumn winter"`
	}

	FeedbackFeatures struct {
		Colors         []string `json:"colors"`
		Styles         []string `json:"styles"`
		TotalPrice     float64  `json:"total_price" validate:"gte=0"`
		FormalityScore int      `json:"formality_score" validate:"gte=0,lte=10"`
	}

	FeedbackRequest struct {
		SessionID string           `json:"session_id" validate:"required"`
		UserID    string           `json:"user_id"`
		OutfitID  string           `json:"outfit_id" validate:"required"`
		Direction string           `json:"direction" validate:"required,oneof=liked disliked neutral"`
		Features  FeedbackFeatures `json:"features"`
	}
)

func NewOutfitHandler(svc OutfitService) *OutfitHandler {
	return &OutfitHandler{
		validate:      validator.New(),
		outfitService: svc,
		timeout:       10 * time.Second,
	}
}

// GET /api/v1/outfits?session_id=...&count=3&archetype=Minimalist
func (h *OutfitHandler) Generate(c echo.Context) error {
	var q GenerateQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	budget := q.Budget
	if budget == "" && q.BudgetMax > 0 {
		budget = outfit.BudgetTierForMax(q.BudgetMax)
	}

	start := time.Now()
	metrics.OutfitRecommendRequests.Inc()

	outfits, err := h.outfitService.Generate(ctx, outfit.GenerateRequest{
		SessionID: q.SessionID,
		Count:     q.Count,
		Archetype: q.Archetype,
		Colors:    splitCSV(q.Colors),
		Budget:    budget,
		Occasions: splitCSV(q.Occasions),
		Season:    q.Season,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.OutfitRecommendLatency.Observe(time.Since(start).Seconds())

	// an empty list means insufficient catalog data, not a failure
	return c.JSON(http.StatusOK, fres.Response.StatusOK(outfits))
}

// POST /api/v1/outfits/feedback
//
// The write is fire-and-forget: the response never waits on (or reports)
// the persistence outcome. A lost swipe event is acceptable.
func (h *OutfitHandler) Feedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := domain.FeedbackEvent{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		OutfitID:  req.OutfitID,
		Direction: req.Direction,
		Features: datatypes.NewJSONType(domain.OutfitFeatures{
			Colors:         req.Features.Colors,
			Styles:         req.Features.Styles,
			TotalPrice:     req.Features.TotalPrice,
			FormalityScore: req.Features.FormalityScore,
		}),
		CreatedAt: time.Now(),
	}

	timeout := h.timeout
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := h.outfitService.RecordFeedback(ctx, event); err != nil {
			logger.Error("failed to record swipe feedback",
				"session_id", event.SessionID,
				"outfit_id", event.OutfitID,
				"error", err,
			)
		}
	}()

	return c.JSON(http.StatusAccepted, fres.Response.StatusOK("feedback accepted"))
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
