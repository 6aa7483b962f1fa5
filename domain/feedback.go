package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Swipe directions a user can give on a shown outfit.
const (
	DirectionLiked    = "liked"
	DirectionDisliked = "disliked"
	DirectionNeutral  = "neutral"
)

// OutfitFeatures is the snapshot of an outfit taken at feedback time.
// Preference learning reads these snapshots instead of re-resolving
// products, so deleted catalog items cannot distort history.
type OutfitFeatures struct {
	Colors         []string `json:"colors"`
	Styles         []string `json:"styles"`
	TotalPrice     float64  `json:"total_price"`
	FormalityScore int      `json:"formality_score"`
}

type FeedbackEvent struct {
	ID        uint                               `gorm:"primaryKey" json:"id"`
	SessionID string                             `gorm:"column:session_id;not null;index" json:"session_id"`
	UserID    string                             `gorm:"column:user_id" json:"user_id,omitempty"`
	OutfitID  string                             `gorm:"column:outfit_id;not null" json:"outfit_id"`
	Direction string                             `gorm:"column:direction;not null" json:"direction"`
	Features  datatypes.JSONType[OutfitFeatures] `gorm:"column:features;type:jsonb" json:"features"`
	CreatedAt time.Time                          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FeedbackEvent) TableName() string {
	return "swipe_events"
}
