package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     category    TEXT NOT NULL,
//     price       NUMERIC NOT NULL DEFAULT 0,
//     colors      JSONB,
//     style       TEXT,
//     tags        JSONB,
//     active      BOOLEAN DEFAULT TRUE,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

// Garment slots a complete outfit is assembled from.
const (
	SlotTop      = "top"
	SlotBottom   = "bottom"
	SlotFootwear = "footwear"
)

type Product struct {
	ID        uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string                      `gorm:"column:name;type:text;not null" json:"name"`
	Category  string                      `gorm:"column:category;type:text;not null" json:"category"`
	Price     float64                     `gorm:"column:price;type:numeric" json:"price"`
	Colors    datatypes.JSONSlice[string] `gorm:"column:colors;type:jsonb" json:"colors"`
	Style     string                      `gorm:"column:style;type:text" json:"style"`
	Tags      datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
	Active    bool                        `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time                   `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
