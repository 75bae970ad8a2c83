package models

import "gorm.io/gorm"

// A scraped deal plus the denormalized vote aggregates. Rows are created by
// the offline scraper import; only the aggregate columns change afterwards.
type Deal struct {
	gorm.Model
	DealName     string `gorm:"not null" json:"deal_name"`
	PricePKR     int    `gorm:"not null" json:"price_pkr"`
	Description  string `json:"description"`
	SatietyScore int    `json:"satiety_score"`
	SatietyTier  string `gorm:"type:varchar(50);not null" json:"satiety_tier"` // Snack|Standard|Heavy
	ImageURL     string `json:"image_url"`
	ProductURL   string `gorm:"not null" json:"product_url"`
	Source       string `gorm:"type:varchar(50);default:dominos" json:"source"`

	// Recomputed from the full vote set after every vote.
	BaseValueScore   float64 `gorm:"default:0" json:"base_value_score"`
	MultiplierLight  float64 `gorm:"default:1" json:"multiplier_light"`
	MultiplierMedium float64 `gorm:"default:1" json:"multiplier_medium"`
	MultiplierHeavy  float64 `gorm:"default:1" json:"multiplier_heavy"`

	Items []DealItem `gorm:"constraint:OnDelete:CASCADE" json:"items_breakdown"`
}

// One line item of a deal, e.g. 2x medium_pizza.
type DealItem struct {
	gorm.Model
	DealID uint   `gorm:"index;not null" json:"deal_id"`
	Item   string `gorm:"type:varchar(50);not null" json:"item"` // medium_pizza, drink_1.5l, …
	Qty    int    `gorm:"not null;default:1" json:"qty"`
	Score  int    `gorm:"not null" json:"score"`
}
