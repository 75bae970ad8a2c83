package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Self-reported appetite tiers. Used both as a capacity baseline and as the
// vote grouping key; None marks a profile that has not picked one yet.
const (
	EaterSmall  = "Small"
	EaterMedium = "Medium"
	EaterLarge  = "Large"
	EaterNone   = "None"
)

func ValidEaterType(s string) bool {
	return s == EaterSmall || s == EaterMedium || s == EaterLarge
}

// One vote per (user, deal); re-rating updates the row in place.
// Ratings are fixed-point with one fractional digit so aggregation
// does not accumulate float drift.
type Vote struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"vote_id"`
	UserID        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_votes_user_deal" json:"user_id"`
	DealID        uint      `gorm:"not null;uniqueIndex:idx_votes_user_deal" json:"deal_id"`
	Deal          Deal      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	VoterType     string    `gorm:"type:varchar(10);not null" json:"voter_type"`
	ValueRating   float64   `gorm:"type:numeric(3,1);not null" json:"value_rating"`
	SatietyRating float64   `gorm:"type:numeric(3,1);not null" json:"satiety_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
