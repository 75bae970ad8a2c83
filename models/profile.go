package models

import "time"

// Extended user data keyed by the auth provider's user id. Created lazily on
// the first eater-type sync; the auth provider owns the rest of the account.
type Profile struct {
	ID        string    `gorm:"type:varchar(255);primaryKey" json:"id"`
	EaterType string    `gorm:"type:varchar(10)" json:"eater_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
