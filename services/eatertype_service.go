package services

import (
	"context"
	"errors"

	"github.com/khizerinam08/deal-checker/models"

	"gorm.io/gorm"
)

type EaterTypeService struct {
	db *gorm.DB
}

func NewEaterTypeService(db *gorm.DB) *EaterTypeService {
	return &EaterTypeService{db: db}
}

// Sync reconciles the cookie-held eater type with the stored profile.
// Precedence is fixed: a non-empty profile value wins and should be written
// back to the cookie; otherwise a valid cookie value is persisted; otherwise
// an empty profile is created and "None" returned.
func (s *EaterTypeService) Sync(ctx context.Context, userID, cookieValue string) (string, error) {
	if !models.ValidEaterType(cookieValue) {
		cookieValue = ""
	}

	var profile models.Profile
	err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if err == nil && models.ValidEaterType(profile.EaterType) {
		return profile.EaterType, nil
	}

	if cookieValue != "" {
		profile = models.Profile{ID: userID, EaterType: cookieValue}
		err := s.db.WithContext(ctx).
			Where("id = ?", userID).
			Assign(models.Profile{EaterType: cookieValue}).
			FirstOrCreate(&profile).Error
		if err != nil {
			return "", err
		}
		return cookieValue, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{ID: userID, EaterType: models.EaterNone}
		if err := s.db.WithContext(ctx).FirstOrCreate(&profile, "id = ?", userID).Error; err != nil {
			return "", err
		}
	}
	return models.EaterNone, nil
}

// Lookup returns the stored eater type for a user, "None" when the profile is
// missing or has not picked one.
func (s *EaterTypeService) Lookup(ctx context.Context, userID string) (string, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).First(&profile, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.EaterNone, nil
	}
	if err != nil {
		return "", err
	}
	if !models.ValidEaterType(profile.EaterType) {
		return models.EaterNone, nil
	}
	return profile.EaterType, nil
}
