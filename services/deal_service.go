package services

import (
	"github.com/khizerinam08/deal-checker/config"
	"github.com/khizerinam08/deal-checker/models"
)

// ListDeals returns every deal with its item breakdown, cheapest first.
func ListDeals() ([]models.Deal, error) {
	var deals []models.Deal
	err := config.DB.Preload("Items").Order("price_pkr ASC").Find(&deals).Error
	return deals, err
}

// ListDealsForEater loads all deals and all votes and blends them into
// personalized scores for the given eater type.
func ListDealsForEater(eaterType string) ([]ScoredDeal, error) {
	var deals []models.Deal
	if err := config.DB.Preload("Items").Find(&deals).Error; err != nil {
		return nil, err
	}

	var votes []models.Vote
	if err := config.DB.Find(&votes).Error; err != nil {
		return nil, err
	}

	return BlendScores(eaterType, deals, votes), nil
}
