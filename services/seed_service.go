package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/khizerinam08/deal-checker/models"

	"gorm.io/gorm"
)

// Shape of one record in the scraper's output file.
type seedDeal struct {
	DealName     string `json:"deal_name"`
	PricePKR     int    `json:"price_pkr"`
	Description  string `json:"description"`
	SatietyScore int    `json:"satiety_score"`
	SatietyTier  string `json:"satiety_tier"`
	ImageURL     string `json:"image_url"`
	ProductURL   string `json:"product_url"`
	Source       string `json:"source"`
	Items        []struct {
		Item  string `json:"item"`
		Qty   int    `json:"qty"`
		Score int    `json:"score"`
	} `json:"items_breakdown"`
}

// SeedDealsFromFile imports the scraper's JSON output, upserting deals by
// (source, deal_name) so re-running the import never duplicates rows or
// clobbers vote aggregates. Returns the number of deals processed.
func SeedDealsFromFile(db *gorm.DB, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []seedDeal
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	for _, s := range seeds {
		source := s.Source
		if source == "" {
			source = "dominos"
		}

		deal := models.Deal{
			DealName:     s.DealName,
			PricePKR:     s.PricePKR,
			Description:  s.Description,
			SatietyScore: s.SatietyScore,
			SatietyTier:  s.SatietyTier,
			ImageURL:     s.ImageURL,
			ProductURL:   s.ProductURL,
			Source:       source,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var existing models.Deal
			err := tx.Where("source = ? AND deal_name = ?", source, s.DealName).First(&existing).Error
			if err == nil {
				// Refresh scraped fields only; aggregates belong to the votes.
				existing.PricePKR = deal.PricePKR
				existing.Description = deal.Description
				existing.SatietyScore = deal.SatietyScore
				existing.SatietyTier = deal.SatietyTier
				existing.ImageURL = deal.ImageURL
				existing.ProductURL = deal.ProductURL
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				deal = existing
			} else if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&deal).Error; err != nil {
					return err
				}
			} else {
				return err
			}

			// Item breakdowns are replaced wholesale on every import.
			if err := tx.Where("deal_id = ?", deal.ID).Delete(&models.DealItem{}).Error; err != nil {
				return err
			}
			for _, it := range s.Items {
				item := models.DealItem{
					DealID: deal.ID,
					Item:   it.Item,
					Qty:    it.Qty,
					Score:  it.Score,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return 0, fmt.Errorf("seed deal %q: %w", s.DealName, err)
		}
	}

	return len(seeds), nil
}
