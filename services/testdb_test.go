package services

import (
	"fmt"
	"testing"

	"github.com/khizerinam08/deal-checker/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Deal{},
		&models.DealItem{},
		&models.Vote{},
		&models.Profile{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

func createTestDeal(t *testing.T, db *gorm.DB, name string, price int) models.Deal {
	t.Helper()

	deal := models.Deal{
		DealName:         name,
		PricePKR:         price,
		SatietyTier:      "Standard",
		ProductURL:       "https://example.com/" + name,
		Source:           "dominos",
		MultiplierLight:  1.0,
		MultiplierMedium: 1.0,
		MultiplierHeavy:  1.0,
	}
	if err := db.Create(&deal).Error; err != nil {
		t.Fatalf("Failed to create test deal: %v", err)
	}
	return deal
}
