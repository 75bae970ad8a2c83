package main

import (
	"log"
	"os"

	"github.com/khizerinam08/deal-checker/config"
	"github.com/khizerinam08/deal-checker/routes"
	"github.com/khizerinam08/deal-checker/services"
)

func main() {
	config.InitDB()

	if path := os.Getenv("DEALS_SEED_FILE"); path != "" {
		n, err := services.SeedDealsFromFile(config.DB, path)
		if err != nil {
			log.Fatalf("Seeding deals failed: %v", err)
		}
		log.Printf("Seeded %d deals from %s", n, path)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
