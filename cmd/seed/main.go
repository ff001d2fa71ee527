package main

import (
	"log"
	"os"

	"escapedesk-be/internal/model"
	"escapedesk-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Subscription Plans...")

	plans := []model.SubscriptionPlan{
		{
			Name:            "Starter",
			Slug:            "starter",
			Description:     "For single-room operators getting started",
			Tagline:         "Up and running in minutes",
			Price:           290000,
			TaxRate:         0.11,
			BillingPeriod:   "monthly",
			IncludedCredits: 100,
			BookingQuota:    100,
			WaiverQuota:     100,
			AiQuota:         0,
			SortOrder:       1,
			IsActive:        true,
		},
		{
			Name:            "Growth",
			Slug:            "growth",
			Description:     "For venues running multiple rooms and staff",
			Tagline:         "The most popular choice",
			Price:           790000,
			TaxRate:         0.11,
			BillingPeriod:   "monthly",
			IncludedCredits: 500,
			BookingQuota:    500,
			WaiverQuota:     500,
			AiQuota:         50,
			IsMostPopular:   true,
			SortOrder:       2,
			IsActive:        true,
		},
		{
			Name:            "Scale",
			Slug:            "scale",
			Description:     "For multi-venue operations with high volume",
			Tagline:         "No limits on the essentials",
			Price:           1990000,
			TaxRate:         0.11,
			BillingPeriod:   "monthly",
			IncludedCredits: 2000,
			BookingQuota:    -1,
			WaiverQuota:     -1,
			AiQuota:         200,
			SortOrder:       3,
			IsActive:        true,
		},
	}

	for _, p := range plans {
		var existing model.SubscriptionPlan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			log.Printf("Plan '%s' already exists, skipping...", p.Slug)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", p.Slug, err)
		} else {
			log.Printf("Created plan: %s", p.Name)
		}
	}

	log.Println("Seeding Credit Packages...")

	packages := []model.CreditPackage{
		{Name: "Top-up 50", Credits: 50, Price: 75000, SortOrder: 1, IsActive: true},
		{Name: "Top-up 200", Credits: 200, Price: 250000, SortOrder: 2, IsActive: true},
		{Name: "Top-up 1000", Credits: 1000, Price: 990000, SortOrder: 3, IsActive: true},
	}

	for _, pkg := range packages {
		var existing model.CreditPackage
		if err := db.Where("name = ?", pkg.Name).First(&existing).Error; err == nil {
			log.Printf("Package '%s' already exists, skipping...", pkg.Name)
			continue
		}
		if err := db.Create(&pkg).Error; err != nil {
			log.Printf("Error creating package '%s': %v", pkg.Name, err)
		} else {
			log.Printf("Created package: %s", pkg.Name)
		}
	}

	log.Println("Seeding Notification Types...")
	SeedNotificationTypes(db)

	log.Println("✅ Seeding completed!")
}
