package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tomatoplanet/leads-go/config"
	"github.com/tomatoplanet/leads-go/models"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE industry AS ENUM ('FASHION', 'BEAUTY', 'TECHNOLOGY', 'FOOD', 'FITNESS', 'EDUCATION', 'ENTERTAINMENT', 'FINANCE', 'HEALTHCARE', 'AUTOMOTIVE', 'TRAVEL', 'SPORTS', 'OTHER'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE company_size AS ENUM ('STARTUP', 'SMALL', 'MEDIUM', 'LARGE', 'ENTERPRISE'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE social_platform AS ENUM ('TIKTOK', 'INSTAGRAM', 'YOUTUBE', 'TWITTER', 'OTHER'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE contact_channel AS ENUM ('EMAIL', 'PHONE'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE service_type AS ENUM ('BRAND', 'CREATOR'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := DB.AutoMigrate(
		&models.BrandApplication{},
		&models.CreatorApplication{},
		&models.ContactSubmission{},
		&models.AdminUser{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB swaps in an externally constructed connection, used by
// tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
