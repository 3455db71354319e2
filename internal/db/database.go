package db

import (
	"fmt"
	"os"

	"brewlocal/pkg/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Error),
		DisableForeignKeyConstraintWhenMigrating: false,
		// Map driver errors onto gorm's sentinel errors so callers can
		// errors.Is against gorm.ErrDuplicatedKey and friends
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs database migrations using GORM
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running GORM AutoMigrate...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Warn().Err(err).Msg("Could not create uuid-ossp extension")
	}

	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	if err := createCustomIndexes(db); err != nil {
		log.Warn().Err(err).Msg("Failed to create some custom indexes")
	}

	log.Info().Msg("GORM AutoMigrate completed successfully")
	return nil
}

// createCustomIndexes creates any custom indexes that GORM might not handle
func createCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		// Full text search index for listings
		`CREATE INDEX IF NOT EXISTS idx_listings_search ON listings USING gin(to_tsvector('simple', coalesce(name, '') || ' ' || coalesce(description, '') || ' ' || coalesce(tags, '')))`,

		// Browse queries filter on availability within a store
		`CREATE INDEX IF NOT EXISTS idx_listings_seller_available ON listings (seller_id, is_available)`,

		// City browse for active stores
		`CREATE INDEX IF NOT EXISTS idx_sellers_city_active ON sellers (city) WHERE is_active = true`,

		// Order feed is always read newest-first per store
		`CREATE INDEX IF NOT EXISTS idx_order_clicks_seller_created ON order_clicks (seller_id, created_at DESC)`,
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			log.Warn().Err(err).Str("index", idx).Msg("Failed to create index")
		}
	}

	return nil
}

// SeedInitialData creates initial system data
func SeedInitialData(db *gorm.DB) error {
	log.Info().Msg("Seeding initial data...")

	var userCount int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if userCount == 0 {
		adminUser := models.User{
			Email:            "admin@brewlocal.app",
			Password:         "$2a$10$ihq36CvkxLkl2FlsN1xI7.iRADfxaBLWHbNzdOCGzJYY/sqsCP1I2", // admin123
			Name:             "Administrator",
			Role:             "admin",
			ProfileCompleted: true,
			IsActive:         true,
		}

		if err := db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Info().Msg("Admin user created successfully")
	}

	if err := seedCategories(db); err != nil {
		return err
	}

	return nil
}

// seedCategories creates the default catalog categories on first boot
func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Category{
		{Name: "Coffee Beans", Slug: "coffee-beans", SortOrder: 1, IsActive: true},
		{Name: "Espresso Drinks", Slug: "espresso-drinks", SortOrder: 2, IsActive: true},
		{Name: "Filter Coffee", Slug: "filter-coffee", SortOrder: 3, IsActive: true},
		{Name: "Matcha Powder", Slug: "matcha-powder", SortOrder: 4, IsActive: true},
		{Name: "Matcha Drinks", Slug: "matcha-drinks", SortOrder: 5, IsActive: true},
		{Name: "Brewing Gear", Slug: "brewing-gear", SortOrder: 6, IsActive: true},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Info().Int("count", len(defaults)).Msg("Default categories created")
	return nil
}

// RunMigrations is the main migration function called from main.go
func RunMigrations(db *gorm.DB) error {
	log.Info().Msg("Starting database migrations...")

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if err := SeedInitialData(db); err != nil {
		return fmt.Errorf("initial data seeding failed: %w", err)
	}

	log.Info().Msg("All migrations completed successfully")
	return nil
}
