package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paymitra/storefront-backend/pkg/db/models"
	"github.com/paymitra/storefront-backend/pkg/logger"
)

// Seed migrates the product table and upserts the built-in fixtures so
// a fresh service is browsable immediately. Ids are fixed so carts
// survive a restart against the same database file.
func Seed(ctx context.Context, db *gorm.DB, repo Repository, logg *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("database handle required")
	}
	if repo == nil {
		return fmt.Errorf("catalog repository required")
	}

	if err := db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("migrating products: %w", err)
	}

	fixtures := SeedProducts()
	if err := repo.Upsert(ctx, fixtures); err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}

	if logg != nil {
		ctx = logg.WithField(ctx, "count", len(fixtures))
		logg.Info(ctx, "catalog seeded")
	}
	return nil
}

// SeedProducts returns the storefront's built-in catalog fixtures.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:                 uuid.MustParse("7b8a1f66-0001-4c70-9a2e-1d4e5f6a7b01"),
			Name:               "Wireless Earbuds Pro",
			Category:           "Electronics",
			Vendor:             "SoundWave",
			PriceCents:         12999,
			DiscountPriceCents: cents(9999),
			Rating:             4.8,
			ImageURL:           "/images/products/earbuds-pro.jpg",
			IsNew:              true,
			IsFeatured:         true,
			IsActive:           true,
		},
		{
			ID:         uuid.MustParse("7b8a1f66-0002-4c70-9a2e-1d4e5f6a7b02"),
			Name:       "Classic Leather Wallet",
			Category:   "Accessories",
			Vendor:     "Urban Craft",
			PriceCents: 4999,
			Rating:     4.5,
			ImageURL:   "/images/products/leather-wallet.jpg",
			IsFeatured: true,
			IsActive:   true,
		},
		{
			ID:                 uuid.MustParse("7b8a1f66-0003-4c70-9a2e-1d4e5f6a7b03"),
			Name:               "Cotton Crew T-Shirt",
			Category:           "Apparel",
			Vendor:             "Everline",
			PriceCents:         2500,
			DiscountPriceCents: cents(1500),
			Rating:             4.2,
			ImageURL:           "/images/products/crew-tshirt.jpg",
			IsActive:           true,
		},
		{
			ID:         uuid.MustParse("7b8a1f66-0004-4c70-9a2e-1d4e5f6a7b04"),
			Name:       "Stainless Water Bottle",
			Category:   "Home & Kitchen",
			Vendor:     "Hydra",
			PriceCents: 2000,
			Rating:     4.6,
			ImageURL:   "/images/products/water-bottle.jpg",
			IsNew:      true,
			IsActive:   true,
		},
		{
			ID:                 uuid.MustParse("7b8a1f66-0005-4c70-9a2e-1d4e5f6a7b05"),
			Name:               "Canvas Backpack",
			Category:           "Accessories",
			Vendor:             "Urban Craft",
			PriceCents:         8900,
			DiscountPriceCents: cents(6900),
			Rating:             4.4,
			ImageURL:           "/images/products/canvas-backpack.jpg",
			IsFeatured:         true,
			IsActive:           true,
		},
		{
			ID:         uuid.MustParse("7b8a1f66-0006-4c70-9a2e-1d4e5f6a7b06"),
			Name:       "Ceramic Pour-Over Set",
			Category:   "Home & Kitchen",
			Vendor:     "BrewLab",
			PriceCents: 6000,
			Rating:     4.7,
			ImageURL:   "/images/products/pour-over-set.jpg",
			IsActive:   true,
		},
		{
			ID:         uuid.MustParse("7b8a1f66-0007-4c70-9a2e-1d4e5f6a7b07"),
			Name:       "Running Socks 3-Pack",
			Category:   "Apparel",
			Vendor:     "Stride",
			PriceCents: 1800,
			Rating:     4.1,
			ImageURL:   "/images/products/running-socks.jpg",
			IsActive:   true,
		},
		{
			ID:                 uuid.MustParse("7b8a1f66-0008-4c70-9a2e-1d4e5f6a7b08"),
			Name:               "Smart Desk Lamp",
			Category:           "Electronics",
			Vendor:             "Lumina",
			PriceCents:         7500,
			DiscountPriceCents: cents(5900),
			Rating:             4.3,
			ImageURL:           "/images/products/desk-lamp.jpg",
			IsNew:              true,
			IsActive:           true,
		},
	}
}

func cents(value int64) *int64 {
	return &value
}
