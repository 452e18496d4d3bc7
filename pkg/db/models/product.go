package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog listing the storefront renders and the
// cart references by id. Prices are stored as integer cents.
type Product struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name               string    `gorm:"column:name;not null"`
	Category           string    `gorm:"column:category;not null;index"`
	Vendor             string    `gorm:"column:vendor;not null;index"`
	PriceCents         int64     `gorm:"column:price_cents;not null"`
	DiscountPriceCents *int64    `gorm:"column:discount_price_cents"`
	Rating             float64   `gorm:"column:rating;not null;default:0"`
	ImageURL           string    `gorm:"column:image_url"`
	IsNew              bool      `gorm:"column:is_new;not null;default:false"`
	IsFeatured         bool      `gorm:"column:is_featured;not null;default:false"`
	IsActive           bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// UnitPrice returns the effective price: the discount price when one is
// set, the list price otherwise.
func (p Product) UnitPrice() decimal.Decimal {
	if p.DiscountPriceCents != nil {
		return decimal.New(*p.DiscountPriceCents, -2)
	}
	return decimal.New(p.PriceCents, -2)
}

// Price returns the list price in dollars.
func (p Product) Price() decimal.Decimal {
	return decimal.New(p.PriceCents, -2)
}

// DiscountPrice returns the markdown price in dollars, or nil.
func (p Product) DiscountPrice() *decimal.Decimal {
	if p.DiscountPriceCents == nil {
		return nil
	}
	d := decimal.New(*p.DiscountPriceCents, -2)
	return &d
}
