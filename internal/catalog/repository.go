package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paymitra/storefront-backend/pkg/db/models"
	"github.com/paymitra/storefront-backend/pkg/pagination"
)

// Repository exposes read access to the product table plus the seed
// upsert used at boot.
type Repository interface {
	List(ctx context.Context, input ListInput) ([]models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Upsert(ctx context.Context, products []models.Product) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds the gorm-backed catalog repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, input ListInput) ([]models.Product, error) {
	qb := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)

	filter := input.Filters
	if filter.Category != "" {
		qb = qb.Where("category = ?", filter.Category)
	}
	if filter.Vendor != "" {
		qb = qb.Where("vendor = ?", filter.Vendor)
	}
	if filter.FeaturedOnly {
		qb = qb.Where("is_featured = ?", true)
	}
	if filter.NewOnly {
		qb = qb.Where("is_new = ?", true)
	}
	if filter.PriceMinCents != nil {
		qb = qb.Where("COALESCE(discount_price_cents, price_cents) >= ?", *filter.PriceMinCents)
	}
	if filter.PriceMaxCents != nil {
		qb = qb.Where("COALESCE(discount_price_cents, price_cents) <= ?", *filter.PriceMaxCents)
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(filter.Query)) + "%"
		qb = qb.Where("LOWER(name) LIKE ?", pattern)
	}

	qb = applySort(qb, input.Sort).
		Limit(pagination.NormalizeLimit(input.Pagination.Limit)).
		Offset(pagination.NormalizeOffset(input.Pagination.Offset))

	var products []models.Product
	if err := qb.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) Upsert(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&products).Error
}

func applySort(qb *gorm.DB, sort Sort) *gorm.DB {
	switch sort {
	case SortPriceAsc:
		return qb.Order("COALESCE(discount_price_cents, price_cents) ASC")
	case SortPriceDesc:
		return qb.Order("COALESCE(discount_price_cents, price_cents) DESC")
	case SortRating:
		return qb.Order("rating DESC")
	case SortNewest:
		return qb.Order("created_at DESC")
	default:
		return qb.Order("is_featured DESC").Order("rating DESC")
	}
}
