package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paymitra/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paymitra/storefront-backend/pkg/errors"
)

// Service exposes the read-only catalog the storefront browses and
// the cart resolves products against.
type Service interface {
	List(ctx context.Context, input ListInput) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]models.Product, error) {
	filter := input.Filters
	if filter.PriceMinCents != nil && *filter.PriceMinCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_min must be non-negative")
	}
	if filter.PriceMaxCents != nil && *filter.PriceMaxCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_max must be non-negative")
	}
	if filter.PriceMinCents != nil && filter.PriceMaxCents != nil && *filter.PriceMinCents > *filter.PriceMaxCents {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_min exceeds price_max")
	}

	products, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}
