package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paymitra/storefront-backend/internal/coupons"
	"github.com/paymitra/storefront-backend/internal/pricing"
	"github.com/paymitra/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paymitra/storefront-backend/pkg/errors"
)

type productLoader interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type couponValidator interface {
	Validate(code string) (coupons.Rule, bool)
}

// Service is the single owner of cart state for every session; all
// mutation commands and the read surface go through it. Every failed
// command leaves the cart observably unchanged.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*Snapshot, error)
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (*Snapshot, error)
	UpdateQuantity(ctx context.Context, sessionID string, lineID uuid.UUID, qty int) (*Snapshot, error)
	RemoveItem(ctx context.Context, sessionID string, lineID uuid.UUID) (*Snapshot, error)
	Clear(ctx context.Context, sessionID string) (*Snapshot, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*Snapshot, error)
}

type service struct {
	store    *Store
	products productLoader
	coupons  couponValidator
	pricing  pricing.Config
}

// NewService builds a cart service backed by the provided stack.
func NewService(store *Store, products productLoader, validator couponValidator, pricingCfg pricing.Config) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if validator == nil {
		return nil, fmt.Errorf("coupon validator required")
	}
	return &service{
		store:    store,
		products: products,
		coupons:  validator,
		pricing:  pricingCfg,
	}, nil
}

func (s *service) GetCart(ctx context.Context, sessionID string) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	return s.snapshot(ctx, sessionID)
}

// AddItem merges into the existing line for the product or appends a
// new one. Repeated adds of the same product never duplicate a line.
func (s *service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if qty < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is not available")
	}

	s.store.AddLine(sessionID, product.ID, qty)
	return s.snapshot(ctx, sessionID)
}

// UpdateQuantity sets the line's quantity. A quantity below 1 is
// rejected outright; removal is a distinct, explicit command.
func (s *service) UpdateQuantity(ctx context.Context, sessionID string, lineID uuid.UUID, qty int) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if qty < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	if !s.store.UpdateLine(sessionID, lineID, qty) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}
	return s.snapshot(ctx, sessionID)
}

// RemoveItem deletes the line with the given id. Removing a line that
// does not exist is a no-op, not an error.
func (s *service) RemoveItem(ctx context.Context, sessionID string, lineID uuid.UUID) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}

	s.store.RemoveLine(sessionID, lineID)
	return s.snapshot(ctx, sessionID)
}

func (s *service) Clear(ctx context.Context, sessionID string) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}

	s.store.Clear(sessionID)
	return s.snapshot(ctx, sessionID)
}

// ApplyCoupon validates the code and records the matched rate. An
// unrecognized code returns a validation error and leaves the coupon
// state untouched; re-applying an already-applied code is a no-op.
func (s *service) ApplyCoupon(ctx context.Context, sessionID, code string) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}

	current := s.store.Get(sessionID).Coupon
	if current.Applied && current.Code == coupons.Normalize(code) {
		return s.snapshot(ctx, sessionID)
	}

	rule, ok := s.coupons.Validate(code)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown coupon code")
	}

	s.store.SetCoupon(sessionID, rule.Code, rule.Rate)
	return s.snapshot(ctx, sessionID)
}

// snapshot resolves products and derives totals from current state.
// Lines whose product vanished from the catalog are skipped.
func (s *service) snapshot(ctx context.Context, sessionID string) (*Snapshot, error) {
	current := s.store.Get(sessionID)

	resolved := make([]ResolvedLine, 0, len(current.Lines))
	engineLines := make([]pricing.Line, 0, len(current.Lines))
	for _, line := range current.Lines {
		product, err := s.loadProduct(ctx, line.ProductID)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				continue
			}
			return nil, err
		}
		resolved = append(resolved, ResolvedLine{Line: line, Product: *product})
		engineLines = append(engineLines, pricing.Line{
			UnitPrice: product.UnitPrice(),
			Quantity:  line.Quantity,
		})
	}

	result := pricing.Compute(engineLines, pricing.Coupon{
		Applied: current.Coupon.Applied,
		Rate:    current.Coupon.Rate,
	}, s.pricing)

	return &Snapshot{
		SessionID: sessionID,
		Lines:     resolved,
		Coupon:    current.Coupon,
		Pricing:   result,
	}, nil
}

func (s *service) loadProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func requireSession(sessionID string) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return nil
}
