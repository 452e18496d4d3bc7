package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paymitra/storefront-backend/internal/pricing"
	"github.com/paymitra/storefront-backend/pkg/db/models"
)

// Line is one cart entry: a product reference plus a quantity. The id
// is the line's stable identity; commands never address lines by
// position.
type Line struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// CouponState tracks the applied coupon for a session. It is created
// empty, mutated only by a successful validation, and never expires.
type CouponState struct {
	Applied bool
	Code    string
	Rate    decimal.Decimal
}

// Cart holds the ordered line items for one session.
type Cart struct {
	Lines  []Line
	Coupon CouponState
}

// ResolvedLine pairs a line with its current catalog product.
type ResolvedLine struct {
	Line
	Product models.Product
}

// Snapshot is the read surface handed to the presentation layer:
// resolved lines, coupon state, and freshly derived totals.
type Snapshot struct {
	SessionID string
	Lines     []ResolvedLine
	Coupon    CouponState
	Pricing   pricing.Result
}
