package pricing

import "github.com/shopspring/decimal"

// Line is one cart entry as the engine sees it: the effective unit
// price (markdown already resolved) and the quantity.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Coupon is the applied-discount state the engine derives from.
type Coupon struct {
	Applied bool
	Rate    decimal.Decimal
}

// Config carries the shipping knobs. Defaults come from pkg/config.
type Config struct {
	FlatShipping          decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

// Result holds the derived money totals for a cart.
type Result struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Compute derives totals from the current lines and coupon state. It
// is a pure function: callers recompute on every read, nothing is
// cached that could go stale against a mutation.
//
// Shipping is waived strictly above the threshold, and an empty cart
// never carries a shipping charge. The discount applies to the
// subtotal only, never to shipping. The total is floored at zero.
func Compute(lines []Line, coupon Coupon, cfg Config) Result {
	subtotal := decimal.Zero
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(line.UnitPrice.Mul(qty))
	}

	shipping := decimal.Zero
	if len(lines) > 0 && !subtotal.GreaterThan(cfg.FreeShippingThreshold) {
		shipping = cfg.FlatShipping
	}

	discount := decimal.Zero
	if coupon.Applied {
		discount = subtotal.Mul(coupon.Rate)
	}

	total := subtotal.Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Result{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
