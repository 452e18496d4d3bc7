package cartdto

import "github.com/google/uuid"

// CartView is the cart snapshot exposed through the API: resolved
// lines, coupon state, and server-derived totals. Money fields are
// fixed two-decimal strings.
type CartView struct {
	SessionID string         `json:"session_id"`
	Items     []CartItemView `json:"items"`
	Coupon    *CouponView    `json:"coupon,omitempty"`
	Totals    TotalsView     `json:"totals"`
}

// CartItemView describes one resolved cart line.
type CartItemView struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url,omitempty"`
	Quantity      int       `json:"quantity"`
	UnitPrice     string    `json:"unit_price"`
	Price         string    `json:"price"`
	DiscountPrice *string   `json:"discount_price,omitempty"`
	LineTotal     string    `json:"line_total"`
}

// CouponView reports the applied coupon and its rate.
type CouponView struct {
	Code string `json:"code"`
	Rate string `json:"rate"`
}

// TotalsView carries the derived money totals.
type TotalsView struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}
