package cartdto

import "github.com/google/uuid"

// AddItemRequest adds a product to the session cart.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateQuantityRequest sets the quantity on an existing cart line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// ApplyCouponRequest submits a coupon code for validation.
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}
