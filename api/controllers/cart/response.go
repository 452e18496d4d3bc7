package cart

import (
	"github.com/shopspring/decimal"

	cartdto "github.com/paymitra/storefront-backend/api/controllers/cart/dto"
	cartsvc "github.com/paymitra/storefront-backend/internal/cart"
)

func newCartView(snapshot *cartsvc.Snapshot) cartdto.CartView {
	items := make([]cartdto.CartItemView, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		unitPrice := line.Product.UnitPrice()
		item := cartdto.CartItemView{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      line.Product.Name,
			ImageURL:  line.Product.ImageURL,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice.StringFixed(2),
			Price:     line.Product.Price().StringFixed(2),
			LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).StringFixed(2),
		}
		if markdown := line.Product.DiscountPrice(); markdown != nil {
			formatted := markdown.StringFixed(2)
			item.DiscountPrice = &formatted
		}
		items = append(items, item)
	}

	view := cartdto.CartView{
		SessionID: snapshot.SessionID,
		Items:     items,
		Totals: cartdto.TotalsView{
			Subtotal: snapshot.Pricing.Subtotal.StringFixed(2),
			Shipping: snapshot.Pricing.Shipping.StringFixed(2),
			Discount: snapshot.Pricing.Discount.StringFixed(2),
			Total:    snapshot.Pricing.Total.StringFixed(2),
		},
	}
	if snapshot.Coupon.Applied {
		view.Coupon = &cartdto.CouponView{
			Code: snapshot.Coupon.Code,
			Rate: snapshot.Coupon.Rate.String(),
		}
	}
	return view
}
