package coupon

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount holds the computed discount for an order amount.
type Discount struct {
	Amount decimal.Decimal
	// FreeShipping waives the order's shipping fee.
	FreeShipping bool
}

// Apply computes the discount the coupon grants on orderAmount. The result is
// rounded to 2 decimal places and clamped to [0, orderAmount].
func Apply(c *Coupon, orderAmount decimal.Decimal) (Discount, error) {
	var amount decimal.Decimal

	switch c.Type {
	case TypePercentage:
		amount = orderAmount.Mul(c.Value).Div(hundred)
		if c.MaxDiscountAmount.Valid && amount.GreaterThan(c.MaxDiscountAmount.Decimal) {
			amount = c.MaxDiscountAmount.Decimal
		}
	case TypeFixed:
		amount = c.Value
	case TypeFreeShipping:
		return Discount{Amount: decimal.Zero, FreeShipping: true}, nil
	default:
		return Discount{}, errors.Errorf("unsupported coupon type: %q", c.Type)
	}

	return Discount{Amount: clamp(amount, orderAmount).Round(2)}, nil
}

func clamp(amount, upper decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	if upper.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(amount, upper)
}
