// Package pricing computes order totals from resolved line items. It performs
// no I/O; every input is supplied by the caller.
package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Config holds the monetary constants shared by order pricing and invoice
// tax breakdown.
type Config struct {
	// FreeShippingThreshold is the subtotal at or above which shipping is free.
	FreeShippingThreshold decimal.Decimal
	// ShippingFee is the flat fee charged below the threshold.
	ShippingFee decimal.Decimal
	// TaxEnabled toggles tax on the discounted subtotal.
	TaxEnabled bool
	// TaxRate is the total GST rate in percent (e.g. 18).
	TaxRate decimal.Decimal
	// Currency is the ISO code attached to orders and invoices.
	Currency string
}

// DefaultConfig returns the stock INR configuration: free shipping from 999,
// flat fee 50, 18% GST disabled until a setting turns it on.
func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: decimal.NewFromInt(999),
		ShippingFee:           decimal.NewFromInt(50),
		TaxEnabled:            false,
		TaxRate:               decimal.NewFromInt(18),
		Currency:              "INR",
	}
}

// HalfRate returns the CGST (or SGST) percentage, half of the total rate.
func (c Config) HalfRate() decimal.Decimal {
	return c.TaxRate.Div(two)
}

// Line is a priced cart line. TotalPrice overrides UnitPrice*Quantity when an
// item-level promotion already computed the discounted line total.
type Line struct {
	ProductID          string
	Quantity           int
	UnitPrice          decimal.Decimal
	TotalPrice         decimal.NullDecimal
	DiscountedQuantity int
	DiscountPerUnit    decimal.Decimal
	DiscountPercentage decimal.Decimal
}

// Total returns the line total.
func (l Line) Total() decimal.Decimal {
	if l.TotalPrice.Valid {
		return l.TotalPrice.Decimal
	}
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Breakdown is the full price of an order.
type Breakdown struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Taxable  decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	// TaxRate is the GST percentage applied, zero when tax is disabled.
	TaxRate decimal.Decimal
}

// Subtotal sums line totals.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// Calculate prices lines with the given coupon discount.
func (c Config) Calculate(lines []Line, discount decimal.Decimal, freeShipping bool) Breakdown {
	return c.FromSubtotal(Subtotal(lines), discount, freeShipping)
}

// FromSubtotal prices an already summed subtotal. Shipping is decided on the
// pre-discount subtotal. Only the tax is rounded: subtotal, discount and
// shipping are already in whole paise, so total equals the sum of the stored
// components exactly.
func (c Config) FromSubtotal(subtotal, discount decimal.Decimal, freeShipping bool) Breakdown {
	b := Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: c.ShippingFee,
		Tax:      decimal.Zero,
		TaxRate:  decimal.Zero,
	}
	if freeShipping || subtotal.GreaterThanOrEqual(c.FreeShippingThreshold) {
		b.Shipping = decimal.Zero
	}

	b.Taxable = subtotal.Sub(discount)
	if b.Taxable.IsNegative() {
		b.Taxable = decimal.Zero
	}

	if c.TaxEnabled {
		b.TaxRate = c.TaxRate
		b.Tax = b.Taxable.Mul(c.TaxRate).Div(hundred).Round(2)
	}

	b.Total = b.Taxable.Add(b.Shipping).Add(b.Tax).Round(2)
	return b
}
