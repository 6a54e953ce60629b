package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func line(price string, qty int) Line {
	return Line{ProductID: "p", Quantity: qty, UnitPrice: d(price)}
}

func TestCalculate(t *testing.T) {
	taxed := DefaultConfig()
	taxed.TaxEnabled = true

	tests := []struct {
		name         string
		cfg          Config
		lines        []Line
		discount     decimal.Decimal
		freeShipping bool
		want         Breakdown
	}{
		{
			name:  "cart at 1000 ships free, no tax",
			cfg:   DefaultConfig(),
			lines: []Line{line("500", 2)},
			want: Breakdown{
				Subtotal: d("1000"), Discount: d("0"), Taxable: d("1000"),
				Shipping: d("0"), Tax: d("0"), Total: d("1000"),
			},
		},
		{
			name:     "capped percentage coupon, tax disabled",
			cfg:      DefaultConfig(),
			lines:    []Line{line("500", 2)},
			discount: d("50"),
			want: Breakdown{
				Subtotal: d("1000"), Discount: d("50"), Taxable: d("950"),
				Shipping: d("0"), Tax: d("0"), Total: d("950"),
			},
		},
		{
			name:     "capped percentage coupon, 18% tax",
			cfg:      taxed,
			lines:    []Line{line("500", 2)},
			discount: d("50"),
			want: Breakdown{
				Subtotal: d("1000"), Discount: d("50"), Taxable: d("950"),
				Shipping: d("0"), Tax: d("171"), Total: d("1121"),
			},
		},
		{
			name:  "below threshold pays flat fee",
			cfg:   DefaultConfig(),
			lines: []Line{line("250", 2)},
			want: Breakdown{
				Subtotal: d("500"), Discount: d("0"), Taxable: d("500"),
				Shipping: d("50"), Tax: d("0"), Total: d("550"),
			},
		},
		{
			name:         "free shipping coupon below threshold",
			cfg:          DefaultConfig(),
			lines:        []Line{line("500", 1)},
			freeShipping: true,
			want: Breakdown{
				Subtotal: d("500"), Discount: d("0"), Taxable: d("500"),
				Shipping: d("0"), Tax: d("0"), Total: d("500"),
			},
		},
		{
			name:     "discount larger than subtotal floors taxable at zero",
			cfg:      taxed,
			lines:    []Line{line("100", 1)},
			discount: d("150"),
			want: Breakdown{
				Subtotal: d("100"), Discount: d("150"), Taxable: d("0"),
				Shipping: d("50"), Tax: d("0"), Total: d("50"),
			},
		},
		{
			name: "promotional line total overrides unit price",
			cfg:  DefaultConfig(),
			lines: []Line{{
				ProductID:          "ring",
				Quantity:           2,
				UnitPrice:          d("700"),
				TotalPrice:         decimal.NewNullDecimal(d("700")),
				DiscountedQuantity: 1,
				DiscountPerUnit:    d("700"),
				DiscountPercentage: d("100"),
			}},
			want: Breakdown{
				Subtotal: d("700"), Discount: d("0"), Taxable: d("700"),
				Shipping: d("50"), Tax: d("0"), Total: d("750"),
			},
		},
		{
			name:  "fractional tax rounds once",
			cfg:   taxed,
			lines: []Line{line("333.33", 1)},
			// 333.33 * 0.18 = 59.9994 -> 60.00
			want: Breakdown{
				Subtotal: d("333.33"), Discount: d("0"), Taxable: d("333.33"),
				Shipping: d("50"), Tax: d("60"), Total: d("443.33"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Calculate(tt.lines, tt.discount, tt.freeShipping)

			assert.True(t, tt.want.Subtotal.Equal(got.Subtotal), "subtotal: want %s, got %s", tt.want.Subtotal, got.Subtotal)
			assert.True(t, tt.want.Taxable.Equal(got.Taxable), "taxable: want %s, got %s", tt.want.Taxable, got.Taxable)
			assert.True(t, tt.want.Shipping.Equal(got.Shipping), "shipping: want %s, got %s", tt.want.Shipping, got.Shipping)
			assert.True(t, tt.want.Tax.Equal(got.Tax), "tax: want %s, got %s", tt.want.Tax, got.Tax)
			assert.True(t, tt.want.Total.Equal(got.Total), "total: want %s, got %s", tt.want.Total, got.Total)
			wantRate := decimal.Zero
			if tt.cfg.TaxEnabled {
				wantRate = tt.cfg.TaxRate
			}
			assert.True(t, wantRate.Equal(got.TaxRate), "tax rate: want %s, got %s", wantRate, got.TaxRate)
		})
	}
}

func TestFreeShippingThreshold(t *testing.T) {
	cfg := DefaultConfig()

	at := cfg.FromSubtotal(d("999"), decimal.Zero, false)
	assert.True(t, at.Shipping.IsZero())

	below := cfg.FromSubtotal(d("998"), decimal.Zero, false)
	assert.True(t, d("50").Equal(below.Shipping))

	belowCents := cfg.FromSubtotal(d("998.99"), decimal.Zero, false)
	assert.True(t, d("50").Equal(belowCents.Shipping))
}

func TestTotalIdentity(t *testing.T) {
	carts := [][]Line{
		{line("10.01", 3)},
		{line("1499.99", 1), line("0.01", 7)},
		{line("333.33", 3), line("12.5", 2)},
		{line("999", 1)},
	}
	discounts := []string{"0", "0.01", "50", "123.45", "99999"}

	for _, taxOn := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.TaxEnabled = taxOn
		for _, cart := range carts {
			for _, disc := range discounts {
				b := cfg.Calculate(cart, d(disc), false)

				sum := decimal.Zero
				for _, l := range cart {
					sum = sum.Add(l.Total())
				}
				require.True(t, sum.Equal(b.Subtotal))

				taxable := decimal.Max(decimal.Zero, b.Subtotal.Sub(d(disc)))
				want := taxable.Add(b.Tax).Add(b.Shipping)
				require.True(t, want.Equal(b.Total), "tax=%v disc=%s: %s != %s", taxOn, disc, want, b.Total)
				require.False(t, b.Total.IsNegative())
			}
		}
	}
}

func TestHalfRate(t *testing.T) {
	assert.True(t, d("9").Equal(DefaultConfig().HalfRate()))
}
