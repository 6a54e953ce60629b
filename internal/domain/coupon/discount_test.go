package coupon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name         string
		coupon       *Coupon
		orderAmount  decimal.Decimal
		wantAmount   decimal.Decimal
		wantFreeShip bool
		wantErrText  string
	}{
		{
			name:        "percentage uncapped",
			coupon:      &Coupon{Code: "PCT10", Type: TypePercentage, Value: d("10")},
			orderAmount: d("1000"),
			wantAmount:  d("100"),
		},
		{
			name: "percentage capped by max discount",
			coupon: &Coupon{
				Code:              "SAVE10",
				Type:              TypePercentage,
				Value:             d("10"),
				MaxDiscountAmount: decimal.NewNullDecimal(d("50")),
			},
			orderAmount: d("1000"),
			wantAmount:  d("50"),
		},
		{
			name: "percentage below cap is not raised",
			coupon: &Coupon{
				Code:              "SAVE10",
				Type:              TypePercentage,
				Value:             d("10"),
				MaxDiscountAmount: decimal.NewNullDecimal(d("50")),
			},
			orderAmount: d("300"),
			wantAmount:  d("30"),
		},
		{
			name:        "percentage rounds to 2 dp",
			coupon:      &Coupon{Code: "PCT15", Type: TypePercentage, Value: d("15")},
			orderAmount: d("29.97"),
			// 4.4955 -> 4.50
			wantAmount: d("4.50"),
		},
		{
			name:        "fixed under order amount",
			coupon:      &Coupon{Code: "FLAT200", Type: TypeFixed, Value: d("200")},
			orderAmount: d("1500"),
			wantAmount:  d("200"),
		},
		{
			name:        "fixed clamped to order amount",
			coupon:      &Coupon{Code: "FLAT200", Type: TypeFixed, Value: d("200")},
			orderAmount: d("120"),
			wantAmount:  d("120"),
		},
		{
			name:        "negative value floors at zero",
			coupon:      &Coupon{Code: "NEG", Type: TypeFixed, Value: d("-5")},
			orderAmount: d("120"),
			wantAmount:  d("0"),
		},
		{
			name:         "free shipping discounts nothing",
			coupon:       &Coupon{Code: "FREESHIP", Type: TypeFreeShipping},
			orderAmount:  d("500"),
			wantAmount:   d("0"),
			wantFreeShip: true,
		},
		{
			name:        "unsupported type",
			coupon:      &Coupon{Code: "BAD", Type: Type("bogus"), Value: d("10")},
			orderAmount: d("100"),
			wantErrText: "unsupported coupon type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.coupon, tt.orderAmount)
			if tt.wantErrText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrText)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantAmount.Equal(got.Amount), "expected %s, got %s", tt.wantAmount, got.Amount)
			assert.Equal(t, tt.wantFreeShip, got.FreeShipping)
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" Percentage ")
	require.NoError(t, err)
	assert.Equal(t, TypePercentage, got)

	_, err = ParseType("bogo")
	require.Error(t, err)
}

func TestParseAudience(t *testing.T) {
	got, err := ParseAudience("")
	require.NoError(t, err)
	assert.Equal(t, AudienceAll, got)

	got, err = ParseAudience("VIP_CUSTOMERS")
	require.NoError(t, err)
	assert.Equal(t, AudienceVIPCustomers, got)

	_, err = ParseAudience("everyone")
	require.Error(t, err)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "WELCOME10", NormalizeCode("  welcome10\n"))
}
