//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type couponResponse struct {
	Code           string  `json:"code"`
	Type           string  `json:"type"`
	DiscountAmount float64 `json:"discount_amount"`
	FreeShipping   bool    `json:"free_shipping"`
}

type validateCouponResponse struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
	Coupon  *couponResponse `json:"coupon"`
}

type applyCouponResponse struct {
	Success  bool `json:"success"`
	Discount struct {
		Amount   float64 `json:"amount"`
		NewTotal float64 `json:"new_total"`
	} `json:"discount"`
	Order orderResponse `json:"order"`
}

func TestValidateCoupon(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		status   int
		valid    bool
		discount float64
	}{
		{"percentage", "/api/coupons/validate/SAVE10?orderAmount=6000", http.StatusOK, true, 600},
		{"lower case code", "/api/coupons/validate/save10?orderAmount=6000", http.StatusOK, true, 600},
		{"below minimum", "/api/coupons/validate/SAVE10?orderAmount=100", http.StatusBadRequest, false, 0},
		{"unknown", "/api/coupons/validate/NOPE?orderAmount=100", http.StatusNotFound, false, 0},
		{"bad amount", "/api/coupons/validate/SAVE10?orderAmount=abc", http.StatusBadRequest, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(t, tt.path)
			require.Equal(t, tt.status, resp.StatusCode)

			body := decodeJSON[validateCouponResponse](t, resp)
			assert.Equal(t, tt.valid, body.Valid)
			if !tt.valid {
				assert.NotEmpty(t, body.Message)
				return
			}
			require.NotNil(t, body.Coupon)
			assert.Equal(t, "SAVE10", body.Coupon.Code)
			assert.Equal(t, tt.discount, body.Coupon.DiscountAmount)
		})
	}
}

func TestValidateCoupon_FreeShipping(t *testing.T) {
	resp := doGet(t, "/api/coupons/validate/FREESHIP?orderAmount=500")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[validateCouponResponse](t, resp)
	require.NotNil(t, body.Coupon)
	assert.True(t, body.Coupon.FreeShipping)
	assert.Zero(t, body.Coupon.DiscountAmount)
}

func TestValidateCoupon_VIPOnly(t *testing.T) {
	// The seeded demo customer is not a VIP.
	resp := do(t, http.MethodGet, "/api/coupons/validate/VIP15?orderAmount=5000", customerKey, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, decodeJSON[validateCouponResponse](t, resp).Valid)
}

func TestApplyCoupon(t *testing.T) {
	o := placeOrder(t, "", newOrderRequest(orderItemRequest{ProductID: "RING-BND-002", Quantity: 1}))

	resp := do(t, http.MethodPost, "/api/coupons/apply", "", map[string]string{"code": "FLAT500", "orderId": o.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[applyCouponResponse](t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, 500.0, body.Discount.Amount)
	assert.Equal(t, "FLAT500", body.Order.CouponCode)
	assert.Equal(t, body.Discount.NewTotal, body.Order.TotalAmount)
	assert.Less(t, body.Order.TotalAmount, o.TotalAmount)

	// A second coupon on the same order is refused.
	resp = do(t, http.MethodPost, "/api/coupons/apply", "", map[string]string{"code": "SAVE10", "orderId": o.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
