//go:build integration

package integration

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestPlaceOrder_Guest(t *testing.T) {
	// 6998 is above the free shipping threshold.
	o := placeOrder(t, "", newOrderRequest(orderItemRequest{ProductID: "EAR-JHM-001", Quantity: 2}))

	assert.Regexp(t, uuidPattern, o.ID)
	assert.NotEmpty(t, o.OrderNumber)
	assert.Nil(t, o.UserID)
	assert.Equal(t, "pending", o.Status)
	assert.Equal(t, "pending", o.PaymentStatus)
	assert.Equal(t, 6998.0, o.Subtotal)
	assert.Zero(t, o.ShippingAmount)
	// 3% GST from the seeded settings.
	assert.InDelta(t, 209.94, o.TaxAmount, 0.001)
	assert.InDelta(t, 7207.94, o.TotalAmount, 0.001)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Temple Jhumka Earrings", o.Items[0].ProductName)
}

func TestPlaceOrder_Authenticated(t *testing.T) {
	o := placeOrder(t, customerKey, newOrderRequest(orderItemRequest{ProductID: "BRC-BNG-001", Quantity: 1}))
	require.NotNil(t, o.UserID)

	// The owner can read it back, a guest cannot.
	resp := do(t, http.MethodGet, "/api/orders/"+o.ID, customerKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, o.OrderNumber, decodeJSON[orderResponse](t, resp).OrderNumber)

	resp = do(t, http.MethodGet, "/api/orders/"+o.ID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPlaceOrder_InvalidKey(t *testing.T) {
	resp := do(t, http.MethodPost, "/api/orders", "wrong-key",
		newOrderRequest(orderItemRequest{ProductID: "EAR-JHM-001", Quantity: 1}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPlaceOrder_Validation(t *testing.T) {
	req := newOrderRequest()
	req.Items = []orderItemRequest{}
	req.Pincode = "12"
	resp := do(t, http.MethodPost, "/api/orders", "", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeJSON[errorResponse](t, resp)
	assert.Contains(t, body.Errors, "pincode")
	assert.Contains(t, body.Errors, "items")

	req = newOrderRequest(orderItemRequest{ProductID: "EAR-JHM-001", Quantity: 1})
	req.CustomerEmail = "not-an-email"
	resp = do(t, http.MethodPost, "/api/orders", "", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeJSON[errorResponse](t, resp).Errors, "customerEmail")
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	resp := do(t, http.MethodPost, "/api/orders", "",
		newOrderRequest(orderItemRequest{ProductID: "NOPE-999", Quantity: 1}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeJSON[errorResponse](t, resp).Errors, "items")
}

func TestPlaceOrder_WithCoupon(t *testing.T) {
	req := newOrderRequest(orderItemRequest{ProductID: "NECK-PRL-001", Quantity: 1})
	req.CouponCode = "flat500"
	o := placeOrder(t, "", req)

	assert.Equal(t, "FLAT500", o.CouponCode)
	assert.Equal(t, 7999.0, o.Subtotal)
	assert.Equal(t, 500.0, o.DiscountAmount)
	// (7999 - 500) * 3% = 224.97
	assert.InDelta(t, 224.97, o.TaxAmount, 0.001)
	assert.InDelta(t, 7723.97, o.TotalAmount, 0.001)
}

func TestPlaceOrder_CouponBelowMinimum(t *testing.T) {
	req := newOrderRequest(orderItemRequest{ProductID: "BRC-BNG-001", Quantity: 1})
	req.CouponCode = "SAVE10"
	resp := do(t, http.MethodPost, "/api/orders", "", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeJSON[errorResponse](t, resp).Errors, "couponCode")
}

func TestPlaceOrder_UnknownCoupon(t *testing.T) {
	req := newOrderRequest(orderItemRequest{ProductID: "EAR-JHM-001", Quantity: 1})
	req.CouponCode = "NOPE"
	resp := do(t, http.MethodPost, "/api/orders", "", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeJSON[errorResponse](t, resp)
	assert.Equal(t, "coupon not found or expired", body.Errors["couponCode"])
}

func TestUpdateOrderStatus(t *testing.T) {
	o := placeOrder(t, "", newOrderRequest(orderItemRequest{ProductID: "EAR-STD-002", Quantity: 1}))
	path := "/api/orders/" + o.ID + "/status"

	resp := do(t, http.MethodPut, path, customerKey, map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, http.MethodPut, path, adminKey, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmed", decodeJSON[orderResponse](t, resp).Status)

	resp = do(t, http.MethodPut, path, adminKey, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
