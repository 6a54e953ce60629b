//go:build integration

package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createPaymentOrderResponse struct {
	Success bool `json:"success"`
	Demo    bool `json:"demo"`
	Order   struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Receipt  string `json:"receipt"`
	} `json:"order"`
}

type verifyPaymentResponse struct {
	Success   bool   `json:"success"`
	Verified  bool   `json:"verified"`
	OrderID   string `json:"order_id"`
	InvoiceID string `json:"invoice_id"`
	Message   string `json:"message"`
}

type invoiceResponse struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	OrderID       string  `json:"order_id"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
	Items         []struct {
		ProductID  string  `json:"product_id"`
		CGSTAmount float64 `json:"cgst_amount"`
		SGSTAmount float64 `json:"sgst_amount"`
	} `json:"items"`
}

// The compose environment runs without gateway credentials and with demo
// payments enabled, so checkout goes through the demo path end to end.
func TestPaymentFlow_Demo(t *testing.T) {
	o := placeOrder(t, customerKey, newOrderRequest(orderItemRequest{ProductID: "NECK-KND-002", Quantity: 1}))

	resp := do(t, http.MethodPost, "/api/payments/create-order", "", map[string]any{"order_id": o.ID, "amount": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	checkout := decodeJSON[createPaymentOrderResponse](t, resp)
	assert.True(t, checkout.Success)
	assert.True(t, checkout.Demo)
	assert.True(t, strings.HasPrefix(checkout.Order.ID, "order_demo_"))
	assert.Equal(t, o.OrderNumber, checkout.Order.Receipt)
	// The stored order total wins over the client amount, in paise.
	assert.Equal(t, int64(o.TotalAmount*100+0.5), checkout.Order.Amount)

	resp = do(t, http.MethodPost, "/api/payments/verify-payment", "", map[string]string{
		"gateway_order_id":   checkout.Order.ID,
		"gateway_payment_id": "pay_demo_1",
		"gateway_signature":  "unsigned",
		"order_id":           o.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	verified := decodeJSON[verifyPaymentResponse](t, resp)
	assert.True(t, verified.Verified)
	require.NotEmpty(t, verified.InvoiceID, "auto invoicing is on in the seeded settings")

	resp = do(t, http.MethodGet, "/api/orders/"+o.ID, customerKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "paid", decodeJSON[orderResponse](t, resp).PaymentStatus)

	resp = do(t, http.MethodGet, "/api/orders/"+o.ID+"/invoice", customerKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decodeJSON[invoiceResponse](t, resp)
	assert.Equal(t, verified.InvoiceID, inv.ID)
	assert.Equal(t, o.ID, inv.OrderID)
	assert.Equal(t, o.TotalAmount, inv.TotalAmount)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, inv.Items[0].CGSTAmount, inv.Items[0].SGSTAmount)
	assert.Positive(t, inv.Items[0].CGSTAmount)

	// Creating it again is refused.
	resp = do(t, http.MethodPost, "/api/invoices/create/"+o.ID, adminKey, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVerifyPayment_BadSignature(t *testing.T) {
	resp := do(t, http.MethodPost, "/api/payments/verify-payment", "", map[string]string{
		"gateway_order_id":   "order_live_123",
		"gateway_payment_id": "pay_123",
		"gateway_signature":  "deadbeef",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, decodeJSON[verifyPaymentResponse](t, resp).Verified)
}

func TestCreateInvoice_AdminOnly(t *testing.T) {
	o := placeOrder(t, "", newOrderRequest(orderItemRequest{ProductID: "EAR-JHM-001", Quantity: 1}))

	resp := do(t, http.MethodPost, "/api/invoices/create/"+o.ID, customerKey, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, http.MethodPost, "/api/invoices/create/"+o.ID, adminKey, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[struct {
		InvoiceID string `json:"invoiceId"`
	}](t, resp)
	require.NotEmpty(t, created.InvoiceID)

	resp = do(t, http.MethodGet, "/api/invoices/"+created.InvoiceID, adminKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pending", decodeJSON[invoiceResponse](t, resp).PaymentStatus)
}

func TestVerifyPayment_ForeignGatewayOrder(t *testing.T) {
	cheap := placeOrder(t, customerKey, newOrderRequest(orderItemRequest{ProductID: "BRC-BNG-001", Quantity: 1}))
	expensive := placeOrder(t, customerKey, newOrderRequest(orderItemRequest{ProductID: "RING-SOL-001", Quantity: 1}))

	resp := do(t, http.MethodPost, "/api/payments/create-order", "", map[string]any{"order_id": cheap.ID, "amount": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	checkout := decodeJSON[createPaymentOrderResponse](t, resp)

	resp = do(t, http.MethodPost, "/api/payments/verify-payment", "", map[string]string{
		"gateway_order_id":   checkout.Order.ID,
		"gateway_payment_id": "pay_demo_cheap",
		"gateway_signature":  "unsigned",
		"order_id":           expensive.ID,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, decodeJSON[verifyPaymentResponse](t, resp).Verified)

	resp = do(t, http.MethodGet, "/api/orders/"+expensive.ID, customerKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pending", decodeJSON[orderResponse](t, resp).PaymentStatus)
}
