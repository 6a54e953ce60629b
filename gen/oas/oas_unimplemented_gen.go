// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// ApplyCoupon implements applyCoupon operation.
//
// Apply a coupon to an order awaiting payment.
//
// POST /coupons/apply
func (UnimplementedHandler) ApplyCoupon(ctx context.Context, req *ApplyCouponRequest) (r *AppliedCoupon, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateInvoice implements createInvoice operation.
//
// Issue the invoice of an order.
//
// POST /invoices/create/{orderId}
func (UnimplementedHandler) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (r *InvoiceCreated, _ error) {
	return r, ht.ErrNotImplemented
}

// CreatePaymentOrder implements createPaymentOrder operation.
//
// Open a gateway payment order.
//
// POST /payments/create-order
func (UnimplementedHandler) CreatePaymentOrder(ctx context.Context, req *PaymentOrderRequest) (r *PaymentOrder, _ error) {
	return r, ht.ErrNotImplemented
}

// GetInvoice implements getInvoice operation.
//
// Get an invoice.
//
// GET /invoices/{invoiceId}
func (UnimplementedHandler) GetInvoice(ctx context.Context, params GetInvoiceParams) (r *Invoice, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Get an order with its items.
//
// GET /orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrderInvoice implements getOrderInvoice operation.
//
// Get the invoice of an order.
//
// GET /orders/{id}/invoice
func (UnimplementedHandler) GetOrderInvoice(ctx context.Context, params GetOrderInvoiceParams) (r *Invoice, _ error) {
	return r, ht.ErrNotImplemented
}

// GetProduct implements getProduct operation.
//
// Get an active product.
//
// GET /products/{id}
func (UnimplementedHandler) GetProduct(ctx context.Context, params GetProductParams) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// ListProducts implements listProducts operation.
//
// List active products.
//
// GET /products
func (UnimplementedHandler) ListProducts(ctx context.Context) (r []Product, _ error) {
	return r, ht.ErrNotImplemented
}

// PlaceOrder implements placeOrder operation.
//
// Prices the cart server-side and applies the optional coupon. Anonymous
// callers place guest orders.
//
// POST /orders
func (UnimplementedHandler) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrderStatus implements updateOrderStatus operation.
//
// Move an order through its lifecycle.
//
// PUT /orders/{id}/status
func (UnimplementedHandler) UpdateOrderStatus(ctx context.Context, req *OrderStatusUpdate, params UpdateOrderStatusParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdatePaymentGateway implements updatePaymentGateway operation.
//
// Store payment gateway credentials.
//
// PUT /settings/payment-gateway
func (UnimplementedHandler) UpdatePaymentGateway(ctx context.Context, req *GatewaySettings) (r *GatewaySettingsUpdated, _ error) {
	return r, ht.ErrNotImplemented
}

// ValidateCoupon implements validateCoupon operation.
//
// Preview a coupon against an order amount.
//
// GET /coupons/validate/{code}
func (UnimplementedHandler) ValidateCoupon(ctx context.Context, params ValidateCouponParams) (r *CouponValidation, _ error) {
	return r, ht.ErrNotImplemented
}

// VerifyPayment implements verifyPayment operation.
//
// Verify a completed gateway payment.
//
// POST /payments/verify-payment
func (UnimplementedHandler) VerifyPayment(ctx context.Context, req *PaymentVerification) (r *PaymentVerified, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
