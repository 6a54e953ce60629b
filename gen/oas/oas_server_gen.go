// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// ApplyCoupon implements applyCoupon operation.
	//
	// Apply a coupon to an order awaiting payment.
	//
	// POST /coupons/apply
	ApplyCoupon(ctx context.Context, req *ApplyCouponRequest) (*AppliedCoupon, error)
	// CreateInvoice implements createInvoice operation.
	//
	// Issue the invoice of an order.
	//
	// POST /invoices/create/{orderId}
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*InvoiceCreated, error)
	// CreatePaymentOrder implements createPaymentOrder operation.
	//
	// Open a gateway payment order.
	//
	// POST /payments/create-order
	CreatePaymentOrder(ctx context.Context, req *PaymentOrderRequest) (*PaymentOrder, error)
	// GetInvoice implements getInvoice operation.
	//
	// Get an invoice.
	//
	// GET /invoices/{invoiceId}
	GetInvoice(ctx context.Context, params GetInvoiceParams) (*Invoice, error)
	// GetOrder implements getOrder operation.
	//
	// Get an order with its items.
	//
	// GET /orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*Order, error)
	// GetOrderInvoice implements getOrderInvoice operation.
	//
	// Get the invoice of an order.
	//
	// GET /orders/{id}/invoice
	GetOrderInvoice(ctx context.Context, params GetOrderInvoiceParams) (*Invoice, error)
	// GetProduct implements getProduct operation.
	//
	// Get an active product.
	//
	// GET /products/{id}
	GetProduct(ctx context.Context, params GetProductParams) (*Product, error)
	// ListProducts implements listProducts operation.
	//
	// List active products.
	//
	// GET /products
	ListProducts(ctx context.Context) ([]Product, error)
	// PlaceOrder implements placeOrder operation.
	//
	// Prices the cart server-side and applies the optional coupon. Anonymous
	// callers place guest orders.
	//
	// POST /orders
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*Order, error)
	// UpdateOrderStatus implements updateOrderStatus operation.
	//
	// Move an order through its lifecycle.
	//
	// PUT /orders/{id}/status
	UpdateOrderStatus(ctx context.Context, req *OrderStatusUpdate, params UpdateOrderStatusParams) (*Order, error)
	// UpdatePaymentGateway implements updatePaymentGateway operation.
	//
	// Store payment gateway credentials.
	//
	// PUT /settings/payment-gateway
	UpdatePaymentGateway(ctx context.Context, req *GatewaySettings) (*GatewaySettingsUpdated, error)
	// ValidateCoupon implements validateCoupon operation.
	//
	// Preview a coupon against an order amount.
	//
	// GET /coupons/validate/{code}
	ValidateCoupon(ctx context.Context, params ValidateCouponParams) (*CouponValidation, error)
	// VerifyPayment implements verifyPayment operation.
	//
	// Verify a completed gateway payment.
	//
	// POST /payments/verify-payment
	VerifyPayment(ctx context.Context, req *PaymentVerification) (*PaymentVerified, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
