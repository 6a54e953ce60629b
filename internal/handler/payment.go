package handler

import (
	"context"
	"net/http"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/payment"
)

// CreatePaymentOrder opens a gateway payment order for the browser checkout.
func (h *Handler) CreatePaymentOrder(ctx context.Context, req *oas.PaymentOrderRequest) (*oas.PaymentOrder, error) {
	checkout := payment.CheckoutRequest{
		Amount:   optDecimal(req.Amount),
		Currency: req.Currency.Or(""),
		OrderID:  optUUID(req.OrderID),
	}

	out, err := h.deps.Payments.CreateOrder(ctx, checkout)
	if err != nil {
		return nil, &paymentFailure{err: err}
	}
	resp := &oas.PaymentOrder{
		Success: true,
		Order: oas.RemoteOrder{
			ID:        out.Order.ID,
			Amount:    out.Order.Amount,
			Currency:  out.Order.Currency,
			Receipt:   out.Order.Receipt,
			Status:    out.Order.Status,
			CreatedAt: out.Order.CreatedAt,
		},
		Key: out.KeyID,
	}
	if out.Demo {
		resp.Demo = oas.NewOptBool(true)
	}
	return resp, nil
}

// VerifyPayment checks the gateway signature of a completed payment. A
// signature that does not match, or a gateway order that belongs to another
// order, is answered with 400 and "verified": false.
func (h *Handler) VerifyPayment(ctx context.Context, req *oas.PaymentVerification) (*oas.PaymentVerified, error) {
	res, err := h.deps.Payments.Verify(ctx, payment.VerifyRequest{
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.GatewaySignature,
		OrderID:          optUUID(req.OrderID),
	})
	if err != nil {
		return nil, &paymentFailure{err: err}
	}
	if !res.Verified {
		return nil, &oas.ErrorStatusCode{
			StatusCode: http.StatusBadRequest,
			Response: oas.Error{
				Message:  "Payment verification failed",
				Success:  oas.NewOptBool(false),
				Verified: oas.NewOptBool(false),
			},
		}
	}
	resp := &oas.PaymentVerified{
		Success:   true,
		Verified:  true,
		PaymentID: req.GatewayPaymentID,
		OrderID:   req.GatewayOrderID,
	}
	if res.Invoice != nil {
		resp.InvoiceID = oas.NewOptUUID(res.Invoice.ID)
	}
	return resp, nil
}
