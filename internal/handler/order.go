package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/auth"
	"github.com/xenking/jewel-store/internal/domain/order"
)

// orderChecks carries the order fields with rules beyond the schema.
type orderChecks struct {
	CustomerEmail string       `json:"customerEmail" validate:"email"`
	Items         []itemChecks `json:"items" validate:"dive"`
}

type itemChecks struct {
	Quantity           int `json:"quantity"`
	DiscountedQuantity int `json:"discountedQuantity" validate:"ltefield=Quantity"`
}

func optDecimal(v oas.OptFloat64) decimal.Decimal {
	f, _ := v.Get()
	return decimal.NewFromFloat(f)
}

func optFloat(v decimal.NullDecimal) oas.OptFloat64 {
	if !v.Valid {
		return oas.OptFloat64{}
	}
	return oas.NewOptFloat64(v.Decimal.InexactFloat64())
}

func optString(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func domainToOASOrder(o *order.Order) oas.Order {
	c := o.Customer
	out := oas.Order{
		ID:              o.ID,
		OrderNumber:     o.Number,
		UserID:          nilUUID(o.UserID),
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentMethod:   string(o.PaymentMethod),
		Subtotal:        o.Subtotal.InexactFloat64(),
		TaxAmount:       o.TaxAmount.InexactFloat64(),
		TaxRate:         oas.NewOptFloat64(o.TaxRate.InexactFloat64()),
		ShippingAmount:  o.ShippingAmount.InexactFloat64(),
		DiscountAmount:  o.DiscountAmount.InexactFloat64(),
		TotalAmount:     o.TotalAmount.InexactFloat64(),
		Currency:        o.Currency,
		CouponCode:      optString(o.CouponCode),
		CustomerName:    c.Name,
		CustomerEmail:   c.Email,
		CustomerPhone:   c.Phone,
		ShippingAddress: c.ShippingAddress,
		BillingAddress:  c.BillingAddress,
		City:            c.City,
		State:           c.State,
		Pincode:         c.Pincode,
		Notes:           optString(o.Notes),
		RazorpayOrderID: optString(o.GatewayOrderID),
		TrackingNumber:  optString(o.TrackingNumber),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           make([]oas.OrderItem, len(o.Items)),
	}
	if o.ShippedAt != nil {
		out.ShippedAt = oas.NewOptDateTime(*o.ShippedAt)
	}
	if o.DeliveredAt != nil {
		out.DeliveredAt = oas.NewOptDateTime(*o.DeliveredAt)
	}
	for i, it := range o.Items {
		out.Items[i] = oas.OrderItem{
			ID:                 it.ID,
			ProductID:          it.ProductID,
			ProductName:        it.ProductName,
			ProductPrice:       it.ProductPrice.InexactFloat64(),
			OriginalPrice:      optFloat(it.OriginalPrice),
			Quantity:           it.Quantity,
			TotalPrice:         it.TotalPrice.InexactFloat64(),
			DiscountedQuantity: it.DiscountedQuantity,
			DiscountPerUnit:    it.DiscountPerUnit.InexactFloat64(),
			DiscountPercentage: it.DiscountPercentage.InexactFloat64(),
		}
	}
	return out
}

// PlaceOrder creates an order for the caller, or a guest order when the
// request is anonymous.
func (h *Handler) PlaceOrder(ctx context.Context, req *oas.PlaceOrderRequest) (*oas.Order, error) {
	checks := orderChecks{CustomerEmail: req.CustomerEmail, Items: make([]itemChecks, len(req.Items))}
	items := make([]order.ItemRequest, len(req.Items))
	for i, it := range req.Items {
		discounted := it.DiscountedQuantity.Or(0)
		checks.Items[i] = itemChecks{Quantity: it.Quantity, DiscountedQuantity: discounted}
		items[i] = order.ItemRequest{
			ProductID:          it.ProductId,
			Quantity:           it.Quantity,
			DiscountedQuantity: discounted,
			DiscountPerUnit:    optDecimal(it.DiscountPerUnit),
			DiscountPercentage: optDecimal(it.DiscountPercentage),
		}
		if v, ok := it.TotalPrice.Get(); ok {
			items[i].TotalPrice = decimal.NewNullDecimal(decimal.NewFromFloat(v))
		}
	}
	if err := h.check(checks); err != nil {
		return nil, err
	}

	var method string
	if v, ok := req.PaymentMethod.Get(); ok {
		method = string(v)
	}
	pm, err := order.ParsePaymentMethod(method)
	if err != nil {
		return nil, &ValidationError{Message: err.Error(),
			Fields: map[string]string{"paymentMethod": err.Error()}}
	}

	domainReq := order.PlaceOrderRequest{
		Customer: order.CustomerInfo{
			Name:            req.CustomerName,
			Email:           req.CustomerEmail,
			Phone:           req.CustomerPhone,
			ShippingAddress: req.ShippingAddress,
			BillingAddress:  req.BillingAddress.Or(""),
			City:            req.City,
			State:           req.State,
			Pincode:         req.Pincode,
		},
		Items:         items,
		PaymentMethod: pm,
		CouponCode:    req.CouponCode.Or(""),
		Notes:         req.Notes.Or(""),
	}
	if p := auth.FromContext(ctx); p != nil {
		domainReq.UserID = p.UserID
	}

	o, err := h.deps.Orders.PlaceOrder(ctx, domainReq)
	if err != nil {
		return nil, err
	}
	resp := domainToOASOrder(o)
	return &resp, nil
}

// GetOrder returns an order with its items to its owner or an admin.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.Order, error) {
	o, err := h.ownedOrder(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	resp := domainToOASOrder(o)
	return &resp, nil
}

// ownedOrder loads an order and checks that the caller owns it or is an
// admin.
func (h *Handler) ownedOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.deps.Orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Owns(o.UserID) {
		return nil, errForbidden
	}
	return o, nil
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *Handler) UpdateOrderStatus(ctx context.Context, req *oas.OrderStatusUpdate, params oas.UpdateOrderStatusParams) (*oas.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return nil, &ValidationError{Message: err.Error(),
			Fields: map[string]string{"status": err.Error()}}
	}

	o, err := h.deps.Orders.UpdateStatus(ctx, params.ID, order.StatusUpdate{
		Status:         status,
		Notes:          req.Notes.Or(""),
		TrackingNumber: req.TrackingNumber.Or(""),
	})
	if err != nil {
		return nil, err
	}
	resp := domainToOASOrder(o)
	return &resp, nil
}
