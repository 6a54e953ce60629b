package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/pricing"
	"github.com/xenking/jewel-store/internal/domain/product"
)

const instrumentationName = "github.com/xenking/jewel-store/internal/domain/order"

// Sentinel errors for order validation.
var (
	ErrEmptyItems      = errors.New("items required")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)

// ProductNotFoundError indicates a requested product does not exist or is
// no longer sold.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InvalidQuantityError indicates a line item has a non-positive quantity.
type InvalidQuantityError struct {
	ProductID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %s", e.ProductID)
}

// Is makes errors.Is(err, ErrInvalidQuantity) match.
func (e *InvalidQuantityError) Is(target error) bool {
	return target == ErrInvalidQuantity
}

// CouponError is a coupon rejected while placing an order. It wraps the
// coupon package error, so errors.Is against coupon sentinels still matches.
type CouponError struct {
	Code string
	Err  error
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("coupon %s: %v", e.Code, e.Err)
}

func (e *CouponError) Unwrap() error { return e.Err }

// PricingSource yields the pricing configuration in effect.
type PricingSource interface {
	Pricing(ctx context.Context) (pricing.Config, error)
}

// ItemRequest is a cart line as submitted by the client. Unit price is always
// resolved server-side; the promotion fields come from the upstream
// promotions engine and are taken as-is.
type ItemRequest struct {
	ProductID          string
	Quantity           int
	TotalPrice         decimal.NullDecimal
	DiscountedQuantity int
	DiscountPerUnit    decimal.Decimal
	DiscountPercentage decimal.Decimal
}

// PlaceOrderRequest holds the input for placing an order.
type PlaceOrderRequest struct {
	UserID        *uuid.UUID
	Customer      CustomerInfo
	Items         []ItemRequest
	PaymentMethod PaymentMethod
	CouponCode    string
	Notes         string
}

// StatusUpdate is an admin-driven status change.
type StatusUpdate struct {
	Status         Status
	Notes          string
	TrackingNumber string
}

// AppliedCoupon is the outcome of applying a coupon to an existing order.
type AppliedCoupon struct {
	Order        *Order
	Coupon       *coupon.Coupon
	Discount     decimal.Decimal
	FreeShipping bool
}

// Service encapsulates order placement and lifecycle business logic.
type Service struct {
	products product.Repository
	coupons  coupon.Validator
	store    Store
	pricing  PricingSource
	now      func() time.Time

	placements metric.Int64Counter
}

// NewService creates an order Service with the required domain dependencies.
func NewService(
	products product.Repository,
	coupons coupon.Validator,
	store Store,
	pricing PricingSource,
	mp metric.MeterProvider,
) (*Service, error) {
	placements, err := mp.Meter(instrumentationName).Int64Counter("order.placements",
		metric.WithDescription("Order placements by outcome and coupon use"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create placements counter")
	}
	return &Service{
		products:   products,
		coupons:    coupons,
		store:      store,
		pricing:    pricing,
		now:        time.Now,
		placements: placements,
	}, nil
}

// PlaceOrder prices the cart with server-side product prices, applies the
// optional coupon, and persists the order, its items and the coupon usage in
// one transaction. A refused coupon is reported as *CouponError.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (_ *Order, rerr error) {
	defer func() {
		s.placements.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", placementOutcome(rerr)),
			attribute.Bool("coupon", coupon.NormalizeCode(req.CouponCode) != ""),
		))
	}()
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	ids := make([]string, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, &InvalidQuantityError{ProductID: item.ProductID}
		}
		ids[i] = item.ProductID
	}

	fetched, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	productMap := make(map[string]product.Product, len(fetched))
	for _, p := range fetched {
		productMap[p.ID] = p
	}

	method := req.PaymentMethod
	if method == "" {
		method = MethodCashOnDelivery
	}

	now := s.now()
	o := &Order{
		ID:            uuid.New(),
		Number:        GenerateNumber("ORD", now),
		UserID:        req.UserID,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		PaymentMethod: method,
		Customer:      req.Customer,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if o.Customer.BillingAddress == "" {
		o.Customer.BillingAddress = o.Customer.ShippingAddress
	}

	lines := make([]pricing.Line, len(req.Items))
	o.Items = make([]Item, len(req.Items))
	for i, item := range req.Items {
		p, ok := productMap[item.ProductID]
		if !ok || !p.IsActive {
			return nil, &ProductNotFoundError{ProductID: item.ProductID}
		}

		totalPrice := item.TotalPrice
		if totalPrice.Valid {
			totalPrice.Decimal = totalPrice.Decimal.Round(2)
		}
		lines[i] = pricing.Line{
			ProductID:          p.ID,
			Quantity:           item.Quantity,
			UnitPrice:          p.Price,
			TotalPrice:         totalPrice,
			DiscountedQuantity: item.DiscountedQuantity,
			DiscountPerUnit:    item.DiscountPerUnit,
			DiscountPercentage: item.DiscountPercentage,
		}
		o.Items[i] = Item{
			ID:                 uuid.New(),
			OrderID:            o.ID,
			ProductID:          p.ID,
			ProductName:        p.Name,
			ProductPrice:       p.Price,
			OriginalPrice:      p.OriginalPrice,
			Quantity:           item.Quantity,
			TotalPrice:         lines[i].Total(),
			DiscountedQuantity: item.DiscountedQuantity,
			DiscountPerUnit:    item.DiscountPerUnit,
			DiscountPercentage: item.DiscountPercentage,
		}
	}

	cfg, err := s.pricing.Pricing(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load pricing")
	}
	subtotal := pricing.Subtotal(lines)

	var applied *coupon.Result
	discount := coupon.Discount{Amount: decimal.Zero}
	if code := coupon.NormalizeCode(req.CouponCode); code != "" {
		applied, err = s.coupons.Validate(ctx, code, coupon.Request{
			UserID:      req.UserID,
			OrderAmount: subtotal,
		})
		if err != nil {
			if coupon.IsRejection(err) {
				return nil, &CouponError{Code: code, Err: err}
			}
			return nil, errors.Wrap(err, "validate coupon")
		}
		discount = applied.Discount
		o.CouponCode = applied.Coupon.Code
	}

	b := cfg.FromSubtotal(subtotal, discount.Amount, discount.FreeShipping)
	o.Subtotal = b.Subtotal
	o.DiscountAmount = b.Discount
	o.ShippingAmount = b.Shipping
	o.TaxAmount = b.Tax
	o.TaxRate = b.TaxRate
	o.TotalAmount = b.Total
	o.Currency = cfg.Currency

	err = s.store.Tx(ctx, func(ctx context.Context, tx TxStore) error {
		if err := tx.Insert(ctx, o); err != nil {
			return errors.Wrap(err, "insert order")
		}
		for i := range o.Items {
			if err := tx.InsertItem(ctx, &o.Items[i]); err != nil {
				return errors.Wrapf(err, "insert item %s", o.Items[i].ProductID)
			}
		}
		if applied != nil {
			return redeem(ctx, tx, applied.Coupon, o, now)
		}
		return nil
	})
	if err != nil {
		if applied != nil && coupon.IsRejection(err) {
			return nil, &CouponError{Code: applied.Coupon.Code, Err: err}
		}
		return nil, errors.Wrap(err, "create order")
	}

	zctx.From(ctx).Info("Order created",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.Number),
		zap.String("total", o.TotalAmount.StringFixed(2)),
		zap.String("coupon", o.CouponCode),
	)
	return o, nil
}

func placementOutcome(err error) string {
	var (
		couponErr  *CouponError
		missingErr *ProductNotFoundError
	)
	switch {
	case err == nil:
		return "placed"
	case errors.As(err, &couponErr):
		return "coupon_rejected"
	case errors.Is(err, ErrEmptyItems), errors.Is(err, ErrInvalidQuantity), errors.As(err, &missingErr):
		return "invalid"
	default:
		return "error"
	}
}

// redeem re-checks the global usage limit under a row lock on the coupon and
// records the usage. Concurrent checkouts serialize on the lock, so a limit
// of N admits exactly N orders.
func redeem(ctx context.Context, tx TxStore, c *coupon.Coupon, o *Order, now time.Time) error {
	used, err := tx.LockCoupon(ctx, c.ID)
	if err != nil {
		return errors.Wrap(err, "lock coupon")
	}
	if c.UsageLimit != nil && used >= *c.UsageLimit {
		return coupon.ErrUsageLimitExceeded
	}
	if err := tx.InsertCouponUsage(ctx, &coupon.Usage{
		ID:             uuid.New(),
		CouponID:       c.ID,
		UserID:         o.UserID,
		OrderID:        o.ID,
		DiscountAmount: o.DiscountAmount,
		UsedAt:         now,
	}); err != nil {
		return errors.Wrap(err, "insert coupon usage")
	}
	return nil
}

// GetOrder returns the order with its items.
func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Items(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get order items")
	}
	o.Items = items
	return o, nil
}

// UpdateStatus moves the order through its lifecycle. Shipping and delivery
// stamp their timestamps.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, upd StatusUpdate) (*Order, error) {
	var o *Order
	err := s.store.Tx(ctx, func(ctx context.Context, tx TxStore) error {
		var err error
		o, err = tx.Lock(ctx, id)
		if err != nil {
			return err
		}
		if !CanTransition(o.Status, upd.Status) {
			return &TransitionError{From: o.Status, To: upd.Status}
		}

		now := s.now()
		o.Status = upd.Status
		o.UpdatedAt = now
		switch upd.Status {
		case StatusShipped:
			o.ShippedAt = &now
			if upd.TrackingNumber != "" {
				o.TrackingNumber = upd.TrackingNumber
			}
		case StatusDelivered:
			o.DeliveredAt = &now
		}
		if notes := strings.TrimSpace(upd.Notes); notes != "" {
			if o.Notes != "" {
				o.Notes += "\n"
			}
			o.Notes += notes
		}
		return tx.UpdateStatus(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	zctx.From(ctx).Info("Order status updated",
		zap.String("order_id", o.ID.String()),
		zap.String("status", string(o.Status)),
	)
	return o, nil
}

// ApplyCoupon applies a coupon to an order that is still awaiting payment,
// re-pricing it and recording the usage in one transaction. userID is used
// for audience and first-purchase checks only when the order has no owner.
func (s *Service) ApplyCoupon(ctx context.Context, code string, orderID uuid.UUID, userID *uuid.UUID) (*AppliedCoupon, error) {
	cfg, err := s.pricing.Pricing(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load pricing")
	}

	var out *AppliedCoupon
	err = s.store.Tx(ctx, func(ctx context.Context, tx TxStore) error {
		o, err := tx.Lock(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != StatusPending || o.PaymentStatus != PaymentPending {
			return ErrNotEditable
		}
		applied, err := tx.HasCouponUsage(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "check coupon usage")
		}
		if applied || o.CouponCode != "" {
			return ErrCouponAlreadyApplied
		}

		// An owned order is always validated as its owner; the caller's
		// user id only counts for guest orders.
		if o.UserID != nil {
			userID = o.UserID
		}
		res, err := s.coupons.Validate(ctx, code, coupon.Request{UserID: userID, OrderAmount: o.Subtotal})
		if err != nil {
			return err
		}

		b := cfg.FromSubtotal(o.Subtotal, res.Discount.Amount, res.Discount.FreeShipping)
		o.DiscountAmount = b.Discount
		o.ShippingAmount = b.Shipping
		o.TaxAmount = b.Tax
		o.TaxRate = b.TaxRate
		o.TotalAmount = b.Total
		o.CouponCode = res.Coupon.Code
		o.UpdatedAt = s.now()
		if err := tx.UpdatePricing(ctx, o); err != nil {
			return errors.Wrap(err, "update order pricing")
		}
		if err := redeem(ctx, tx, res.Coupon, o, o.UpdatedAt); err != nil {
			return err
		}

		out = &AppliedCoupon{
			Order:        o,
			Coupon:       res.Coupon,
			Discount:     b.Discount,
			FreeShipping: res.Discount.FreeShipping,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AttachGatewayOrder links the order to a remote payment-gateway order.
func (s *Service) AttachGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error {
	return s.store.SetGatewayOrder(ctx, id, gatewayOrderID)
}

// MarkPaid records a verified gateway payment against the order.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID, gatewayOrderID, gatewayPaymentID string) error {
	if err := s.store.MarkPaid(ctx, id, gatewayOrderID, gatewayPaymentID); err != nil {
		return errors.Wrap(err, "mark paid")
	}
	zctx.From(ctx).Info("Order paid",
		zap.String("order_id", id.String()),
		zap.String("gateway_payment_id", gatewayPaymentID),
	)
	return nil
}
