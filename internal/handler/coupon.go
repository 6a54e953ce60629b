package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/auth"
	"github.com/xenking/jewel-store/internal/domain/coupon"
)

func domainToOASCoupon(c *coupon.Coupon, d coupon.Discount) oas.Coupon {
	return oas.Coupon{
		ID:             c.ID,
		Code:           c.Code,
		Name:           c.Name,
		Description:    c.Description,
		Type:           string(c.Type),
		Value:          c.Value.InexactFloat64(),
		MinOrderAmount: c.MinOrderAmount.InexactFloat64(),
		DiscountAmount: d.Amount.InexactFloat64(),
		FreeShipping:   d.FreeShipping,
	}
}

// ValidateCoupon previews a coupon against an order amount. It never records
// usage, so checkout pages may call it repeatedly.
func (h *Handler) ValidateCoupon(ctx context.Context, params oas.ValidateCouponParams) (*oas.CouponValidation, error) {
	userID := optUUID(params.UserId)
	if p := auth.FromContext(ctx); userID == nil && p != nil {
		userID = p.UserID
	}
	res, err := h.deps.Coupons.Validate(ctx, params.Code, coupon.Request{
		UserID:      userID,
		OrderAmount: decimal.NewFromFloat(params.OrderAmount),
	})
	if err != nil {
		return nil, &couponFailure{err: err}
	}
	return &oas.CouponValidation{
		Valid:  true,
		Coupon: domainToOASCoupon(res.Coupon, res.Discount),
	}, nil
}

// ApplyCoupon applies a coupon to an order awaiting payment. Coupon rules are
// checked against the order owner; the userId in the body only identifies
// the customer of a guest order.
func (h *Handler) ApplyCoupon(ctx context.Context, req *oas.ApplyCouponRequest) (*oas.AppliedCoupon, error) {
	o, err := h.deps.Orders.GetOrder(ctx, req.OrderId)
	if err != nil {
		return nil, err
	}
	var userID *uuid.UUID
	if o.UserID != nil {
		// Orders tied to an account may only be changed by that account.
		if !auth.FromContext(ctx).Owns(o.UserID) {
			return nil, errForbidden
		}
		userID = o.UserID
	} else {
		userID = optUUID(req.UserId)
	}

	applied, err := h.deps.Orders.ApplyCoupon(ctx, req.Code, req.OrderId, userID)
	if err != nil {
		return nil, err
	}
	d := coupon.Discount{Amount: applied.Discount, FreeShipping: applied.FreeShipping}
	return &oas.AppliedCoupon{
		Success: true,
		Coupon:  domainToOASCoupon(applied.Coupon, d),
		Discount: oas.AppliedDiscount{
			Amount:       applied.Discount.InexactFloat64(),
			NewTotal:     applied.Order.TotalAmount.InexactFloat64(),
			FreeShipping: d.FreeShipping,
		},
		Order: domainToOASOrder(applied.Order),
	}, nil
}
