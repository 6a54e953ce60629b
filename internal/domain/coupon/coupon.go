package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type enumerates the supported coupon discount strategies.
type Type string

const (
	// TypePercentage takes a percentage of the order amount, optionally capped.
	TypePercentage Type = "percentage"
	// TypeFixed takes a fixed amount, clamped to the order amount.
	TypeFixed Type = "fixed"
	// TypeFreeShipping waives the shipping fee and discounts nothing else.
	TypeFreeShipping Type = "free_shipping"
)

// ParseType validates a raw coupon type.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypePercentage, TypeFixed, TypeFreeShipping:
		return t, nil
	default:
		return "", errors.Errorf("unsupported coupon type: %q", s)
	}
}

// Audience restricts which customers may redeem a coupon.
type Audience string

const (
	AudienceAll          Audience = "all"
	AudienceNewCustomers Audience = "new_customers"
	AudienceVIPCustomers Audience = "vip_customers"
)

// ParseAudience validates a raw audience. Empty means everyone.
func ParseAudience(s string) (Audience, error) {
	switch a := Audience(strings.ToLower(strings.TrimSpace(s))); a {
	case "", AudienceAll:
		return AudienceAll, nil
	case AudienceNewCustomers, AudienceVIPCustomers:
		return a, nil
	default:
		return "", errors.Errorf("unsupported coupon audience: %q", s)
	}
}

var (
	// ErrNotFound is returned when no active coupon with the code is valid now.
	ErrNotFound = errors.New("coupon not found or expired")
	// ErrUsageLimitExceeded is returned when a coupon has exhausted its global usage limit.
	ErrUsageLimitExceeded = errors.New("coupon usage limit reached")
	// ErrMinimumOrderNotMet is matched by *MinimumOrderError.
	ErrMinimumOrderNotMet = errors.New("minimum order amount not met")
	// ErrAlreadyUsed is returned when the customer has already redeemed a
	// first-purchase coupon.
	ErrAlreadyUsed = errors.New("coupon already used")
	// ErrNotFirstPurchase is returned when a first-purchase coupon is used by a
	// customer with prior orders.
	ErrNotFirstPurchase = errors.New("coupon is valid only on the first purchase")
	// ErrAudienceMismatch is returned when the customer is outside the coupon audience.
	ErrAudienceMismatch = errors.New("coupon is not available for this customer")
)

// IsRejection reports whether err is a coupon being refused for this order or
// customer, as opposed to a failure to check it.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrUsageLimitExceeded,
		ErrMinimumOrderNotMet,
		ErrAlreadyUsed,
		ErrNotFirstPurchase,
		ErrAudienceMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// MinimumOrderError reports the minimum amount a coupon requires.
type MinimumOrderError struct {
	Minimum decimal.Decimal
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order amount of %s required", e.Minimum.StringFixed(2))
}

// Is makes errors.Is(err, ErrMinimumOrderNotMet) match.
func (e *MinimumOrderError) Is(target error) bool {
	return target == ErrMinimumOrderNotMet
}

// Coupon is a redeemable discount code.
type Coupon struct {
	ID                uuid.UUID
	Code              string
	Name              string
	Description       string
	Type              Type
	Value             decimal.Decimal
	MinOrderAmount    decimal.Decimal
	MaxDiscountAmount decimal.NullDecimal
	// UsageLimit is the global redemption cap; nil means unlimited.
	UsageLimit        *int
	UsedCount         int
	StartDate         time.Time
	EndDate           time.Time
	Audience          Audience
	FirstPurchaseOnly bool
	IsActive          bool
}

// NormalizeCode trims and upper-cases a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LiveAt reports whether the coupon is active and inside its validity window.
// Both window bounds are inclusive.
func (c *Coupon) LiveAt(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// Exhausted reports whether the global usage limit has been reached.
func (c *Coupon) Exhausted() bool {
	return c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit
}

// Usage records one redemption of a coupon by an order.
type Usage struct {
	ID             uuid.UUID
	CouponID       uuid.UUID
	UserID         *uuid.UUID
	OrderID        uuid.UUID
	DiscountAmount decimal.Decimal
	UsedAt         time.Time
}

// Repository provides lookup of coupons and their redemption history.
type Repository interface {
	// FindByCode returns the coupon with the normalized code, live or not,
	// with UsedCount populated. Returns ErrNotFound when no row matches.
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	// CountUserUsages counts redemptions of the coupon by the customer.
	CountUserUsages(ctx context.Context, couponID, userID uuid.UUID) (int, error)
}
