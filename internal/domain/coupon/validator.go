package coupon

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/jewel-store/internal/domain/customer"
)

// Request is the order context a coupon is validated against.
type Request struct {
	UserID      *uuid.UUID
	OrderAmount decimal.Decimal
}

// Result is a successful validation.
type Result struct {
	Coupon   *Coupon
	Discount Discount
}

// Validator validates a coupon code against an order context and returns the
// computed discount. Implementations must not record usage.
type Validator interface {
	Validate(ctx context.Context, code string, req Request) (*Result, error)
}

// RepoValidator implements Validator on top of the coupon and customer
// repositories.
type RepoValidator struct {
	coupons   Repository
	customers customer.Repository
	now       func() time.Time
}

// NewRepoValidator creates a RepoValidator.
func NewRepoValidator(coupons Repository, customers customer.Repository) *RepoValidator {
	return &RepoValidator{coupons: coupons, customers: customers, now: time.Now}
}

// Validate runs the checks in order, failing on the first mismatch:
// liveness, global usage limit, minimum order amount, first-purchase rules and
// audience. It is read-only and safe to call repeatedly for checkout previews.
func (v *RepoValidator) Validate(ctx context.Context, code string, req Request) (*Result, error) {
	c, err := v.coupons.FindByCode(ctx, NormalizeCode(code))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup coupon")
	}

	now := v.now()
	if !c.LiveAt(now) {
		return nil, ErrNotFound
	}
	if c.Exhausted() {
		return nil, ErrUsageLimitExceeded
	}
	if req.OrderAmount.LessThan(c.MinOrderAmount) {
		return nil, &MinimumOrderError{Minimum: c.MinOrderAmount}
	}

	if req.UserID != nil {
		if err := v.checkCustomer(ctx, c, *req.UserID, now); err != nil {
			return nil, err
		}
	}

	d, err := Apply(c, req.OrderAmount)
	if err != nil {
		return nil, err
	}
	return &Result{Coupon: c, Discount: d}, nil
}

func (v *RepoValidator) checkCustomer(ctx context.Context, c *Coupon, userID uuid.UUID, now time.Time) error {
	if c.FirstPurchaseOnly {
		used, err := v.coupons.CountUserUsages(ctx, c.ID, userID)
		if err != nil {
			return errors.Wrap(err, "count coupon usages")
		}
		if used > 0 {
			return ErrAlreadyUsed
		}

		orders, err := v.customers.CountQualifyingOrders(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "count customer orders")
		}
		if orders > 0 {
			return ErrNotFirstPurchase
		}
	}

	if c.Audience == AudienceAll || c.Audience == "" {
		return nil
	}

	cust, err := v.customers.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return ErrAudienceMismatch
		}
		return errors.Wrap(err, "lookup customer")
	}

	switch c.Audience {
	case AudienceNewCustomers:
		if !cust.IsNew(now) {
			return ErrAudienceMismatch
		}
	case AudienceVIPCustomers:
		if !cust.IsVIP {
			return ErrAudienceMismatch
		}
	}
	return nil
}
