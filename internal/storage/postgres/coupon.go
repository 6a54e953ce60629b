package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/jewel-store/internal/domain/coupon"
)

const (
	getCouponByCodeSQL = `SELECT c.id, c.code, c.name, c.description, c.type, c.value,
		c.min_order_amount, c.max_discount_amount, c.usage_limit,
		(SELECT count(*) FROM coupon_usages u WHERE u.coupon_id = c.id),
		c.start_date, c.end_date, c.applicable_users, c.first_purchase_only, c.is_active
		FROM coupons c WHERE upper(c.code) = upper($1)`

	countUserUsagesSQL = `SELECT count(*) FROM coupon_usages WHERE coupon_id = $1 AND user_id = $2`
)

var couponCopyColumns = []string{
	"id", "code", "name", "description", "type", "value",
	"min_order_amount", "max_discount_amount", "usage_limit",
	"start_date", "end_date", "applicable_users", "first_purchase_only", "is_active",
}

var _ coupon.Repository = (*CouponRepository)(nil)

// CouponRepository implements coupon.Repository backed by PostgreSQL.
type CouponRepository struct {
	pool *pgxpool.Pool
}

// NewCouponRepository returns a CouponRepository that uses the given pool.
func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// FindByCode looks up a coupon by its code (case-insensitive), with the
// number of recorded usages. Returns coupon.ErrNotFound when no row matches.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, getCouponByCodeSQL, code)
	if err != nil {
		return nil, fmt.Errorf("finding coupon by code %q: %w", code, err)
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coupon.ErrNotFound
		}
		return nil, fmt.Errorf("finding coupon by code %q: %w", code, err)
	}
	return &c, nil
}

// CountUserUsages counts redemptions of the coupon by the customer.
func (r *CouponRepository) CountUserUsages(ctx context.Context, couponID, userID uuid.UUID) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, countUserUsagesSQL, couponID, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting usages of coupon %s: %w", couponID, err)
	}
	return n, nil
}

// Import bulk-loads coupons with COPY. The whole batch fails on any
// duplicate code.
func (r *CouponRepository) Import(ctx context.Context, coupons []coupon.Coupon) (int64, error) {
	n, err := r.pool.CopyFrom(ctx, pgx.Identifier{"coupons"}, couponCopyColumns,
		pgx.CopyFromSlice(len(coupons), func(i int) ([]any, error) {
			c := coupons[i]
			return []any{
				c.ID, c.Code, c.Name, c.Description, string(c.Type), c.Value,
				c.MinOrderAmount, c.MaxDiscountAmount, c.UsageLimit,
				c.StartDate, c.EndDate, string(c.Audience), c.FirstPurchaseOnly, c.IsActive,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copying coupons: %w", err)
	}
	return n, nil
}

// Codes streams every stored coupon code, upper-cased.
func (r *CouponRepository) Codes(ctx context.Context, fn func(code string) error) error {
	rows, err := r.pool.Query(ctx, `SELECT upper(code) FROM coupons`)
	if err != nil {
		return fmt.Errorf("listing coupon codes: %w", err)
	}
	var code string
	if _, err := pgx.ForEachRow(rows, []any{&code}, func() error { return fn(code) }); err != nil {
		return fmt.Errorf("listing coupon codes: %w", err)
	}
	return nil
}

// ExistingCodes returns which of codes are already stored, upper-cased.
func (r *CouponRepository) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT upper(code) FROM coupons WHERE upper(code) = ANY($1)`, codes)
	if err != nil {
		return nil, fmt.Errorf("checking coupon codes: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func scanCoupon(row pgx.CollectableRow) (coupon.Coupon, error) {
	var (
		c          coupon.Coupon
		typ        string
		audience   string
		usageLimit *int32
		used       int64
	)
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Description, &typ, &c.Value,
		&c.MinOrderAmount, &c.MaxDiscountAmount, &usageLimit, &used,
		&c.StartDate, &c.EndDate, &audience, &c.FirstPurchaseOnly, &c.IsActive,
	)
	if err != nil {
		return c, err
	}
	c.Type = coupon.Type(typ)
	c.Audience = coupon.Audience(audience)
	c.UsedCount = int(used)
	if usageLimit != nil {
		limit := int(*usageLimit)
		c.UsageLimit = &limit
	}
	return c, nil
}
