package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/jewel-store/internal/domain/customer"
)

type mockCouponRepo struct {
	coupon     *Coupon
	err        error
	userUsages map[uuid.UUID]int
	lookedUp   string
}

func (m *mockCouponRepo) FindByCode(_ context.Context, code string) (*Coupon, error) {
	m.lookedUp = code
	if m.err != nil {
		return nil, m.err
	}
	if m.coupon == nil {
		return nil, ErrNotFound
	}
	c := *m.coupon
	return &c, nil
}

func (m *mockCouponRepo) CountUserUsages(_ context.Context, _, userID uuid.UUID) (int, error) {
	return m.userUsages[userID], nil
}

type mockCustomerRepo struct {
	byID   map[uuid.UUID]*customer.Customer
	orders map[uuid.UUID]int
}

func (m *mockCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return c, nil
}

func (m *mockCustomerRepo) FindByEmail(context.Context, string) (*customer.Customer, error) {
	return nil, customer.ErrNotFound
}

func (m *mockCustomerRepo) CountQualifyingOrders(_ context.Context, id uuid.UUID) (int, error) {
	return m.orders[id], nil
}

func intPtr(v int) *int { return &v }

func TestRepoValidator_Validate(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start := fixedNow.Add(-24 * time.Hour)
	end := fixedNow.Add(24 * time.Hour)

	fresh := uuid.New()
	veteran := uuid.New()
	vip := uuid.New()
	customers := &mockCustomerRepo{
		byID: map[uuid.UUID]*customer.Customer{
			fresh:   {ID: fresh, CreatedAt: fixedNow.Add(-2 * 24 * time.Hour)},
			veteran: {ID: veteran, CreatedAt: fixedNow.Add(-400 * 24 * time.Hour)},
			vip:     {ID: vip, IsVIP: true, CreatedAt: fixedNow.Add(-400 * 24 * time.Hour)},
		},
		orders: map[uuid.UUID]int{veteran: 3},
	}

	base := func(mut func(c *Coupon)) *Coupon {
		c := &Coupon{
			ID:        uuid.New(),
			Code:      "SAVE10",
			Type:      TypePercentage,
			Value:     d("10"),
			StartDate: start,
			EndDate:   end,
			Audience:  AudienceAll,
			IsActive:  true,
		}
		if mut != nil {
			mut(c)
		}
		return c
	}

	tests := []struct {
		name       string
		repo       *mockCouponRepo
		userID     *uuid.UUID
		amount     decimal.Decimal
		wantAmount decimal.Decimal
		wantErr    error
	}{
		{
			name:       "valid code returns discount",
			repo:       &mockCouponRepo{coupon: base(nil)},
			amount:     d("1000"),
			wantAmount: d("100"),
		},
		{
			name: "max discount caps percentage",
			repo: &mockCouponRepo{coupon: base(func(c *Coupon) {
				c.MaxDiscountAmount = decimal.NewNullDecimal(d("50"))
			})},
			amount:     d("1000"),
			wantAmount: d("50"),
		},
		{
			name:    "unknown code",
			repo:    &mockCouponRepo{},
			amount:  d("1000"),
			wantErr: ErrNotFound,
		},
		{
			name:    "inactive coupon reads as not found",
			repo:    &mockCouponRepo{coupon: base(func(c *Coupon) { c.IsActive = false })},
			amount:  d("1000"),
			wantErr: ErrNotFound,
		},
		{
			name:    "expired coupon",
			repo:    &mockCouponRepo{coupon: base(func(c *Coupon) { c.EndDate = fixedNow.Add(-time.Second) })},
			amount:  d("1000"),
			wantErr: ErrNotFound,
		},
		{
			name:    "not yet started",
			repo:    &mockCouponRepo{coupon: base(func(c *Coupon) { c.StartDate = fixedNow.Add(time.Second) })},
			amount:  d("1000"),
			wantErr: ErrNotFound,
		},
		{
			name: "window bounds are inclusive",
			repo: &mockCouponRepo{coupon: base(func(c *Coupon) {
				c.StartDate = fixedNow
				c.EndDate = fixedNow
			})},
			amount:     d("1000"),
			wantAmount: d("100"),
		},
		{
			name: "usage limit reached",
			repo: &mockCouponRepo{coupon: base(func(c *Coupon) {
				c.UsageLimit = intPtr(5)
				c.UsedCount = 5
			})},
			amount:  d("1000"),
			wantErr: ErrUsageLimitExceeded,
		},
		{
			name: "usage under limit",
			repo: &mockCouponRepo{coupon: base(func(c *Coupon) {
				c.UsageLimit = intPtr(5)
				c.UsedCount = 4
			})},
			amount:     d("1000"),
			wantAmount: d("100"),
		},
		{
			name:    "minimum order not met",
			repo:    &mockCouponRepo{coupon: base(func(c *Coupon) { c.MinOrderAmount = d("1500") })},
			amount:  d("1499.99"),
			wantErr: ErrMinimumOrderNotMet,
		},
		{
			name:       "minimum order met exactly",
			repo:       &mockCouponRepo{coupon: base(func(c *Coupon) { c.MinOrderAmount = d("1500") })},
			amount:     d("1500"),
			wantAmount: d("150"),
		},
		{
			name: "first purchase coupon for new user",
			repo: &mockCouponRepo{coupon: base(func(c *Coupon) {
				c.Code = "WELCOME10"
				c.FirstPurchaseOnly = true
			})},
			userID:     &fresh,
			amount:     d("1000"),
			wantAmount: d("100"),
		},
		{
			name: "first purchase coupon already redeemed",
			repo: &mockCouponRepo{
				coupon: base(func(c *Coupon) {
					c.Code = "WELCOME10"
					c.FirstPurchaseOnly = true
				}),
				userUsages: map[uuid.UUID]int{fresh: 1},
			},
			userID:  &fresh,
			amount:  d("1000"),
			wantErr: ErrAlreadyUsed,
		},
		{
			name: "first purchase coupon for returning customer",
			repo: &mockCouponRepo{coupon: base(func(c *Coupon) {
				c.Code = "WELCOME10"
				c.FirstPurchaseOnly = true
			})},
			userID:  &veteran,
			amount:  d("1000"),
			wantErr: ErrNotFirstPurchase,
		},
		{
			name: "first purchase coupon for guest checkout skips history",
			repo: &mockCouponRepo{coupon: base(func(c *Coupon) {
				c.FirstPurchaseOnly = true
			})},
			amount:     d("1000"),
			wantAmount: d("100"),
		},
		{
			name:       "new customers audience accepts fresh account",
			repo:       &mockCouponRepo{coupon: base(func(c *Coupon) { c.Audience = AudienceNewCustomers })},
			userID:     &fresh,
			amount:     d("1000"),
			wantAmount: d("100"),
		},
		{
			name:    "new customers audience rejects old account",
			repo:    &mockCouponRepo{coupon: base(func(c *Coupon) { c.Audience = AudienceNewCustomers })},
			userID:  &veteran,
			amount:  d("1000"),
			wantErr: ErrAudienceMismatch,
		},
		{
			name:       "vip audience accepts vip",
			repo:       &mockCouponRepo{coupon: base(func(c *Coupon) { c.Audience = AudienceVIPCustomers })},
			userID:     &vip,
			amount:     d("1000"),
			wantAmount: d("100"),
		},
		{
			name:    "vip audience rejects regular customer",
			repo:    &mockCouponRepo{coupon: base(func(c *Coupon) { c.Audience = AudienceVIPCustomers })},
			userID:  &fresh,
			amount:  d("1000"),
			wantErr: ErrAudienceMismatch,
		},
		{
			name:       "free shipping coupon",
			repo:       &mockCouponRepo{coupon: base(func(c *Coupon) { c.Type = TypeFreeShipping; c.Value = decimal.Zero })},
			amount:     d("500"),
			wantAmount: d("0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewRepoValidator(tt.repo, customers)
			v.now = func() time.Time { return fixedNow }

			got, err := v.Validate(context.Background(), " save10 ", Request{UserID: tt.userID, OrderAmount: tt.amount})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, tt.wantAmount.Equal(got.Discount.Amount),
				"expected amount %s, got %s", tt.wantAmount, got.Discount.Amount)
			assert.Equal(t, "SAVE10", tt.repo.lookedUp)
		})
	}
}

func TestRepoValidator_LookupError(t *testing.T) {
	v := NewRepoValidator(&mockCouponRepo{err: errors.New("db down")}, &mockCustomerRepo{})

	_, err := v.Validate(context.Background(), "SAVE10", Request{OrderAmount: d("100")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup coupon")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRepoValidator_DoesNotRecordUsage(t *testing.T) {
	repo := &mockCouponRepo{coupon: &Coupon{
		ID:         uuid.New(),
		Code:       "ONCE",
		Type:       TypeFixed,
		Value:      d("10"),
		StartDate:  time.Now().Add(-time.Hour),
		EndDate:    time.Now().Add(time.Hour),
		IsActive:   true,
		UsageLimit: intPtr(1),
	}}
	v := NewRepoValidator(repo, &mockCustomerRepo{})

	for range 3 {
		_, err := v.Validate(context.Background(), "ONCE", Request{OrderAmount: d("100")})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, repo.coupon.UsedCount)
}
