package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/pricing"
	"github.com/xenking/jewel-store/internal/domain/product"
)

// --- Mock implementations ---

type mockProductRepo struct {
	byID   map[string]*product.Product
	getErr error
}

func (m *mockProductRepo) List(_ context.Context) ([]product.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) GetByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var out []product.Product
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

type mockCouponValidator struct {
	result *coupon.Result
	err    error
	calls  int
	req    coupon.Request
}

func (m *mockCouponValidator) Validate(_ context.Context, _ string, req coupon.Request) (*coupon.Result, error) {
	m.calls++
	m.req = req
	return m.result, m.err
}

type staticPricing pricing.Config

func (s staticPricing) Pricing(context.Context) (pricing.Config, error) {
	return pricing.Config(s), nil
}

// memStore keeps committed state in maps and stages transactional writes,
// publishing them only when fn returns nil. Transactions are serialized the
// way a coupon row lock serializes concurrent redemptions.
type memStore struct {
	txMu sync.Mutex

	mu     sync.Mutex
	orders map[uuid.UUID]Order
	items  map[uuid.UUID][]Item
	usages []coupon.Usage

	failItemAt int
}

func newMemStore() *memStore {
	return &memStore{
		orders: make(map[uuid.UUID]Order),
		items:  make(map[uuid.UUID][]Item),
	}
}

func (m *memStore) Tx(ctx context.Context, fn func(ctx context.Context, tx TxStore) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := &memTx{store: m, orders: make(map[uuid.UUID]Order), items: make(map[uuid.UUID][]Item)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, o := range tx.orders {
		m.orders[id] = o
	}
	for id, its := range tx.items {
		m.items[id] = append(m.items[id], its...)
	}
	m.usages = append(m.usages, tx.usages...)
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *memStore) Items(_ context.Context, id uuid.UUID) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Item(nil), m.items[id]...), nil
}

func (m *memStore) SetGatewayOrder(_ context.Context, id uuid.UUID, gatewayOrderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.GatewayOrderID = gatewayOrderID
	m.orders[id] = o
	return nil
}

func (m *memStore) MarkPaid(_ context.Context, id uuid.UUID, gatewayOrderID, gatewayPaymentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return ErrNotFound
	}
	if o.GatewayOrderID != gatewayOrderID || o.PaymentStatus != PaymentPending {
		return ErrNotPayable
	}
	o.PaymentStatus = PaymentPaid
	o.GatewayPaymentID = gatewayPaymentID
	m.orders[id] = o
	return nil
}

func (m *memStore) usageCount(couponID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, u := range m.usages {
		if u.CouponID == couponID {
			n++
		}
	}
	return n
}

type memTx struct {
	store       *memStore
	orders      map[uuid.UUID]Order
	items       map[uuid.UUID][]Item
	usages      []coupon.Usage
	itemInserts int
}

func (t *memTx) Insert(_ context.Context, o *Order) error {
	cp := *o
	cp.Items = nil
	t.orders[o.ID] = cp
	return nil
}

func (t *memTx) InsertItem(_ context.Context, it *Item) error {
	t.itemInserts++
	if t.store.failItemAt > 0 && t.itemInserts == t.store.failItemAt {
		return errors.New("constraint violation")
	}
	t.items[it.OrderID] = append(t.items[it.OrderID], *it)
	return nil
}

func (t *memTx) Lock(ctx context.Context, id uuid.UUID) (*Order, error) {
	if o, ok := t.orders[id]; ok {
		return &o, nil
	}
	return t.store.GetByID(ctx, id)
}

func (t *memTx) UpdatePricing(_ context.Context, o *Order) error {
	t.orders[o.ID] = *o
	return nil
}

func (t *memTx) UpdateStatus(_ context.Context, o *Order) error {
	t.orders[o.ID] = *o
	return nil
}

func (t *memTx) LockCoupon(_ context.Context, couponID uuid.UUID) (int, error) {
	n := t.store.usageCount(couponID)
	for _, u := range t.usages {
		if u.CouponID == couponID {
			n++
		}
	}
	return n, nil
}

func (t *memTx) HasCouponUsage(_ context.Context, orderID uuid.UUID) (bool, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, u := range t.store.usages {
		if u.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) InsertCouponUsage(_ context.Context, u *coupon.Usage) error {
	t.usages = append(t.usages, *u)
	return nil
}

// --- Helpers ---

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newTestProduct(id, name string, price decimal.Decimal) product.Product {
	return product.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: "rings",
		IsActive: true,
	}
}

func newProductRepo(products ...product.Product) *mockProductRepo {
	byID := make(map[string]*product.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &mockProductRepo{byID: byID}
}

func newService(t *testing.T, products *mockProductRepo, cv coupon.Validator, store *memStore, cfg pricing.Config) *Service {
	t.Helper()
	s, err := NewService(products, cv, store, staticPricing(cfg), metricnoop.NewMeterProvider())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC) }
	return s
}

func customerInfo() CustomerInfo {
	return CustomerInfo{
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		ShippingAddress: "12 MG Road",
		City:            "Bengaluru",
		State:           "KA",
		Pincode:         "560001",
	}
}

func pct10Capped() *coupon.Result {
	return &coupon.Result{
		Coupon: &coupon.Coupon{
			ID:                uuid.New(),
			Code:              "SAVE10",
			Type:              coupon.TypePercentage,
			Value:             dec("10"),
			MaxDiscountAmount: decimal.NewNullDecimal(dec("50")),
		},
		Discount: coupon.Discount{Amount: dec("50")},
	}
}

// --- Tests ---

func TestPlaceOrder_EmptyItems(t *testing.T) {
	svc := newService(t, newProductRepo(), &mockCouponValidator{}, newMemStore(), pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{})
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestPlaceOrder_InvalidQuantity(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("10"))
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{}, newMemStore(), pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Items: []ItemRequest{{ProductID: "p1", Quantity: 0}},
	})

	var iqErr *InvalidQuantityError
	require.ErrorAs(t, err, &iqErr)
	assert.Equal(t, "p1", iqErr.ProductID)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPlaceOrder_ProductNotFound(t *testing.T) {
	store := newMemStore()
	svc := newService(t, newProductRepo(), &mockCouponValidator{}, store, pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Items: []ItemRequest{{ProductID: "missing", Quantity: 1}},
	})

	var pnfErr *ProductNotFoundError
	require.ErrorAs(t, err, &pnfErr)
	assert.Equal(t, "missing", pnfErr.ProductID)
	assert.Empty(t, store.orders)
}

func TestPlaceOrder_InactiveProduct(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("10"))
	p2 := newTestProduct("p2", "Retired pendant", dec("20"))
	p2.IsActive = false
	store := newMemStore()
	svc := newService(t, newProductRepo(p1, p2), &mockCouponValidator{}, store, pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Items: []ItemRequest{{ProductID: "p1", Quantity: 1}, {ProductID: "p2", Quantity: 1}},
	})

	var pnfErr *ProductNotFoundError
	require.ErrorAs(t, err, &pnfErr)
	assert.Equal(t, "p2", pnfErr.ProductID)
	assert.Empty(t, store.orders)
}

func TestPlaceOrder_NoCoupon(t *testing.T) {
	p1 := newTestProduct("p1", "Gold ring", dec("500"))
	store := newMemStore()
	cv := &mockCouponValidator{}
	svc := newService(t, newProductRepo(p1), cv, store, pricing.DefaultConfig())

	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Customer: customerInfo(),
		Items:    []ItemRequest{{ProductID: "p1", Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, cv.calls)
	assert.True(t, dec("1000").Equal(o.Subtotal))
	assert.True(t, o.ShippingAmount.IsZero())
	assert.True(t, o.TaxAmount.IsZero())
	assert.True(t, dec("1000").Equal(o.TotalAmount))
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.Equal(t, MethodCashOnDelivery, o.PaymentMethod)
	assert.Regexp(t, `^ORD-2025-\d{6}$`, o.Number)
	assert.Equal(t, "INR", o.Currency)
	assert.Equal(t, "12 MG Road", o.Customer.BillingAddress)

	require.Len(t, store.items[o.ID], 1)
	item := store.items[o.ID][0]
	assert.Equal(t, "Gold ring", item.ProductName)
	assert.True(t, dec("500").Equal(item.ProductPrice))
	assert.True(t, dec("1000").Equal(item.TotalPrice))
	assert.Empty(t, store.usages)
}

func TestPlaceOrder_BelowThreshold(t *testing.T) {
	p1 := newTestProduct("p1", "Stud earrings", dec("500"))
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{}, newMemStore(), pricing.DefaultConfig())

	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Customer: customerInfo(),
		Items:    []ItemRequest{{ProductID: "p1", Quantity: 1}},
	})

	require.NoError(t, err)
	assert.True(t, dec("50").Equal(o.ShippingAmount))
	assert.True(t, dec("550").Equal(o.TotalAmount))
}

func TestPlaceOrder_WithCoupon(t *testing.T) {
	p1 := newTestProduct("p1", "Gold ring", dec("500"))
	cfg := pricing.DefaultConfig()
	cfg.TaxEnabled = true

	for _, tc := range []struct {
		name      string
		cfg       pricing.Config
		wantTax   string
		wantTotal string
	}{
		{name: "tax disabled", cfg: pricing.DefaultConfig(), wantTax: "0", wantTotal: "950"},
		{name: "tax enabled", cfg: cfg, wantTax: "171", wantTotal: "1121"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			userID := uuid.New()
			store := newMemStore()
			cv := &mockCouponValidator{result: pct10Capped()}
			svc := newService(t, newProductRepo(p1), cv, store, tc.cfg)

			o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
				UserID:     &userID,
				Customer:   customerInfo(),
				Items:      []ItemRequest{{ProductID: "p1", Quantity: 2}},
				CouponCode: " save10 ",
			})

			require.NoError(t, err)
			assert.True(t, dec("1000").Equal(cv.req.OrderAmount))
			assert.Equal(t, &userID, cv.req.UserID)
			assert.True(t, dec("50").Equal(o.DiscountAmount))
			assert.True(t, dec(tc.wantTax).Equal(o.TaxAmount), "tax %s", o.TaxAmount)
			assert.True(t, dec(tc.wantTotal).Equal(o.TotalAmount), "total %s", o.TotalAmount)
			assert.Equal(t, "SAVE10", o.CouponCode)

			require.Len(t, store.usages, 1)
			assert.Equal(t, o.ID, store.usages[0].OrderID)
			assert.Equal(t, &userID, store.usages[0].UserID)
			assert.True(t, dec("50").Equal(store.usages[0].DiscountAmount))
		})
	}
}

func TestPlaceOrder_FreeShippingCoupon(t *testing.T) {
	p1 := newTestProduct("p1", "Anklet", dec("500"))
	cv := &mockCouponValidator{result: &coupon.Result{
		Coupon:   &coupon.Coupon{ID: uuid.New(), Code: "FREESHIP", Type: coupon.TypeFreeShipping},
		Discount: coupon.Discount{Amount: decimal.Zero, FreeShipping: true},
	}}
	svc := newService(t, newProductRepo(p1), cv, newMemStore(), pricing.DefaultConfig())

	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Customer:   customerInfo(),
		Items:      []ItemRequest{{ProductID: "p1", Quantity: 1}},
		CouponCode: "FREESHIP",
	})

	require.NoError(t, err)
	assert.True(t, o.ShippingAmount.IsZero())
	assert.True(t, dec("500").Equal(o.TotalAmount))
}

func TestPlaceOrder_PromotionalLineTotal(t *testing.T) {
	p1 := newTestProduct("p1", "Silver chain", dec("800"))
	store := newMemStore()
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{}, store, pricing.DefaultConfig())

	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Customer: customerInfo(),
		Items: []ItemRequest{{
			ProductID:          "p1",
			Quantity:           2,
			TotalPrice:         decimal.NewNullDecimal(dec("800")),
			DiscountedQuantity: 1,
			DiscountPerUnit:    dec("800"),
			DiscountPercentage: dec("100"),
		}},
	})

	require.NoError(t, err)
	assert.True(t, dec("800").Equal(o.Subtotal))
	assert.True(t, dec("850").Equal(o.TotalAmount))

	item := store.items[o.ID][0]
	assert.True(t, dec("800").Equal(item.ProductPrice))
	assert.True(t, dec("800").Equal(item.TotalPrice))
	assert.Equal(t, 1, item.DiscountedQuantity)
}

func TestPlaceOrder_InvalidCoupon(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("10"))
	store := newMemStore()
	cv := &mockCouponValidator{err: coupon.ErrNotFound}
	svc := newService(t, newProductRepo(p1), cv, store, pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Items:      []ItemRequest{{ProductID: "p1", Quantity: 1}},
		CouponCode: "BOGUS",
	})

	require.ErrorIs(t, err, coupon.ErrNotFound)
	var couponErr *CouponError
	require.ErrorAs(t, err, &couponErr)
	assert.Equal(t, "BOGUS", couponErr.Code)
	assert.Empty(t, store.orders)
}

func TestPlaceOrder_CouponLookupFailureIsNotARejection(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("10"))
	cv := &mockCouponValidator{err: errors.New("connection refused")}
	svc := newService(t, newProductRepo(p1), cv, newMemStore(), pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Items:      []ItemRequest{{ProductID: "p1", Quantity: 1}},
		CouponCode: "SAVE10",
	})

	require.Error(t, err)
	var couponErr *CouponError
	assert.False(t, errors.As(err, &couponErr))
}

func TestPlaceOrder_CountsPlacements(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	cv := &mockCouponValidator{}
	svc, err := NewService(newProductRepo(newTestProduct("p1", "Ring", dec("10"))), cv, newMemStore(),
		staticPricing(pricing.DefaultConfig()), sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, PlaceOrderRequest{Items: []ItemRequest{{ProductID: "p1", Quantity: 1}}})
	require.NoError(t, err)

	cv.err = coupon.ErrNotFound
	_, err = svc.PlaceOrder(ctx, PlaceOrderRequest{
		Items:      []ItemRequest{{ProductID: "p1", Quantity: 1}},
		CouponCode: "OLD",
	})
	require.Error(t, err)

	_, err = svc.PlaceOrder(ctx, PlaceOrderRequest{})
	require.ErrorIs(t, err, ErrEmptyItems)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "order.placements" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
				withCoupon, _ := dp.Attributes.Value(attribute.Key("coupon"))
				got[outcome.AsString()+"/"+withCoupon.Emit()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{
		"placed/false":         1,
		"coupon_rejected/true": 1,
		"invalid/false":        1,
	}, got)
}

func TestPlaceOrder_ItemFailureRollsBack(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("100"))
	p2 := newTestProduct("p2", "Bangle", dec("200"))
	p3 := newTestProduct("p3", "Nose pin", dec("300"))
	store := newMemStore()
	store.failItemAt = 2
	svc := newService(t, newProductRepo(p1, p2, p3), &mockCouponValidator{result: pct10Capped()}, store, pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Customer: customerInfo(),
		Items: []ItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 1},
			{ProductID: "p3", Quantity: 1},
		},
		CouponCode: "SAVE10",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")
	assert.Empty(t, store.orders)
	assert.Empty(t, store.items)
	assert.Empty(t, store.usages)
}

func TestPlaceOrder_ProductLookupError(t *testing.T) {
	repo := newProductRepo()
	repo.getErr = errors.New("db down")
	svc := newService(t, repo, &mockCouponValidator{}, newMemStore(), pricing.DefaultConfig())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Items: []ItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get products")
}

func TestPlaceOrder_CouponUsageLimitUnderConcurrency(t *testing.T) {
	const limit = 3
	p1 := newTestProduct("p1", "Ring", dec("1000"))
	res := pct10Capped()
	res.Coupon.UsageLimit = func() *int { v := limit; return &v }()

	store := newMemStore()
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{result: res}, store, pricing.DefaultConfig())

	const attempts = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
				Customer:   customerInfo(),
				Items:      []ItemRequest{{ProductID: "p1", Quantity: 1}},
				CouponCode: "SAVE10",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, coupon.ErrUsageLimitExceeded):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, ok)
	assert.Equal(t, attempts-limit, rejected)
	assert.Equal(t, limit, store.usageCount(res.Coupon.ID))
	assert.Len(t, store.orders, limit)
}

func placeSimpleOrder(t *testing.T, svc *Service) *Order {
	t.Helper()
	o, err := svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		Customer: customerInfo(),
		Items:    []ItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	return o
}

func TestUpdateStatus(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("500"))
	store := newMemStore()
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{}, store, pricing.DefaultConfig())
	o := placeSimpleOrder(t, svc)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, o.ID, StatusUpdate{Status: StatusConfirmed})
	require.NoError(t, err)

	shipped, err := svc.UpdateStatus(ctx, o.ID, StatusUpdate{Status: StatusShipped, TrackingNumber: "AWB123", Notes: "Handed to courier"})
	require.NoError(t, err)
	require.NotNil(t, shipped.ShippedAt)
	assert.Equal(t, "AWB123", shipped.TrackingNumber)
	assert.Equal(t, "Handed to courier", shipped.Notes)

	_, err = svc.UpdateStatus(ctx, o.ID, StatusUpdate{Status: StatusProcessing})
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, StatusShipped, trErr.From)

	delivered, err := svc.UpdateStatus(ctx, o.ID, StatusUpdate{Status: StatusDelivered})
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, got.Status)
	assert.Len(t, got.Items, 1)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newService(t, newProductRepo(), &mockCouponValidator{}, newMemStore(), pricing.DefaultConfig())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), StatusUpdate{Status: StatusConfirmed})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApplyCoupon(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("500"))
	store := newMemStore()
	cv := &mockCouponValidator{result: pct10Capped()}
	svc := newService(t, newProductRepo(p1), cv, store, pricing.DefaultConfig())
	o := placeSimpleOrder(t, svc)

	res, err := svc.ApplyCoupon(context.Background(), "SAVE10", o.ID, nil)
	require.NoError(t, err)
	assert.True(t, dec("50").Equal(res.Discount))
	assert.True(t, dec("950").Equal(res.Order.TotalAmount))
	assert.Equal(t, 1, store.usageCount(res.Coupon.ID))

	_, err = svc.ApplyCoupon(context.Background(), "SAVE10", o.ID, nil)
	require.ErrorIs(t, err, ErrCouponAlreadyApplied)
	assert.Equal(t, 1, store.usageCount(res.Coupon.ID))
}

func TestApplyCoupon_ValidatesAsOrderOwner(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("500"))
	ctx := context.Background()

	t.Run("owned order ignores caller user", func(t *testing.T) {
		store := newMemStore()
		cv := &mockCouponValidator{result: pct10Capped()}
		svc := newService(t, newProductRepo(p1), cv, store, pricing.DefaultConfig())
		owner, fresh := uuid.New(), uuid.New()
		o, err := svc.PlaceOrder(ctx, PlaceOrderRequest{
			UserID:   &owner,
			Customer: customerInfo(),
			Items:    []ItemRequest{{ProductID: "p1", Quantity: 2}},
		})
		require.NoError(t, err)

		_, err = svc.ApplyCoupon(ctx, "WELCOME10", o.ID, &fresh)
		require.NoError(t, err)
		assert.Equal(t, &owner, cv.req.UserID)
		require.Len(t, store.usages, 1)
		assert.Equal(t, &owner, store.usages[0].UserID)
	})
	t.Run("guest order uses caller user", func(t *testing.T) {
		store := newMemStore()
		cv := &mockCouponValidator{result: pct10Capped()}
		svc := newService(t, newProductRepo(p1), cv, store, pricing.DefaultConfig())
		o := placeSimpleOrder(t, svc)
		user := uuid.New()

		_, err := svc.ApplyCoupon(ctx, "WELCOME10", o.ID, &user)
		require.NoError(t, err)
		assert.Equal(t, &user, cv.req.UserID)
	})
}

func TestApplyCoupon_NotEditable(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("500"))
	store := newMemStore()
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{result: pct10Capped()}, store, pricing.DefaultConfig())
	o := placeSimpleOrder(t, svc)

	_, err := svc.UpdateStatus(context.Background(), o.ID, StatusUpdate{Status: StatusCancelled})
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(context.Background(), "SAVE10", o.ID, nil)
	require.ErrorIs(t, err, ErrNotEditable)
}

func TestAttachGatewayOrder(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("500"))
	store := newMemStore()
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{}, store, pricing.DefaultConfig())
	o := placeSimpleOrder(t, svc)

	require.NoError(t, svc.AttachGatewayOrder(context.Background(), o.ID, "order_Nx1"))
	assert.Equal(t, "order_Nx1", store.orders[o.ID].GatewayOrderID)
}

func TestMarkPaid(t *testing.T) {
	p1 := newTestProduct("p1", "Ring", dec("500"))
	store := newMemStore()
	svc := newService(t, newProductRepo(p1), &mockCouponValidator{}, store, pricing.DefaultConfig())
	o := placeSimpleOrder(t, svc)
	ctx := context.Background()

	err := svc.MarkPaid(ctx, o.ID, "order_Nx1", "pay_Q2")
	require.ErrorIs(t, err, ErrNotPayable, "no gateway order attached yet")

	require.NoError(t, svc.AttachGatewayOrder(ctx, o.ID, "order_Nx1"))
	err = svc.MarkPaid(ctx, o.ID, "order_OTHER", "pay_Q2")
	require.ErrorIs(t, err, ErrNotPayable)
	assert.Equal(t, PaymentPending, store.orders[o.ID].PaymentStatus)

	require.NoError(t, svc.MarkPaid(ctx, o.ID, "order_Nx1", "pay_Q2"))
	got := store.orders[o.ID]
	assert.Equal(t, PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "pay_Q2", got.GatewayPaymentID)

	err = svc.MarkPaid(ctx, o.ID, "order_Nx1", "pay_Q3")
	require.ErrorIs(t, err, ErrNotPayable, "already paid")

	err = svc.MarkPaid(ctx, uuid.New(), "order_Nx1", "pay_Q2")
	require.ErrorIs(t, err, ErrNotFound)
}
