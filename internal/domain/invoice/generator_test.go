package invoice

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

	"github.com/xenking/jewel-store/internal/domain/customer"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/pricing"
	"github.com/xenking/jewel-store/internal/domain/product"
)

type memInvoices struct {
	mu      sync.Mutex
	byOrder map[uuid.UUID]*Invoice
	creates int
	// raced simulates another writer committing between lookup and insert.
	raced *Invoice
}

func newMemInvoices() *memInvoices {
	return &memInvoices{byOrder: make(map[uuid.UUID]*Invoice)}
}

func (m *memInvoices) Create(_ context.Context, inv *Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.raced != nil {
		m.byOrder[inv.OrderID] = m.raced
		m.raced = nil
	}
	if _, ok := m.byOrder[inv.OrderID]; ok {
		return ErrAlreadyExists
	}
	m.byOrder[inv.OrderID] = inv
	return nil
}

func (m *memInvoices) GetByID(_ context.Context, id uuid.UUID) (*Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inv := range m.byOrder {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memInvoices) FindByOrderID(_ context.Context, orderID uuid.UUID) (*Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.byOrder[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	return inv, nil
}

type mockOrders map[uuid.UUID]*order.Order

func (m mockOrders) GetOrder(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := m[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return o, nil
}

type mockProducts map[string]product.Product

func (m mockProducts) List(context.Context) ([]product.Product, error) { return nil, nil }

func (m mockProducts) GetByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := m[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (m mockProducts) GetByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	var out []product.Product
	for _, id := range ids {
		if p, ok := m[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockCustomers map[string]*customer.Customer

func (m mockCustomers) FindByID(context.Context, uuid.UUID) (*customer.Customer, error) {
	return nil, customer.ErrNotFound
}

func (m mockCustomers) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	c, ok := m[email]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return c, nil
}

func (m mockCustomers) CountQualifyingOrders(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

type staticPricing pricing.Config

func (s staticPricing) Pricing(context.Context) (pricing.Config, error) {
	return pricing.Config(s), nil
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func paidOrder() *order.Order {
	id := uuid.New()
	return &order.Order{
		ID:             id,
		Number:         "ORD-2025-000001",
		Status:         order.StatusConfirmed,
		PaymentStatus:  order.PaymentPaid,
		PaymentMethod:  order.MethodUPI,
		Subtotal:       dec("1800"),
		DiscountAmount: dec("50"),
		ShippingAmount: decimal.Zero,
		TaxAmount:      dec("315"),
		TaxRate:        dec("18"),
		TotalAmount:    dec("2065"),
		Currency:       "INR",
		Customer: order.CustomerInfo{
			Name:            "Asha Rao",
			Email:           "asha@example.com",
			ShippingAddress: "12 MG Road",
		},
		Items: []order.Item{
			{
				ProductID:     "ring-1",
				ProductName:   "Gold ring",
				ProductPrice:  dec("800"),
				OriginalPrice: decimal.NewNullDecimal(dec("1000")),
				Quantity:      1,
				TotalPrice:    dec("800"),
			},
			{
				ProductID:    "chain-1",
				ProductName:  "Silver chain",
				ProductPrice: dec("500"),
				Quantity:     2,
				TotalPrice:   dec("1000"),
			},
		},
	}
}

func newGenerator(t *testing.T, invoices *memInvoices, o *order.Order, customers mockCustomers, cfg pricing.Config) *Generator {
	products := mockProducts{
		"chain-1": {ID: "chain-1", Price: dec("500"), DiscountPercentage: dec("10"), IsActive: true},
	}
	t.Helper()
	g, err := NewGenerator(invoices, mockOrders{o.ID: o}, products, customers, staticPricing(cfg), metricnoop.NewMeterProvider())
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerate(t *testing.T) {
	o := paidOrder()
	cust := &customer.Customer{ID: uuid.New(), Email: "asha@example.com"}
	invoices := newMemInvoices()
	g := newGenerator(t, invoices, o, mockCustomers{cust.Email: cust}, pricing.DefaultConfig())

	inv, created, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, created)

	assert.Regexp(t, `^INV-2025-\d{6}$`, inv.Number)
	assert.Equal(t, o.ID, inv.OrderID)
	require.NotNil(t, inv.CustomerID)
	assert.Equal(t, cust.ID, *inv.CustomerID)
	assert.Equal(t, "12 MG Road", inv.BillingAddress)
	assert.Equal(t, "paid", inv.PaymentStatus)
	assert.Equal(t, inv.InvoiceDate.Add(30*24*time.Hour), inv.DueDate)

	// Header totals are the order's, not a sum of line items.
	assert.True(t, o.Subtotal.Equal(inv.Subtotal))
	assert.True(t, o.TaxAmount.Equal(inv.TaxAmount))
	assert.True(t, o.ShippingAmount.Equal(inv.ShippingAmount))
	assert.True(t, o.TotalAmount.Equal(inv.TotalAmount))

	require.Len(t, inv.Items, 2)
	ring := inv.Items[0]
	assert.True(t, dec("9").Equal(ring.CGSTPercentage))
	assert.True(t, dec("9").Equal(ring.SGSTPercentage))
	assert.True(t, dec("800").Equal(ring.TaxableAmount))
	assert.True(t, dec("72").Equal(ring.CGSTAmount))
	assert.True(t, dec("72").Equal(ring.SGSTAmount))
	assert.True(t, dec("944").Equal(ring.TotalAmount))
	assert.True(t, dec("200").Equal(ring.DiscountAmount))
	assert.True(t, dec("20").Equal(ring.DiscountPercentage))

	chain := inv.Items[1]
	assert.True(t, dec("10").Equal(chain.DiscountPercentage))
	assert.True(t, dec("100").Equal(chain.DiscountAmount))
	assert.True(t, dec("1180").Equal(chain.TotalAmount))
}

func TestGenerate_Idempotent(t *testing.T) {
	o := paidOrder()
	invoices := newMemInvoices()
	g := newGenerator(t, invoices, o, mockCustomers{}, pricing.DefaultConfig())

	first, created, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, invoices.creates)
	assert.Len(t, invoices.byOrder, 1)
}

func TestGenerate_CountsResults(t *testing.T) {
	ctx := context.Background()
	o := paidOrder()
	reader := sdkmetric.NewManualReader()
	g, err := NewGenerator(newMemInvoices(), mockOrders{o.ID: o}, mockProducts{}, mockCustomers{},
		staticPricing(pricing.DefaultConfig()), sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	for range 3 {
		_, _, err := g.Generate(ctx, o.ID)
		require.NoError(t, err)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "invoice.generations" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				result, _ := dp.Attributes.Value(attribute.Key("result"))
				got[result.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"created": 1, "existing": 2}, got)
}

func TestGenerate_ConcurrentInsertReturnsWinner(t *testing.T) {
	o := paidOrder()
	invoices := newMemInvoices()
	winner := &Invoice{ID: uuid.New(), OrderID: o.ID, Number: "INV-2025-999999"}
	invoices.raced = winner
	g := newGenerator(t, invoices, o, mockCustomers{}, pricing.DefaultConfig())

	inv, created, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner.ID, inv.ID)
}

func TestGenerate_NoTaxOrder(t *testing.T) {
	o := paidOrder()
	o.TaxAmount = decimal.Zero
	o.TotalAmount = dec("1750")
	g := newGenerator(t, newMemInvoices(), o, mockCustomers{}, pricing.DefaultConfig())

	inv, _, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Nil(t, inv.CustomerID)
	for _, it := range inv.Items {
		assert.True(t, it.CGSTPercentage.IsZero())
		assert.True(t, it.CGSTAmount.IsZero())
		assert.True(t, it.TaxableAmount.Equal(it.TotalAmount))
	}
}

func TestGenerate_UsesRateSnapshottedOnOrder(t *testing.T) {
	// Placed at 3% GST; the store has since moved to 18%.
	o := paidOrder()
	o.TaxRate = dec("3")
	o.TaxAmount = dec("52.50")
	o.TotalAmount = dec("1802.50")
	current := pricing.DefaultConfig()
	current.TaxEnabled = true
	g := newGenerator(t, newMemInvoices(), o, mockCustomers{}, current)

	inv, _, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	require.Len(t, inv.Items, 2)
	ring := inv.Items[0]
	assert.True(t, dec("1.5").Equal(ring.CGSTPercentage), "cgst %s", ring.CGSTPercentage)
	assert.True(t, dec("1.5").Equal(ring.SGSTPercentage))
	assert.True(t, dec("12").Equal(ring.CGSTAmount))
	assert.True(t, dec("824").Equal(ring.TotalAmount))
	assert.True(t, dec("52.50").Equal(inv.TaxAmount))
}

func TestGenerate_LegacyOrderWithoutRateUsesCurrentConfig(t *testing.T) {
	o := paidOrder()
	o.TaxRate = decimal.Zero
	g := newGenerator(t, newMemInvoices(), o, mockCustomers{}, pricing.DefaultConfig())

	inv, _, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, dec("9").Equal(inv.Items[0].CGSTPercentage))
}

func TestGenerate_UserIDWins(t *testing.T) {
	o := paidOrder()
	uid := uuid.New()
	o.UserID = &uid
	g := newGenerator(t, newMemInvoices(), o, mockCustomers{}, pricing.DefaultConfig())

	inv, _, err := g.Generate(context.Background(), o.ID)
	require.NoError(t, err)
	require.NotNil(t, inv.CustomerID)
	assert.Equal(t, uid, *inv.CustomerID)
}

func TestGenerate_OrderNotFound(t *testing.T) {
	g := newGenerator(t, newMemInvoices(), paidOrder(), mockCustomers{}, pricing.DefaultConfig())

	_, _, err := g.Generate(context.Background(), uuid.New())
	require.ErrorIs(t, err, order.ErrNotFound)
}

type failingInvoices struct{ *memInvoices }

func (failingInvoices) Create(context.Context, *Invoice) error {
	return errors.New("connection reset")
}

func TestGenerate_PersistenceError(t *testing.T) {
	o := paidOrder()
	g, err := NewGenerator(failingInvoices{newMemInvoices()}, mockOrders{o.ID: o}, mockProducts{}, mockCustomers{},
		staticPricing(pricing.DefaultConfig()), metricnoop.NewMeterProvider())
	require.NoError(t, err)

	_, _, err = g.Generate(context.Background(), o.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}
