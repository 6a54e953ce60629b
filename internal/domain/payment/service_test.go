package payment

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/xenking/jewel-store/internal/domain/invoice"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/settings"
)

const testSecret = "s3cr3t"

type fakeGateway struct {
	req CreateOrderRequest
	err error
}

func (g *fakeGateway) CreateOrder(_ context.Context, req CreateOrderRequest) (*RemoteOrder, error) {
	g.req = req
	if g.err != nil {
		return nil, g.err
	}
	return &RemoteOrder{ID: "order_Nx1", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created"}, nil
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

type fakeProvider struct {
	gw     *fakeGateway
	secret string
	err    error
}

func (p *fakeProvider) Gateway(context.Context) (Gateway, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.gw, nil
}

func (p *fakeProvider) Secret(context.Context) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.secret, nil
}

type paidCall struct {
	id               uuid.UUID
	gatewayOrderID   string
	gatewayPaymentID string
}

type fakeOrders struct {
	orders   map[uuid.UUID]*order.Order
	paid     []paidCall
	attached map[uuid.UUID]string
}

func newFakeOrders(orders ...*order.Order) *fakeOrders {
	f := &fakeOrders{orders: make(map[uuid.UUID]*order.Order), attached: make(map[uuid.UUID]string)}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrders) GetOrder(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrders) AttachGatewayOrder(_ context.Context, id uuid.UUID, gatewayOrderID string) error {
	f.attached[id] = gatewayOrderID
	return nil
}

func (f *fakeOrders) MarkPaid(_ context.Context, id uuid.UUID, gatewayOrderID, gatewayPaymentID string) error {
	o, ok := f.orders[id]
	if !ok {
		return order.ErrNotFound
	}
	if o.GatewayOrderID != gatewayOrderID || o.PaymentStatus != order.PaymentPending {
		return order.ErrNotPayable
	}
	o.PaymentStatus = order.PaymentPaid
	o.GatewayPaymentID = gatewayPaymentID
	f.paid = append(f.paid, paidCall{id: id, gatewayOrderID: gatewayOrderID, gatewayPaymentID: gatewayPaymentID})
	return nil
}

type staticSettings settings.Settings

func (s staticSettings) Load(context.Context) (settings.Settings, error) {
	return settings.Settings(s), nil
}

type fakeInvoicer struct {
	calls []uuid.UUID
	err   error
}

func (f *fakeInvoicer) Generate(_ context.Context, orderID uuid.UUID) (*invoice.Invoice, bool, error) {
	f.calls = append(f.calls, orderID)
	if f.err != nil {
		return nil, false, f.err
	}
	return &invoice.Invoice{ID: uuid.New(), OrderID: orderID}, true, nil
}

type fixture struct {
	svc      *Service
	provider *fakeProvider
	orders   *fakeOrders
	invoices *fakeInvoicer
	order    *order.Order
}

func newFixture(t *testing.T, cfg Config, st settings.Settings) *fixture {
	t.Helper()
	o := &order.Order{
		ID:             uuid.New(),
		Number:         "ORD-2025-000042",
		TotalAmount:    decimal.RequireFromString("1121.50"),
		Currency:       "INR",
		PaymentStatus:  order.PaymentPending,
		GatewayOrderID: "order_Nx1",
	}
	f := &fixture{
		provider: &fakeProvider{gw: &fakeGateway{}, secret: testSecret},
		orders:   newFakeOrders(o),
		invoices: &fakeInvoicer{},
		order:    o,
	}
	if cfg.DemoPrefix == "" {
		cfg.DemoPrefix = "order_demo_"
	}
	svc, err := NewService(cfg, f.provider, f.orders, staticSettings(st), f.invoices,
		tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestSignature(t *testing.T) {
	sig := Sign(testSecret, "order_Nx1", "pay_Q2")
	assert.Len(t, sig, 64)
	assert.True(t, ValidSignature(testSecret, "order_Nx1", "pay_Q2", sig))
	assert.False(t, ValidSignature(testSecret, "order_Nx1", "pay_Q3", sig))
	assert.False(t, ValidSignature("other", "order_Nx1", "pay_Q2", sig))
	assert.False(t, ValidSignature(testSecret, "order_Nx1", "pay_Q2", ""))
}

func TestVerify_Valid(t *testing.T) {
	f := newFixture(t, Config{}, settings.Settings{})
	id := f.order.ID

	res, err := f.svc.Verify(context.Background(), VerifyRequest{
		GatewayOrderID:   "order_Nx1",
		GatewayPaymentID: "pay_Q2",
		Signature:        Sign(testSecret, "order_Nx1", "pay_Q2"),
		OrderID:          &id,
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.False(t, res.Demo)
	require.NotNil(t, res.Invoice)

	require.Len(t, f.orders.paid, 1)
	assert.Equal(t, paidCall{id: id, gatewayOrderID: "order_Nx1", gatewayPaymentID: "pay_Q2"}, f.orders.paid[0])
	assert.Equal(t, []uuid.UUID{id}, f.invoices.calls)
}

func TestVerify_TamperedSignature(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		sig  string
	}{
		{name: "wrong payment id", sig: Sign(testSecret, "order_Nx1", "pay_OTHER")},
		{name: "wrong secret", sig: Sign("guess", "order_Nx1", "pay_Q2")},
		{name: "empty", sig: ""},
		{name: "demo allowed but real order id", cfg: Config{AllowDemo: true}, sig: "forged"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.cfg, settings.Settings{})
			id := f.order.ID

			res, err := f.svc.Verify(context.Background(), VerifyRequest{
				GatewayOrderID:   "order_Nx1",
				GatewayPaymentID: "pay_Q2",
				Signature:        tc.sig,
				OrderID:          &id,
			})
			require.NoError(t, err)
			assert.False(t, res.Verified)
			assert.Empty(t, f.orders.paid)
			assert.Empty(t, f.invoices.calls)
		})
	}
}

func TestVerify_GatewayOrderMustBelongToOrder(t *testing.T) {
	for _, tc := range []struct {
		name     string
		attached string
	}{
		{name: "different gateway order", attached: "order_EXPENSIVE"},
		{name: "no gateway order attached", attached: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, Config{}, settings.Settings{})
			f.order.GatewayOrderID = tc.attached
			id := f.order.ID

			// A genuine signature for a cheap payment on another gateway order.
			res, err := f.svc.Verify(context.Background(), VerifyRequest{
				GatewayOrderID:   "order_CHEAP",
				GatewayPaymentID: "pay_1rupee",
				Signature:        Sign(testSecret, "order_CHEAP", "pay_1rupee"),
				OrderID:          &id,
			})
			require.NoError(t, err)
			assert.False(t, res.Verified)
			assert.Nil(t, res.Invoice)
			assert.Empty(t, f.orders.paid)
			assert.Empty(t, f.invoices.calls)
			assert.Equal(t, order.PaymentPending, f.order.PaymentStatus)
		})
	}
}

func TestVerify_Replay(t *testing.T) {
	f := newFixture(t, Config{}, settings.Settings{})
	id := f.order.ID
	req := VerifyRequest{
		GatewayOrderID:   "order_Nx1",
		GatewayPaymentID: "pay_Q2",
		Signature:        Sign(testSecret, "order_Nx1", "pay_Q2"),
		OrderID:          &id,
	}

	for range 2 {
		res, err := f.svc.Verify(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.Verified)
	}
	assert.Len(t, f.orders.paid, 1)

	t.Run("second payment on a paid order", func(t *testing.T) {
		res, err := f.svc.Verify(context.Background(), VerifyRequest{
			GatewayOrderID:   "order_Nx1",
			GatewayPaymentID: "pay_Q3",
			Signature:        Sign(testSecret, "order_Nx1", "pay_Q3"),
			OrderID:          &id,
		})
		require.NoError(t, err)
		assert.False(t, res.Verified)
		assert.Len(t, f.orders.paid, 1)
		assert.Equal(t, "pay_Q2", f.order.GatewayPaymentID)
	})
}

func TestVerify_DemoMode(t *testing.T) {
	req := func(id uuid.UUID) VerifyRequest {
		return VerifyRequest{
			GatewayOrderID:   "order_demo_abc",
			GatewayPaymentID: "pay_demo",
			Signature:        "anything",
			OrderID:          &id,
		}
	}

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, Config{}, settings.Settings{})
		f.order.GatewayOrderID = "order_demo_abc"
		res, err := f.svc.Verify(context.Background(), req(f.order.ID))
		require.NoError(t, err)
		assert.False(t, res.Verified)
		assert.Empty(t, f.orders.paid)
	})
	t.Run("enabled", func(t *testing.T) {
		f := newFixture(t, Config{AllowDemo: true}, settings.Settings{})
		f.order.GatewayOrderID = "order_demo_abc"
		res, err := f.svc.Verify(context.Background(), req(f.order.ID))
		require.NoError(t, err)
		assert.True(t, res.Verified)
		assert.True(t, res.Demo)
		assert.Len(t, f.orders.paid, 1)
	})
}

func TestVerify_AutoInvoiceDisabled(t *testing.T) {
	f := newFixture(t, Config{}, settings.Settings{settings.KeyAutoGenerateInvoice: "false"})
	id := f.order.ID

	res, err := f.svc.Verify(context.Background(), VerifyRequest{
		GatewayOrderID:   "order_Nx1",
		GatewayPaymentID: "pay_Q2",
		Signature:        Sign(testSecret, "order_Nx1", "pay_Q2"),
		OrderID:          &id,
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Nil(t, res.Invoice)
	assert.Len(t, f.orders.paid, 1)
	assert.Empty(t, f.invoices.calls)
}

func TestVerify_InvoiceFailureDoesNotFailVerification(t *testing.T) {
	f := newFixture(t, Config{}, settings.Settings{})
	f.invoices.err = errors.New("db down")
	id := f.order.ID

	res, err := f.svc.Verify(context.Background(), VerifyRequest{
		GatewayOrderID:   "order_Nx1",
		GatewayPaymentID: "pay_Q2",
		Signature:        Sign(testSecret, "order_Nx1", "pay_Q2"),
		OrderID:          &id,
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Nil(t, res.Invoice)
	assert.Len(t, f.orders.paid, 1)
}

func TestVerify_WithoutOrder(t *testing.T) {
	f := newFixture(t, Config{}, settings.Settings{})

	res, err := f.svc.Verify(context.Background(), VerifyRequest{
		GatewayOrderID:   "order_Nx1",
		GatewayPaymentID: "pay_Q2",
		Signature:        Sign(testSecret, "order_Nx1", "pay_Q2"),
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Empty(t, f.orders.paid)
	assert.Empty(t, f.invoices.calls)
}

func TestVerify_NotConfigured(t *testing.T) {
	f := newFixture(t, Config{}, settings.Settings{})
	f.provider.err = ErrGatewayNotConfigured

	_, err := f.svc.Verify(context.Background(), VerifyRequest{
		GatewayOrderID:   "order_Nx1",
		GatewayPaymentID: "pay_Q2",
		Signature:        "x",
	})
	require.ErrorIs(t, err, ErrGatewayNotConfigured)
}

func TestCreateOrder(t *testing.T) {
	t.Run("amount", func(t *testing.T) {
		f := newFixture(t, Config{}, settings.Settings{})
		out, err := f.svc.CreateOrder(context.Background(), CheckoutRequest{Amount: decimal.RequireFromString("499.99")})
		require.NoError(t, err)
		assert.Equal(t, int64(49999), f.provider.gw.req.Amount)
		assert.Equal(t, "INR", f.provider.gw.req.Currency)
		assert.Equal(t, "rzp_test_key", out.KeyID)
		assert.Equal(t, "order_Nx1", out.Order.ID)
	})
	t.Run("linked order uses its total", func(t *testing.T) {
		f := newFixture(t, Config{}, settings.Settings{})
		id := f.order.ID
		_, err := f.svc.CreateOrder(context.Background(), CheckoutRequest{Amount: decimal.NewFromInt(1), OrderID: &id})
		require.NoError(t, err)
		assert.Equal(t, int64(112150), f.provider.gw.req.Amount)
		assert.Equal(t, "ORD-2025-000042", f.provider.gw.req.Receipt)
		assert.Equal(t, "order_Nx1", f.orders.attached[id])
	})
	t.Run("invalid amount", func(t *testing.T) {
		f := newFixture(t, Config{}, settings.Settings{})
		_, err := f.svc.CreateOrder(context.Background(), CheckoutRequest{Amount: decimal.Zero})
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
	t.Run("gateway unavailable", func(t *testing.T) {
		f := newFixture(t, Config{}, settings.Settings{})
		f.provider.gw.err = ErrGatewayUnavailable
		_, err := f.svc.CreateOrder(context.Background(), CheckoutRequest{Amount: decimal.NewFromInt(10)})
		require.ErrorIs(t, err, ErrGatewayUnavailable)
	})
	t.Run("demo when unconfigured", func(t *testing.T) {
		f := newFixture(t, Config{AllowDemo: true}, settings.Settings{})
		f.provider.err = ErrGatewayNotConfigured
		out, err := f.svc.CreateOrder(context.Background(), CheckoutRequest{Amount: decimal.NewFromInt(10)})
		require.NoError(t, err)
		assert.True(t, out.Demo)
		assert.Regexp(t, `^order_demo_[0-9a-f]{16}$`, out.Order.ID)
	})
	t.Run("unconfigured without demo", func(t *testing.T) {
		f := newFixture(t, Config{}, settings.Settings{})
		f.provider.err = ErrGatewayNotConfigured
		_, err := f.svc.CreateOrder(context.Background(), CheckoutRequest{Amount: decimal.NewFromInt(10)})
		require.ErrorIs(t, err, ErrGatewayNotConfigured)
	})
}
