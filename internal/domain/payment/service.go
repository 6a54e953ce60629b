package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/internal/domain/invoice"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/settings"
)

const instrumentationName = "github.com/xenking/jewel-store/internal/domain/payment"

// Orders is the slice of the order service payments touch.
type Orders interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error)
	AttachGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error
	MarkPaid(ctx context.Context, id uuid.UUID, gatewayOrderID, gatewayPaymentID string) error
}

// Invoicer issues the invoice for a paid order. It must be idempotent.
type Invoicer interface {
	Generate(ctx context.Context, orderID uuid.UUID) (*invoice.Invoice, bool, error)
}

// SettingsLoader reads persisted runtime settings.
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// Config controls sandbox behaviour.
type Config struct {
	// AllowDemo lets gateway order ids starting with DemoPrefix pass
	// verification without a valid signature, and lets checkout mint such
	// ids when no gateway is configured. Never enable in production.
	AllowDemo  bool
	DemoPrefix string
	Currency   string
}

// CheckoutRequest is a request for a gateway payment order.
type CheckoutRequest struct {
	Amount   decimal.Decimal
	Currency string
	// OrderID links the payment order to a placed order. Its total and
	// currency then take precedence over Amount and Currency.
	OrderID *uuid.UUID
}

// Checkout is a created payment order plus the public key for the browser.
type Checkout struct {
	Order *RemoteOrder
	KeyID string
	Demo  bool
}

// VerifyRequest is the payment callback relayed by the storefront.
type VerifyRequest struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	OrderID          *uuid.UUID
}

// VerifyResult is the outcome of a verification.
type VerifyResult struct {
	Verified bool
	Demo     bool
	// Invoice is set when this verification issued or found the order's invoice.
	Invoice *invoice.Invoice
}

// Service creates payment orders and verifies payments.
type Service struct {
	cfg      Config
	gateways GatewayProvider
	orders   Orders
	settings SettingsLoader
	invoices Invoicer

	tracer        trace.Tracer
	verifications metric.Int64Counter
	checkouts     metric.Int64Counter
}

// NewService creates a payment Service.
func NewService(
	cfg Config,
	gateways GatewayProvider,
	orders Orders,
	settings SettingsLoader,
	invoices Invoicer,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
) (*Service, error) {
	meter := mp.Meter(instrumentationName)
	verifications, err := meter.Int64Counter("payment.verifications",
		metric.WithDescription("Payment verifications by outcome"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create verifications counter")
	}
	checkouts, err := meter.Int64Counter("payment.checkouts",
		metric.WithDescription("Gateway payment orders by outcome"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create checkouts counter")
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	return &Service{
		cfg:           cfg,
		gateways:      gateways,
		orders:        orders,
		settings:      settings,
		invoices:      invoices,
		tracer:        tp.Tracer(instrumentationName),
		verifications: verifications,
		checkouts:     checkouts,
	}, nil
}

// CreateOrder opens a payment order at the gateway.
func (s *Service) CreateOrder(ctx context.Context, req CheckoutRequest) (_ *Checkout, rerr error) {
	ctx, span := s.tracer.Start(ctx, "payment.CreateOrder")
	defer func() {
		outcome := "ok"
		if rerr != nil {
			outcome = "error"
			span.RecordError(rerr)
			span.SetStatus(codes.Error, "create payment order failed")
		}
		s.checkouts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		span.End()
	}()

	amount, currency := req.Amount, req.Currency
	receipt := "rcpt_" + time.Now().UTC().Format("20060102150405")
	if req.OrderID != nil {
		o, err := s.orders.GetOrder(ctx, *req.OrderID)
		if err != nil {
			return nil, err
		}
		amount, currency, receipt = o.TotalAmount, o.Currency, o.Number
		span.SetAttributes(attribute.String("order.id", o.ID.String()))
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = s.cfg.Currency
	}

	create := CreateOrderRequest{
		Amount:   amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency: currency,
		Receipt:  receipt,
	}
	if req.OrderID != nil {
		create.Notes = map[string]string{"order_id": req.OrderID.String()}
	}
	span.SetAttributes(
		attribute.Int64("payment.amount", create.Amount),
		attribute.String("payment.currency", currency),
	)

	var out *Checkout
	gw, err := s.gateways.Gateway(ctx)
	switch {
	case errors.Is(err, ErrGatewayNotConfigured) && s.cfg.AllowDemo:
		out = &Checkout{Order: s.demoOrder(create), Demo: true}
	case err != nil:
		return nil, err
	default:
		remote, err := gw.CreateOrder(ctx, create)
		if err != nil {
			return nil, errors.Wrap(err, "create gateway order")
		}
		out = &Checkout{Order: remote, KeyID: gw.KeyID()}
	}

	if req.OrderID != nil {
		if err := s.orders.AttachGatewayOrder(ctx, *req.OrderID, out.Order.ID); err != nil {
			return nil, errors.Wrap(err, "attach gateway order")
		}
	}

	zctx.From(ctx).Info("Payment order created",
		zap.String("gateway_order_id", out.Order.ID),
		zap.Int64("amount", out.Order.Amount),
		zap.Bool("demo", out.Demo),
	)
	return out, nil
}

func (s *Service) demoOrder(req CreateOrderRequest) *RemoteOrder {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return &RemoteOrder{
		ID:        s.cfg.DemoPrefix + hex.EncodeToString(b[:]),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Receipt:   req.Receipt,
		Status:    "created",
		CreatedAt: time.Now(),
	}
}

func (s *Service) isDemo(gatewayOrderID string) bool {
	return s.cfg.AllowDemo && s.cfg.DemoPrefix != "" && strings.HasPrefix(gatewayOrderID, s.cfg.DemoPrefix)
}

// Verify checks the gateway signature and, when an order id is given, marks
// the order paid and issues its invoice if auto-invoicing is on. A bad
// signature, or a gateway order that was not opened for the given order,
// yields Verified=false and changes nothing. Replaying an already recorded
// payment is verified again without further writes.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (_ *VerifyResult, rerr error) {
	ctx, span := s.tracer.Start(ctx, "payment.Verify",
		trace.WithAttributes(attribute.String("payment.gateway_order_id", req.GatewayOrderID)),
	)
	outcome := "error"
	defer func() {
		if rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, "verify payment failed")
		}
		s.verifications.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		span.End()
	}()
	lg := zctx.From(ctx).With(
		zap.String("gateway_order_id", req.GatewayOrderID),
		zap.String("gateway_payment_id", req.GatewayPaymentID),
	)

	res := &VerifyResult{}
	secret, err := s.gateways.Secret(ctx)
	switch {
	case err == nil:
		res.Verified = ValidSignature(secret, req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	case !errors.Is(err, ErrGatewayNotConfigured):
		return nil, errors.Wrap(err, "load gateway secret")
	}
	if !res.Verified && s.isDemo(req.GatewayOrderID) {
		res.Verified, res.Demo = true, true
		lg.Warn("Accepting demo payment without signature")
	}
	if !res.Verified {
		if err != nil && !s.cfg.AllowDemo {
			return nil, err
		}
		outcome = "rejected"
		lg.Warn("Payment signature mismatch")
		return res, nil
	}

	if req.OrderID == nil {
		outcome = "verified"
		return res, nil
	}
	span.SetAttributes(attribute.String("order.id", req.OrderID.String()))
	lg = lg.With(zap.String("order_id", req.OrderID.String()))

	// The signature only binds the gateway ids, so the order must be the one
	// the gateway order was opened for.
	o, err := s.orders.GetOrder(ctx, *req.OrderID)
	if err != nil {
		return nil, err
	}
	switch {
	case o.GatewayOrderID == "" || o.GatewayOrderID != req.GatewayOrderID:
		outcome = "mismatch"
		lg.Warn("Gateway order does not belong to order", zap.String("attached_gateway_order_id", o.GatewayOrderID))
		return &VerifyResult{}, nil
	case o.PaymentStatus == order.PaymentPaid && o.GatewayPaymentID == req.GatewayPaymentID:
		lg.Info("Payment already recorded")
	case o.PaymentStatus != order.PaymentPending:
		outcome = "mismatch"
		lg.Warn("Order is not awaiting payment", zap.String("payment_status", string(o.PaymentStatus)))
		return &VerifyResult{}, nil
	default:
		if err := s.orders.MarkPaid(ctx, o.ID, req.GatewayOrderID, req.GatewayPaymentID); err != nil {
			if errors.Is(err, order.ErrNotPayable) {
				outcome = "mismatch"
				lg.Warn("Order settled concurrently")
				return &VerifyResult{}, nil
			}
			return nil, err
		}
		lg.Info("Payment verified")
	}
	outcome = "verified"

	st, err := s.settings.Load(ctx)
	if err != nil {
		lg.Error("Load settings for auto invoice", zap.Error(err))
		return res, nil
	}
	if !st.AutoGenerateInvoice() {
		return res, nil
	}
	// Invoice failures are logged only; the payment stays recorded.
	inv, _, err := s.invoices.Generate(ctx, *req.OrderID)
	if err != nil {
		lg.Error("Auto-generate invoice", zap.Error(err))
		return res, nil
	}
	res.Invoice = inv
	return res, nil
}
