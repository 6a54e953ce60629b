package invoice

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/internal/domain/customer"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/pricing"
	"github.com/xenking/jewel-store/internal/domain/product"
)

const instrumentationName = "github.com/xenking/jewel-store/internal/domain/invoice"

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Orders loads orders together with their persisted items.
type Orders interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error)
}

// PricingSource yields the pricing configuration in effect.
type PricingSource interface {
	Pricing(ctx context.Context) (pricing.Config, error)
}

// Generator builds invoices from orders. It never re-prices: every amount
// comes from what the order recorded at checkout.
type Generator struct {
	invoices  Repository
	orders    Orders
	products  product.Repository
	customers customer.Repository
	pricing   PricingSource
	now       func() time.Time

	generations metric.Int64Counter
}

// NewGenerator creates a Generator.
func NewGenerator(
	invoices Repository,
	orders Orders,
	products product.Repository,
	customers customer.Repository,
	pricing PricingSource,
	mp metric.MeterProvider,
) (*Generator, error) {
	generations, err := mp.Meter(instrumentationName).Int64Counter("invoice.generations",
		metric.WithDescription("Invoice generation requests by result"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create generations counter")
	}
	return &Generator{
		invoices:    invoices,
		orders:      orders,
		products:    products,
		customers:   customers,
		pricing:     pricing,
		now:         time.Now,
		generations: generations,
	}, nil
}

func (g *Generator) record(ctx context.Context, result string) {
	g.generations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// Generate returns the order's invoice, creating it on first call. The bool
// reports whether this call created it.
func (g *Generator) Generate(ctx context.Context, orderID uuid.UUID) (*Invoice, bool, error) {
	existing, err := g.invoices.FindByOrderID(ctx, orderID)
	switch {
	case err == nil:
		g.record(ctx, "existing")
		return existing, false, nil
	case !errors.Is(err, ErrNotFound):
		return nil, false, errors.Wrap(err, "find invoice")
	}

	o, err := g.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	half, err := g.halfRate(ctx, o)
	if err != nil {
		return nil, false, err
	}
	fallback, err := g.fallbackDiscounts(ctx, o.Items)
	if err != nil {
		return nil, false, err
	}

	now := g.now()
	inv := &Invoice{
		ID:             uuid.New(),
		Number:         order.GenerateNumber("INV", now),
		OrderID:        o.ID,
		OrderNumber:    o.Number,
		CustomerName:   o.Customer.Name,
		CustomerEmail:  o.Customer.Email,
		CustomerPhone:  o.Customer.Phone,
		BillingAddress: o.Customer.BillingAddress,
		Subtotal:       o.Subtotal,
		TaxAmount:      o.TaxAmount,
		ShippingAmount: o.ShippingAmount,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,
		Currency:       o.Currency,
		PaymentStatus:  string(o.PaymentStatus),
		PaymentMethod:  string(o.PaymentMethod),
		InvoiceDate:    now,
		DueDate:        now.Add(PaymentTerm),
		CreatedAt:      now,
	}
	if inv.BillingAddress == "" {
		inv.BillingAddress = o.Customer.ShippingAddress
	}
	inv.CustomerID, err = g.resolveCustomer(ctx, o)
	if err != nil {
		return nil, false, err
	}

	inv.Items = make([]Item, len(o.Items))
	for i, it := range o.Items {
		inv.Items[i] = lineItem(inv.ID, it, half, fallback[it.ProductID])
	}

	if err := g.invoices.Create(ctx, inv); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			// Lost a race with a concurrent generation.
			existing, ferr := g.invoices.FindByOrderID(ctx, orderID)
			if ferr != nil {
				return nil, false, errors.Wrap(ferr, "find invoice")
			}
			g.record(ctx, "existing")
			return existing, false, nil
		}
		return nil, false, errors.Wrap(err, "create invoice")
	}

	zctx.From(ctx).Info("Invoice generated",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.Number),
		zap.String("order_id", o.ID.String()),
	)
	g.record(ctx, "created")
	return inv, true, nil
}

// Get returns an invoice by id.
func (g *Generator) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return g.invoices.GetByID(ctx, id)
}

// ForOrder returns the invoice issued for an order.
func (g *Generator) ForOrder(ctx context.Context, orderID uuid.UUID) (*Invoice, error) {
	return g.invoices.FindByOrderID(ctx, orderID)
}

// halfRate returns the CGST (and SGST) percentage for the order's lines:
// half the rate snapshotted at placement. Orders stored before the snapshot
// existed fall back to the current configuration.
func (g *Generator) halfRate(ctx context.Context, o *order.Order) (decimal.Decimal, error) {
	// Orders placed with tax off carry no GST on their lines either.
	if !o.TaxAmount.IsPositive() {
		return decimal.Zero, nil
	}
	if o.TaxRate.IsPositive() {
		return o.TaxRate.Div(two), nil
	}
	cfg, err := g.pricing.Pricing(ctx)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "load pricing")
	}
	return cfg.HalfRate(), nil
}

func (g *Generator) resolveCustomer(ctx context.Context, o *order.Order) (*uuid.UUID, error) {
	if o.UserID != nil {
		return o.UserID, nil
	}
	if o.Customer.Email == "" {
		return nil, nil
	}
	c, err := g.customers.FindByEmail(ctx, o.Customer.Email)
	switch {
	case errors.Is(err, customer.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, errors.Wrap(err, "find customer")
	}
	return &c.ID, nil
}

// fallbackDiscounts returns the current catalog discount percentage for items
// that have no original price snapshot.
func (g *Generator) fallbackDiscounts(ctx context.Context, items []order.Item) (map[string]decimal.Decimal, error) {
	var ids []string
	for _, it := range items {
		if !it.OriginalPrice.Valid {
			ids = append(ids, it.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	products, err := g.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	out := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		out[p.ID] = p.DiscountPercentage
	}
	return out, nil
}

func lineItem(invoiceID uuid.UUID, it order.Item, half, fallbackPct decimal.Decimal) Item {
	qty := decimal.NewFromInt(int64(it.Quantity))
	taxable := it.TotalPrice

	var pct, amount decimal.Decimal
	if it.OriginalPrice.Valid && it.OriginalPrice.Decimal.GreaterThan(it.ProductPrice) {
		gross := it.OriginalPrice.Decimal.Mul(qty)
		amount = gross.Sub(taxable)
		pct = amount.Div(gross).Mul(hundred).Round(2)
	} else if !it.OriginalPrice.Valid && fallbackPct.IsPositive() {
		pct = fallbackPct
		amount = it.ProductPrice.Mul(qty).Mul(pct).Div(hundred)
	}

	cgst := taxable.Mul(half).Div(hundred).Round(2)
	sgst := cgst
	return Item{
		ID:                 uuid.New(),
		InvoiceID:          invoiceID,
		ProductID:          it.ProductID,
		Description:        it.ProductName,
		Quantity:           it.Quantity,
		UnitPrice:          it.ProductPrice,
		DiscountPercentage: pct,
		DiscountAmount:     amount.Round(2),
		TaxableAmount:      taxable,
		CGSTPercentage:     half,
		CGSTAmount:         cgst,
		SGSTPercentage:     half,
		SGSTAmount:         sgst,
		TotalAmount:        taxable.Add(cgst).Add(sgst),
	}
}
