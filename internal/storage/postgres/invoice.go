package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/jewel-store/internal/domain/invoice"
)

const (
	invoiceSelect = `SELECT i.id, i.invoice_number, i.order_id, o.order_number, i.customer_id,
		i.customer_name, i.customer_email, i.customer_phone, i.billing_address,
		i.subtotal, i.tax_amount, i.shipping_amount, i.discount_amount, i.total_amount, i.currency,
		i.payment_status, i.payment_method, i.invoice_date, i.due_date, i.created_at
		FROM invoices i JOIN orders o ON o.id = i.order_id`

	getInvoiceByIDSQL = invoiceSelect + ` WHERE i.id = $1`

	getInvoiceByOrderSQL = invoiceSelect + ` WHERE i.order_id = $1`

	insertInvoiceSQL = `INSERT INTO invoices (id, invoice_number, order_id, customer_id,
		customer_name, customer_email, customer_phone, billing_address,
		subtotal, tax_amount, shipping_amount, discount_amount, total_amount, currency,
		payment_status, payment_method, invoice_date, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	insertInvoiceItemSQL = `INSERT INTO invoice_items (id, invoice_id, product_id, description, quantity,
		unit_price, discount_percentage, discount_amount, taxable_amount,
		cgst_percentage, cgst_amount, sgst_percentage, sgst_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	listInvoiceItemsSQL = `SELECT id, invoice_id, product_id, description, quantity,
		unit_price, discount_percentage, discount_amount, taxable_amount,
		cgst_percentage, cgst_amount, sgst_percentage, sgst_amount, total_amount
		FROM invoice_items WHERE invoice_id = $1 ORDER BY product_id, id`
)

var _ invoice.Repository = (*InvoiceRepository)(nil)

// InvoiceRepository implements invoice.Repository backed by PostgreSQL.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository returns an InvoiceRepository that uses the given pool.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// Create inserts the header and items in one transaction. A unique violation
// on order_id maps to invoice.ErrAlreadyExists.
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertInvoiceSQL,
			inv.ID, inv.Number, inv.OrderID, inv.CustomerID,
			inv.CustomerName, inv.CustomerEmail, inv.CustomerPhone, inv.BillingAddress,
			inv.Subtotal, inv.TaxAmount, inv.ShippingAmount, inv.DiscountAmount, inv.TotalAmount, inv.Currency,
			inv.PaymentStatus, inv.PaymentMethod, inv.InvoiceDate, inv.DueDate, inv.CreatedAt,
		)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, it := range inv.Items {
			batch.Queue(insertInvoiceItemSQL,
				it.ID, inv.ID, it.ProductID, it.Description, it.Quantity,
				it.UnitPrice, it.DiscountPercentage, it.DiscountAmount, it.TaxableAmount,
				it.CGSTPercentage, it.CGSTAmount, it.SGSTPercentage, it.SGSTAmount, it.TotalAmount,
			)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		if isUniqueViolation(err) {
			return invoice.ErrAlreadyExists
		}
		return fmt.Errorf("creating invoice for order %s: %w", inv.OrderID, err)
	}
	return nil
}

// GetByID returns the invoice with its items.
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	return r.get(ctx, getInvoiceByIDSQL, id)
}

// FindByOrderID returns the order's invoice with its items.
func (r *InvoiceRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*invoice.Invoice, error) {
	return r.get(ctx, getInvoiceByOrderSQL, orderID)
}

func (r *InvoiceRepository) get(ctx context.Context, sql string, id uuid.UUID) (*invoice.Invoice, error) {
	rows, err := r.pool.Query(ctx, sql, id)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}
	inv, err := pgx.CollectExactlyOneRow(rows, scanInvoice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	rows, err = r.pool.Query(ctx, listInvoiceItemsSQL, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("listing items of invoice %s: %w", inv.ID, err)
	}
	inv.Items, err = pgx.CollectRows(rows, pgx.RowToStructByPos[invoice.Item])
	if err != nil {
		return nil, fmt.Errorf("listing items of invoice %s: %w", inv.ID, err)
	}
	return &inv, nil
}

func scanInvoice(row pgx.CollectableRow) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.OrderID, &inv.OrderNumber, &inv.CustomerID,
		&inv.CustomerName, &inv.CustomerEmail, &inv.CustomerPhone, &inv.BillingAddress,
		&inv.Subtotal, &inv.TaxAmount, &inv.ShippingAmount, &inv.DiscountAmount, &inv.TotalAmount, &inv.Currency,
		&inv.PaymentStatus, &inv.PaymentMethod, &inv.InvoiceDate, &inv.DueDate, &inv.CreatedAt,
	)
	return inv, err
}
