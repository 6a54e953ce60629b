// Package invoice produces GST tax invoices for placed orders.
package invoice

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when no invoice matches the lookup.
	ErrNotFound = errors.New("invoice not found")
	// ErrAlreadyExists is returned by Repository.Create when the order already
	// has an invoice.
	ErrAlreadyExists = errors.New("invoice already exists for this order")
)

// PaymentTerm is the gap between invoice date and due date.
const PaymentTerm = 30 * 24 * time.Hour

// Invoice is a tax invoice. Header totals mirror the order exactly.
type Invoice struct {
	ID             uuid.UUID
	Number         string
	OrderID        uuid.UUID
	OrderNumber    string
	CustomerID     *uuid.UUID
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	BillingAddress string

	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	Currency       string

	PaymentStatus string
	PaymentMethod string
	InvoiceDate   time.Time
	DueDate       time.Time
	CreatedAt     time.Time

	Items []Item
}

// Item is an invoice line with its CGST/SGST split.
type Item struct {
	ID                 uuid.UUID
	InvoiceID          uuid.UUID
	ProductID          string
	Description        string
	Quantity           int
	UnitPrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TaxableAmount      decimal.Decimal
	CGSTPercentage     decimal.Decimal
	CGSTAmount         decimal.Decimal
	SGSTPercentage     decimal.Decimal
	SGSTAmount         decimal.Decimal
	TotalAmount        decimal.Decimal
}

// Repository persists invoices.
type Repository interface {
	// Create stores the header and items atomically. It returns
	// ErrAlreadyExists when the order is already invoiced.
	Create(ctx context.Context, inv *Invoice) error
	// GetByID returns the invoice with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByOrderID returns the order's invoice with its items.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*Invoice, error)
}
