package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item available for purchase.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	// OriginalPrice is the list price before a catalog markdown, if any.
	OriginalPrice      decimal.NullDecimal
	DiscountPercentage decimal.Decimal
	Category           string
	IsActive           bool
}

// Repository defines read operations for the product catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	// GetByIDs returns every product matching ids, active or not.
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
}
