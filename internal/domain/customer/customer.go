package customer

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no customer matches the lookup.
var ErrNotFound = errors.New("customer not found")

// NewCustomerWindow is how long after sign-up an account counts as new.
const NewCustomerWindow = 30 * 24 * time.Hour

// Customer is the slice of a storefront account the order pipeline needs.
type Customer struct {
	ID        uuid.UUID
	Email     string
	Name      string
	IsVIP     bool
	CreatedAt time.Time
}

// IsNew reports whether the account was created within NewCustomerWindow of now.
func (c *Customer) IsNew(now time.Time) bool {
	return now.Sub(c.CreatedAt) <= NewCustomerWindow
}

// Repository provides read access to customer accounts and their order history.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	// CountQualifyingOrders counts orders in confirmed, processing or
	// delivered status placed by the customer.
	CountQualifyingOrders(ctx context.Context, id uuid.UUID) (int, error)
}
