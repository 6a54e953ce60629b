// Package payment creates gateway payment orders and verifies the payment
// callbacks the storefront relays back.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
)

var (
	// ErrGatewayUnavailable means the gateway could not be reached or failed
	// on its side. Retrying later is sensible.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrGatewayAuth means the gateway rejected our credentials.
	ErrGatewayAuth = errors.New("payment gateway authentication failed")
	// ErrGatewayNotConfigured means no key id/secret is set.
	ErrGatewayNotConfigured = errors.New("payment gateway credentials not configured")
	// ErrInvalidAmount is returned for non-positive checkout amounts.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
)

// RejectedError is a definitive refusal from the gateway, such as a bad
// amount or currency. Retrying the same request will not help.
type RejectedError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *RejectedError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("payment gateway rejected request: status %d", e.StatusCode)
	}
	return fmt.Sprintf("payment gateway rejected request: %s", e.Description)
}

// CreateOrderRequest asks the gateway for a payment order.
type CreateOrderRequest struct {
	// Amount is in the smallest currency unit (paise).
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// RemoteOrder is the gateway's payment order.
type RemoteOrder struct {
	ID        string
	Amount    int64
	Currency  string
	Receipt   string
	Status    string
	CreatedAt time.Time
}

// Gateway is a configured payment gateway client.
type Gateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*RemoteOrder, error)
	// KeyID is the public key the browser checkout needs.
	KeyID() string
}

// GatewayProvider hands out the current gateway client and signing secret.
// Both reflect the latest stored credentials.
type GatewayProvider interface {
	Gateway(ctx context.Context) (Gateway, error)
	Secret(ctx context.Context) (string, error)
}
