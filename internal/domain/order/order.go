package order

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/jewel-store/internal/domain/coupon"
)

// PaymentStatus tracks settlement of an order.
type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentFailed            PaymentStatus = "failed"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	MethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	MethodCreditCard     PaymentMethod = "credit_card"
	MethodDebitCard      PaymentMethod = "debit_card"
	MethodNetBanking     PaymentMethod = "net_banking"
	MethodUPI            PaymentMethod = "upi"
	MethodWallet         PaymentMethod = "wallet"
)

// ParsePaymentMethod validates a raw payment method. Empty means cash on delivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MethodCashOnDelivery, nil
	case MethodCashOnDelivery, MethodCreditCard, MethodDebitCard, MethodNetBanking, MethodUPI, MethodWallet:
		return m, nil
	default:
		return "", errors.Errorf("unsupported payment method: %q", s)
	}
}

// Online reports whether the method settles through the payment gateway.
func (m PaymentMethod) Online() bool {
	return m != MethodCashOnDelivery
}

// CustomerInfo is the customer snapshot stored on the order.
type CustomerInfo struct {
	Name            string
	Email           string
	Phone           string
	ShippingAddress string
	BillingAddress  string
	City            string
	State           string
	Pincode         string
}

// Order is a placed order with its pricing frozen at creation time.
type Order struct {
	ID     uuid.UUID
	Number string
	// UserID is nil for guest checkouts and for orders whose account was deleted.
	UserID         *uuid.UUID
	Status         Status
	PaymentStatus  PaymentStatus
	PaymentMethod  PaymentMethod
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	// TaxRate is the GST percentage TaxAmount was computed with.
	TaxRate        decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	Currency       string
	CouponCode     string
	Customer       CustomerInfo
	Notes          string

	GatewayOrderID   string
	GatewayPaymentID string
	TrackingNumber   string
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []Item
}

// Item is an order line. Product name and price are snapshots taken at
// purchase time.
type Item struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	ProductID          string
	ProductName        string
	ProductPrice       decimal.Decimal
	OriginalPrice      decimal.NullDecimal
	Quantity           int
	TotalPrice         decimal.Decimal
	DiscountedQuantity int
	DiscountPerUnit    decimal.Decimal
	DiscountPercentage decimal.Decimal
}

var (
	// ErrNotFound is returned when an order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrCouponAlreadyApplied is returned when an order already carries a coupon.
	ErrCouponAlreadyApplied = errors.New("a coupon has already been applied to this order")
	// ErrNotEditable is returned when pricing changes are attempted on an order
	// that is no longer pending payment.
	ErrNotEditable = errors.New("order can no longer be modified")
	// ErrNotPayable is returned when a payment is recorded against an order
	// that is not pending payment for that gateway order.
	ErrNotPayable = errors.New("order is not awaiting this payment")
)

// Store persists orders. Multi-statement writes go through Tx.
type Store interface {
	// Tx runs fn in a repeatable-read transaction; fn's error rolls it back.
	Tx(ctx context.Context, fn func(ctx context.Context, tx TxStore) error) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	Items(ctx context.Context, orderID uuid.UUID) ([]Item, error)
	SetGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error
	// MarkPaid settles a pending order whose gateway order id matches and
	// records the payment id. It returns ErrNotPayable when nothing matched.
	MarkPaid(ctx context.Context, id uuid.UUID, gatewayOrderID, gatewayPaymentID string) error
}

// TxStore is the set of writes available inside a transaction.
type TxStore interface {
	Insert(ctx context.Context, o *Order) error
	InsertItem(ctx context.Context, it *Item) error
	// Lock returns the order and holds a row lock until the transaction ends.
	Lock(ctx context.Context, id uuid.UUID) (*Order, error)
	UpdatePricing(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, o *Order) error
	// LockCoupon locks the coupon row and returns its current usage count.
	LockCoupon(ctx context.Context, couponID uuid.UUID) (int, error)
	HasCouponUsage(ctx context.Context, orderID uuid.UUID) (bool, error)
	InsertCouponUsage(ctx context.Context, u *coupon.Usage) error
}
