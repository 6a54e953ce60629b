package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/order"
)

const (
	orderColumns = `id, order_number, user_id, status, payment_status, payment_method,
		subtotal, tax_amount, shipping_amount, discount_amount, total_amount, currency, coupon_code,
		customer_name, customer_email, customer_phone, shipping_address, billing_address,
		city, state, pincode, notes, razorpay_order_id, razorpay_payment_id, tracking_number,
		shipped_at, delivered_at, created_at, updated_at, tax_rate`

	getOrderSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	lockOrderSQL = getOrderSQL + ` FOR UPDATE`

	insertOrderSQL = `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)`

	insertOrderItemSQL = `INSERT INTO order_items (id, order_id, product_id, product_name, product_price,
		original_price, quantity, total_price, discounted_quantity, discount_per_unit, discount_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	listOrderItemsSQL = `SELECT id, order_id, product_id, product_name, product_price, original_price,
		quantity, total_price, discounted_quantity, discount_per_unit, discount_percentage
		FROM order_items WHERE order_id = $1 ORDER BY product_id, id`

	updateOrderPricingSQL = `UPDATE orders SET subtotal = $2, tax_amount = $3, shipping_amount = $4,
		discount_amount = $5, total_amount = $6, coupon_code = $7, updated_at = $8, tax_rate = $9 WHERE id = $1`

	updateOrderStatusSQL = `UPDATE orders SET status = $2, notes = $3, tracking_number = $4,
		shipped_at = $5, delivered_at = $6, updated_at = $7 WHERE id = $1`

	setGatewayOrderSQL = `UPDATE orders SET razorpay_order_id = $2, updated_at = now() WHERE id = $1`

	markPaidSQL = `UPDATE orders SET payment_status = 'paid', razorpay_payment_id = $3, updated_at = now()
		WHERE id = $1 AND razorpay_order_id = $2 AND payment_status = 'pending'`

	orderExistsSQL = `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`

	lockCouponSQL = `SELECT id FROM coupons WHERE id = $1 FOR UPDATE`

	countCouponUsagesSQL = `SELECT count(*) FROM coupon_usages WHERE coupon_id = $1`

	hasCouponUsageSQL = `SELECT EXISTS (SELECT 1 FROM coupon_usages WHERE order_id = $1)`

	insertCouponUsageSQL = `INSERT INTO coupon_usages (id, coupon_id, user_id, order_id, discount_amount, used_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

var (
	_ order.Store   = (*OrderRepository)(nil)
	_ order.TxStore = (*orderTx)(nil)
)

// OrderRepository implements order.Store backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Tx runs fn in a repeatable-read transaction.
func (r *OrderRepository) Tx(ctx context.Context, fn func(ctx context.Context, tx order.TxStore) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &orderTx{q: tx})
	})
}

// GetByID returns the order header.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return getOrder(ctx, r.pool, getOrderSQL, id)
}

// Items returns the order's line items.
func (r *OrderRepository) Items(ctx context.Context, orderID uuid.UUID) ([]order.Item, error) {
	rows, err := r.pool.Query(ctx, listOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing items of order %s: %w", orderID, err)
	}
	return pgx.CollectRows(rows, scanOrderItem)
}

// SetGatewayOrder stores the remote payment-order id.
func (r *OrderRepository) SetGatewayOrder(ctx context.Context, id uuid.UUID, gatewayOrderID string) error {
	return execOne(ctx, r.pool, setGatewayOrderSQL, id, gatewayOrderID)
}

// MarkPaid settles a pending order attached to gatewayOrderID.
func (r *OrderRepository) MarkPaid(ctx context.Context, id uuid.UUID, gatewayOrderID, gatewayPaymentID string) error {
	tag, err := r.pool.Exec(ctx, markPaidSQL, id, gatewayOrderID, nullString(gatewayPaymentID))
	if err != nil {
		return fmt.Errorf("marking order %s paid: %w", id, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := r.pool.QueryRow(ctx, orderExistsSQL, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking order %s: %w", id, err)
	}
	if !exists {
		return order.ErrNotFound
	}
	return order.ErrNotPayable
}

// orderTx implements order.TxStore on an open transaction.
type orderTx struct {
	q querier
}

func (t *orderTx) Insert(ctx context.Context, o *order.Order) error {
	c := o.Customer
	_, err := t.q.Exec(ctx, insertOrderSQL,
		o.ID, o.Number, o.UserID, string(o.Status), string(o.PaymentStatus), string(o.PaymentMethod),
		o.Subtotal, o.TaxAmount, o.ShippingAmount, o.DiscountAmount, o.TotalAmount, o.Currency, o.CouponCode,
		c.Name, c.Email, c.Phone, c.ShippingAddress, c.BillingAddress,
		c.City, c.State, c.Pincode, o.Notes,
		nullString(o.GatewayOrderID), nullString(o.GatewayPaymentID), nullString(o.TrackingNumber),
		o.ShippedAt, o.DeliveredAt, o.CreatedAt, o.UpdatedAt, o.TaxRate,
	)
	if err != nil {
		return fmt.Errorf("inserting order %s: %w", o.Number, err)
	}
	return nil
}

func (t *orderTx) InsertItem(ctx context.Context, it *order.Item) error {
	_, err := t.q.Exec(ctx, insertOrderItemSQL,
		it.ID, it.OrderID, it.ProductID, it.ProductName, it.ProductPrice,
		it.OriginalPrice, it.Quantity, it.TotalPrice,
		it.DiscountedQuantity, it.DiscountPerUnit, it.DiscountPercentage,
	)
	if err != nil {
		return fmt.Errorf("inserting item %s: %w", it.ProductID, err)
	}
	return nil
}

func (t *orderTx) Lock(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return getOrder(ctx, t.q, lockOrderSQL, id)
}

func (t *orderTx) UpdatePricing(ctx context.Context, o *order.Order) error {
	return execOne(ctx, t.q, updateOrderPricingSQL,
		o.ID, o.Subtotal, o.TaxAmount, o.ShippingAmount, o.DiscountAmount, o.TotalAmount,
		o.CouponCode, o.UpdatedAt, o.TaxRate,
	)
}

func (t *orderTx) UpdateStatus(ctx context.Context, o *order.Order) error {
	return execOne(ctx, t.q, updateOrderStatusSQL,
		o.ID, string(o.Status), o.Notes, nullString(o.TrackingNumber),
		o.ShippedAt, o.DeliveredAt, o.UpdatedAt,
	)
}

// LockCoupon takes a row lock on the coupon, then counts its usages. The
// lock serializes concurrent redemptions of the same coupon.
func (t *orderTx) LockCoupon(ctx context.Context, couponID uuid.UUID) (int, error) {
	var id uuid.UUID
	if err := t.q.QueryRow(ctx, lockCouponSQL, couponID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, coupon.ErrNotFound
		}
		return 0, fmt.Errorf("locking coupon %s: %w", couponID, err)
	}
	var n int
	if err := t.q.QueryRow(ctx, countCouponUsagesSQL, couponID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting usages of coupon %s: %w", couponID, err)
	}
	return n, nil
}

func (t *orderTx) HasCouponUsage(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var ok bool
	if err := t.q.QueryRow(ctx, hasCouponUsageSQL, orderID).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking coupon usage of order %s: %w", orderID, err)
	}
	return ok, nil
}

func (t *orderTx) InsertCouponUsage(ctx context.Context, u *coupon.Usage) error {
	_, err := t.q.Exec(ctx, insertCouponUsageSQL,
		u.ID, u.CouponID, u.UserID, u.OrderID, u.DiscountAmount, u.UsedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting coupon usage: %w", err)
	}
	return nil
}

func getOrder(ctx context.Context, q querier, sql string, id uuid.UUID) (*order.Order, error) {
	rows, err := q.Query(ctx, sql, id)
	if err != nil {
		return nil, fmt.Errorf("getting order %s: %w", id, err)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %s: %w", id, err)
	}
	return &o, nil
}

// execOne runs a single-row update and maps zero affected rows to
// order.ErrNotFound.
func execOne(ctx context.Context, q querier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o                                   order.Order
		status, paymentStatus, method       string
		gatewayOrder, gatewayPayment, track *string
	)
	c := &o.Customer
	err := row.Scan(
		&o.ID, &o.Number, &o.UserID, &status, &paymentStatus, &method,
		&o.Subtotal, &o.TaxAmount, &o.ShippingAmount, &o.DiscountAmount, &o.TotalAmount, &o.Currency, &o.CouponCode,
		&c.Name, &c.Email, &c.Phone, &c.ShippingAddress, &c.BillingAddress,
		&c.City, &c.State, &c.Pincode, &o.Notes,
		&gatewayOrder, &gatewayPayment, &track,
		&o.ShippedAt, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt, &o.TaxRate,
	)
	if err != nil {
		return o, err
	}
	o.Status = order.Status(status)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)
	o.PaymentMethod = order.PaymentMethod(method)
	o.GatewayOrderID = deref(gatewayOrder)
	o.GatewayPaymentID = deref(gatewayPayment)
	o.TrackingNumber = deref(track)
	return o, nil
}

func scanOrderItem(row pgx.CollectableRow) (order.Item, error) {
	var it order.Item
	err := row.Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductPrice, &it.OriginalPrice,
		&it.Quantity, &it.TotalPrice, &it.DiscountedQuantity, &it.DiscountPerUnit, &it.DiscountPercentage,
	)
	return it, err
}
