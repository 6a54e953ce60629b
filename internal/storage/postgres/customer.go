package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/jewel-store/internal/domain/customer"
)

const (
	customerColumns = `id, email, name, is_vip, created_at`

	getCustomerByIDSQL = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	getCustomerByEmailSQL = `SELECT ` + customerColumns + ` FROM customers WHERE lower(email) = lower($1)`

	countQualifyingOrdersSQL = `SELECT count(*) FROM orders
		WHERE user_id = $1 AND status IN ('confirmed', 'processing', 'delivered')`
)

var _ customer.Repository = (*CustomerRepository)(nil)

// CustomerRepository implements customer.Repository backed by PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a CustomerRepository that uses the given pool.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// FindByID returns the customer with the given id.
func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return r.findOne(ctx, getCustomerByIDSQL, id)
}

// FindByEmail returns the customer with the given email, case-insensitively.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.findOne(ctx, getCustomerByEmailSQL, email)
}

func (r *CustomerRepository) findOne(ctx context.Context, sql string, arg any) (*customer.Customer, error) {
	rows, err := r.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("finding customer: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[customer.Customer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrNotFound
		}
		return nil, fmt.Errorf("finding customer: %w", err)
	}
	return &c, nil
}

// CountQualifyingOrders counts the customer's confirmed, processing and
// delivered orders.
func (r *CustomerRepository) CountQualifyingOrders(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, countQualifyingOrdersSQL, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting orders of customer %s: %w", id, err)
	}
	return n, nil
}
