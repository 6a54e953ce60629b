// Command seed-db loads a demo catalog, coupons, settings and API keys into
// the store database. Every statement is an upsert so the command can be
// re-run against an existing database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/internal/domain/auth"
	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/customer"
	"github.com/xenking/jewel-store/internal/domain/product"
	"github.com/xenking/jewel-store/internal/domain/settings"
	"github.com/xenking/jewel-store/internal/storage/postgres"
)

const (
	upsertProductSQL = `INSERT INTO products (id, name, price, original_price, discount_percentage, category, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price,
			original_price = EXCLUDED.original_price, discount_percentage = EXCLUDED.discount_percentage,
			category = EXCLUDED.category, is_active = EXCLUDED.is_active`

	upsertCouponSQL = `INSERT INTO coupons (id, code, name, description, type, value, min_order_amount,
			max_discount_amount, usage_limit, start_date, end_date, applicable_users, first_purchase_only, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
			type = EXCLUDED.type, value = EXCLUDED.value, min_order_amount = EXCLUDED.min_order_amount,
			max_discount_amount = EXCLUDED.max_discount_amount, usage_limit = EXCLUDED.usage_limit,
			start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
			applicable_users = EXCLUDED.applicable_users, first_purchase_only = EXCLUDED.first_purchase_only,
			is_active = EXCLUDED.is_active`

	upsertCustomerSQL = `INSERT INTO customers (id, email, name, is_vip) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, is_vip = EXCLUDED.is_vip
		RETURNING id`

	upsertAPIKeySQL = `INSERT INTO api_keys (id, key_hash, name, user_id, scopes, active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (id) DO UPDATE SET key_hash = EXCLUDED.key_hash, name = EXCLUDED.name,
			user_id = EXCLUDED.user_id, scopes = EXCLUDED.scopes, active = TRUE`
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var products = []product.Product{
	{ID: "RING-SOL-001", Name: "Solitaire Diamond Ring", Price: price("45999"), OriginalPrice: decimal.NewNullDecimal(price("52999")), DiscountPercentage: price("13.21"), Category: "rings", IsActive: true},
	{ID: "RING-BND-002", Name: "Rose Gold Eternity Band", Price: price("18499"), Category: "rings", IsActive: true},
	{ID: "NECK-PRL-001", Name: "Freshwater Pearl Necklace", Price: price("7999"), OriginalPrice: decimal.NewNullDecimal(price("9999")), DiscountPercentage: price("20"), Category: "necklaces", IsActive: true},
	{ID: "NECK-KND-002", Name: "Kundan Choker Set", Price: price("24999"), Category: "necklaces", IsActive: true},
	{ID: "EAR-JHM-001", Name: "Temple Jhumka Earrings", Price: price("3499"), Category: "earrings", IsActive: true},
	{ID: "EAR-STD-002", Name: "Emerald Stud Earrings", Price: price("12999"), Category: "earrings", IsActive: true},
	{ID: "BRC-BNG-001", Name: "Gold Plated Bangle Pair", Price: price("2499"), Category: "bracelets", IsActive: true},
	{ID: "BRC-TNS-002", Name: "Silver Tennis Bracelet", Price: price("5999"), Category: "bracelets", IsActive: false},
}

func coupons(now time.Time) []coupon.Coupon {
	start := now.AddDate(0, 0, -1)
	end := now.AddDate(1, 0, 0)
	limit := 1000
	return []coupon.Coupon{
		{
			Code: "WELCOME10", Name: "Welcome offer", Description: "10% off your first order, up to 1000",
			Type: coupon.TypePercentage, Value: price("10"), MaxDiscountAmount: decimal.NewNullDecimal(price("1000")),
			StartDate: start, EndDate: end, Audience: coupon.AudienceAll, FirstPurchaseOnly: true, IsActive: true,
		},
		{
			Code: "SAVE10", Name: "Save 10%", Description: "10% off orders above 5000",
			Type: coupon.TypePercentage, Value: price("10"), MinOrderAmount: price("5000"),
			UsageLimit: &limit, StartDate: start, EndDate: end, Audience: coupon.AudienceAll, IsActive: true,
		},
		{
			Code: "FLAT500", Name: "Flat 500", Description: "500 off orders above 3000",
			Type: coupon.TypeFixed, Value: price("500"), MinOrderAmount: price("3000"),
			StartDate: start, EndDate: end, Audience: coupon.AudienceAll, IsActive: true,
		},
		{
			Code: "FREESHIP", Name: "Free shipping", Description: "Shipping on us",
			Type: coupon.TypeFreeShipping, StartDate: start, EndDate: end, Audience: coupon.AudienceAll, IsActive: true,
		},
		{
			Code: "VIP15", Name: "VIP 15%", Description: "15% off for VIP customers",
			Type: coupon.TypePercentage, Value: price("15"), StartDate: start, EndDate: end,
			Audience: coupon.AudienceVIPCustomers, IsActive: true,
		},
	}
}

var siteSettings = map[string]string{
	settings.KeyTaxEnabled:          "true",
	settings.KeyTaxRate:             "3",
	settings.KeyAutoGenerateInvoice: "true",
}

type seedKeys struct {
	Admin    string
	Customer string
	Pepper   string
}

func main() {
	var (
		databaseURL string
		keys        seedKeys
	)
	flag.StringVar(&databaseURL, "database-url", os.Getenv("JEWEL_DATABASE_URL"), "PostgreSQL connection URL")
	flag.StringVar(&keys.Admin, "admin-key", os.Getenv("JEWEL_SEED_ADMIN_KEY"), "admin API key to seed")
	flag.StringVar(&keys.Customer, "customer-key", os.Getenv("JEWEL_SEED_CUSTOMER_KEY"), "demo customer API key to seed")
	flag.StringVar(&keys.Pepper, "api-key-pepper", os.Getenv("JEWEL_API_KEY_PEPPER"), "HMAC pepper for API key hashing")
	flag.Parse()

	lg, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if databaseURL == "" {
		lg.Fatal("Database URL is required: set --database-url or JEWEL_DATABASE_URL")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, databaseURL, keys); err != nil {
		lg.Fatal("Seed failed", zap.Error(err))
	}
	lg.Info("Seed completed")
}

func run(ctx context.Context, lg *zap.Logger, databaseURL string, keys seedKeys) error {
	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	if err := seedCatalog(ctx, pool, time.Now().UTC()); err != nil {
		return errors.Wrap(err, "seed catalog")
	}
	lg.Info("Seeded catalog", zap.Int("products", len(products)))

	if err := postgres.NewSettingsRepository(pool).Set(ctx, siteSettings); err != nil {
		return errors.Wrap(err, "seed settings")
	}
	lg.Info("Seeded settings", zap.Int("keys", len(siteSettings)))

	demo := customer.Customer{ID: uuid.New(), Email: "demo@example.com", Name: "Demo Customer"}
	if err := pool.QueryRow(ctx, upsertCustomerSQL, demo.ID, demo.Email, demo.Name, demo.IsVIP).Scan(&demo.ID); err != nil {
		return errors.Wrap(err, "seed customer")
	}
	lg.Info("Seeded customer", zap.Stringer("id", demo.ID), zap.String("email", demo.Email))

	apiKeys := keyRecords(keys, demo.ID)
	if len(apiKeys) == 0 {
		lg.Warn("No API keys given, skipping")
		return nil
	}
	b := &pgx.Batch{}
	for _, k := range apiKeys {
		b.Queue(upsertAPIKeySQL, k.ID, k.KeyHash, k.Name, k.UserID, k.Scopes)
	}
	if err := pool.SendBatch(ctx, b).Close(); err != nil {
		return errors.Wrap(err, "seed api keys")
	}
	for _, k := range apiKeys {
		lg.Info("Seeded API key", zap.String("id", k.ID), zap.Strings("scopes", k.Scopes))
	}
	return nil
}

// seedCatalog upserts products and coupons in a single batch.
func seedCatalog(ctx context.Context, pool *pgxpool.Pool, now time.Time) error {
	b := &pgx.Batch{}
	for _, p := range products {
		b.Queue(upsertProductSQL, p.ID, p.Name, p.Price, p.OriginalPrice, p.DiscountPercentage, p.Category, p.IsActive)
	}
	for _, c := range coupons(now) {
		b.Queue(upsertCouponSQL, uuid.New(), c.Code, c.Name, c.Description, string(c.Type), c.Value,
			c.MinOrderAmount, c.MaxDiscountAmount, c.UsageLimit, c.StartDate, c.EndDate,
			string(c.Audience), c.FirstPurchaseOnly, c.IsActive)
	}
	return pool.SendBatch(ctx, b).Close()
}

func keyRecords(keys seedKeys, customerID uuid.UUID) []auth.APIKey {
	pepper := []byte(keys.Pepper)
	var out []auth.APIKey
	if keys.Admin != "" {
		out = append(out, auth.APIKey{
			ID:      "admin",
			KeyHash: auth.HashKey(pepper, keys.Admin),
			Name:    "Back-office admin",
			Scopes:  []string{auth.ScopeAdmin},
		})
	}
	if keys.Customer != "" {
		out = append(out, auth.APIKey{
			ID:      "demo-customer",
			KeyHash: auth.HashKey(pepper, keys.Customer),
			Name:    "Demo customer",
			UserID:  &customerID,
			Scopes:  []string{},
		})
	}
	return out
}
