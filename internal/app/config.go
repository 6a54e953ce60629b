package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/jewel-store/internal/domain/pricing"
	"github.com/xenking/jewel-store/internal/handler"
)

// Config holds the complete application configuration, loadable from
// environment variables (JEWEL_ prefix), flags, or YAML config files.
type Config struct {
	Addr         string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL  string `usage:"PostgreSQL connection URL (JEWEL_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	APIKeyPepper string `usage:"HMAC pepper for API key hashing (JEWEL_API_KEY_PEPPER)" flag:"api-key-pepper"`
	DevMode      bool   `default:"false" usage:"Include error details in 500 responses" flag:"dev-mode"`
	CORS         CORSConfig
	RateLimit    RateLimitConfig
	Graceful     GracefulConfig
	Pricing      PricingConfig
	Gateway      GatewayConfig
	Company      CompanyConfig
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// RateLimitConfig controls the per-client limiters. Coupon endpoints get a
// tighter budget to slow down code guessing.
type RateLimitConfig struct {
	Max        int           `default:"300" usage:"Max API requests per window"`
	CouponMax  int           `default:"30" usage:"Max coupon requests per window" flag:"coupon-rate-limit"`
	Window     time.Duration `default:"1m" usage:"Rate limit window duration"`
	TrustProxy bool          `default:"false" usage:"Key clients by X-Forwarded-For" flag:"trust-proxy"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// PricingConfig holds the pricing defaults. Persisted tax settings override
// TaxEnabled and TaxRate at runtime.
type PricingConfig struct {
	FreeShippingThreshold string `default:"999" usage:"Subtotal from which shipping is free" flag:"free-shipping-threshold"`
	ShippingFee           string `default:"50" usage:"Flat shipping fee below the threshold" flag:"shipping-fee"`
	TaxEnabled            bool   `default:"false" usage:"Charge GST when no setting overrides it" flag:"tax-enabled"`
	TaxRate               string `default:"18" usage:"Total GST rate in percent" flag:"tax-rate"`
	Currency              string `default:"INR" usage:"Order currency"`
}

// GatewayConfig configures the payment gateway client. Credentials stored in
// settings take precedence over KeyID and KeySecret.
type GatewayConfig struct {
	BaseURL           string        `default:"https://api.razorpay.com" usage:"Payment gateway API base URL" flag:"gateway-base-url"`
	KeyID             string        `usage:"Fallback gateway key id" flag:"gateway-key-id"`
	KeySecret         string        `usage:"Fallback gateway key secret" flag:"gateway-key-secret"`
	Timeout           time.Duration `default:"10s" usage:"Gateway request timeout" flag:"gateway-timeout"`
	AllowDemoPayments bool          `default:"false" usage:"Accept demo payment orders without a signature" flag:"allow-demo-payments"`
	DemoPrefix        string        `default:"order_demo_" usage:"Gateway order id prefix of demo payments" flag:"demo-prefix"`
}

// CompanyConfig is the seller block printed on invoices.
type CompanyConfig struct {
	Name    string `default:"Jewel Store" usage:"Seller name on invoices" flag:"company-name"`
	Address string `usage:"Seller address on invoices" flag:"company-address"`
	GSTIN   string `usage:"Seller GSTIN" flag:"company-gstin"`
	Email   string `usage:"Seller email on invoices" flag:"company-email"`
	Phone   string `usage:"Seller phone on invoices" flag:"company-phone"`
}

// LoadConfig loads configuration from environment variables, YAML config files,
// and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "JEWEL",
		Files:     []string{"config.yaml", "/etc/jewel/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.DatabaseURL == "" {
		return nil, errors.New("database URL is required: set JEWEL_DATABASE_URL or DATABASE_URL")
	}
	if _, err := cfg.Pricing.Defaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables (Railway,
// Render, etc.) that use standard names like DATABASE_URL and PORT to the
// application's JEWEL_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}

// Defaults parses the pricing section.
func (p PricingConfig) Defaults() (pricing.Config, error) {
	cfg := pricing.DefaultConfig()
	for _, f := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"free shipping threshold", p.FreeShippingThreshold, &cfg.FreeShippingThreshold},
		{"shipping fee", p.ShippingFee, &cfg.ShippingFee},
		{"tax rate", p.TaxRate, &cfg.TaxRate},
	} {
		if f.raw == "" {
			continue
		}
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return pricing.Config{}, errors.Wrapf(err, "parse %s", f.name)
		}
		if v.IsNegative() {
			return pricing.Config{}, errors.Errorf("%s must not be negative", f.name)
		}
		*f.dst = v
	}
	cfg.TaxEnabled = p.TaxEnabled
	if p.Currency != "" {
		cfg.Currency = p.Currency
	}
	return cfg, nil
}

func (c CompanyConfig) header() handler.Company {
	return handler.Company{
		Name:    c.Name,
		Address: c.Address,
		GSTIN:   c.GSTIN,
		Email:   c.Email,
		Phone:   c.Phone,
	}
}
