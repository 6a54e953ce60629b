// Package settings reads the persisted key-value site settings that tune
// pricing, invoicing and the payment gateway at runtime.
package settings

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/jewel-store/internal/domain/pricing"
)

// Known keys.
const (
	KeyTaxEnabled          = "tax_enabled"
	KeyTaxRate             = "tax_rate"
	KeyAutoGenerateInvoice = "auto_generate_invoice"
	KeyGatewayKeyID        = "razorpay_key_id"
	KeyGatewayKeySecret    = "razorpay_key_secret"
)

// Store is the key-value settings collaborator.
type Store interface {
	All(ctx context.Context) (Settings, error)
	Set(ctx context.Context, values map[string]string) error
}

// Settings is a snapshot of all persisted settings.
type Settings map[string]string

// Bool parses a boolean setting, falling back to def when missing or malformed.
func (s Settings) Bool(key string, def bool) bool {
	v, ok := s[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// Decimal parses a numeric setting, falling back to def when missing or malformed.
func (s Settings) Decimal(key string, def decimal.Decimal) decimal.Decimal {
	v, ok := s[key]
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return d
}

// Pricing overlays the tax settings on the static pricing defaults.
func (s Settings) Pricing(defaults pricing.Config) pricing.Config {
	cfg := defaults
	cfg.TaxEnabled = s.Bool(KeyTaxEnabled, defaults.TaxEnabled)
	rate := s.Decimal(KeyTaxRate, defaults.TaxRate)
	if !rate.IsNegative() {
		cfg.TaxRate = rate
	}
	return cfg
}

// AutoGenerateInvoice reports whether payment confirmation should emit an invoice.
func (s Settings) AutoGenerateInvoice() bool {
	return s.Bool(KeyAutoGenerateInvoice, true)
}

// GatewayCredentials returns the stored gateway key pair, possibly empty.
func (s Settings) GatewayCredentials() (keyID, keySecret string) {
	return strings.TrimSpace(s[KeyGatewayKeyID]), strings.TrimSpace(s[KeyGatewayKeySecret])
}
