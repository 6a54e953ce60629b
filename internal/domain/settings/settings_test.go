package settings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/xenking/jewel-store/internal/domain/pricing"
)

func TestSettings_Pricing(t *testing.T) {
	defaults := pricing.DefaultConfig()

	tests := []struct {
		name        string
		settings    Settings
		wantEnabled bool
		wantRate    string
	}{
		{name: "empty keeps defaults", settings: Settings{}, wantEnabled: false, wantRate: "18"},
		{
			name:        "enabled with custom rate",
			settings:    Settings{KeyTaxEnabled: "true", KeyTaxRate: "12"},
			wantEnabled: true,
			wantRate:    "12",
		},
		{
			name:        "malformed values fall back",
			settings:    Settings{KeyTaxEnabled: "yes please", KeyTaxRate: "abc"},
			wantEnabled: false,
			wantRate:    "18",
		},
		{
			name:        "negative rate ignored",
			settings:    Settings{KeyTaxEnabled: "1", KeyTaxRate: "-5"},
			wantEnabled: true,
			wantRate:    "18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.settings.Pricing(defaults)
			assert.Equal(t, tt.wantEnabled, got.TaxEnabled)
			assert.True(t, decimal.RequireFromString(tt.wantRate).Equal(got.TaxRate), "rate %s", got.TaxRate)
			assert.True(t, defaults.FreeShippingThreshold.Equal(got.FreeShippingThreshold))
		})
	}
}

func TestSettings_AutoGenerateInvoice(t *testing.T) {
	assert.True(t, Settings{}.AutoGenerateInvoice())
	assert.False(t, Settings{KeyAutoGenerateInvoice: "false"}.AutoGenerateInvoice())
}

func TestSettings_GatewayCredentials(t *testing.T) {
	id, secret := Settings{KeyGatewayKeyID: " rzp_test_1 ", KeyGatewayKeySecret: "s3cr3t"}.GatewayCredentials()
	assert.Equal(t, "rzp_test_1", id)
	assert.Equal(t, "s3cr3t", secret)
}
