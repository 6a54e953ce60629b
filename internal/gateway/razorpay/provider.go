package razorpay

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/internal/domain/payment"
	"github.com/xenking/jewel-store/internal/domain/settings"
)

// SettingsLoader reads persisted runtime settings.
type SettingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// ProviderConfig holds static client options. KeyID and KeySecret are used
// when no credentials are stored in settings.
type ProviderConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Provider lazily builds a Client from the current credentials and caches it
// until Invalidate is called.
type Provider struct {
	cfg      ProviderConfig
	settings SettingsLoader

	mu     sync.Mutex
	client *Client
}

var _ payment.GatewayProvider = (*Provider)(nil)

// NewProvider creates a Provider.
func NewProvider(cfg ProviderConfig, settings SettingsLoader) *Provider {
	return &Provider{cfg: cfg, settings: settings}
}

// Gateway returns the cached client, building it on first use.
func (p *Provider) Gateway(ctx context.Context) (payment.Gateway, error) {
	c, err := p.get(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Secret returns the key secret used to sign payment callbacks.
func (p *Provider) Secret(ctx context.Context) (string, error) {
	c, err := p.get(ctx)
	if err != nil {
		return "", err
	}
	return c.keySecret, nil
}

// Invalidate drops the cached client so the next call rereads credentials.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.client = nil
	p.mu.Unlock()
}

func (p *Provider) get(ctx context.Context) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}

	st, err := p.settings.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load gateway credentials")
	}
	keyID, secret := st.GatewayCredentials()
	if keyID == "" || secret == "" {
		keyID, secret = p.cfg.KeyID, p.cfg.KeySecret
	}
	if keyID == "" || secret == "" {
		return nil, payment.ErrGatewayNotConfigured
	}

	p.client = NewClient(Options{
		BaseURL:   p.cfg.BaseURL,
		KeyID:     keyID,
		KeySecret: secret,
		Timeout:   p.cfg.Timeout,
		Transport: p.cfg.Transport,
	})
	zctx.From(ctx).Info("Payment gateway client initialized", zap.String("key_id", keyID))
	return p.client, nil
}
