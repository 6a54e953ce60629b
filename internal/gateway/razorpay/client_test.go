package razorpay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/jewel-store/internal/domain/payment"
	"github.com/xenking/jewel-store/internal/domain/settings"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Options{
		BaseURL:   srv.URL,
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
		Timeout:   200 * time.Millisecond,
	})
}

func TestCreateOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var amount int64
		var currency, note string
		assert.NoError(t, jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
			var err error
			switch string(key) {
			case "amount":
				amount, err = d.Int64()
			case "currency":
				currency, err = d.Str()
			case "notes":
				return d.ObjBytes(func(d *jx.Decoder, _ []byte) error {
					note, err = d.Str()
					return err
				})
			default:
				return d.Skip()
			}
			return err
		}))
		assert.Equal(t, int64(95000), amount)
		assert.Equal(t, "INR", currency)
		assert.Equal(t, "abc", note)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"order_Nx1","entity":"order","amount":95000,"amount_paid":0,`+
			`"currency":"INR","receipt":"ORD-2025-000001","status":"created","attempts":0,`+
			`"notes":{"order_id":"abc"},"created_at":1741944413}`)
	})

	out, err := c.CreateOrder(context.Background(), payment.CreateOrderRequest{
		Amount:   95000,
		Currency: "INR",
		Receipt:  "ORD-2025-000001",
		Notes:    map[string]string{"order_id": "abc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order_Nx1", out.ID)
	assert.Equal(t, int64(95000), out.Amount)
	assert.Equal(t, "created", out.Status)
	assert.Equal(t, "ORD-2025-000001", out.Receipt)
	assert.Equal(t, int64(1741944413), out.CreatedAt.Unix())
	assert.Equal(t, "rzp_test_key", c.KeyID())
}

func TestCreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, payment.ErrGatewayAuth)
			},
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":"BAD_REQUEST_ERROR","description":"The amount must be atleast INR 1.00","field":"amount"}}`,
			check: func(t *testing.T, err error) {
				var rej *payment.RejectedError
				require.ErrorAs(t, err, &rej)
				assert.Equal(t, http.StatusBadRequest, rej.StatusCode)
				assert.Equal(t, "BAD_REQUEST_ERROR", rej.Code)
				assert.Equal(t, "The amount must be atleast INR 1.00", rej.Description)
			},
		},
		{
			name:   "malformed error body",
			status: http.StatusBadRequest,
			body:   `oops`,
			check: func(t *testing.T, err error) {
				var rej *payment.RejectedError
				require.ErrorAs(t, err, &rej)
				assert.Empty(t, rej.Description)
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, payment.ErrGatewayUnavailable)
			},
		},
		{
			name:   "missing id",
			status: http.StatusOK,
			body:   `{"amount":100}`,
			check: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, payment.ErrGatewayUnavailable)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := c.CreateOrder(context.Background(), payment.CreateOrderRequest{Amount: 100, Currency: "INR"})
			tt.check(t, err)
		})
	}
}

func TestCreateOrder_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := c.CreateOrder(context.Background(), payment.CreateOrderRequest{Amount: 100, Currency: "INR"})
	require.ErrorIs(t, err, payment.ErrGatewayUnavailable)
}

type mutableSettings struct {
	s     settings.Settings
	loads int
}

func (m *mutableSettings) Load(context.Context) (settings.Settings, error) {
	m.loads++
	return m.s, nil
}

type failingSettings struct{}

func (failingSettings) Load(context.Context) (settings.Settings, error) {
	return nil, errors.New("db down")
}

func TestProvider(t *testing.T) {
	st := &mutableSettings{s: settings.Settings{
		settings.KeyGatewayKeyID:     "rzp_stored",
		settings.KeyGatewayKeySecret: "stored-secret",
	}}
	p := NewProvider(ProviderConfig{KeyID: "rzp_env", KeySecret: "env-secret"}, st)
	ctx := context.Background()

	gw, err := p.Gateway(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rzp_stored", gw.KeyID())
	secret, err := p.Secret(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stored-secret", secret)
	assert.Equal(t, 1, st.loads)

	st.s = settings.Settings{
		settings.KeyGatewayKeyID:     "rzp_rotated",
		settings.KeyGatewayKeySecret: "rotated-secret",
	}
	gw, err = p.Gateway(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rzp_stored", gw.KeyID(), "cached until invalidated")

	p.Invalidate()
	gw, err = p.Gateway(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rzp_rotated", gw.KeyID())

	st.s = settings.Settings{}
	p.Invalidate()
	gw, err = p.Gateway(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rzp_env", gw.KeyID(), "falls back to static config")
}

func TestProvider_NotConfigured(t *testing.T) {
	p := NewProvider(ProviderConfig{}, &mutableSettings{s: settings.Settings{}})

	_, err := p.Gateway(context.Background())
	require.ErrorIs(t, err, payment.ErrGatewayNotConfigured)
	_, err = p.Secret(context.Background())
	require.ErrorIs(t, err, payment.ErrGatewayNotConfigured)
}

func TestProvider_SettingsError(t *testing.T) {
	p := NewProvider(ProviderConfig{KeyID: "k", KeySecret: "s"}, failingSettings{})

	_, err := p.Gateway(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, payment.ErrGatewayNotConfigured)
}
