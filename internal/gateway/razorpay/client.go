// Package razorpay is a minimal Razorpay Orders API client.
package razorpay

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/xenking/jewel-store/internal/domain/payment"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.razorpay.com"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Options configures a Client.
type Options struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
	// Transport is wrapped with otelhttp. Defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

// Client talks to the Orders API with basic auth.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
}

var _ payment.Gateway = (*Client)(nil)

// NewClient creates a Client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}
	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		keyID:     opts.KeyID,
		keySecret: opts.KeySecret,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(opts.Transport),
		},
	}
}

// KeyID returns the public key id.
func (c *Client) KeyID() string { return c.keyID }

// CreateOrder creates a payment order.
func (c *Client) CreateOrder(ctx context.Context, req payment.CreateOrderRequest) (*payment.RemoteOrder, error) {
	body := encodeCreateOrder(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(payment.ErrGatewayUnavailable, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(payment.ErrGatewayUnavailable, err.Error())
	}
	out, err := decodeOrder(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decode order")
	}
	return out, nil
}

func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return payment.ErrGatewayAuth
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return errors.Wrapf(payment.ErrGatewayUnavailable, "status %d", resp.StatusCode)
	}
	rej := &payment.RejectedError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		rej.Code, rej.Description = decodeError(raw)
	}
	return rej
}

func encodeCreateOrder(req payment.CreateOrderRequest) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("amount")
	e.Int64(req.Amount)
	e.FieldStart("currency")
	e.Str(req.Currency)
	if req.Receipt != "" {
		e.FieldStart("receipt")
		e.Str(req.Receipt)
	}
	if len(req.Notes) > 0 {
		e.FieldStart("notes")
		e.ObjStart()
		for k, v := range req.Notes {
			e.FieldStart(k)
			e.Str(v)
		}
		e.ObjEnd()
	}
	e.ObjEnd()

	return append([]byte(nil), e.Bytes()...)
}

func decodeOrder(raw []byte) (*payment.RemoteOrder, error) {
	var out payment.RemoteOrder
	d := jx.DecodeBytes(raw)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "id":
			out.ID, err = d.Str()
		case "amount":
			out.Amount, err = d.Int64()
		case "currency":
			out.Currency, err = d.Str()
		case "receipt":
			if d.Next() == jx.Null {
				return d.Null()
			}
			out.Receipt, err = d.Str()
		case "status":
			out.Status, err = d.Str()
		case "created_at":
			var ts int64
			ts, err = d.Int64()
			out.CreatedAt = time.Unix(ts, 0)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, errors.New("missing order id")
	}
	return &out, nil
}

// decodeError extracts {"error": {"code", "description"}}; malformed bodies
// yield empty strings.
func decodeError(raw []byte) (code, description string) {
	d := jx.DecodeBytes(raw)
	_ = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "error" {
			return d.Skip()
		}
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			var err error
			switch string(key) {
			case "code":
				code, err = d.Str()
			case "description":
				description, err = d.Str()
			default:
				return d.Skip()
			}
			return err
		})
	})
	return code, description
}
