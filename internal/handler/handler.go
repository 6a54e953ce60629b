// Package handler implements the storefront API on top of the ogen-generated
// server in gen/oas.
package handler

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/invoice"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/payment"
	"github.com/xenking/jewel-store/internal/domain/product"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// OrderService is the order use-case surface the API needs.
type OrderService interface {
	PlaceOrder(ctx context.Context, req order.PlaceOrderRequest) (*order.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, upd order.StatusUpdate) (*order.Order, error)
	ApplyCoupon(ctx context.Context, code string, orderID uuid.UUID, userID *uuid.UUID) (*order.AppliedCoupon, error)
}

// PaymentService creates gateway orders and verifies payments.
type PaymentService interface {
	CreateOrder(ctx context.Context, req payment.CheckoutRequest) (*payment.Checkout, error)
	Verify(ctx context.Context, req payment.VerifyRequest) (*payment.VerifyResult, error)
}

// InvoiceService issues and reads invoices.
type InvoiceService interface {
	Generate(ctx context.Context, orderID uuid.UUID) (*invoice.Invoice, bool, error)
	Get(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	ForOrder(ctx context.Context, orderID uuid.UUID) (*invoice.Invoice, error)
}

// SettingsWriter stores runtime settings.
type SettingsWriter interface {
	Set(ctx context.Context, values map[string]string) error
}

// GatewayInvalidator drops cached gateway credentials.
type GatewayInvalidator interface {
	Invalidate()
}

// Company is the seller block printed on invoices.
type Company struct {
	Name    string
	Address string
	GSTIN   string
	Email   string
	Phone   string
}

// HandlerConfig holds non-dependency configuration for the Handler.
type HandlerConfig struct {
	// DevMode adds error details to 500 responses.
	DevMode bool
	Company Company
}

// Deps bundles the Handler's collaborators.
type Deps struct {
	Products product.Repository
	Orders   OrderService
	Coupons  coupon.Validator
	Payments PaymentService
	Invoices InvoiceService
	Settings SettingsWriter
	Gateway  GatewayInvalidator
}

// Handler implements the ogen-generated Handler interface, delegating business
// logic to the domain services.
type Handler struct {
	oas.UnimplementedHandler

	cfg      HandlerConfig
	deps     Deps
	validate *validator.Validate
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(cfg HandlerConfig, deps Deps) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{cfg: cfg, deps: deps, validate: v}
}

// check runs the semantic rules the schema cannot express, like email syntax
// and cross-field limits.
func (h *Handler) check(v any) error {
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return newValidationError(verrs)
		}
		return errors.Wrap(err, "validate request")
	}
	return nil
}

func nilUUID(id *uuid.UUID) oas.NilUUID {
	if id == nil {
		var v oas.NilUUID
		v.SetToNull()
		return v
	}
	return oas.NewNilUUID(*id)
}

func optUUID(v oas.OptUUID) *uuid.UUID {
	id, ok := v.Get()
	if !ok {
		return nil
	}
	return &id
}
