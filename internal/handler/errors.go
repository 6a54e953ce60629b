package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/go-playground/validator/v10"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/auth"
	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/invoice"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/payment"
	"github.com/xenking/jewel-store/internal/domain/product"
)

var errForbidden = errors.New("forbidden")

// ValidationError is malformed or missing input, reported per field.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(verrs validator.ValidationErrors) *ValidationError {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Drop the top-level struct name: "placeOrderRequest.items[0].quantity".
		name := fe.Namespace()
		if _, rest, ok := strings.Cut(name, "."); ok {
			name = rest
		}
		fields[name] = tagMessage(fe)
	}
	return &ValidationError{Message: "validation failed", Fields: fields}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "ltefield":
		return "must not exceed " + strings.ToLower(fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "numeric":
		return "must be numeric"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// apiError is a classified error ready to render.
type apiError struct {
	status  int
	message string
	fields  map[string]string
	// internal marks errors whose text must not reach clients outside dev mode.
	internal bool
}

// classify maps domain errors to HTTP statuses and client-safe messages.
func classify(err error) apiError {
	var (
		verr     *ValidationError
		iqErr    *order.InvalidQuantityError
		pnfErr   *order.ProductNotFoundError
		minErr   *coupon.MinimumOrderError
		trErr    *order.TransitionError
		rejected *payment.RejectedError
		cpnErr   *order.CouponError
	)
	switch {
	case errors.As(err, &verr):
		return apiError{status: http.StatusBadRequest, message: verr.Message, fields: verr.Fields}
	case errors.As(err, &cpnErr):
		msg := rootMessage(cpnErr.Err)
		return apiError{status: http.StatusBadRequest, message: msg,
			fields: map[string]string{"couponCode": msg}}
	case errors.As(err, &iqErr):
		return apiError{status: http.StatusBadRequest, message: iqErr.Error(),
			fields: map[string]string{"items": iqErr.Error()}}
	case errors.As(err, &pnfErr):
		return apiError{status: http.StatusBadRequest, message: pnfErr.Error(),
			fields: map[string]string{"items": pnfErr.Error()}}
	case errors.Is(err, order.ErrEmptyItems):
		return apiError{status: http.StatusBadRequest, message: "validation failed",
			fields: map[string]string{"items": "must contain at least one item"}}
	case errors.As(err, &minErr):
		return apiError{status: http.StatusBadRequest, message: minErr.Error()}
	case errors.Is(err, coupon.ErrUsageLimitExceeded),
		errors.Is(err, coupon.ErrAlreadyUsed),
		errors.Is(err, coupon.ErrNotFirstPurchase),
		errors.Is(err, coupon.ErrAudienceMismatch),
		errors.Is(err, payment.ErrInvalidAmount):
		return apiError{status: http.StatusBadRequest, message: rootMessage(err)}
	case errors.Is(err, invoice.ErrAlreadyExists):
		return apiError{status: http.StatusBadRequest, message: invoice.ErrAlreadyExists.Error()}

	case errors.Is(err, coupon.ErrNotFound):
		return apiError{status: http.StatusNotFound, message: coupon.ErrNotFound.Error()}
	case errors.Is(err, order.ErrNotFound):
		return apiError{status: http.StatusNotFound, message: order.ErrNotFound.Error()}
	case errors.Is(err, invoice.ErrNotFound):
		return apiError{status: http.StatusNotFound, message: invoice.ErrNotFound.Error()}
	case errors.Is(err, product.ErrNotFound):
		return apiError{status: http.StatusNotFound, message: product.ErrNotFound.Error()}

	case errors.As(err, &trErr):
		return apiError{status: http.StatusConflict, message: trErr.Error()}
	case errors.Is(err, order.ErrCouponAlreadyApplied):
		return apiError{status: http.StatusConflict, message: order.ErrCouponAlreadyApplied.Error()}
	case errors.Is(err, order.ErrNotEditable):
		return apiError{status: http.StatusConflict, message: order.ErrNotEditable.Error()}
	case errors.Is(err, order.ErrNotPayable):
		return apiError{status: http.StatusConflict, message: order.ErrNotPayable.Error()}

	case errors.Is(err, auth.ErrUnauthorized):
		return apiError{status: http.StatusUnauthorized, message: "invalid or missing API key"}
	case errors.Is(err, errForbidden):
		return apiError{status: http.StatusForbidden, message: "access denied"}

	case errors.Is(err, payment.ErrGatewayAuth):
		return apiError{status: http.StatusInternalServerError,
			message: "Payment gateway rejected the configured credentials. Check the key id and secret in payment gateway settings."}
	case errors.Is(err, payment.ErrGatewayNotConfigured):
		return apiError{status: http.StatusInternalServerError,
			message: "Payment gateway is not configured. Set the key id and secret in payment gateway settings."}
	case errors.Is(err, payment.ErrGatewayUnavailable):
		return apiError{status: http.StatusBadGateway, message: "Payment gateway is unavailable, please retry", internal: true}
	case errors.As(err, &rejected):
		return apiError{status: http.StatusInternalServerError, message: rejected.Error()}
	}
	return apiError{status: http.StatusInternalServerError, message: "Internal server error", internal: true}
}

// rootMessage returns the innermost error text, without wrapping context.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func (h *Handler) detail(e apiError, err error) string {
	if e.internal && h.cfg.DevMode {
		return err.Error()
	}
	return ""
}

// couponFailure marks errors of coupon operations, whose bodies carry
// "valid": false.
type couponFailure struct{ err error }

func (e *couponFailure) Error() string { return e.err.Error() }
func (e *couponFailure) Unwrap() error { return e.err }

// paymentFailure marks errors of payment operations, whose bodies carry
// "success": false and the status text.
type paymentFailure struct{ err error }

func (e *paymentFailure) Error() string { return e.err.Error() }
func (e *paymentFailure) Unwrap() error { return e.err }

// NewError classifies an error returned by an operation and renders the
// generic error body.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	e := classify(err)
	logFailure(ctx, e, err)

	resp := h.errorBody(e, err)
	var (
		cf *couponFailure
		pf *paymentFailure
	)
	switch {
	case errors.As(err, &cf):
		resp.Valid = oas.NewOptBool(false)
	case errors.As(err, &pf):
		resp.Success = oas.NewOptBool(false)
		resp.Error = oas.NewOptString(http.StatusText(e.status))
	}
	return &oas.ErrorStatusCode{StatusCode: e.status, Response: resp}
}

func (h *Handler) errorBody(e apiError, err error) oas.Error {
	resp := oas.Error{Message: e.message}
	if len(e.fields) > 0 {
		resp.Errors = oas.NewOptErrorErrors(oas.ErrorErrors(e.fields))
	}
	if d := h.detail(e, err); d != "" {
		resp.Detail = oas.NewOptString(d)
	}
	return resp
}

func logFailure(ctx context.Context, e apiError, err error) {
	if e.status >= http.StatusInternalServerError {
		zctx.From(ctx).Error("Request failed",
			zap.Int("status", e.status),
			zap.Error(err),
		)
	}
}

// HandleError renders errors raised by the generated server before an
// operation runs: failed authentication and undecodable requests.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	code := ogenerrors.ErrorCode(err)
	e := apiError{status: code, message: http.StatusText(code)}
	var secErr *ogenerrors.SecurityError
	switch {
	case errors.As(err, &secErr):
		e = classify(secErr.Err)
		if e.status != http.StatusUnauthorized {
			e = apiError{status: http.StatusUnauthorized, message: "invalid or missing API key"}
		}
	case e.status == http.StatusBadRequest:
		e.message = "validation failed"
		e.fields = decodeFields(err)
		if len(e.fields) == 0 {
			e.message = "invalid request: " + rootMessage(err)
		}
	default:
		e.internal = true
	}
	logFailure(ctx, e, err)

	resp := h.errorBody(e, err)
	var op interface{ OperationName() string }
	if errors.As(err, &op) {
		switch oas.OperationName(op.OperationName()) {
		case oas.ValidateCouponOperation:
			resp.Valid = oas.NewOptBool(false)
		case oas.CreatePaymentOrderOperation, oas.VerifyPaymentOperation:
			resp.Success = oas.NewOptBool(false)
			resp.Error = oas.NewOptString(http.StatusText(e.status))
		}
	}

	var enc jx.Encoder
	resp.Encode(&enc)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.status)
	if _, err := w.Write(enc.Bytes()); err != nil {
		zctx.From(ctx).Warn("Write error response", zap.Error(err))
	}
}

// decodeFields flattens schema validation failures into JSON paths like
// "items[0].quantity".
func decodeFields(err error) map[string]string {
	var verr *validate.Error
	if !errors.As(err, &verr) {
		return nil
	}
	fields := map[string]string{}
	collectFields("", verr, fields)
	return fields
}

func collectFields(prefix string, verr *validate.Error, out map[string]string) {
	for _, f := range verr.Fields {
		name := f.Name
		switch {
		case prefix == "":
		case strings.HasPrefix(name, "["):
			name = prefix + name
		default:
			name = prefix + "." + name
		}
		var nested *validate.Error
		if errors.As(f.Error, &nested) {
			collectFields(name, nested, out)
			continue
		}
		out[name] = schemaMessage(f.Error)
	}
}

func schemaMessage(err error) string {
	if errors.Is(err, validate.ErrFieldRequired) {
		return "is required"
	}
	return err.Error()
}
