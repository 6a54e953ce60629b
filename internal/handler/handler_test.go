package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/auth"
	"github.com/xenking/jewel-store/internal/domain/coupon"
	"github.com/xenking/jewel-store/internal/domain/invoice"
	"github.com/xenking/jewel-store/internal/domain/order"
	"github.com/xenking/jewel-store/internal/domain/payment"
	"github.com/xenking/jewel-store/internal/domain/product"
)

// --- Mock implementations ---

type mockProductRepo struct {
	products []product.Product
}

func (m *mockProductRepo) List(context.Context) ([]product.Product, error) {
	return m.products, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*product.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, product.ErrNotFound
}

func (m *mockProductRepo) GetByIDs(context.Context, []string) ([]product.Product, error) {
	return m.products, nil
}

type mockOrderService struct {
	orders    map[uuid.UUID]*order.Order
	placed    *order.PlaceOrderRequest
	placeErr  error
	statusErr error
	applyErr  error
	applied   *order.AppliedCoupon
	applyUser *uuid.UUID
}

func (m *mockOrderService) PlaceOrder(_ context.Context, req order.PlaceOrderRequest) (*order.Order, error) {
	m.placed = &req
	if m.placeErr != nil {
		return nil, m.placeErr
	}
	return &order.Order{
		ID:            uuid.New(),
		Number:        "ORD-2025-000001",
		UserID:        req.UserID,
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentPending,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      decimal.NewFromInt(1000),
		TotalAmount:   decimal.NewFromInt(1000),
		Currency:      "INR",
		Customer:      req.Customer,
	}, nil
}

func (m *mockOrderService) GetOrder(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return o, nil
}

func (m *mockOrderService) UpdateStatus(_ context.Context, id uuid.UUID, upd order.StatusUpdate) (*order.Order, error) {
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	o.Status = upd.Status
	return o, nil
}

func (m *mockOrderService) ApplyCoupon(_ context.Context, _ string, _ uuid.UUID, userID *uuid.UUID) (*order.AppliedCoupon, error) {
	m.applyUser = userID
	return m.applied, m.applyErr
}

type mockCouponValidator struct {
	result *coupon.Result
	err    error
	req    coupon.Request
}

func (m *mockCouponValidator) Validate(_ context.Context, _ string, req coupon.Request) (*coupon.Result, error) {
	m.req = req
	return m.result, m.err
}

type mockPayments struct {
	checkout    *payment.Checkout
	verify      *payment.VerifyResult
	err         error
	checkoutReq payment.CheckoutRequest
	verifyReq   payment.VerifyRequest
}

func (m *mockPayments) CreateOrder(_ context.Context, req payment.CheckoutRequest) (*payment.Checkout, error) {
	m.checkoutReq = req
	return m.checkout, m.err
}

func (m *mockPayments) Verify(_ context.Context, req payment.VerifyRequest) (*payment.VerifyResult, error) {
	m.verifyReq = req
	return m.verify, m.err
}

type mockInvoices struct {
	byOrder map[uuid.UUID]*invoice.Invoice
}

func (m *mockInvoices) Generate(_ context.Context, orderID uuid.UUID) (*invoice.Invoice, bool, error) {
	if inv, ok := m.byOrder[orderID]; ok {
		return inv, false, nil
	}
	inv := &invoice.Invoice{ID: uuid.New(), Number: "INV-2025-000001", OrderID: orderID}
	m.byOrder[orderID] = inv
	return inv, true, nil
}

func (m *mockInvoices) Get(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	for _, inv := range m.byOrder {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, invoice.ErrNotFound
}

func (m *mockInvoices) ForOrder(_ context.Context, orderID uuid.UUID) (*invoice.Invoice, error) {
	inv, ok := m.byOrder[orderID]
	if !ok {
		return nil, invoice.ErrNotFound
	}
	return inv, nil
}

type mockSettings struct {
	values map[string]string
}

func (m *mockSettings) Set(_ context.Context, values map[string]string) error {
	m.values = values
	return nil
}

type mockInvalidator struct{ calls int }

func (m *mockInvalidator) Invalidate() { m.calls++ }

type mockAuth map[string]*auth.Principal

func (m mockAuth) Authenticate(_ context.Context, raw string) (*auth.Principal, error) {
	p, ok := m[raw]
	if !ok {
		return nil, auth.ErrUnauthorized
	}
	return p, nil
}

// --- Fixture ---

const (
	adminKey    = "admin-key"
	customerKey = "customer-key"
	strangerKey = "stranger-key"
)

type fixture struct {
	h        *Handler
	sec      *SecurityHandler
	orders   *mockOrderService
	coupons  *mockCouponValidator
	payments *mockPayments
	invoices *mockInvoices
	settings *mockSettings
	gateway  *mockInvalidator
	userID   uuid.UUID
	order    *order.Order
}

func newFixture(t *testing.T, cfg HandlerConfig) *fixture {
	t.Helper()
	userID := uuid.New()
	stranger := uuid.New()
	o := &order.Order{
		ID:            uuid.New(),
		Number:        "ORD-2025-000042",
		UserID:        &userID,
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentPending,
		Subtotal:      decimal.NewFromInt(1000),
		TotalAmount:   decimal.NewFromInt(1000),
		Currency:      "INR",
		CreatedAt:     time.Now(),
		Items: []order.Item{{
			ID: uuid.New(), ProductID: "ring-1", ProductName: "Gold ring",
			ProductPrice: decimal.NewFromInt(500), Quantity: 2, TotalPrice: decimal.NewFromInt(1000),
		}},
	}
	f := &fixture{
		orders:   &mockOrderService{orders: map[uuid.UUID]*order.Order{o.ID: o}},
		coupons:  &mockCouponValidator{},
		payments: &mockPayments{},
		invoices: &mockInvoices{byOrder: map[uuid.UUID]*invoice.Invoice{}},
		settings: &mockSettings{},
		gateway:  &mockInvalidator{},
		userID:   userID,
		order:    o,
	}
	f.h = NewHandler(cfg, Deps{
		Products: &mockProductRepo{products: []product.Product{
			{ID: "ring-1", Name: "Gold ring", Price: decimal.NewFromInt(500), IsActive: true},
			{ID: "old-1", Name: "Retired", Price: decimal.NewFromInt(100), IsActive: false},
		}},
		Orders:   f.orders,
		Coupons:  f.coupons,
		Payments: f.payments,
		Invoices: f.invoices,
		Settings: f.settings,
		Gateway:  f.gateway,
	})
	f.sec = NewSecurityHandler(mockAuth{
		adminKey:    {KeyID: "k-admin", Admin: true},
		customerKey: {KeyID: "k-cust", UserID: &userID},
		strangerKey: {KeyID: "k-other", UserID: &stranger},
	})
	return f
}

// as returns a context authenticated with key the way the generated server
// does it; an empty key is an anonymous caller.
func (f *fixture) as(t *testing.T, key string) context.Context {
	t.Helper()
	ctx := context.Background()
	if key == "" {
		return ctx
	}
	ctx, err := f.sec.HandleBearer(ctx, oas.GetOrderOperation, oas.Bearer{Token: key})
	require.NoError(t, err)
	return ctx
}

// failure renders err the way the generated server does.
func (f *fixture) failure(t *testing.T, ctx context.Context, err error) *oas.ErrorStatusCode {
	t.Helper()
	require.Error(t, err)
	var sc *oas.ErrorStatusCode
	if errors.As(err, &sc) {
		return sc
	}
	return f.h.NewError(ctx, err)
}

func newPlaceOrderRequest() *oas.PlaceOrderRequest {
	return &oas.PlaceOrderRequest{
		CustomerName:    "Asha Rao",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 MG Road",
		City:            "Bengaluru",
		State:           "KA",
		Pincode:         "560001",
		Items:           []oas.OrderItemRequest{{ProductId: "ring-1", Quantity: 2}},
		PaymentMethod:   oas.NewOptPaymentMethod(oas.PaymentMethod("upi")),
		CouponCode:      oas.NewOptString("SAVE10"),
	}
}

// --- Tests ---

func TestProducts(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	ctx := context.Background()

	list, err := f.h.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	p, err := f.h.GetProduct(ctx, oas.GetProductParams{ID: "ring-1"})
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.Price)
	assert.False(t, p.OriginalPrice.IsSet())

	_, err = f.h.GetProduct(ctx, oas.GetProductParams{ID: "old-1"})
	assert.Equal(t, http.StatusNotFound, f.failure(t, ctx, err).StatusCode)
}

func TestPlaceOrder(t *testing.T) {
	t.Run("guest", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		resp, err := f.h.PlaceOrder(context.Background(), newPlaceOrderRequest())

		require.NoError(t, err)
		assert.Equal(t, "ORD-2025-000001", resp.OrderNumber)
		assert.Equal(t, 1000.0, resp.TotalAmount)
		assert.True(t, resp.UserID.Null)
		require.NotNil(t, f.orders.placed)
		assert.Nil(t, f.orders.placed.UserID)
		assert.Equal(t, order.MethodUPI, f.orders.placed.PaymentMethod)
		assert.Equal(t, "SAVE10", f.orders.placed.CouponCode)
		assert.Equal(t, "560001", f.orders.placed.Customer.Pincode)
	})
	t.Run("authenticated customer", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		resp, err := f.h.PlaceOrder(f.as(t, customerKey), newPlaceOrderRequest())

		require.NoError(t, err)
		require.NotNil(t, f.orders.placed.UserID)
		assert.Equal(t, f.userID, *f.orders.placed.UserID)
		assert.Equal(t, f.userID, resp.UserID.Value)
	})
	t.Run("default payment method", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		req := newPlaceOrderRequest()
		req.PaymentMethod = oas.OptPaymentMethod{}
		_, err := f.h.PlaceOrder(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, order.MethodCashOnDelivery, f.orders.placed.PaymentMethod)
	})
	t.Run("field errors", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		ctx := context.Background()
		req := newPlaceOrderRequest()
		req.CustomerEmail = "nope"
		req.Items[0].DiscountedQuantity = oas.NewOptInt(3)
		_, err := f.h.PlaceOrder(ctx, req)

		resp := f.failure(t, ctx, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		fields, ok := resp.Response.Errors.Get()
		require.True(t, ok)
		assert.Equal(t, "must be a valid email address", fields["customerEmail"])
		assert.Equal(t, "must not exceed quantity", fields["items[0].discountedQuantity"])
		assert.Nil(t, f.orders.placed)
	})
	t.Run("product not found", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		f.orders.placeErr = &order.ProductNotFoundError{ProductID: "ghost"}
		ctx := context.Background()
		_, err := f.h.PlaceOrder(ctx, newPlaceOrderRequest())

		resp := f.failure(t, ctx, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "product ghost not found", resp.Response.Message)
	})
	t.Run("coupon exhausted", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		f.orders.placeErr = errors.Wrap(errors.Wrap(coupon.ErrUsageLimitExceeded, "validate coupon"), "create order")
		ctx := context.Background()
		_, err := f.h.PlaceOrder(ctx, newPlaceOrderRequest())

		resp := f.failure(t, ctx, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, coupon.ErrUsageLimitExceeded.Error(), resp.Response.Message)
	})
	t.Run("unknown coupon is a field error", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		f.orders.placeErr = errors.Wrap(&order.CouponError{Code: "BOGUS", Err: coupon.ErrNotFound}, "place order")
		ctx := context.Background()
		_, err := f.h.PlaceOrder(ctx, newPlaceOrderRequest())

		resp := f.failure(t, ctx, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		fields, ok := resp.Response.Errors.Get()
		require.True(t, ok)
		assert.Equal(t, coupon.ErrNotFound.Error(), fields["couponCode"])
	})
	t.Run("coupon below minimum is a field error", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		f.orders.placeErr = &order.CouponError{Code: "BIG", Err: &coupon.MinimumOrderError{Minimum: decimal.NewFromInt(5000)}}
		ctx := context.Background()
		_, err := f.h.PlaceOrder(ctx, newPlaceOrderRequest())

		resp := f.failure(t, ctx, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		fields, _ := resp.Response.Errors.Get()
		assert.Equal(t, "minimum order amount of 5000.00 required", fields["couponCode"])
	})
	t.Run("persistence error hides detail", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{})
		f.orders.placeErr = errors.New("duplicate key value violates unique constraint")
		ctx := context.Background()
		_, err := f.h.PlaceOrder(ctx, newPlaceOrderRequest())

		resp := f.failure(t, ctx, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Internal server error", resp.Response.Message)
		assert.False(t, resp.Response.Detail.IsSet())
	})
	t.Run("dev mode shows detail", func(t *testing.T) {
		f := newFixture(t, HandlerConfig{DevMode: true})
		f.orders.placeErr = errors.New("duplicate key value violates unique constraint")
		ctx := context.Background()
		_, err := f.h.PlaceOrder(ctx, newPlaceOrderRequest())

		resp := f.failure(t, ctx, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "duplicate key value violates unique constraint", resp.Response.Detail.Value)
	})
}

func TestGetOrder(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	params := oas.GetOrderParams{ID: f.order.ID}

	tests := []struct {
		name   string
		key    string
		params oas.GetOrderParams
		status int
	}{
		{"anonymous", "", params, http.StatusUnauthorized},
		{"stranger", strangerKey, params, http.StatusForbidden},
		{"owner", customerKey, params, http.StatusOK},
		{"admin", adminKey, params, http.StatusOK},
		{"unknown order", adminKey, oas.GetOrderParams{ID: uuid.New()}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := f.as(t, tt.key)
			resp, err := f.h.GetOrder(ctx, tt.params)
			if tt.status != http.StatusOK {
				assert.Equal(t, tt.status, f.failure(t, ctx, err).StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ORD-2025-000042", resp.OrderNumber)
			assert.Len(t, resp.Items, 1)
			assert.Equal(t, f.userID, resp.UserID.Value)
		})
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	params := oas.UpdateOrderStatusParams{ID: f.order.ID}
	shipped := &oas.OrderStatusUpdate{
		Status:         oas.OrderStatus("shipped"),
		TrackingNumber: oas.NewOptString("AWB1"),
	}

	ctx := f.as(t, customerKey)
	_, err := f.h.UpdateOrderStatus(ctx, shipped, params)
	assert.Equal(t, http.StatusForbidden, f.failure(t, ctx, err).StatusCode)

	ctx = context.Background()
	_, err = f.h.UpdateOrderStatus(ctx, shipped, params)
	assert.Equal(t, http.StatusUnauthorized, f.failure(t, ctx, err).StatusCode)

	ctx = f.as(t, adminKey)
	resp, err := f.h.UpdateOrderStatus(ctx, shipped, params)
	require.NoError(t, err)
	assert.Equal(t, "shipped", resp.Status)

	f.orders.statusErr = &order.TransitionError{From: order.StatusDelivered, To: order.StatusPending}
	_, err = f.h.UpdateOrderStatus(ctx, &oas.OrderStatusUpdate{Status: oas.OrderStatus("pending")}, params)
	assert.Equal(t, http.StatusConflict, f.failure(t, ctx, err).StatusCode)
}

func TestValidateCoupon(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	f.coupons.result = &coupon.Result{
		Coupon:   &coupon.Coupon{ID: uuid.New(), Code: "SAVE10", Type: coupon.TypePercentage, Value: decimal.NewFromInt(10)},
		Discount: coupon.Discount{Amount: decimal.NewFromInt(50)},
	}
	ctx := context.Background()

	resp, err := f.h.ValidateCoupon(ctx, oas.ValidateCouponParams{
		Code: "save10", OrderAmount: 1000, UserId: oas.NewOptUUID(f.userID),
	})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, 50.0, resp.Coupon.DiscountAmount)
	assert.True(t, decimal.NewFromInt(1000).Equal(f.coupons.req.OrderAmount))
	assert.Equal(t, f.userID, *f.coupons.req.UserID)

	// The caller's account is used when no userId is given.
	_, err = f.h.ValidateCoupon(f.as(t, customerKey), oas.ValidateCouponParams{Code: "SAVE10", OrderAmount: 1000})
	require.NoError(t, err)
	assert.Equal(t, f.userID, *f.coupons.req.UserID)

	f.coupons.err = coupon.ErrNotFound
	_, err = f.h.ValidateCoupon(ctx, oas.ValidateCouponParams{Code: "NOPE", OrderAmount: 1000})
	failed := f.failure(t, ctx, err)
	assert.Equal(t, http.StatusNotFound, failed.StatusCode)
	assert.Equal(t, oas.NewOptBool(false), failed.Response.Valid)

	f.coupons.err = &coupon.MinimumOrderError{Minimum: decimal.NewFromInt(2000)}
	_, err = f.h.ValidateCoupon(ctx, oas.ValidateCouponParams{Code: "BIG", OrderAmount: 1000})
	failed = f.failure(t, ctx, err)
	assert.Equal(t, http.StatusBadRequest, failed.StatusCode)
	assert.Equal(t, "minimum order amount of 2000.00 required", failed.Response.Message)
}

func TestApplyCoupon(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	updated := *f.order
	updated.DiscountAmount = decimal.NewFromInt(50)
	updated.TotalAmount = decimal.NewFromInt(950)
	f.orders.applied = &order.AppliedCoupon{
		Order:    &updated,
		Coupon:   &coupon.Coupon{ID: uuid.New(), Code: "SAVE10"},
		Discount: decimal.NewFromInt(50),
	}
	req := &oas.ApplyCouponRequest{Code: "SAVE10", OrderId: f.order.ID}

	ctx := f.as(t, strangerKey)
	_, err := f.h.ApplyCoupon(ctx, req)
	assert.Equal(t, http.StatusForbidden, f.failure(t, ctx, err).StatusCode)

	ctx = f.as(t, customerKey)
	resp, err := f.h.ApplyCoupon(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 50.0, resp.Discount.Amount)
	assert.Equal(t, 950.0, resp.Discount.NewTotal)

	f.orders.applyErr = order.ErrCouponAlreadyApplied
	_, err = f.h.ApplyCoupon(ctx, req)
	assert.Equal(t, http.StatusConflict, f.failure(t, ctx, err).StatusCode)
}

func TestApplyCoupon_ValidatesAsOrderOwner(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	f.orders.applied = &order.AppliedCoupon{Order: f.order, Coupon: &coupon.Coupon{Code: "WELCOME10"}}
	fresh := uuid.New()

	t.Run("body userId is ignored on an owned order", func(t *testing.T) {
		_, err := f.h.ApplyCoupon(f.as(t, customerKey), &oas.ApplyCouponRequest{
			Code: "WELCOME10", OrderId: f.order.ID, UserId: oas.NewOptUUID(fresh),
		})
		require.NoError(t, err)
		require.NotNil(t, f.orders.applyUser)
		assert.Equal(t, f.userID, *f.orders.applyUser)
	})
	t.Run("admin applies as the owner", func(t *testing.T) {
		_, err := f.h.ApplyCoupon(f.as(t, adminKey), &oas.ApplyCouponRequest{
			Code: "WELCOME10", OrderId: f.order.ID, UserId: oas.NewOptUUID(fresh),
		})
		require.NoError(t, err)
		assert.Equal(t, f.userID, *f.orders.applyUser)
	})
	t.Run("guest order uses body userId", func(t *testing.T) {
		guest := &order.Order{ID: uuid.New(), Status: order.StatusPending, PaymentStatus: order.PaymentPending}
		f.orders.orders[guest.ID] = guest
		_, err := f.h.ApplyCoupon(context.Background(), &oas.ApplyCouponRequest{
			Code: "WELCOME10", OrderId: guest.ID, UserId: oas.NewOptUUID(fresh),
		})
		require.NoError(t, err)
		require.NotNil(t, f.orders.applyUser)
		assert.Equal(t, fresh, *f.orders.applyUser)
	})
}

func TestCreatePaymentOrder(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	f.payments.checkout = &payment.Checkout{
		Order: &payment.RemoteOrder{ID: "order_Nx1", Amount: 95000, Currency: "INR", Status: "created"},
		KeyID: "rzp_test_key",
	}
	ctx := context.Background()
	req := &oas.PaymentOrderRequest{Amount: oas.NewOptFloat64(950), OrderID: oas.NewOptUUID(f.order.ID)}

	resp, err := f.h.CreatePaymentOrder(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "rzp_test_key", resp.Key)
	assert.Equal(t, "order_Nx1", resp.Order.ID)
	assert.False(t, resp.Demo.IsSet())
	assert.True(t, decimal.NewFromInt(950).Equal(f.payments.checkoutReq.Amount))
	require.NotNil(t, f.payments.checkoutReq.OrderID)
	assert.Equal(t, f.order.ID, *f.payments.checkoutReq.OrderID)

	tests := []struct {
		err     error
		status  int
		message string
	}{
		{err: payment.ErrGatewayUnavailable, status: http.StatusBadGateway, message: "Payment gateway is unavailable, please retry"},
		{err: payment.ErrGatewayAuth, status: http.StatusInternalServerError},
		{err: &payment.RejectedError{StatusCode: 400, Description: "bad amount"}, status: http.StatusInternalServerError,
			message: "payment gateway rejected request: bad amount"},
		{err: payment.ErrInvalidAmount, status: http.StatusBadRequest, message: payment.ErrInvalidAmount.Error()},
	}
	for _, tt := range tests {
		f.payments.err = tt.err
		_, err := f.h.CreatePaymentOrder(ctx, req)
		resp := f.failure(t, ctx, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.err.Error())
		assert.Equal(t, oas.NewOptBool(false), resp.Response.Success)
		assert.Equal(t, http.StatusText(tt.status), resp.Response.Error.Value)
		if tt.message != "" {
			assert.Equal(t, tt.message, resp.Response.Message)
		}
	}

	f.payments.err = errors.Wrap(payment.ErrGatewayAuth, "create gateway order")
	_, err = f.h.CreatePaymentOrder(ctx, req)
	failed := f.failure(t, ctx, err)
	assert.Contains(t, failed.Response.Message, "Check the key id and secret")
	assert.NotContains(t, failed.Response.Message, "create gateway order")
}

func TestVerifyPayment(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	ctx := context.Background()
	req := &oas.PaymentVerification{
		GatewayOrderID:   "order_Nx1",
		GatewayPaymentID: "pay_Q2",
		GatewaySignature: "abc",
		OrderID:          oas.NewOptUUID(f.order.ID),
	}

	f.payments.verify = &payment.VerifyResult{Verified: false}
	_, err := f.h.VerifyPayment(ctx, req)
	failed := f.failure(t, ctx, err)
	assert.Equal(t, http.StatusBadRequest, failed.StatusCode)
	assert.Equal(t, oas.NewOptBool(false), failed.Response.Success)
	assert.Equal(t, oas.NewOptBool(false), failed.Response.Verified)
	require.NotNil(t, f.payments.verifyReq.OrderID)
	assert.Equal(t, f.order.ID, *f.payments.verifyReq.OrderID)

	inv := &invoice.Invoice{ID: uuid.New()}
	f.payments.verify = &payment.VerifyResult{Verified: true, Invoice: inv}
	resp, err := f.h.VerifyPayment(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "pay_Q2", resp.PaymentID)
	assert.Equal(t, inv.ID, resp.InvoiceID.Value)

	f.payments.err = payment.ErrGatewayNotConfigured
	_, err = f.h.VerifyPayment(ctx, req)
	failed = f.failure(t, ctx, err)
	assert.Equal(t, http.StatusInternalServerError, failed.StatusCode)
	assert.Equal(t, oas.NewOptBool(false), failed.Response.Success)
}

func TestInvoices(t *testing.T) {
	f := newFixture(t, HandlerConfig{Company: Company{Name: "Aurum Jewels", GSTIN: "29ABCDE1234F1Z5"}})
	create := oas.CreateInvoiceParams{OrderId: f.order.ID}

	ctx := f.as(t, customerKey)
	_, err := f.h.CreateInvoice(ctx, create)
	assert.Equal(t, http.StatusForbidden, f.failure(t, ctx, err).StatusCode)

	admin := f.as(t, adminKey)
	created, err := f.h.CreateInvoice(admin, create)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-000001", created.InvoiceNumber)

	_, err = f.h.CreateInvoice(admin, create)
	assert.Equal(t, http.StatusBadRequest, f.failure(t, admin, err).StatusCode)
	assert.Len(t, f.invoices.byOrder, 1)

	inv := f.invoices.byOrder[f.order.ID]
	inv.CustomerID = &f.userID

	got, err := f.h.GetInvoice(ctx, oas.GetInvoiceParams{InvoiceId: created.InvoiceId})
	require.NoError(t, err)
	assert.Equal(t, "Aurum Jewels", got.Company.Name)
	assert.Equal(t, "29ABCDE1234F1Z5", got.Company.Gstin)
	assert.Equal(t, f.userID, got.CustomerID.Value)

	stranger := f.as(t, strangerKey)
	_, err = f.h.GetInvoice(stranger, oas.GetInvoiceParams{InvoiceId: created.InvoiceId})
	assert.Equal(t, http.StatusForbidden, f.failure(t, stranger, err).StatusCode)

	byOrder, err := f.h.GetOrderInvoice(ctx, oas.GetOrderInvoiceParams{ID: f.order.ID})
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceId, byOrder.ID)
}

func TestUpdatePaymentGateway(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	req := &oas.GatewaySettings{KeyID: "rzp_new", KeySecret: "s"}

	ctx := context.Background()
	_, err := f.h.UpdatePaymentGateway(ctx, req)
	assert.Equal(t, http.StatusUnauthorized, f.failure(t, ctx, err).StatusCode)
	assert.Zero(t, f.gateway.calls)

	resp, err := f.h.UpdatePaymentGateway(f.as(t, adminKey), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "rzp_new", f.settings.values["razorpay_key_id"])
	assert.Equal(t, 1, f.gateway.calls)
}

func TestSecurityHandler(t *testing.T) {
	f := newFixture(t, HandlerConfig{})
	ctx := context.Background()

	got, err := f.sec.HandleAPIKey(ctx, oas.GetOrderOperation, oas.APIKey{APIKey: adminKey})
	require.NoError(t, err)
	require.NotNil(t, auth.FromContext(got))
	assert.True(t, auth.FromContext(got).Admin)

	got, err = f.sec.HandleBearer(ctx, oas.PlaceOrderOperation, oas.Bearer{Token: customerKey})
	require.NoError(t, err)
	assert.Equal(t, f.userID, *auth.FromContext(got).UserID)

	// The first credential wins when both are sent.
	got, err = f.sec.HandleBearer(got, oas.PlaceOrderOperation, oas.Bearer{Token: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, "k-cust", auth.FromContext(got).KeyID)

	_, err = f.sec.HandleAPIKey(ctx, oas.GetOrderOperation, oas.APIKey{APIKey: "bogus"})
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestHandleError(t *testing.T) {
	f := newFixture(t, HandlerConfig{})

	render := func(t *testing.T, err error) (int, map[string]any) {
		t.Helper()
		rec := httptest.NewRecorder()
		f.h.HandleError(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil), err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
		return rec.Code, body
	}

	t.Run("rejected key", func(t *testing.T) {
		code, body := render(t, &ogenerrors.SecurityError{
			OperationContext: ogenerrors.OperationContext{Name: string(oas.GetOrderOperation)},
			Security:         "APIKey",
			Err:              auth.ErrUnauthorized,
		})
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "invalid or missing API key", body["message"])
	})
	t.Run("missing credentials", func(t *testing.T) {
		code, _ := render(t, &ogenerrors.SecurityError{
			OperationContext: ogenerrors.OperationContext{Name: string(oas.UpdateOrderStatusOperation)},
			Err:              ogenerrors.ErrSecurityRequirementIsNotSatisfied,
		})
		assert.Equal(t, http.StatusUnauthorized, code)
	})
	t.Run("schema violations", func(t *testing.T) {
		code, body := render(t, &ogenerrors.DecodeRequestError{
			OperationContext: ogenerrors.OperationContext{Name: string(oas.PlaceOrderOperation)},
			Err: errors.Wrap(&validate.Error{Fields: []validate.FieldError{
				{Name: "customerPhone", Error: validate.ErrFieldRequired},
				{Name: "items", Error: &validate.Error{Fields: []validate.FieldError{
					{Name: "[0]", Error: &validate.Error{Fields: []validate.FieldError{
						{Name: "quantity", Error: errors.New("value 0 less than minimum 1")},
					}}},
				}}},
			}}, "decode PlaceOrderRequest"),
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "validation failed", body["message"])
		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok, body)
		assert.Equal(t, "is required", fields["customerPhone"])
		assert.Equal(t, "value 0 less than minimum 1", fields["items[0].quantity"])
		assert.NotContains(t, body, "valid")
	})
	t.Run("malformed json", func(t *testing.T) {
		code, body := render(t, &ogenerrors.DecodeRequestError{
			OperationContext: ogenerrors.OperationContext{Name: string(oas.PlaceOrderOperation)},
			Err:              errors.New("unexpected EOF"),
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request: unexpected EOF", body["message"])
	})
	t.Run("coupon preview keeps valid flag", func(t *testing.T) {
		code, body := render(t, &ogenerrors.DecodeParamsError{
			OperationContext: ogenerrors.OperationContext{Name: string(oas.ValidateCouponOperation)},
			Err:              errors.New("query: orderAmount: field required"),
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["valid"])
	})
	t.Run("payment keeps success flag", func(t *testing.T) {
		code, body := render(t, &ogenerrors.DecodeRequestError{
			OperationContext: ogenerrors.OperationContext{Name: string(oas.VerifyPaymentOperation)},
			Err: &validate.Error{Fields: []validate.FieldError{
				{Name: "gateway_signature", Error: validate.ErrFieldRequired},
			}},
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Bad Request", body["error"])
		assert.Contains(t, body["errors"], "gateway_signature")
	})
}
