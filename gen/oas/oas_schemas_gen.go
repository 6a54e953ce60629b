// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type APIKey struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *APIKey) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *APIKey) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *APIKey) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *APIKey) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/AppliedCoupon
type AppliedCoupon struct {
	Success  bool            `json:"success"`
	Coupon   Coupon          `json:"coupon"`
	Discount AppliedDiscount `json:"discount"`
	Order    Order           `json:"order"`
}

// GetSuccess returns the value of Success.
func (s *AppliedCoupon) GetSuccess() bool {
	return s.Success
}

// GetCoupon returns the value of Coupon.
func (s *AppliedCoupon) GetCoupon() Coupon {
	return s.Coupon
}

// GetDiscount returns the value of Discount.
func (s *AppliedCoupon) GetDiscount() AppliedDiscount {
	return s.Discount
}

// GetOrder returns the value of Order.
func (s *AppliedCoupon) GetOrder() Order {
	return s.Order
}

// SetSuccess sets the value of Success.
func (s *AppliedCoupon) SetSuccess(val bool) {
	s.Success = val
}

// SetCoupon sets the value of Coupon.
func (s *AppliedCoupon) SetCoupon(val Coupon) {
	s.Coupon = val
}

// SetDiscount sets the value of Discount.
func (s *AppliedCoupon) SetDiscount(val AppliedDiscount) {
	s.Discount = val
}

// SetOrder sets the value of Order.
func (s *AppliedCoupon) SetOrder(val Order) {
	s.Order = val
}

// Ref: #/components/schemas/AppliedDiscount
type AppliedDiscount struct {
	Amount       float64 `json:"amount"`
	NewTotal     float64 `json:"new_total"`
	FreeShipping bool    `json:"free_shipping"`
}

// GetAmount returns the value of Amount.
func (s *AppliedDiscount) GetAmount() float64 {
	return s.Amount
}

// GetNewTotal returns the value of NewTotal.
func (s *AppliedDiscount) GetNewTotal() float64 {
	return s.NewTotal
}

// GetFreeShipping returns the value of FreeShipping.
func (s *AppliedDiscount) GetFreeShipping() bool {
	return s.FreeShipping
}

// SetAmount sets the value of Amount.
func (s *AppliedDiscount) SetAmount(val float64) {
	s.Amount = val
}

// SetNewTotal sets the value of NewTotal.
func (s *AppliedDiscount) SetNewTotal(val float64) {
	s.NewTotal = val
}

// SetFreeShipping sets the value of FreeShipping.
func (s *AppliedDiscount) SetFreeShipping(val bool) {
	s.FreeShipping = val
}

// Ref: #/components/schemas/ApplyCouponRequest
type ApplyCouponRequest struct {
	Code    string    `json:"code"`
	OrderId uuid.UUID `json:"orderId"`
	UserId  OptUUID   `json:"userId"`
}

// GetCode returns the value of Code.
func (s *ApplyCouponRequest) GetCode() string {
	return s.Code
}

// GetOrderId returns the value of OrderId.
func (s *ApplyCouponRequest) GetOrderId() uuid.UUID {
	return s.OrderId
}

// GetUserId returns the value of UserId.
func (s *ApplyCouponRequest) GetUserId() OptUUID {
	return s.UserId
}

// SetCode sets the value of Code.
func (s *ApplyCouponRequest) SetCode(val string) {
	s.Code = val
}

// SetOrderId sets the value of OrderId.
func (s *ApplyCouponRequest) SetOrderId(val uuid.UUID) {
	s.OrderId = val
}

// SetUserId sets the value of UserId.
func (s *ApplyCouponRequest) SetUserId(val OptUUID) {
	s.UserId = val
}

type Bearer struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *Bearer) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *Bearer) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *Bearer) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *Bearer) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/Company
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Gstin   string `json:"gstin"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// GetName returns the value of Name.
func (s *Company) GetName() string {
	return s.Name
}

// GetAddress returns the value of Address.
func (s *Company) GetAddress() string {
	return s.Address
}

// GetGstin returns the value of Gstin.
func (s *Company) GetGstin() string {
	return s.Gstin
}

// GetEmail returns the value of Email.
func (s *Company) GetEmail() string {
	return s.Email
}

// GetPhone returns the value of Phone.
func (s *Company) GetPhone() string {
	return s.Phone
}

// SetName sets the value of Name.
func (s *Company) SetName(val string) {
	s.Name = val
}

// SetAddress sets the value of Address.
func (s *Company) SetAddress(val string) {
	s.Address = val
}

// SetGstin sets the value of Gstin.
func (s *Company) SetGstin(val string) {
	s.Gstin = val
}

// SetEmail sets the value of Email.
func (s *Company) SetEmail(val string) {
	s.Email = val
}

// SetPhone sets the value of Phone.
func (s *Company) SetPhone(val string) {
	s.Phone = val
}

// Ref: #/components/schemas/Coupon
type Coupon struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Type           string    `json:"type"`
	Value          float64   `json:"value"`
	MinOrderAmount float64   `json:"min_order_amount"`
	DiscountAmount float64   `json:"discount_amount"`
	FreeShipping   bool      `json:"free_shipping"`
}

// GetID returns the value of ID.
func (s *Coupon) GetID() uuid.UUID {
	return s.ID
}

// GetCode returns the value of Code.
func (s *Coupon) GetCode() string {
	return s.Code
}

// GetName returns the value of Name.
func (s *Coupon) GetName() string {
	return s.Name
}

// GetDescription returns the value of Description.
func (s *Coupon) GetDescription() string {
	return s.Description
}

// GetType returns the value of Type.
func (s *Coupon) GetType() string {
	return s.Type
}

// GetValue returns the value of Value.
func (s *Coupon) GetValue() float64 {
	return s.Value
}

// GetMinOrderAmount returns the value of MinOrderAmount.
func (s *Coupon) GetMinOrderAmount() float64 {
	return s.MinOrderAmount
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *Coupon) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetFreeShipping returns the value of FreeShipping.
func (s *Coupon) GetFreeShipping() bool {
	return s.FreeShipping
}

// SetID sets the value of ID.
func (s *Coupon) SetID(val uuid.UUID) {
	s.ID = val
}

// SetCode sets the value of Code.
func (s *Coupon) SetCode(val string) {
	s.Code = val
}

// SetName sets the value of Name.
func (s *Coupon) SetName(val string) {
	s.Name = val
}

// SetDescription sets the value of Description.
func (s *Coupon) SetDescription(val string) {
	s.Description = val
}

// SetType sets the value of Type.
func (s *Coupon) SetType(val string) {
	s.Type = val
}

// SetValue sets the value of Value.
func (s *Coupon) SetValue(val float64) {
	s.Value = val
}

// SetMinOrderAmount sets the value of MinOrderAmount.
func (s *Coupon) SetMinOrderAmount(val float64) {
	s.MinOrderAmount = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *Coupon) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetFreeShipping sets the value of FreeShipping.
func (s *Coupon) SetFreeShipping(val bool) {
	s.FreeShipping = val
}

// Ref: #/components/schemas/CouponValidation
type CouponValidation struct {
	Valid  bool   `json:"valid"`
	Coupon Coupon `json:"coupon"`
}

// GetValid returns the value of Valid.
func (s *CouponValidation) GetValid() bool {
	return s.Valid
}

// GetCoupon returns the value of Coupon.
func (s *CouponValidation) GetCoupon() Coupon {
	return s.Coupon
}

// SetValid sets the value of Valid.
func (s *CouponValidation) SetValid(val bool) {
	s.Valid = val
}

// SetCoupon sets the value of Coupon.
func (s *CouponValidation) SetCoupon(val Coupon) {
	s.Coupon = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Message string `json:"message"`
	// Field-level validation messages keyed by field name.
	Errors OptErrorErrors `json:"errors"`
	// Underlying error, only in development mode.
	Detail   OptString `json:"detail"`
	Valid    OptBool   `json:"valid"`
	Success  OptBool   `json:"success"`
	Verified OptBool   `json:"verified"`
	Error    OptString `json:"error"`
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// GetErrors returns the value of Errors.
func (s *Error) GetErrors() OptErrorErrors {
	return s.Errors
}

// GetDetail returns the value of Detail.
func (s *Error) GetDetail() OptString {
	return s.Detail
}

// GetValid returns the value of Valid.
func (s *Error) GetValid() OptBool {
	return s.Valid
}

// GetSuccess returns the value of Success.
func (s *Error) GetSuccess() OptBool {
	return s.Success
}

// GetVerified returns the value of Verified.
func (s *Error) GetVerified() OptBool {
	return s.Verified
}

// GetError returns the value of Error.
func (s *Error) GetError() OptString {
	return s.Error
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// SetErrors sets the value of Errors.
func (s *Error) SetErrors(val OptErrorErrors) {
	s.Errors = val
}

// SetDetail sets the value of Detail.
func (s *Error) SetDetail(val OptString) {
	s.Detail = val
}

// SetValid sets the value of Valid.
func (s *Error) SetValid(val OptBool) {
	s.Valid = val
}

// SetSuccess sets the value of Success.
func (s *Error) SetSuccess(val OptBool) {
	s.Success = val
}

// SetVerified sets the value of Verified.
func (s *Error) SetVerified(val OptBool) {
	s.Verified = val
}

// SetError sets the value of Error.
func (s *Error) SetError(val OptString) {
	s.Error = val
}

// Field-level validation messages keyed by field name.
type ErrorErrors map[string]string

func (s *ErrorErrors) init() ErrorErrors {
	m := *s
	if m == nil {
		m = map[string]string{}
		*s = m
	}
	return m
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/GatewaySettings
type GatewaySettings struct {
	KeyID     string `json:"key_id"`
	KeySecret string `json:"key_secret"`
}

// GetKeyID returns the value of KeyID.
func (s *GatewaySettings) GetKeyID() string {
	return s.KeyID
}

// GetKeySecret returns the value of KeySecret.
func (s *GatewaySettings) GetKeySecret() string {
	return s.KeySecret
}

// SetKeyID sets the value of KeyID.
func (s *GatewaySettings) SetKeyID(val string) {
	s.KeyID = val
}

// SetKeySecret sets the value of KeySecret.
func (s *GatewaySettings) SetKeySecret(val string) {
	s.KeySecret = val
}

// Ref: #/components/schemas/GatewaySettingsUpdated
type GatewaySettingsUpdated struct {
	Success bool   `json:"success"`
	KeyID   string `json:"key_id"`
}

// GetSuccess returns the value of Success.
func (s *GatewaySettingsUpdated) GetSuccess() bool {
	return s.Success
}

// GetKeyID returns the value of KeyID.
func (s *GatewaySettingsUpdated) GetKeyID() string {
	return s.KeyID
}

// SetSuccess sets the value of Success.
func (s *GatewaySettingsUpdated) SetSuccess(val bool) {
	s.Success = val
}

// SetKeyID sets the value of KeyID.
func (s *GatewaySettingsUpdated) SetKeyID(val string) {
	s.KeyID = val
}

// Ref: #/components/schemas/Invoice
type Invoice struct {
	ID             uuid.UUID     `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	OrderID        uuid.UUID     `json:"order_id"`
	OrderNumber    string        `json:"order_number"`
	CustomerID     NilUUID       `json:"customer_id"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	CustomerPhone  OptString     `json:"customer_phone"`
	BillingAddress string        `json:"billing_address"`
	Subtotal       float64       `json:"subtotal"`
	TaxAmount      float64       `json:"tax_amount"`
	ShippingAmount float64       `json:"shipping_amount"`
	DiscountAmount float64       `json:"discount_amount"`
	TotalAmount    float64       `json:"total_amount"`
	Currency       string        `json:"currency"`
	PaymentStatus  string        `json:"payment_status"`
	PaymentMethod  string        `json:"payment_method"`
	InvoiceDate    time.Time     `json:"invoice_date"`
	DueDate        time.Time     `json:"due_date"`
	Company        Company       `json:"company"`
	Items          []InvoiceItem `json:"items"`
}

// GetID returns the value of ID.
func (s *Invoice) GetID() uuid.UUID {
	return s.ID
}

// GetInvoiceNumber returns the value of InvoiceNumber.
func (s *Invoice) GetInvoiceNumber() string {
	return s.InvoiceNumber
}

// GetOrderID returns the value of OrderID.
func (s *Invoice) GetOrderID() uuid.UUID {
	return s.OrderID
}

// GetOrderNumber returns the value of OrderNumber.
func (s *Invoice) GetOrderNumber() string {
	return s.OrderNumber
}

// GetCustomerID returns the value of CustomerID.
func (s *Invoice) GetCustomerID() NilUUID {
	return s.CustomerID
}

// GetCustomerName returns the value of CustomerName.
func (s *Invoice) GetCustomerName() string {
	return s.CustomerName
}

// GetCustomerEmail returns the value of CustomerEmail.
func (s *Invoice) GetCustomerEmail() string {
	return s.CustomerEmail
}

// GetCustomerPhone returns the value of CustomerPhone.
func (s *Invoice) GetCustomerPhone() OptString {
	return s.CustomerPhone
}

// GetBillingAddress returns the value of BillingAddress.
func (s *Invoice) GetBillingAddress() string {
	return s.BillingAddress
}

// GetSubtotal returns the value of Subtotal.
func (s *Invoice) GetSubtotal() float64 {
	return s.Subtotal
}

// GetTaxAmount returns the value of TaxAmount.
func (s *Invoice) GetTaxAmount() float64 {
	return s.TaxAmount
}

// GetShippingAmount returns the value of ShippingAmount.
func (s *Invoice) GetShippingAmount() float64 {
	return s.ShippingAmount
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *Invoice) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetTotalAmount returns the value of TotalAmount.
func (s *Invoice) GetTotalAmount() float64 {
	return s.TotalAmount
}

// GetCurrency returns the value of Currency.
func (s *Invoice) GetCurrency() string {
	return s.Currency
}

// GetPaymentStatus returns the value of PaymentStatus.
func (s *Invoice) GetPaymentStatus() string {
	return s.PaymentStatus
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *Invoice) GetPaymentMethod() string {
	return s.PaymentMethod
}

// GetInvoiceDate returns the value of InvoiceDate.
func (s *Invoice) GetInvoiceDate() time.Time {
	return s.InvoiceDate
}

// GetDueDate returns the value of DueDate.
func (s *Invoice) GetDueDate() time.Time {
	return s.DueDate
}

// GetCompany returns the value of Company.
func (s *Invoice) GetCompany() Company {
	return s.Company
}

// GetItems returns the value of Items.
func (s *Invoice) GetItems() []InvoiceItem {
	return s.Items
}

// SetID sets the value of ID.
func (s *Invoice) SetID(val uuid.UUID) {
	s.ID = val
}

// SetInvoiceNumber sets the value of InvoiceNumber.
func (s *Invoice) SetInvoiceNumber(val string) {
	s.InvoiceNumber = val
}

// SetOrderID sets the value of OrderID.
func (s *Invoice) SetOrderID(val uuid.UUID) {
	s.OrderID = val
}

// SetOrderNumber sets the value of OrderNumber.
func (s *Invoice) SetOrderNumber(val string) {
	s.OrderNumber = val
}

// SetCustomerID sets the value of CustomerID.
func (s *Invoice) SetCustomerID(val NilUUID) {
	s.CustomerID = val
}

// SetCustomerName sets the value of CustomerName.
func (s *Invoice) SetCustomerName(val string) {
	s.CustomerName = val
}

// SetCustomerEmail sets the value of CustomerEmail.
func (s *Invoice) SetCustomerEmail(val string) {
	s.CustomerEmail = val
}

// SetCustomerPhone sets the value of CustomerPhone.
func (s *Invoice) SetCustomerPhone(val OptString) {
	s.CustomerPhone = val
}

// SetBillingAddress sets the value of BillingAddress.
func (s *Invoice) SetBillingAddress(val string) {
	s.BillingAddress = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Invoice) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetTaxAmount sets the value of TaxAmount.
func (s *Invoice) SetTaxAmount(val float64) {
	s.TaxAmount = val
}

// SetShippingAmount sets the value of ShippingAmount.
func (s *Invoice) SetShippingAmount(val float64) {
	s.ShippingAmount = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *Invoice) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *Invoice) SetTotalAmount(val float64) {
	s.TotalAmount = val
}

// SetCurrency sets the value of Currency.
func (s *Invoice) SetCurrency(val string) {
	s.Currency = val
}

// SetPaymentStatus sets the value of PaymentStatus.
func (s *Invoice) SetPaymentStatus(val string) {
	s.PaymentStatus = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *Invoice) SetPaymentMethod(val string) {
	s.PaymentMethod = val
}

// SetInvoiceDate sets the value of InvoiceDate.
func (s *Invoice) SetInvoiceDate(val time.Time) {
	s.InvoiceDate = val
}

// SetDueDate sets the value of DueDate.
func (s *Invoice) SetDueDate(val time.Time) {
	s.DueDate = val
}

// SetCompany sets the value of Company.
func (s *Invoice) SetCompany(val Company) {
	s.Company = val
}

// SetItems sets the value of Items.
func (s *Invoice) SetItems(val []InvoiceItem) {
	s.Items = val
}

// Ref: #/components/schemas/InvoiceCreated
type InvoiceCreated struct {
	InvoiceId     uuid.UUID `json:"invoiceId"`
	InvoiceNumber string    `json:"invoiceNumber"`
}

// GetInvoiceId returns the value of InvoiceId.
func (s *InvoiceCreated) GetInvoiceId() uuid.UUID {
	return s.InvoiceId
}

// GetInvoiceNumber returns the value of InvoiceNumber.
func (s *InvoiceCreated) GetInvoiceNumber() string {
	return s.InvoiceNumber
}

// SetInvoiceId sets the value of InvoiceId.
func (s *InvoiceCreated) SetInvoiceId(val uuid.UUID) {
	s.InvoiceId = val
}

// SetInvoiceNumber sets the value of InvoiceNumber.
func (s *InvoiceCreated) SetInvoiceNumber(val string) {
	s.InvoiceNumber = val
}

// Ref: #/components/schemas/InvoiceItem
type InvoiceItem struct {
	ProductID          string  `json:"product_id"`
	Description        string  `json:"description"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
	TaxableAmount      float64 `json:"taxable_amount"`
	CgstPercentage     float64 `json:"cgst_percentage"`
	CgstAmount         float64 `json:"cgst_amount"`
	SgstPercentage     float64 `json:"sgst_percentage"`
	SgstAmount         float64 `json:"sgst_amount"`
	TotalAmount        float64 `json:"total_amount"`
}

// GetProductID returns the value of ProductID.
func (s *InvoiceItem) GetProductID() string {
	return s.ProductID
}

// GetDescription returns the value of Description.
func (s *InvoiceItem) GetDescription() string {
	return s.Description
}

// GetQuantity returns the value of Quantity.
func (s *InvoiceItem) GetQuantity() int {
	return s.Quantity
}

// GetUnitPrice returns the value of UnitPrice.
func (s *InvoiceItem) GetUnitPrice() float64 {
	return s.UnitPrice
}

// GetDiscountPercentage returns the value of DiscountPercentage.
func (s *InvoiceItem) GetDiscountPercentage() float64 {
	return s.DiscountPercentage
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *InvoiceItem) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetTaxableAmount returns the value of TaxableAmount.
func (s *InvoiceItem) GetTaxableAmount() float64 {
	return s.TaxableAmount
}

// GetCgstPercentage returns the value of CgstPercentage.
func (s *InvoiceItem) GetCgstPercentage() float64 {
	return s.CgstPercentage
}

// GetCgstAmount returns the value of CgstAmount.
func (s *InvoiceItem) GetCgstAmount() float64 {
	return s.CgstAmount
}

// GetSgstPercentage returns the value of SgstPercentage.
func (s *InvoiceItem) GetSgstPercentage() float64 {
	return s.SgstPercentage
}

// GetSgstAmount returns the value of SgstAmount.
func (s *InvoiceItem) GetSgstAmount() float64 {
	return s.SgstAmount
}

// GetTotalAmount returns the value of TotalAmount.
func (s *InvoiceItem) GetTotalAmount() float64 {
	return s.TotalAmount
}

// SetProductID sets the value of ProductID.
func (s *InvoiceItem) SetProductID(val string) {
	s.ProductID = val
}

// SetDescription sets the value of Description.
func (s *InvoiceItem) SetDescription(val string) {
	s.Description = val
}

// SetQuantity sets the value of Quantity.
func (s *InvoiceItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetUnitPrice sets the value of UnitPrice.
func (s *InvoiceItem) SetUnitPrice(val float64) {
	s.UnitPrice = val
}

// SetDiscountPercentage sets the value of DiscountPercentage.
func (s *InvoiceItem) SetDiscountPercentage(val float64) {
	s.DiscountPercentage = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *InvoiceItem) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetTaxableAmount sets the value of TaxableAmount.
func (s *InvoiceItem) SetTaxableAmount(val float64) {
	s.TaxableAmount = val
}

// SetCgstPercentage sets the value of CgstPercentage.
func (s *InvoiceItem) SetCgstPercentage(val float64) {
	s.CgstPercentage = val
}

// SetCgstAmount sets the value of CgstAmount.
func (s *InvoiceItem) SetCgstAmount(val float64) {
	s.CgstAmount = val
}

// SetSgstPercentage sets the value of SgstPercentage.
func (s *InvoiceItem) SetSgstPercentage(val float64) {
	s.SgstPercentage = val
}

// SetSgstAmount sets the value of SgstAmount.
func (s *InvoiceItem) SetSgstAmount(val float64) {
	s.SgstAmount = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *InvoiceItem) SetTotalAmount(val float64) {
	s.TotalAmount = val
}

// NewNilUUID returns new NilUUID with value set to v.
func NewNilUUID(v uuid.UUID) NilUUID {
	return NilUUID{
		Value: v,
	}
}

// NilUUID is nullable uuid.UUID.
type NilUUID struct {
	Value uuid.UUID
	Null  bool
}

// SetTo sets value to v.
func (o *NilUUID) SetTo(v uuid.UUID) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilUUID) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilUUID) SetToNull() {
	o.Null = true
	var v uuid.UUID
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilUUID) Get() (v uuid.UUID, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilUUID) Or(d uuid.UUID) uuid.UUID {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptErrorErrors returns new OptErrorErrors with value set to v.
func NewOptErrorErrors(v ErrorErrors) OptErrorErrors {
	return OptErrorErrors{
		Value: v,
		Set:   true,
	}
}

// OptErrorErrors is optional ErrorErrors.
type OptErrorErrors struct {
	Value ErrorErrors
	Set   bool
}

// IsSet returns true if OptErrorErrors was set.
func (o OptErrorErrors) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptErrorErrors) Reset() {
	var v ErrorErrors
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptErrorErrors) SetTo(v ErrorErrors) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptErrorErrors) Get() (v ErrorErrors, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptErrorErrors) Or(d ErrorErrors) ErrorErrors {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptFloat64 returns new OptFloat64 with value set to v.
func NewOptFloat64(v float64) OptFloat64 {
	return OptFloat64{
		Value: v,
		Set:   true,
	}
}

// OptFloat64 is optional float64.
type OptFloat64 struct {
	Value float64
	Set   bool
}

// IsSet returns true if OptFloat64 was set.
func (o OptFloat64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptFloat64) Reset() {
	var v float64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptFloat64) SetTo(v float64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptFloat64) Get() (v float64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptFloat64) Or(d float64) float64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptPaymentMethod returns new OptPaymentMethod with value set to v.
func NewOptPaymentMethod(v PaymentMethod) OptPaymentMethod {
	return OptPaymentMethod{
		Value: v,
		Set:   true,
	}
}

// OptPaymentMethod is optional PaymentMethod.
type OptPaymentMethod struct {
	Value PaymentMethod
	Set   bool
}

// IsSet returns true if OptPaymentMethod was set.
func (o OptPaymentMethod) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptPaymentMethod) Reset() {
	var v PaymentMethod
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptPaymentMethod) SetTo(v PaymentMethod) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptPaymentMethod) Get() (v PaymentMethod, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptPaymentMethod) Or(d PaymentMethod) PaymentMethod {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptUUID returns new OptUUID with value set to v.
func NewOptUUID(v uuid.UUID) OptUUID {
	return OptUUID{
		Value: v,
		Set:   true,
	}
}

// OptUUID is optional uuid.UUID.
type OptUUID struct {
	Value uuid.UUID
	Set   bool
}

// IsSet returns true if OptUUID was set.
func (o OptUUID) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptUUID) Reset() {
	var v uuid.UUID
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptUUID) SetTo(v uuid.UUID) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptUUID) Get() (v uuid.UUID, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptUUID) Or(d uuid.UUID) uuid.UUID {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID              uuid.UUID   `json:"id"`
	OrderNumber     string      `json:"order_number"`
	UserID          NilUUID     `json:"user_id"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	PaymentMethod   string      `json:"payment_method"`
	Subtotal        float64     `json:"subtotal"`
	TaxAmount       float64     `json:"tax_amount"`
	TaxRate         OptFloat64  `json:"tax_rate"`
	ShippingAmount  float64     `json:"shipping_amount"`
	DiscountAmount  float64     `json:"discount_amount"`
	TotalAmount     float64     `json:"total_amount"`
	Currency        string      `json:"currency"`
	CouponCode      OptString   `json:"coupon_code"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	BillingAddress  string      `json:"billing_address"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	Pincode         string      `json:"pincode"`
	Notes           OptString   `json:"notes"`
	RazorpayOrderID OptString   `json:"razorpay_order_id"`
	TrackingNumber  OptString   `json:"tracking_number"`
	ShippedAt       OptDateTime `json:"shipped_at"`
	DeliveredAt     OptDateTime `json:"delivered_at"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

// GetID returns the value of ID.
func (s *Order) GetID() uuid.UUID {
	return s.ID
}

// GetOrderNumber returns the value of OrderNumber.
func (s *Order) GetOrderNumber() string {
	return s.OrderNumber
}

// GetUserID returns the value of UserID.
func (s *Order) GetUserID() NilUUID {
	return s.UserID
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() string {
	return s.Status
}

// GetPaymentStatus returns the value of PaymentStatus.
func (s *Order) GetPaymentStatus() string {
	return s.PaymentStatus
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *Order) GetPaymentMethod() string {
	return s.PaymentMethod
}

// GetSubtotal returns the value of Subtotal.
func (s *Order) GetSubtotal() float64 {
	return s.Subtotal
}

// GetTaxAmount returns the value of TaxAmount.
func (s *Order) GetTaxAmount() float64 {
	return s.TaxAmount
}

// GetTaxRate returns the value of TaxRate.
func (s *Order) GetTaxRate() OptFloat64 {
	return s.TaxRate
}

// GetShippingAmount returns the value of ShippingAmount.
func (s *Order) GetShippingAmount() float64 {
	return s.ShippingAmount
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *Order) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetTotalAmount returns the value of TotalAmount.
func (s *Order) GetTotalAmount() float64 {
	return s.TotalAmount
}

// GetCurrency returns the value of Currency.
func (s *Order) GetCurrency() string {
	return s.Currency
}

// GetCouponCode returns the value of CouponCode.
func (s *Order) GetCouponCode() OptString {
	return s.CouponCode
}

// GetCustomerName returns the value of CustomerName.
func (s *Order) GetCustomerName() string {
	return s.CustomerName
}

// GetCustomerEmail returns the value of CustomerEmail.
func (s *Order) GetCustomerEmail() string {
	return s.CustomerEmail
}

// GetCustomerPhone returns the value of CustomerPhone.
func (s *Order) GetCustomerPhone() string {
	return s.CustomerPhone
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *Order) GetShippingAddress() string {
	return s.ShippingAddress
}

// GetBillingAddress returns the value of BillingAddress.
func (s *Order) GetBillingAddress() string {
	return s.BillingAddress
}

// GetCity returns the value of City.
func (s *Order) GetCity() string {
	return s.City
}

// GetState returns the value of State.
func (s *Order) GetState() string {
	return s.State
}

// GetPincode returns the value of Pincode.
func (s *Order) GetPincode() string {
	return s.Pincode
}

// GetNotes returns the value of Notes.
func (s *Order) GetNotes() OptString {
	return s.Notes
}

// GetRazorpayOrderID returns the value of RazorpayOrderID.
func (s *Order) GetRazorpayOrderID() OptString {
	return s.RazorpayOrderID
}

// GetTrackingNumber returns the value of TrackingNumber.
func (s *Order) GetTrackingNumber() OptString {
	return s.TrackingNumber
}

// GetShippedAt returns the value of ShippedAt.
func (s *Order) GetShippedAt() OptDateTime {
	return s.ShippedAt
}

// GetDeliveredAt returns the value of DeliveredAt.
func (s *Order) GetDeliveredAt() OptDateTime {
	return s.DeliveredAt
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Order) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// GetItems returns the value of Items.
func (s *Order) GetItems() []OrderItem {
	return s.Items
}

// SetID sets the value of ID.
func (s *Order) SetID(val uuid.UUID) {
	s.ID = val
}

// SetOrderNumber sets the value of OrderNumber.
func (s *Order) SetOrderNumber(val string) {
	s.OrderNumber = val
}

// SetUserID sets the value of UserID.
func (s *Order) SetUserID(val NilUUID) {
	s.UserID = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val string) {
	s.Status = val
}

// SetPaymentStatus sets the value of PaymentStatus.
func (s *Order) SetPaymentStatus(val string) {
	s.PaymentStatus = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *Order) SetPaymentMethod(val string) {
	s.PaymentMethod = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Order) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetTaxAmount sets the value of TaxAmount.
func (s *Order) SetTaxAmount(val float64) {
	s.TaxAmount = val
}

// SetTaxRate sets the value of TaxRate.
func (s *Order) SetTaxRate(val OptFloat64) {
	s.TaxRate = val
}

// SetShippingAmount sets the value of ShippingAmount.
func (s *Order) SetShippingAmount(val float64) {
	s.ShippingAmount = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *Order) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *Order) SetTotalAmount(val float64) {
	s.TotalAmount = val
}

// SetCurrency sets the value of Currency.
func (s *Order) SetCurrency(val string) {
	s.Currency = val
}

// SetCouponCode sets the value of CouponCode.
func (s *Order) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetCustomerName sets the value of CustomerName.
func (s *Order) SetCustomerName(val string) {
	s.CustomerName = val
}

// SetCustomerEmail sets the value of CustomerEmail.
func (s *Order) SetCustomerEmail(val string) {
	s.CustomerEmail = val
}

// SetCustomerPhone sets the value of CustomerPhone.
func (s *Order) SetCustomerPhone(val string) {
	s.CustomerPhone = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *Order) SetShippingAddress(val string) {
	s.ShippingAddress = val
}

// SetBillingAddress sets the value of BillingAddress.
func (s *Order) SetBillingAddress(val string) {
	s.BillingAddress = val
}

// SetCity sets the value of City.
func (s *Order) SetCity(val string) {
	s.City = val
}

// SetState sets the value of State.
func (s *Order) SetState(val string) {
	s.State = val
}

// SetPincode sets the value of Pincode.
func (s *Order) SetPincode(val string) {
	s.Pincode = val
}

// SetNotes sets the value of Notes.
func (s *Order) SetNotes(val OptString) {
	s.Notes = val
}

// SetRazorpayOrderID sets the value of RazorpayOrderID.
func (s *Order) SetRazorpayOrderID(val OptString) {
	s.RazorpayOrderID = val
}

// SetTrackingNumber sets the value of TrackingNumber.
func (s *Order) SetTrackingNumber(val OptString) {
	s.TrackingNumber = val
}

// SetShippedAt sets the value of ShippedAt.
func (s *Order) SetShippedAt(val OptDateTime) {
	s.ShippedAt = val
}

// SetDeliveredAt sets the value of DeliveredAt.
func (s *Order) SetDeliveredAt(val OptDateTime) {
	s.DeliveredAt = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Order) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// SetItems sets the value of Items.
func (s *Order) SetItems(val []OrderItem) {
	s.Items = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	ID                 uuid.UUID  `json:"id"`
	ProductID          string     `json:"product_id"`
	ProductName        string     `json:"product_name"`
	ProductPrice       float64    `json:"product_price"`
	OriginalPrice      OptFloat64 `json:"original_price"`
	Quantity           int        `json:"quantity"`
	TotalPrice         float64    `json:"total_price"`
	DiscountedQuantity int        `json:"discounted_quantity"`
	DiscountPerUnit    float64    `json:"discount_per_unit"`
	DiscountPercentage float64    `json:"discount_percentage"`
}

// GetID returns the value of ID.
func (s *OrderItem) GetID() uuid.UUID {
	return s.ID
}

// GetProductID returns the value of ProductID.
func (s *OrderItem) GetProductID() string {
	return s.ProductID
}

// GetProductName returns the value of ProductName.
func (s *OrderItem) GetProductName() string {
	return s.ProductName
}

// GetProductPrice returns the value of ProductPrice.
func (s *OrderItem) GetProductPrice() float64 {
	return s.ProductPrice
}

// GetOriginalPrice returns the value of OriginalPrice.
func (s *OrderItem) GetOriginalPrice() OptFloat64 {
	return s.OriginalPrice
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// GetTotalPrice returns the value of TotalPrice.
func (s *OrderItem) GetTotalPrice() float64 {
	return s.TotalPrice
}

// GetDiscountedQuantity returns the value of DiscountedQuantity.
func (s *OrderItem) GetDiscountedQuantity() int {
	return s.DiscountedQuantity
}

// GetDiscountPerUnit returns the value of DiscountPerUnit.
func (s *OrderItem) GetDiscountPerUnit() float64 {
	return s.DiscountPerUnit
}

// GetDiscountPercentage returns the value of DiscountPercentage.
func (s *OrderItem) GetDiscountPercentage() float64 {
	return s.DiscountPercentage
}

// SetID sets the value of ID.
func (s *OrderItem) SetID(val uuid.UUID) {
	s.ID = val
}

// SetProductID sets the value of ProductID.
func (s *OrderItem) SetProductID(val string) {
	s.ProductID = val
}

// SetProductName sets the value of ProductName.
func (s *OrderItem) SetProductName(val string) {
	s.ProductName = val
}

// SetProductPrice sets the value of ProductPrice.
func (s *OrderItem) SetProductPrice(val float64) {
	s.ProductPrice = val
}

// SetOriginalPrice sets the value of OriginalPrice.
func (s *OrderItem) SetOriginalPrice(val OptFloat64) {
	s.OriginalPrice = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetTotalPrice sets the value of TotalPrice.
func (s *OrderItem) SetTotalPrice(val float64) {
	s.TotalPrice = val
}

// SetDiscountedQuantity sets the value of DiscountedQuantity.
func (s *OrderItem) SetDiscountedQuantity(val int) {
	s.DiscountedQuantity = val
}

// SetDiscountPerUnit sets the value of DiscountPerUnit.
func (s *OrderItem) SetDiscountPerUnit(val float64) {
	s.DiscountPerUnit = val
}

// SetDiscountPercentage sets the value of DiscountPercentage.
func (s *OrderItem) SetDiscountPercentage(val float64) {
	s.DiscountPercentage = val
}

// Ref: #/components/schemas/OrderItemRequest
type OrderItemRequest struct {
	ProductId          string     `json:"productId"`
	Quantity           int        `json:"quantity"`
	TotalPrice         OptFloat64 `json:"totalPrice"`
	DiscountedQuantity OptInt     `json:"discountedQuantity"`
	DiscountPerUnit    OptFloat64 `json:"discountPerUnit"`
	DiscountPercentage OptFloat64 `json:"discountPercentage"`
}

// GetProductId returns the value of ProductId.
func (s *OrderItemRequest) GetProductId() string {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *OrderItemRequest) GetQuantity() int {
	return s.Quantity
}

// GetTotalPrice returns the value of TotalPrice.
func (s *OrderItemRequest) GetTotalPrice() OptFloat64 {
	return s.TotalPrice
}

// GetDiscountedQuantity returns the value of DiscountedQuantity.
func (s *OrderItemRequest) GetDiscountedQuantity() OptInt {
	return s.DiscountedQuantity
}

// GetDiscountPerUnit returns the value of DiscountPerUnit.
func (s *OrderItemRequest) GetDiscountPerUnit() OptFloat64 {
	return s.DiscountPerUnit
}

// GetDiscountPercentage returns the value of DiscountPercentage.
func (s *OrderItemRequest) GetDiscountPercentage() OptFloat64 {
	return s.DiscountPercentage
}

// SetProductId sets the value of ProductId.
func (s *OrderItemRequest) SetProductId(val string) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItemRequest) SetQuantity(val int) {
	s.Quantity = val
}

// SetTotalPrice sets the value of TotalPrice.
func (s *OrderItemRequest) SetTotalPrice(val OptFloat64) {
	s.TotalPrice = val
}

// SetDiscountedQuantity sets the value of DiscountedQuantity.
func (s *OrderItemRequest) SetDiscountedQuantity(val OptInt) {
	s.DiscountedQuantity = val
}

// SetDiscountPerUnit sets the value of DiscountPerUnit.
func (s *OrderItemRequest) SetDiscountPerUnit(val OptFloat64) {
	s.DiscountPerUnit = val
}

// SetDiscountPercentage sets the value of DiscountPercentage.
func (s *OrderItemRequest) SetDiscountPercentage(val OptFloat64) {
	s.DiscountPercentage = val
}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusReturned,
		OrderStatusRefunded,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusPending:
		return []byte(s), nil
	case OrderStatusConfirmed:
		return []byte(s), nil
	case OrderStatusProcessing:
		return []byte(s), nil
	case OrderStatusShipped:
		return []byte(s), nil
	case OrderStatusDelivered:
		return []byte(s), nil
	case OrderStatusCancelled:
		return []byte(s), nil
	case OrderStatusReturned:
		return []byte(s), nil
	case OrderStatusRefunded:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusPending:
		*s = OrderStatusPending
		return nil
	case OrderStatusConfirmed:
		*s = OrderStatusConfirmed
		return nil
	case OrderStatusProcessing:
		*s = OrderStatusProcessing
		return nil
	case OrderStatusShipped:
		*s = OrderStatusShipped
		return nil
	case OrderStatusDelivered:
		*s = OrderStatusDelivered
		return nil
	case OrderStatusCancelled:
		*s = OrderStatusCancelled
		return nil
	case OrderStatusReturned:
		*s = OrderStatusReturned
		return nil
	case OrderStatusRefunded:
		*s = OrderStatusRefunded
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/OrderStatusUpdate
type OrderStatusUpdate struct {
	Status         OrderStatus `json:"status"`
	Notes          OptString   `json:"notes"`
	TrackingNumber OptString   `json:"trackingNumber"`
}

// GetStatus returns the value of Status.
func (s *OrderStatusUpdate) GetStatus() OrderStatus {
	return s.Status
}

// GetNotes returns the value of Notes.
func (s *OrderStatusUpdate) GetNotes() OptString {
	return s.Notes
}

// GetTrackingNumber returns the value of TrackingNumber.
func (s *OrderStatusUpdate) GetTrackingNumber() OptString {
	return s.TrackingNumber
}

// SetStatus sets the value of Status.
func (s *OrderStatusUpdate) SetStatus(val OrderStatus) {
	s.Status = val
}

// SetNotes sets the value of Notes.
func (s *OrderStatusUpdate) SetNotes(val OptString) {
	s.Notes = val
}

// SetTrackingNumber sets the value of TrackingNumber.
func (s *OrderStatusUpdate) SetTrackingNumber(val OptString) {
	s.TrackingNumber = val
}

// Ref: #/components/schemas/PaymentMethod
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodNetBanking     PaymentMethod = "net_banking"
	PaymentMethodUpi            PaymentMethod = "upi"
	PaymentMethodWallet         PaymentMethod = "wallet"
)

// AllValues returns all PaymentMethod values.
func (PaymentMethod) AllValues() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCashOnDelivery,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodNetBanking,
		PaymentMethodUpi,
		PaymentMethodWallet,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PaymentMethod) MarshalText() ([]byte, error) {
	switch s {
	case PaymentMethodCashOnDelivery:
		return []byte(s), nil
	case PaymentMethodCreditCard:
		return []byte(s), nil
	case PaymentMethodDebitCard:
		return []byte(s), nil
	case PaymentMethodNetBanking:
		return []byte(s), nil
	case PaymentMethodUpi:
		return []byte(s), nil
	case PaymentMethodWallet:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaymentMethod) UnmarshalText(data []byte) error {
	switch PaymentMethod(data) {
	case PaymentMethodCashOnDelivery:
		*s = PaymentMethodCashOnDelivery
		return nil
	case PaymentMethodCreditCard:
		*s = PaymentMethodCreditCard
		return nil
	case PaymentMethodDebitCard:
		*s = PaymentMethodDebitCard
		return nil
	case PaymentMethodNetBanking:
		*s = PaymentMethodNetBanking
		return nil
	case PaymentMethodUpi:
		*s = PaymentMethodUpi
		return nil
	case PaymentMethodWallet:
		*s = PaymentMethodWallet
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PaymentOrder
type PaymentOrder struct {
	Success bool        `json:"success"`
	Order   RemoteOrder `json:"order"`
	Key     string      `json:"key"`
	Demo    OptBool     `json:"demo"`
}

// GetSuccess returns the value of Success.
func (s *PaymentOrder) GetSuccess() bool {
	return s.Success
}

// GetOrder returns the value of Order.
func (s *PaymentOrder) GetOrder() RemoteOrder {
	return s.Order
}

// GetKey returns the value of Key.
func (s *PaymentOrder) GetKey() string {
	return s.Key
}

// GetDemo returns the value of Demo.
func (s *PaymentOrder) GetDemo() OptBool {
	return s.Demo
}

// SetSuccess sets the value of Success.
func (s *PaymentOrder) SetSuccess(val bool) {
	s.Success = val
}

// SetOrder sets the value of Order.
func (s *PaymentOrder) SetOrder(val RemoteOrder) {
	s.Order = val
}

// SetKey sets the value of Key.
func (s *PaymentOrder) SetKey(val string) {
	s.Key = val
}

// SetDemo sets the value of Demo.
func (s *PaymentOrder) SetDemo(val OptBool) {
	s.Demo = val
}

// Ref: #/components/schemas/PaymentOrderRequest
type PaymentOrderRequest struct {
	Amount   OptFloat64 `json:"amount"`
	Currency OptString  `json:"currency"`
	OrderID  OptUUID    `json:"order_id"`
}

// GetAmount returns the value of Amount.
func (s *PaymentOrderRequest) GetAmount() OptFloat64 {
	return s.Amount
}

// GetCurrency returns the value of Currency.
func (s *PaymentOrderRequest) GetCurrency() OptString {
	return s.Currency
}

// GetOrderID returns the value of OrderID.
func (s *PaymentOrderRequest) GetOrderID() OptUUID {
	return s.OrderID
}

// SetAmount sets the value of Amount.
func (s *PaymentOrderRequest) SetAmount(val OptFloat64) {
	s.Amount = val
}

// SetCurrency sets the value of Currency.
func (s *PaymentOrderRequest) SetCurrency(val OptString) {
	s.Currency = val
}

// SetOrderID sets the value of OrderID.
func (s *PaymentOrderRequest) SetOrderID(val OptUUID) {
	s.OrderID = val
}

// Ref: #/components/schemas/PaymentVerification
type PaymentVerification struct {
	GatewayOrderID   string  `json:"gateway_order_id"`
	GatewayPaymentID string  `json:"gateway_payment_id"`
	GatewaySignature string  `json:"gateway_signature"`
	OrderID          OptUUID `json:"order_id"`
}

// GetGatewayOrderID returns the value of GatewayOrderID.
func (s *PaymentVerification) GetGatewayOrderID() string {
	return s.GatewayOrderID
}

// GetGatewayPaymentID returns the value of GatewayPaymentID.
func (s *PaymentVerification) GetGatewayPaymentID() string {
	return s.GatewayPaymentID
}

// GetGatewaySignature returns the value of GatewaySignature.
func (s *PaymentVerification) GetGatewaySignature() string {
	return s.GatewaySignature
}

// GetOrderID returns the value of OrderID.
func (s *PaymentVerification) GetOrderID() OptUUID {
	return s.OrderID
}

// SetGatewayOrderID sets the value of GatewayOrderID.
func (s *PaymentVerification) SetGatewayOrderID(val string) {
	s.GatewayOrderID = val
}

// SetGatewayPaymentID sets the value of GatewayPaymentID.
func (s *PaymentVerification) SetGatewayPaymentID(val string) {
	s.GatewayPaymentID = val
}

// SetGatewaySignature sets the value of GatewaySignature.
func (s *PaymentVerification) SetGatewaySignature(val string) {
	s.GatewaySignature = val
}

// SetOrderID sets the value of OrderID.
func (s *PaymentVerification) SetOrderID(val OptUUID) {
	s.OrderID = val
}

// Ref: #/components/schemas/PaymentVerified
type PaymentVerified struct {
	Success   bool    `json:"success"`
	Verified  bool    `json:"verified"`
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	InvoiceID OptUUID `json:"invoice_id"`
}

// GetSuccess returns the value of Success.
func (s *PaymentVerified) GetSuccess() bool {
	return s.Success
}

// GetVerified returns the value of Verified.
func (s *PaymentVerified) GetVerified() bool {
	return s.Verified
}

// GetPaymentID returns the value of PaymentID.
func (s *PaymentVerified) GetPaymentID() string {
	return s.PaymentID
}

// GetOrderID returns the value of OrderID.
func (s *PaymentVerified) GetOrderID() string {
	return s.OrderID
}

// GetInvoiceID returns the value of InvoiceID.
func (s *PaymentVerified) GetInvoiceID() OptUUID {
	return s.InvoiceID
}

// SetSuccess sets the value of Success.
func (s *PaymentVerified) SetSuccess(val bool) {
	s.Success = val
}

// SetVerified sets the value of Verified.
func (s *PaymentVerified) SetVerified(val bool) {
	s.Verified = val
}

// SetPaymentID sets the value of PaymentID.
func (s *PaymentVerified) SetPaymentID(val string) {
	s.PaymentID = val
}

// SetOrderID sets the value of OrderID.
func (s *PaymentVerified) SetOrderID(val string) {
	s.OrderID = val
}

// SetInvoiceID sets the value of InvoiceID.
func (s *PaymentVerified) SetInvoiceID(val OptUUID) {
	s.InvoiceID = val
}

// Ref: #/components/schemas/PlaceOrderRequest
type PlaceOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	ShippingAddress string             `json:"shippingAddress"`
	BillingAddress  OptString          `json:"billingAddress"`
	City            string             `json:"city"`
	State           string             `json:"state"`
	Pincode         string             `json:"pincode"`
	Items           []OrderItemRequest `json:"items"`
	PaymentMethod   OptPaymentMethod   `json:"paymentMethod"`
	CouponCode      OptString          `json:"couponCode"`
	Notes           OptString          `json:"notes"`
}

// GetCustomerName returns the value of CustomerName.
func (s *PlaceOrderRequest) GetCustomerName() string {
	return s.CustomerName
}

// GetCustomerEmail returns the value of CustomerEmail.
func (s *PlaceOrderRequest) GetCustomerEmail() string {
	return s.CustomerEmail
}

// GetCustomerPhone returns the value of CustomerPhone.
func (s *PlaceOrderRequest) GetCustomerPhone() string {
	return s.CustomerPhone
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *PlaceOrderRequest) GetShippingAddress() string {
	return s.ShippingAddress
}

// GetBillingAddress returns the value of BillingAddress.
func (s *PlaceOrderRequest) GetBillingAddress() OptString {
	return s.BillingAddress
}

// GetCity returns the value of City.
func (s *PlaceOrderRequest) GetCity() string {
	return s.City
}

// GetState returns the value of State.
func (s *PlaceOrderRequest) GetState() string {
	return s.State
}

// GetPincode returns the value of Pincode.
func (s *PlaceOrderRequest) GetPincode() string {
	return s.Pincode
}

// GetItems returns the value of Items.
func (s *PlaceOrderRequest) GetItems() []OrderItemRequest {
	return s.Items
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *PlaceOrderRequest) GetPaymentMethod() OptPaymentMethod {
	return s.PaymentMethod
}

// GetCouponCode returns the value of CouponCode.
func (s *PlaceOrderRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// GetNotes returns the value of Notes.
func (s *PlaceOrderRequest) GetNotes() OptString {
	return s.Notes
}

// SetCustomerName sets the value of CustomerName.
func (s *PlaceOrderRequest) SetCustomerName(val string) {
	s.CustomerName = val
}

// SetCustomerEmail sets the value of CustomerEmail.
func (s *PlaceOrderRequest) SetCustomerEmail(val string) {
	s.CustomerEmail = val
}

// SetCustomerPhone sets the value of CustomerPhone.
func (s *PlaceOrderRequest) SetCustomerPhone(val string) {
	s.CustomerPhone = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *PlaceOrderRequest) SetShippingAddress(val string) {
	s.ShippingAddress = val
}

// SetBillingAddress sets the value of BillingAddress.
func (s *PlaceOrderRequest) SetBillingAddress(val OptString) {
	s.BillingAddress = val
}

// SetCity sets the value of City.
func (s *PlaceOrderRequest) SetCity(val string) {
	s.City = val
}

// SetState sets the value of State.
func (s *PlaceOrderRequest) SetState(val string) {
	s.State = val
}

// SetPincode sets the value of Pincode.
func (s *PlaceOrderRequest) SetPincode(val string) {
	s.Pincode = val
}

// SetItems sets the value of Items.
func (s *PlaceOrderRequest) SetItems(val []OrderItemRequest) {
	s.Items = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *PlaceOrderRequest) SetPaymentMethod(val OptPaymentMethod) {
	s.PaymentMethod = val
}

// SetCouponCode sets the value of CouponCode.
func (s *PlaceOrderRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetNotes sets the value of Notes.
func (s *PlaceOrderRequest) SetNotes(val OptString) {
	s.Notes = val
}

// Ref: #/components/schemas/Product
type Product struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Price              float64    `json:"price"`
	OriginalPrice      OptFloat64 `json:"original_price"`
	DiscountPercentage float64    `json:"discount_percentage"`
	Category           string     `json:"category"`
}

// GetID returns the value of ID.
func (s *Product) GetID() string {
	return s.ID
}

// GetName returns the value of Name.
func (s *Product) GetName() string {
	return s.Name
}

// GetPrice returns the value of Price.
func (s *Product) GetPrice() float64 {
	return s.Price
}

// GetOriginalPrice returns the value of OriginalPrice.
func (s *Product) GetOriginalPrice() OptFloat64 {
	return s.OriginalPrice
}

// GetDiscountPercentage returns the value of DiscountPercentage.
func (s *Product) GetDiscountPercentage() float64 {
	return s.DiscountPercentage
}

// GetCategory returns the value of Category.
func (s *Product) GetCategory() string {
	return s.Category
}

// SetID sets the value of ID.
func (s *Product) SetID(val string) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Product) SetName(val string) {
	s.Name = val
}

// SetPrice sets the value of Price.
func (s *Product) SetPrice(val float64) {
	s.Price = val
}

// SetOriginalPrice sets the value of OriginalPrice.
func (s *Product) SetOriginalPrice(val OptFloat64) {
	s.OriginalPrice = val
}

// SetDiscountPercentage sets the value of DiscountPercentage.
func (s *Product) SetDiscountPercentage(val float64) {
	s.DiscountPercentage = val
}

// SetCategory sets the value of Category.
func (s *Product) SetCategory(val string) {
	s.Category = val
}

// Ref: #/components/schemas/RemoteOrder
type RemoteOrder struct {
	ID string `json:"id"`
	// Amount in the smallest currency unit.
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Receipt   string    `json:"receipt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the value of ID.
func (s *RemoteOrder) GetID() string {
	return s.ID
}

// GetAmount returns the value of Amount.
func (s *RemoteOrder) GetAmount() int64 {
	return s.Amount
}

// GetCurrency returns the value of Currency.
func (s *RemoteOrder) GetCurrency() string {
	return s.Currency
}

// GetReceipt returns the value of Receipt.
func (s *RemoteOrder) GetReceipt() string {
	return s.Receipt
}

// GetStatus returns the value of Status.
func (s *RemoteOrder) GetStatus() string {
	return s.Status
}

// GetCreatedAt returns the value of CreatedAt.
func (s *RemoteOrder) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *RemoteOrder) SetID(val string) {
	s.ID = val
}

// SetAmount sets the value of Amount.
func (s *RemoteOrder) SetAmount(val int64) {
	s.Amount = val
}

// SetCurrency sets the value of Currency.
func (s *RemoteOrder) SetCurrency(val string) {
	s.Currency = val
}

// SetReceipt sets the value of Receipt.
func (s *RemoteOrder) SetReceipt(val string) {
	s.Receipt = val
}

// SetStatus sets the value of Status.
func (s *RemoteOrder) SetStatus(val string) {
	s.Status = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *RemoteOrder) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}
