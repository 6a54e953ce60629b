// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	ApplyCouponOperation          OperationName = "ApplyCoupon"
	CreateInvoiceOperation        OperationName = "CreateInvoice"
	CreatePaymentOrderOperation   OperationName = "CreatePaymentOrder"
	GetInvoiceOperation           OperationName = "GetInvoice"
	GetOrderOperation             OperationName = "GetOrder"
	GetOrderInvoiceOperation      OperationName = "GetOrderInvoice"
	GetProductOperation           OperationName = "GetProduct"
	ListProductsOperation         OperationName = "ListProducts"
	PlaceOrderOperation           OperationName = "PlaceOrder"
	UpdateOrderStatusOperation    OperationName = "UpdateOrderStatus"
	UpdatePaymentGatewayOperation OperationName = "UpdatePaymentGateway"
	ValidateCouponOperation       OperationName = "ValidateCoupon"
	VerifyPaymentOperation        OperationName = "VerifyPayment"
)
