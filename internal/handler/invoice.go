package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/invoice"
)

func (h *Handler) domainToOASInvoice(inv *invoice.Invoice) *oas.Invoice {
	co := h.cfg.Company
	out := &oas.Invoice{
		ID:             inv.ID,
		InvoiceNumber:  inv.Number,
		OrderID:        inv.OrderID,
		OrderNumber:    inv.OrderNumber,
		CustomerID:     nilUUID(inv.CustomerID),
		CustomerName:   inv.CustomerName,
		CustomerEmail:  inv.CustomerEmail,
		CustomerPhone:  optString(inv.CustomerPhone),
		BillingAddress: inv.BillingAddress,
		Subtotal:       inv.Subtotal.InexactFloat64(),
		TaxAmount:      inv.TaxAmount.InexactFloat64(),
		ShippingAmount: inv.ShippingAmount.InexactFloat64(),
		DiscountAmount: inv.DiscountAmount.InexactFloat64(),
		TotalAmount:    inv.TotalAmount.InexactFloat64(),
		Currency:       inv.Currency,
		PaymentStatus:  inv.PaymentStatus,
		PaymentMethod:  inv.PaymentMethod,
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
		Company: oas.Company{
			Name:    co.Name,
			Address: co.Address,
			Gstin:   co.GSTIN,
			Email:   co.Email,
			Phone:   co.Phone,
		},
		Items: make([]oas.InvoiceItem, len(inv.Items)),
	}
	for i, it := range inv.Items {
		out.Items[i] = oas.InvoiceItem{
			ProductID:          it.ProductID,
			Description:        it.Description,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice.InexactFloat64(),
			DiscountPercentage: it.DiscountPercentage.InexactFloat64(),
			DiscountAmount:     it.DiscountAmount.InexactFloat64(),
			TaxableAmount:      it.TaxableAmount.InexactFloat64(),
			CgstPercentage:     it.CGSTPercentage.InexactFloat64(),
			CgstAmount:         it.CGSTAmount.InexactFloat64(),
			SgstPercentage:     it.SGSTPercentage.InexactFloat64(),
			SgstAmount:         it.SGSTAmount.InexactFloat64(),
			TotalAmount:        it.TotalAmount.InexactFloat64(),
		}
	}
	return out
}

// CreateInvoice issues the invoice for an order. A second call for the same
// order is rejected with 400 and leaves the existing invoice untouched.
func (h *Handler) CreateInvoice(ctx context.Context, params oas.CreateInvoiceParams) (*oas.InvoiceCreated, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	inv, created, err := h.deps.Invoices.Generate(ctx, params.OrderId)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, invoice.ErrAlreadyExists
	}
	return &oas.InvoiceCreated{
		InvoiceId:     inv.ID,
		InvoiceNumber: inv.Number,
	}, nil
}

// GetInvoice returns an invoice with the seller header.
func (h *Handler) GetInvoice(ctx context.Context, params oas.GetInvoiceParams) (*oas.Invoice, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	inv, err := h.deps.Invoices.Get(ctx, params.InvoiceId)
	if err != nil {
		return nil, err
	}
	if !p.Owns(inv.CustomerID) {
		return nil, errForbidden
	}
	return h.domainToOASInvoice(inv), nil
}

// GetOrderInvoice returns the invoice of an order the caller can see.
func (h *Handler) GetOrderInvoice(ctx context.Context, params oas.GetOrderInvoiceParams) (*oas.Invoice, error) {
	o, err := h.ownedOrder(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	return h.invoiceFor(ctx, o.ID)
}

func (h *Handler) invoiceFor(ctx context.Context, orderID uuid.UUID) (*oas.Invoice, error) {
	inv, err := h.deps.Invoices.ForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return h.domainToOASInvoice(inv), nil
}
