package handler

import (
	"context"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/product"
)

// domainToOASProduct converts a domain product into the ogen response type.
func domainToOASProduct(p product.Product) oas.Product {
	return oas.Product{
		ID:                 p.ID,
		Name:               p.Name,
		Price:              p.Price.InexactFloat64(),
		OriginalPrice:      optFloat(p.OriginalPrice),
		DiscountPercentage: p.DiscountPercentage.InexactFloat64(),
		Category:           p.Category,
	}
}

// ListProducts returns the active catalog.
func (h *Handler) ListProducts(ctx context.Context) ([]oas.Product, error) {
	products, err := h.deps.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]oas.Product, len(products))
	for i, p := range products {
		out[i] = domainToOASProduct(p)
	}
	return out, nil
}

// GetProduct returns one active product.
func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (*oas.Product, error) {
	p, err := h.deps.Products.GetByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, product.ErrNotFound
	}
	resp := domainToOASProduct(*p)
	return &resp, nil
}
