//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	resp := doGet(t, "/api/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeJSON[[]productResponse](t, resp)
	require.Len(t, products, activeProducts)
	for _, p := range products {
		assert.NotEqual(t, "BRC-TNS-002", p.ID, "inactive product listed")
	}
}

func TestGetProduct(t *testing.T) {
	resp := doGet(t, "/api/products/RING-SOL-001")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	p := decodeJSON[productResponse](t, resp)
	assert.Equal(t, "Solitaire Diamond Ring", p.Name)
	assert.Equal(t, 45999.0, p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 52999.0, *p.OriginalPrice)
	assert.Equal(t, "rings", p.Category)
}

func TestGetProduct_NotFound(t *testing.T) {
	resp := doGet(t, "/api/products/NOPE-999")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeJSON[errorResponse](t, resp)
	assert.NotEmpty(t, body.Message)
}
