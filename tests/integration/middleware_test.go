//go:build integration

package integration

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	resp := doGet(t, "/api/orders/00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36, "error responses carry a minted id")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, baseURL+"/api/products", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "checkout-7f3a")
	resp, err = httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "checkout-7f3a", resp.Header.Get("X-Request-ID"))
}

func TestCORS_PreflightAllowsAPIKey(t *testing.T) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodOptions, baseURL+"/api/coupons/apply", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "api_key, content-type")

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "api_key")
}

func TestCORS_ExposesRequestID(t *testing.T) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, baseURL+"/api/products", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://shop.example.com")

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Expose-Headers"), "X-Request-ID")
}

func remaining(t *testing.T, resp *http.Response) int {
	t.Helper()
	n, err := strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))
	require.NoError(t, err)
	return n
}

func TestRateLimit_CouponBudget(t *testing.T) {
	products := doGet(t, "/api/products")
	require.Equal(t, http.StatusOK, products.StatusCode)
	assert.Equal(t, strconv.Itoa(rateLimitMax), products.Header.Get("X-RateLimit-Limit"))

	first := doGet(t, "/api/coupons/validate/SAVE10?orderAmount=6000")
	require.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, strconv.Itoa(couponRateLimitMax), first.Header.Get("X-RateLimit-Limit"))

	second := doGet(t, "/api/coupons/validate/SAVE10?orderAmount=6000")
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Less(t, remaining(t, second), remaining(t, first))
	assert.Less(t, remaining(t, second), couponRateLimitMax)

	// Coupon calls draw from the general budget too, which stays far larger.
	after := doGet(t, "/api/products")
	assert.Greater(t, remaining(t, after), couponRateLimitMax)
}
