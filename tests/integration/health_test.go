//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivez(t *testing.T) {
	resp := doGet(t, "/livez")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[healthResponse](t, resp)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, map[string]string{"gc": "ok", "goroutines": "ok"}, body.Checks)
}

func TestReadyz_Postgres(t *testing.T) {
	resp := doGet(t, "/readyz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[healthResponse](t, resp)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "ok", body.Checks["postgres"])
	assert.NotContains(t, body.Checks, "_readiness")
}

func TestHealthBypassesAPIMiddleware(t *testing.T) {
	resp := doGet(t, "/readyz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("X-RateLimit-Limit"), "health checks are not rate limited")
}
