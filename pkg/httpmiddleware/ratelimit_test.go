package httpmiddleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newLimited(cfg RateLimitConfig) (http.Handler, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg.Max, cfg.Window)
	return limit(l, cfg, clock.now)(okHandler()), clock
}

func hit(h http.Handler, path, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimit_OverLimit(t *testing.T) {
	h, _ := newLimited(RateLimitConfig{Max: 2, Window: time.Minute})

	for i := range 2 {
		w := hit(h, "/api/products", "10.0.0.1:9999")
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := hit(h, "/api/products", "10.0.0.1:1111")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["message"])

	assert.Equal(t, http.StatusOK, hit(h, "/api/products", "10.0.0.2:1234").Code, "other clients keep their budget")
}

func TestRateLimit_Prefixes(t *testing.T) {
	h, _ := newLimited(RateLimitConfig{Max: 1, Window: time.Minute, Prefixes: []string{"/api/coupons/"}})

	assert.Equal(t, http.StatusOK, hit(h, "/api/coupons/validate/SAVE10", "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "/api/coupons/validate/SAVE20", "10.0.0.1:1").Code)

	w := hit(h, "/api/products", "10.0.0.1:1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_SlidingWindow(t *testing.T) {
	h, clock := newLimited(RateLimitConfig{Max: 4, Window: time.Minute})

	for range 4 {
		require.Equal(t, http.StatusOK, hit(h, "/", "10.0.0.1:1").Code)
	}
	require.Equal(t, http.StatusTooManyRequests, hit(h, "/", "10.0.0.1:1").Code)

	// A quarter into the next window, 3/4 of the previous count still weighs in.
	clock.t = clock.t.Add(time.Minute + 15*time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "/", "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "/", "10.0.0.1:1").Code)

	clock.t = clock.t.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, hit(h, "/", "10.0.0.1:1").Code)
}

func TestRateLimit_ForwardedFor(t *testing.T) {
	cfg := RateLimitConfig{Max: 1, Window: time.Minute, TrustProxy: true}
	h, _ := newLimited(cfg)

	req := func(remote string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remote
		r.Header.Set("X-Forwarded-For", "203.0.113.50, 70.41.3.18")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, req("192.168.1.1:4444"))
	assert.Equal(t, http.StatusTooManyRequests, req("192.168.1.2:5555"))

	// Without TrustProxy the header is ignored.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.1:4444"
	r.Header.Set("X-Forwarded-For", "203.0.113.99")
	assert.Equal(t, "192.168.1.1", clientIP(r, false))
	assert.Equal(t, "203.0.113.99", clientIP(r, true))
}

func TestRateLimit_KeyFunc(t *testing.T) {
	h, _ := newLimited(RateLimitConfig{
		Max:     1,
		Window:  time.Minute,
		KeyFunc: func(r *http.Request) string { return r.Header.Get("Authorization") },
	})
	send := func(key string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", key)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, send("Bearer a"))
	assert.Equal(t, http.StatusTooManyRequests, send("Bearer a"))
	assert.Equal(t, http.StatusOK, send("Bearer b"))
}

func TestLimiter_Sweep(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	_, _, ok := l.Allow("a", now)
	require.True(t, ok)

	l.Sweep(now.Add(time.Minute))
	assert.Len(t, l.keys, 1)
	l.Sweep(now.Add(2 * time.Minute))
	assert.Empty(t, l.keys)
}
