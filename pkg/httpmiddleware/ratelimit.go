package httpmiddleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// RateLimitConfig configures a sliding-window limiter.
type RateLimitConfig struct {
	// Max requests per Window and key.
	Max    int
	Window time.Duration
	// Prefixes restricts the limiter to matching paths. Empty limits all paths.
	Prefixes []string
	// TrustProxy keys clients by the first X-Forwarded-For hop instead of the
	// connection address. Enable only behind a proxy that sets the header.
	TrustProxy bool
	// KeyFunc overrides the client key.
	KeyFunc func(*http.Request) string
}

// counters holds the request counts of the current and previous windows.
type counters struct {
	start time.Time
	curr  float64
	prev  float64
}

// Limiter approximates a sliding window by weighting the previous fixed
// window by its remaining overlap.
type Limiter struct {
	max    int
	window time.Duration

	mu   sync.Mutex
	keys map[string]*counters
}

// NewLimiter creates a Limiter allowing max requests per window.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{max: max, window: window, keys: make(map[string]*counters)}
}

// Allow counts a request for key at now. It returns the remaining budget,
// the end of the current window and whether the request is admitted.
func (l *Limiter) Allow(key string, now time.Time) (remaining int, reset time.Time, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := now.Truncate(l.window)
	c, found := l.keys[key]
	switch {
	case !found:
		c = &counters{start: start}
		l.keys[key] = c
	case start.Sub(c.start) >= 2*l.window:
		c.start, c.curr, c.prev = start, 0, 0
	case !start.Equal(c.start):
		c.start, c.prev, c.curr = start, c.curr, 0
	}

	overlap := 1 - float64(now.Sub(c.start))/float64(l.window)
	used := c.prev*overlap + c.curr
	reset = c.start.Add(l.window)
	if used >= float64(l.max) {
		return 0, reset, false
	}
	c.curr++
	return max(l.max-int(math.Ceil(used+1)), 0), reset, true
}

// Sweep drops keys idle for two windows.
func (l *Limiter) Sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.keys {
		if now.Sub(c.start) >= 2*l.window {
			delete(l.keys, key)
		}
	}
}

// RunSweeper sweeps every two windows until ctx is done.
func (l *Limiter) RunSweeper(ctx context.Context) {
	t := time.NewTicker(2 * l.window)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			l.Sweep(now)
		}
	}
}

// RateLimit rejects clients over budget with 429 and reports the budget in
// X-RateLimit-* headers. Stale keys are swept in the background until ctx is
// done.
func RateLimit(ctx context.Context, cfg RateLimitConfig) Middleware {
	l := NewLimiter(cfg.Max, cfg.Window)
	go l.RunSweeper(ctx)
	return limit(l, cfg, time.Now)
}

func limit(l *Limiter, cfg RateLimitConfig, now func() time.Time) Middleware {
	key := cfg.KeyFunc
	if key == nil {
		key = func(r *http.Request) string { return clientIP(r, cfg.TrustProxy) }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matchesPrefix(r.URL.Path, cfg.Prefixes) {
				next.ServeHTTP(w, r)
				return
			}
			k := key(r)
			t := now()
			remaining, reset, ok := l.Allow(k, t)

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
			if !ok {
				retry := math.Ceil(max(reset.Sub(t), 0).Seconds())
				h.Set("Retry-After", strconv.Itoa(int(retry)))
				zctx.From(r.Context()).Info("Rate limited",
					zap.String("client", k),
					zap.String("path", r.URL.Path),
				)
				writeMessage(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if ip := r.Header.Get("X-Real-IP"); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
