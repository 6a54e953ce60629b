// Package health serves the liveness and readiness endpoints.
//
// Every registered check runs on its own ticker. A check flips to unhealthy
// only after FailureThreshold consecutive failures and back after
// SuccessThreshold consecutive passes, so a single slow database ping does not
// pull the pod out of rotation.
package health

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-faster/jx"
)

const statusOK = "ok"

// CheckFunc returns nil when the checked component is healthy.
type CheckFunc func(ctx context.Context) error

// Option tunes a registered check.
type Option func(*checker)

// WithTimeout bounds a single check run. Default is one second.
func WithTimeout(d time.Duration) Option {
	return func(c *checker) { c.timeout = d }
}

// WithThresholds sets how many consecutive failures mark a check unhealthy
// and how many consecutive passes restore it. Defaults are 3 and 1.
func WithThresholds(failures, successes int) Option {
	return func(c *checker) {
		c.failureThreshold = max(failures, 1)
		c.successThreshold = max(successes, 1)
	}
}

// checker is one registered check. run is only ever called from its own
// ticker goroutine (or a test), so the streak counters need no locking.
type checker struct {
	name             string
	check            CheckFunc
	timeout          time.Duration
	failureThreshold int
	successThreshold int

	healthy atomic.Bool
	lastErr atomic.Pointer[error]

	fails  int
	passes int
}

func newChecker(name string, check CheckFunc, opts []Option) *checker {
	c := &checker{
		name:             name,
		check:            check,
		timeout:          time.Second,
		failureThreshold: 3,
		successThreshold: 1,
	}
	for _, o := range opts {
		o(c)
	}
	c.healthy.Store(true)
	return c
}

func (c *checker) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.check(ctx)
	c.lastErr.Store(&err)
	if err != nil {
		c.passes = 0
		c.fails++
		if c.fails >= c.failureThreshold {
			c.healthy.Store(false)
		}
		return
	}
	c.fails = 0
	c.passes++
	if c.passes >= c.successThreshold {
		c.healthy.Store(true)
	}
}

func (c *checker) failure() (string, bool) {
	if c.healthy.Load() {
		return "", false
	}
	if e := c.lastErr.Load(); e != nil && *e != nil {
		return (*e).Error(), true
	}
	return "check is unhealthy", true
}

func (c *checker) loop(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	c.run(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.run(ctx)
		}
	}
}

// Health holds the liveness and readiness checks of the service.
type Health struct {
	ready atomic.Bool

	mu        sync.RWMutex
	liveness  []*checker
	readiness []*checker
	cancel    context.CancelFunc
}

// New creates a Health that reports not ready until SetReady(true).
func New() *Health {
	return &Health{}
}

// AddLivenessCheck registers a check that reports whether the process works.
func (h *Health) AddLivenessCheck(name string, check CheckFunc, opts ...Option) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.liveness = append(h.liveness, newChecker(name, check, opts))
}

// AddReadinessCheck registers a check that gates incoming traffic, such as
// database connectivity.
func (h *Health) AddReadinessCheck(name string, check CheckFunc, opts ...Option) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readiness = append(h.readiness, newChecker(name, check, opts))
}

// Start runs every registered check every interval until Stop or ctx is done.
func (h *Health) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	h.cancel = cancel
	checks := slices.Concat(h.liveness, h.readiness)
	h.mu.Unlock()

	for _, c := range checks {
		go c.loop(ctx, interval)
	}
}

// Stop cancels the check goroutines. It is idempotent.
func (h *Health) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// SetReady toggles the manual readiness gate. Graceful shutdown sets it to
// false so load balancers drain the instance before the server stops.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Live returns the failing liveness checks, keyed by name.
func (h *Health) Live() map[string]string {
	h.mu.RLock()
	checks := slices.Clone(h.liveness)
	h.mu.RUnlock()
	return failures(checks)
}

// Ready returns the failing readiness checks, keyed by name. A cleared
// readiness gate is reported as "_readiness".
func (h *Health) Ready() map[string]string {
	h.mu.RLock()
	checks := slices.Clone(h.readiness)
	h.mu.RUnlock()

	out := failures(checks)
	if !h.ready.Load() {
		out["_readiness"] = "service is not ready"
	}
	return out
}

// IsReady reports whether traffic should be routed to this instance.
func (h *Health) IsReady() bool {
	return len(h.Ready()) == 0
}

func failures(checks []*checker) map[string]string {
	out := make(map[string]string)
	for _, c := range checks {
		if msg, failed := c.failure(); failed {
			out[c.name] = msg
		}
	}
	return out
}

// report lists every check by name: "ok" when it passes, the failure
// otherwise.
func report(checks []*checker) map[string]string {
	out := make(map[string]string, len(checks))
	for _, c := range checks {
		if msg, failed := c.failure(); failed {
			out[c.name] = msg
			continue
		}
		out[c.name] = statusOK
	}
	return out
}

// LiveEndpoint serves /livez.
func (h *Health) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	checks := slices.Clone(h.liveness)
	h.mu.RUnlock()
	writeStatus(w, report(checks))
}

// ReadyEndpoint serves /readyz.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	checks := slices.Clone(h.readiness)
	h.mu.RUnlock()

	out := report(checks)
	if !h.ready.Load() {
		out["_readiness"] = "service is not ready"
	}
	writeStatus(w, out)
}

// writeStatus renders the overall status and every check, with 503 when any
// check fails.
func writeStatus(w http.ResponseWriter, checks map[string]string) {
	status, code := statusOK, http.StatusOK
	for _, v := range checks {
		if v != statusOK {
			status, code = "unhealthy", http.StatusServiceUnavailable
			break
		}
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("status")
	e.Str(status)
	if len(checks) > 0 {
		e.FieldStart("checks")
		e.ObjStart()
		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			e.FieldStart(name)
			e.Str(checks[name])
		}
		e.ObjEnd()
	}
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(e.Bytes())
}
