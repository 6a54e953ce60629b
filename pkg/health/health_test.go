package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func get(t *testing.T, endpoint http.HandlerFunc) (int, statusBody) {
	t.Helper()
	w := httptest.NewRecorder()
	endpoint(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body statusBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func passing(context.Context) error { return nil }

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestLive(t *testing.T) {
	h := New()
	h.AddLivenessCheck("goroutines", passing)
	h.AddLivenessCheck("db", failing("connection refused"))

	code, body := get(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code, "checks start healthy")
	assert.Equal(t, "ok", body.Status)

	ctx := context.Background()
	for range 3 {
		h.liveness[1].run(ctx)
	}
	code, body = get(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, map[string]string{"goroutines": "ok", "db": "connection refused"}, body.Checks)
}

func TestReady(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", PingCheck(pinger{}))

	code, body := get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body.Checks, "_readiness")
	assert.False(t, h.IsReady())

	h.SetReady(true)
	code, body = get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]string{"postgres": "ok"}, body.Checks)
	assert.True(t, h.IsReady())

	h.SetReady(false)
	assert.False(t, h.IsReady())
}

func TestReady_DatabaseDown(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", PingCheck(pinger{err: errors.New("dial tcp: refused")}))
	h.AddReadinessCheck("other", passing)
	h.SetReady(true)

	for range 3 {
		h.readiness[0].run(context.Background())
	}
	code, body := get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "ping: dial tcp: refused", body.Checks["postgres"])
	assert.Equal(t, "ok", body.Checks["other"])
}

func TestThresholds(t *testing.T) {
	down := true
	h := New()
	h.AddLivenessCheck("flaky", func(context.Context) error {
		if down {
			return errors.New("down")
		}
		return nil
	}, WithThresholds(2, 2), WithTimeout(50*time.Millisecond))
	c := h.liveness[0]
	ctx := context.Background()

	c.run(ctx)
	assert.Empty(t, h.Live(), "one failure is below threshold")
	c.run(ctx)
	assert.Equal(t, map[string]string{"flaky": "down"}, h.Live())

	down = false
	c.run(ctx)
	assert.NotEmpty(t, h.Live(), "one pass is below threshold")
	c.run(ctx)
	assert.Empty(t, h.Live())
}

func TestCheckTimeout(t *testing.T) {
	h := New()
	h.AddReadinessCheck("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, WithTimeout(10*time.Millisecond), WithThresholds(1, 1))
	h.SetReady(true)

	h.readiness[0].run(context.Background())
	assert.Equal(t, context.DeadlineExceeded.Error(), h.Ready()["slow"])
}

func TestStartStop(t *testing.T) {
	h := New()
	h.AddLivenessCheck("goroutines", GoroutineCountCheck(100000))
	h.AddReadinessCheck("postgres", PingCheck(pinger{}))
	h.SetReady(true)

	h.Start(context.Background(), 5*time.Millisecond)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				h.IsReady()
				h.LiveEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/livez", nil))
			}
		}()
	}
	wg.Wait()

	h.Stop()
	h.Stop()
	assert.True(t, h.IsReady())
}

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, GoroutineCountCheck(100000)(ctx))
	err := GoroutineCountCheck(0)(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds threshold")

	assert.NoError(t, GCMaxPauseCheck(time.Hour)(ctx))
	assert.NoError(t, PingCheck(pinger{})(ctx))
}
