package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/friendlyid/pkg/health"
)

func ok(context.Context) error { return nil }

func failing(context.Context) error { return errors.New("connection refused") }

func slow(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()
		resp, err := health.Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, health.StatusHealthy, resp.Status)
		assert.Empty(t, resp.Checks)
	})

	t.Run("all passing", func(t *testing.T) {
		t.Parallel()
		resp, err := health.Run(context.Background(), health.Checks{"postgres": ok, "redis": ok})
		require.NoError(t, err)
		assert.Equal(t, health.StatusHealthy, resp.Status)
		assert.Len(t, resp.Checks, 2)
		assert.Equal(t, health.StatusHealthy, resp.Checks["redis"].Status)
	})

	t.Run("one failing", func(t *testing.T) {
		t.Parallel()
		resp, err := health.Run(context.Background(), health.Checks{"postgres": ok, "redis": failing})
		require.ErrorIs(t, err, health.ErrCheckFailed)
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.StatusHealthy, resp.Checks["postgres"].Status)
		assert.Equal(t, "connection refused", resp.Checks["redis"].Error)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		resp, err := health.Run(context.Background(), health.Checks{"postgres": slow},
			health.WithTimeout(20*time.Millisecond))
		require.ErrorIs(t, err, health.ErrCheckTimeout)
		assert.NotErrorIs(t, err, health.ErrCheckFailed)
		assert.Equal(t, health.StatusUnhealthy, resp.Checks["postgres"].Status)
	})
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live?format=json", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthy plain", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.ReadinessHandler(health.Checks{"postgres": ok})(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("unhealthy plain", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.ReadinessHandler(health.Checks{"redis": failing})(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable", rec.Body.String())
	})

	t.Run("unhealthy json via accept", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		health.ReadinessHandler(health.Checks{"postgres": ok, "redis": failing})(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.StatusHealthy, resp.Checks["postgres"].Status)
		assert.Equal(t, health.StatusUnhealthy, resp.Checks["redis"].Status)
	})
}

func TestHandlers_NoStore(t *testing.T) {
	t.Parallel()

	for name, h := range map[string]http.HandlerFunc{
		"live":  health.LivenessHandler(),
		"ready": health.ReadinessHandler(nil),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}
