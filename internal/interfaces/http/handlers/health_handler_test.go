package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                    { return s.name }
func (s stubChecker) Check(ctx context.Context) error { return s.err }

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler("1.2.3")
	w := httptest.NewRecorder()
	h.Liveness(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp LivenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.NotEmpty(t, resp.Uptime)
}

func readiness(t *testing.T, h *HealthHandler) (int, ReadinessResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Run("no checkers", func(t *testing.T) {
		code, resp := readiness(t, NewHealthHandler("v"))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ready", resp.Status)
		assert.Empty(t, resp.Components)
	})

	t.Run("all healthy", func(t *testing.T) {
		code, resp := readiness(t, NewHealthHandler("v", stubChecker{name: "a"}, stubChecker{name: "b"}))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ready", resp.Status)
		require.Len(t, resp.Components, 2)
		assert.Equal(t, "healthy", resp.Components["a"].Status)
	})

	t.Run("one failing", func(t *testing.T) {
		h := NewHealthHandler("v", stubChecker{name: "a"}, stubChecker{name: "b", err: fmt.Errorf("boom")})
		code, resp := readiness(t, h)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "not_ready", resp.Status)
		assert.Equal(t, "unhealthy", resp.Components["b"].Status)
		assert.Equal(t, "boom", resp.Components["b"].Error)
	})

	t.Run("draining", func(t *testing.T) {
		h := NewHealthHandler("v", stubChecker{name: "a"})
		h.SetDraining()
		code, resp := readiness(t, h)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "draining", resp.Status)
	})
}

//Personal.AI order the ending
