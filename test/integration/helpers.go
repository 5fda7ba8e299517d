// Package integration exercises the dendrogram pipeline end to end: corpus
// files on disk, the clustering service, and the HTTP API in front of it.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turtacn/patent-dendrogram/internal/application/clustering"
	"github.com/turtacn/patent-dendrogram/internal/config"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/turtacn/patent-dendrogram/internal/interfaces/http"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/http/handlers"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/http/middleware"
	"github.com/turtacn/patent-dendrogram/internal/testutil"
)

// SkipIfShort skips integration tests under -short.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}
}

// TestEnvironment wires the service and API the way cmd/apiserver does.
type TestEnvironment struct {
	Config    *config.Config
	Logger    *testutil.MockLogger
	Collector prometheus.MetricsCollector
	Service   clustering.Service
	Server    *httptest.Server
}

// SetupTestEnvironment starts an API server on a loopback port.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	require.NoError(t, cfg.Validate())

	logger := testutil.NewMockLogger()
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "it"}, logger)
	require.NoError(t, err)

	svc := clustering.NewService(logger, prometheus.NewClusteringMetrics(collector))
	health := handlers.NewHealthHandler("it", handlers.NewServiceCheck(svc, cfg.Clustering))
	router := httpserver.NewRouter(httpserver.RouterConfig{
		HealthHandler: health,
		ClusterHandler: handlers.NewClusterHandler(svc, handlers.ClusterHandlerConfig{
			Defaults:    cfg.Clustering,
			MaxBodySize: cfg.Server.MaxBodySize,
			MaxPatterns: cfg.Server.MaxPatterns,
		}, logger),
		Logger:           logger,
		LoggingConfig:    middleware.DefaultLoggingConfig(),
		MetricsCollector: collector,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &TestEnvironment{
		Config:    cfg,
		Logger:    logger,
		Collector: collector,
		Service:   svc,
		Server:    srv,
	}
}

// PostJSON sends body to path; the caller closes the response.
func (env *TestEnvironment) PostJSON(t *testing.T, path string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(env.Server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

// DecodeJSON decodes and closes resp.Body.
func DecodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

//Personal.AI order the ending
