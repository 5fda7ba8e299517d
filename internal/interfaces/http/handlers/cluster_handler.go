package handlers

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/turtacn/patent-dendrogram/internal/application/clustering"
	"github.com/turtacn/patent-dendrogram/internal/config"
	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// ClusterRequest is the body of POST /api/v1/cluster and /api/v1/matrix.
// Empty selectors fall back to the server's clustering configuration.
type ClusterRequest struct {
	Patterns []pattern.Record `json:"patterns"`
	Linkage  string           `json:"linkage,omitempty"`
	Metric   string           `json:"metric,omitempty"`
	NGram    int              `json:"ngram,omitempty"`
	K        int              `json:"k,omitempty"`
}

// CatalogResponse is the body of GET /api/v1/catalog.
type CatalogResponse struct {
	Metrics  []distance.CatalogEntry `json:"metrics"`
	Linkages []distance.CatalogEntry `json:"linkages"`
}

// ClusterHandlerConfig bounds what a single request may ask for.
type ClusterHandlerConfig struct {
	Defaults    config.ClusteringConfig
	MaxBodySize int64
	MaxPatterns int // 0 means unbounded
}

// ClusterHandler serves the clustering endpoints.
type ClusterHandler struct {
	svc    clustering.Service
	logger logging.Logger

	mu  sync.RWMutex
	cfg ClusterHandlerConfig
}

// NewClusterHandler creates a new ClusterHandler.
func NewClusterHandler(svc clustering.Service, cfg ClusterHandlerConfig, logger logging.Logger) *ClusterHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ClusterHandler{svc: svc, cfg: cfg, logger: logger}
}

// SetDefaults replaces the clustering options applied to requests that
// leave them empty.  Requests already parsed keep the old defaults.
func (h *ClusterHandler) SetDefaults(defaults config.ClusteringConfig) {
	h.mu.Lock()
	h.cfg.Defaults = defaults
	h.mu.Unlock()
}

func (h *ClusterHandler) snapshot() ClusterHandlerConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// Cluster handles POST /api/v1/cluster.
func (h *ClusterHandler) Cluster(w http.ResponseWriter, r *http.Request) {
	store, opts, err := h.parse(w, r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	report, err := h.svc.Cluster(r.Context(), store, opts)
	if err != nil {
		h.logFailure("cluster", err)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Matrix handles POST /api/v1/matrix.  The dump is buffered so a failure
// can still be reported as a JSON error.
func (h *ClusterHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	store, opts, err := h.parse(w, r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.Matrix(r.Context(), store, opts, &buf); err != nil {
		h.logFailure("matrix", err)
		writeAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Catalog handles GET /api/v1/catalog.
func (h *ClusterHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{
		Metrics:  distance.MetricCatalog(),
		Linkages: distance.LinkageCatalog(),
	})
}

func (h *ClusterHandler) parse(w http.ResponseWriter, r *http.Request) (*pattern.Store, clustering.Options, error) {
	cfg := h.snapshot()
	var req ClusterRequest
	if err := decodeJSON(w, r, cfg.MaxBodySize, &req); err != nil {
		return nil, clustering.Options{}, err
	}
	if len(req.Patterns) == 0 {
		return nil, clustering.Options{}, errors.Validation("patterns must not be empty")
	}
	if cfg.MaxPatterns > 0 && len(req.Patterns) > cfg.MaxPatterns {
		return nil, clustering.Options{}, errors.Errorf(errors.ErrCodeValidation,
			"too many patterns: %d > %d", len(req.Patterns), cfg.MaxPatterns)
	}

	cc := cfg.Defaults
	if req.Linkage != "" {
		cc.Linkage = req.Linkage
	}
	if req.Metric != "" {
		cc.Metric = req.Metric
	}
	if req.NGram != 0 {
		cc.NGram = req.NGram
	}
	if req.K != 0 {
		cc.K = req.K
	}
	opts, err := cc.EngineOptions()
	if err != nil {
		return nil, clustering.Options{}, err
	}

	store, err := pattern.FromRecords(req.Patterns)
	if err != nil {
		return nil, clustering.Options{}, err
	}
	return store, opts, nil
}

func (h *ClusterHandler) logFailure(op string, err error) {
	fields := []logging.Field{logging.String("operation", op), logging.Err(err)}
	if errors.IsServerError(errors.GetCode(err)) {
		h.logger.Error("request failed", fields...)
		return
	}
	h.logger.Debug("request rejected", fields...)
}

// ServiceCheck probes the clustering service with a two-pattern run under
// the server's default options.
type ServiceCheck struct {
	svc  clustering.Service
	opts config.ClusteringConfig
}

// NewServiceCheck creates a readiness checker for svc.
func NewServiceCheck(svc clustering.Service, defaults config.ClusteringConfig) *ServiceCheck {
	return &ServiceCheck{svc: svc, opts: defaults}
}

func (c *ServiceCheck) Name() string { return "clustering" }

func (c *ServiceCheck) Check(ctx context.Context) error {
	opts, err := c.opts.EngineOptions()
	if err != nil {
		return err
	}
	opts.K = 1
	store, err := pattern.FromStrings(
		[]string{"acme fund", "zeta fund"},
		[]string{"probe-a", "probe-b"},
		[]string{"", ""})
	if err != nil {
		return err
	}
	_, err = c.svc.Cluster(ctx, store, opts)
	return err
}

//Personal.AI order the ending
