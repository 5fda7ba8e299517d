package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/turtacn/patent-dendrogram/internal/application/ingest"
	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
)

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort            = 8080
	DefaultServerReadTimeout     = 30 * time.Second
	DefaultServerWriteTimeout    = 5 * time.Minute
	DefaultServerShutdownTimeout = 15 * time.Second
	DefaultServerMaxBodySize     = 32 << 20
	DefaultServerMaxPatterns     = 5000

	DefaultLinkage = string(distance.DefaultLinkage)
	DefaultMetric  = string(distance.DefaultMetric)
	DefaultNGram   = distance.DefaultNGram
	DefaultK       = 1

	DefaultIngestLimit     = ingest.DefaultLimit
	DefaultIngestSelection = string(ingest.DefaultSelection)

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stderr"

	DefaultMetricsNamespace = "dendro"
)

// ApplyDefaults fills every zero-value field in cfg with its default.
// Fields that have already been set are left unchanged so that explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultServerReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultServerWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultServerShutdownTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultServerMaxBodySize
	}
	if cfg.Server.MaxPatterns == 0 {
		cfg.Server.MaxPatterns = DefaultServerMaxPatterns
	}

	// ── Clustering ────────────────────────────────────────────────────────────
	if cfg.Clustering.Linkage == "" {
		cfg.Clustering.Linkage = DefaultLinkage
	}
	if cfg.Clustering.Metric == "" {
		cfg.Clustering.Metric = DefaultMetric
	}
	if cfg.Clustering.NGram == 0 {
		cfg.Clustering.NGram = DefaultNGram
	}
	if cfg.Clustering.K == 0 {
		cfg.Clustering.K = DefaultK
	}

	// ── Ingest ────────────────────────────────────────────────────────────────
	if cfg.Ingest.Limit == 0 {
		cfg.Ingest.Limit = DefaultIngestLimit
	}
	if cfg.Ingest.Selection == "" {
		cfg.Ingest.Selection = DefaultIngestSelection
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = DefaultLogOutput
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// setDefaults registers every key with viper so that environment-only
// configuration reaches Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultServerReadTimeout)
	v.SetDefault("server.write_timeout", DefaultServerWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultServerShutdownTimeout)
	v.SetDefault("server.max_body_size", DefaultServerMaxBodySize)
	v.SetDefault("server.max_patterns", DefaultServerMaxPatterns)

	v.SetDefault("clustering.linkage", DefaultLinkage)
	v.SetDefault("clustering.metric", DefaultMetric)
	v.SetDefault("clustering.ngram", DefaultNGram)
	v.SetDefault("clustering.k", DefaultK)
	v.SetDefault("clustering.workers", 0)

	v.SetDefault("ingest.file_list", "")
	v.SetDefault("ingest.limit", DefaultIngestLimit)
	v.SetDefault("ingest.selection", DefaultIngestSelection)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output", DefaultLogOutput)
	v.SetDefault("log.file.path", "")
	v.SetDefault("log.file.max_size_mb", 0)
	v.SetDefault("log.file.max_backups", 0)
	v.SetDefault("log.file.max_age_days", 0)
	v.SetDefault("log.file.compress", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
}

//Personal.AI order the ending
