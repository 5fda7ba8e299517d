// Package config defines the configuration structures of the dendrogram
// tools.  No I/O or parsing logic lives here, only plain data types and
// validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/patent-dendrogram/internal/application/clustering"
	"github.com/turtacn/patent-dendrogram/internal/application/ingest"
	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	MaxPatterns     int           `mapstructure:"max_patterns"`
}

// ClusteringConfig selects the merge criterion and pairwise metric.
type ClusteringConfig struct {
	Linkage string `mapstructure:"linkage"` // single | complete | average_wpgma | average_upgma
	Metric  string `mapstructure:"metric"`
	NGram   int    `mapstructure:"ngram"`
	K       int    `mapstructure:"k"`
	Workers int    `mapstructure:"workers"` // 0 means GOMAXPROCS
}

// IngestConfig locates the document corpus.
type IngestConfig struct {
	FileList  string `mapstructure:"file_list"`
	Limit     int    `mapstructure:"limit"`
	Selection string `mapstructure:"selection"` // field | unparsed
}

// MetricsConfig controls the Prometheus registry.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the root configuration object.
type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Clustering ClusteringConfig  `mapstructure:"clustering"`
	Ingest     IngestConfig      `mapstructure:"ingest"`
	Log        logging.LogConfig `mapstructure:"log"`
	Metrics    MetricsConfig     `mapstructure:"metrics"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversions
// ─────────────────────────────────────────────────────────────────────────────

// EngineOptions converts the clustering section into engine options.
func (c ClusteringConfig) EngineOptions() (clustering.Options, error) {
	linkage, err := distance.ParseLinkage(c.Linkage)
	if err != nil {
		return clustering.Options{}, err
	}
	metric, err := distance.ParseMetric(c.Metric)
	if err != nil {
		return clustering.Options{}, err
	}
	return clustering.Options{
		Linkage:  linkage,
		Distance: distance.Config{Metric: metric, NGram: c.NGram},
		K:        c.K,
		Workers:  c.Workers,
	}, nil
}

// CorpusOptions converts the ingest section into corpus loading options.
func (c IngestConfig) CorpusOptions() (ingest.CorpusOptions, error) {
	sel, err := ingest.ParseSelection(c.Selection)
	if err != nil {
		return ingest.CorpusOptions{}, err
	}
	return ingest.CorpusOptions{Limit: c.Limit, Selection: sel}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	if c.Server.MaxBodySize < 0 {
		return fmt.Errorf("config: server.max_body_size must be ≥ 0, got %d", c.Server.MaxBodySize)
	}
	if c.Server.MaxPatterns < 0 {
		return fmt.Errorf("config: server.max_patterns must be ≥ 0, got %d", c.Server.MaxPatterns)
	}

	// Clustering
	if _, err := distance.ParseLinkage(c.Clustering.Linkage); err != nil {
		return fmt.Errorf("config: clustering.linkage %q is invalid; expected one of %v", c.Clustering.Linkage, distance.AllLinkages())
	}
	if _, err := distance.ParseMetric(c.Clustering.Metric); err != nil {
		return fmt.Errorf("config: clustering.metric %q is invalid", c.Clustering.Metric)
	}
	if c.Clustering.NGram < 1 {
		return fmt.Errorf("config: clustering.ngram must be ≥ 1, got %d", c.Clustering.NGram)
	}
	if c.Clustering.K < 1 {
		return fmt.Errorf("config: clustering.k must be ≥ 1, got %d", c.Clustering.K)
	}
	if c.Clustering.Workers < 0 {
		return fmt.Errorf("config: clustering.workers must be ≥ 0, got %d", c.Clustering.Workers)
	}

	// Ingest
	if c.Ingest.Limit < 0 {
		return fmt.Errorf("config: ingest.limit must be ≥ 0, got %d", c.Ingest.Limit)
	}
	if _, err := ingest.ParseSelection(c.Ingest.Selection); err != nil {
		return fmt.Errorf("config: ingest.selection %q is invalid; expected field|unparsed", c.Ingest.Selection)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	switch c.Log.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("config: log.output %q is invalid; expected stdout|stderr", c.Log.Output)
	}

	// Metrics
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("config: metrics.namespace is required when metrics are enabled")
	}

	return nil
}

//Personal.AI order the ending
