// API server entry point for the dendrogram clustering service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/patent-dendrogram/internal/application/clustering"
	"github.com/turtacn/patent-dendrogram/internal/config"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/cli"
	httpserver "github.com/turtacn/patent-dendrogram/internal/interfaces/http"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/http/handlers"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/http/middleware"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: environment only)")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	watch := flag.Bool("watch", false, "reload clustering defaults when the config file changes")
	flag.Parse()

	if err := run(*configPath, *port, *watch); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, port int, watch bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	var (
		collector  prometheus.MetricsCollector
		runMetrics *prometheus.ClusteringMetrics
	)
	if cfg.Metrics.Enabled {
		collector, err = prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		}, logger)
		if err != nil {
			return fmt.Errorf("metrics initialization failed: %w", err)
		}
		runMetrics = prometheus.NewClusteringMetrics(collector)
	}

	svc := clustering.NewService(logger, runMetrics)
	health := handlers.NewHealthHandler(cli.Version, handlers.NewServiceCheck(svc, cfg.Clustering))
	clusterHandler := handlers.NewClusterHandler(svc, handlers.ClusterHandlerConfig{
		Defaults:    cfg.Clustering,
		MaxBodySize: cfg.Server.MaxBodySize,
		MaxPatterns: cfg.Server.MaxPatterns,
	}, logger.Named("api"))

	router := httpserver.NewRouter(httpserver.RouterConfig{
		HealthHandler:    health,
		ClusterHandler:   clusterHandler,
		Logger:           logger,
		LoggingConfig:    middleware.DefaultLoggingConfig(),
		MetricsCollector: collector,
	})
	srv := httpserver.NewServer(cfg.Server, router, health, logger)

	if watch && configPath != "" {
		err := config.Watch(configPath, func(next *config.Config) {
			clusterHandler.SetDefaults(next.Clustering)
			logger.Info("clustering defaults reloaded",
				logging.String("linkage", next.Clustering.Linkage),
				logging.String("metric", next.Clustering.Metric),
				logging.Int("k", next.Clustering.K))
		}, func(err error) {
			logger.Warn("config reload rejected", logging.Err(err))
		})
		if err != nil {
			return err
		}
	}

	logger.Info("starting dendrogram API server",
		logging.String("version", cli.Version),
		logging.String("addr", srv.Addr()),
		logging.String("linkage", cfg.Clustering.Linkage),
		logging.String("metric", cfg.Clustering.Metric))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("HTTP server shutdown error", logging.Err(err))
		return err
	}
	return <-errCh
}

// loadConfig reads configPath when given, otherwise DENDRO_* variables only.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

//Personal.AI order the ending
