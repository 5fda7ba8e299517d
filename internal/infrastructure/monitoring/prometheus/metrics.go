package prometheus

// ClusteringMetrics are recorded by the clustering engine.
type ClusteringMetrics struct {
	RunsTotal            CounterVec
	RunDuration          HistogramVec
	MergesTotal          CounterVec
	MatrixEntries        GaugeVec
	DistanceComputeTotal CounterVec
	PatternsPerRun       HistogramVec
}

// HTTPMetrics are recorded by the API request middleware.
type HTTPMetrics struct {
	RequestsTotal   CounterVec
	RequestDuration HistogramVec
	ActiveRequests  GaugeVec
}

// Default Buckets
var (
	DefaultRunDurationBuckets  = []float64{.001, .01, .05, .1, .5, 1, 5, 15, 60, 300}
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultPatternBuckets      = []float64{2, 10, 50, 100, 250, 500, 1000, 2500, 5000}
)

// NewClusteringMetrics registers the engine metrics on c.
func NewClusteringMetrics(c MetricsCollector) *ClusteringMetrics {
	return &ClusteringMetrics{
		RunsTotal: c.RegisterCounter("clustering_runs_total",
			"Clustering runs by linkage, metric and outcome.", "linkage", "metric", "status"),
		RunDuration: c.RegisterHistogram("clustering_run_duration_seconds",
			"Wall time of a clustering run.", DefaultRunDurationBuckets, "linkage"),
		MergesTotal: c.RegisterCounter("clustering_merges_total",
			"Agglomeration steps performed.", "linkage"),
		MatrixEntries: c.RegisterGauge("clustering_matrix_entries",
			"Entries in the dissimilarity matrix after seeding.", "linkage"),
		DistanceComputeTotal: c.RegisterCounter("clustering_pairwise_distance_total",
			"Base pairwise distance computations.", "metric"),
		PatternsPerRun: c.RegisterHistogram("clustering_patterns",
			"Unique patterns per run.", DefaultPatternBuckets),
	}
}

// NewNoopClusteringMetrics returns metrics that record nothing.
func NewNoopClusteringMetrics() *ClusteringMetrics {
	return &ClusteringMetrics{
		RunsTotal:            noopCounterVec{},
		RunDuration:          noopHistogramVec{},
		MergesTotal:          noopCounterVec{},
		MatrixEntries:        noopGaugeVec{},
		DistanceComputeTotal: noopCounterVec{},
		PatternsPerRun:       noopHistogramVec{},
	}
}

// NewHTTPMetrics registers the API metrics on c.
func NewHTTPMetrics(c MetricsCollector) *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal: c.RegisterCounter("http_requests_total",
			"HTTP requests by method, route and status.", "method", "route", "status"),
		RequestDuration: c.RegisterHistogram("http_request_duration_seconds",
			"HTTP request latency.", DefaultHTTPDurationBuckets, "method", "route"),
		ActiveRequests: c.RegisterGauge("http_active_requests",
			"In-flight HTTP requests."),
	}
}

//Personal.AI order the ending
