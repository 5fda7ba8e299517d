package prometheus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClusteringMetrics_Registers(t *testing.T) {
	c := newTestCollector(t)
	m := NewClusteringMetrics(c)

	m.RunsTotal.WithLabelValues("single", "jaccard_distance", "ok").Inc()
	m.MergesTotal.WithLabelValues("single").Add(3)
	m.MatrixEntries.WithLabelValues("single").Set(6)
	m.DistanceComputeTotal.WithLabelValues("jaccard_distance").Add(6)
	m.RunDuration.WithLabelValues("single").Observe(0.01)
	m.PatternsPerRun.WithLabelValues().Observe(4)

	out := scrapeMetrics(t, c)
	assert.Contains(t, out, `test_unit_clustering_runs_total{linkage="single",metric="jaccard_distance",status="ok"} 1`)
	assert.Contains(t, out, `test_unit_clustering_merges_total{linkage="single"} 3`)
	assert.Contains(t, out, `test_unit_clustering_matrix_entries{linkage="single"} 6`)
	assert.Contains(t, out, `test_unit_clustering_pairwise_distance_total{metric="jaccard_distance"} 6`)
	assert.Contains(t, out, "test_unit_clustering_run_duration_seconds_bucket")
	assert.Contains(t, out, "test_unit_clustering_patterns_count 1")
}

func TestNewClusteringMetrics_Twice(t *testing.T) {
	c := newTestCollector(t)
	NewClusteringMetrics(c).MergesTotal.WithLabelValues("complete").Inc()
	NewClusteringMetrics(c).MergesTotal.WithLabelValues("complete").Inc()

	assert.Contains(t, scrapeMetrics(t, c), `test_unit_clustering_merges_total{linkage="complete"} 2`)
}

func TestNewNoopClusteringMetrics(t *testing.T) {
	m := NewNoopClusteringMetrics()
	assert.NotPanics(t, func() {
		m.RunsTotal.WithLabelValues("a", "b", "c").Inc()
		m.MatrixEntries.WithLabelValues("a").Set(1)
		m.RunDuration.WithLabelValues("a").Observe(1)
	})
}

func TestNewHTTPMetrics_Registers(t *testing.T) {
	c := newTestCollector(t)
	m := NewHTTPMetrics(c)
	m.RequestsTotal.WithLabelValues("POST", "/api/v1/cluster", "200").Inc()
	m.ActiveRequests.WithLabelValues().Inc()

	out := scrapeMetrics(t, c)
	assert.Contains(t, out, `test_unit_http_requests_total{method="POST",route="/api/v1/cluster",status="200"} 1`)
	assert.Contains(t, out, "test_unit_http_active_requests 1")
}

//Personal.AI order the ending
