package client

import (
	"context"
	"net/http"
)

// Pattern is one input document.  Attribute must be a float64 or a string.
type Pattern struct {
	Attribute interface{} `json:"attribute"`
	FileName  string      `json:"file_name"`
	FileText  string      `json:"file_text,omitempty"`
}

// NumericPattern builds a pattern clustered on v.
func NumericPattern(v float64, fileName string) Pattern {
	return Pattern{Attribute: v, FileName: fileName}
}

// TextPattern builds a pattern clustered on s.
func TextPattern(s, fileName string) Pattern {
	return Pattern{Attribute: s, FileName: fileName}
}

// ClusterRequest selects the job.  Empty fields use the server defaults.
type ClusterRequest struct {
	Patterns []Pattern `json:"patterns"`
	Linkage  string    `json:"linkage,omitempty"`
	Metric   string    `json:"metric,omitempty"`
	NGram    int       `json:"ngram,omitempty"`
	K        int       `json:"k,omitempty"`
}

// Merge is one agglomeration step.
type Merge struct {
	Step     int     `json:"step"`
	Left     int     `json:"left"`
	Right    int     `json:"right"`
	Merged   int     `json:"merged"`
	Distance float64 `json:"distance"`
	Size     int     `json:"size"`
}

// Group is the flat membership of one final cluster.
type Group struct {
	Index     int      `json:"index"`
	ClusterID int      `json:"cluster_id"`
	Distance  float64  `json:"distance"`
	Size      int      `json:"size"`
	Depth     int      `json:"depth"`
	Files     []string `json:"files"`
	Members   *Node    `json:"members,omitempty"`
}

// Node is a dendrogram node; leaves are labelled by file name.
type Node struct {
	Label     string   `json:"label"`
	ClusterID *int     `json:"cluster_id,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	FileText  string   `json:"file_text,omitempty"`
	Children  []*Node  `json:"children,omitempty"`
}

// Leaves returns the leaf labels beneath n, left to right.
func (n *Node) Leaves() []string {
	if len(n.Children) == 0 {
		return []string{n.Label}
	}
	var out []string
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Options echoes the options the server ran with.
type Options struct {
	Linkage  string `json:"linkage"`
	Distance struct {
		Metric string `json:"metric"`
		NGram  int    `json:"ngram"`
	} `json:"distance"`
	K int `json:"k"`
}

// Report is the result of one clustering run.
type Report struct {
	RunID        string  `json:"run_id"`
	PatternCount int     `json:"pattern_count"`
	InputCount   int     `json:"input_count"`
	Options      Options `json:"options"`
	ElapsedMS    int64   `json:"elapsed_ms"`
	Merges       []Merge `json:"merges"`
	Groups       []Group `json:"groups"`
	Trees        []*Node `json:"trees"`
}

// CatalogEntry describes one metric or linkage.
type CatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

// Catalog lists what the server supports.
type Catalog struct {
	Metrics  []CatalogEntry `json:"metrics"`
	Linkages []CatalogEntry `json:"linkages"`
}

// Cluster runs one clustering job.
func (c *Client) Cluster(ctx context.Context, req ClusterRequest) (*Report, error) {
	var rep Report
	if err := c.do(ctx, http.MethodPost, "/api/v1/cluster", req, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Matrix returns the diagnostic distance dump of the request's patterns.
// It runs under the matrix deadline and retry budget.
func (c *Client) Matrix(ctx context.Context, req ClusterRequest) (string, error) {
	ctx, cancel := withDeadline(ctx, c.matrixTimeout)
	defer cancel()

	data, err := c.doRaw(ctx, http.MethodPost, "/api/v1/matrix", req, c.matrixRetryMax)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Catalog lists the supported metrics and linkages.
func (c *Client) Catalog(ctx context.Context) (*Catalog, error) {
	var cat Catalog
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog", nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Ready reports whether the server accepts work.  A draining or unhealthy
// server yields an *APIError with status 503; Ready never retries.
func (c *Client) Ready(ctx context.Context) error {
	_, err := c.doRaw(ctx, http.MethodGet, "/readyz", nil, 0)
	return err
}

//Personal.AI order the ending
