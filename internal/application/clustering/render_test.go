package clustering

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

func TestFlatten_GroupsInClusterOrder(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{Linkage: distance.LinkageSingle, K: 2})
	res, err := e.Run(context.Background(), numericStore(t, 1, 2, 10, 11))
	require.NoError(t, err)

	groups := Flatten(res)
	require.Len(t, groups, 2)
	assert.Equal(t, 0, groups[0].Index)
	assert.Equal(t, 4, groups[0].ClusterID)
	assert.Equal(t, []string{"docA.txt", "docB.txt"}, groups[0].FileNames())
	assert.Equal(t, []string{"docC.txt", "docD.txt"}, groups[1].FileNames())
	assert.Equal(t, 2, groups[1].Size())

	assert.Nil(t, Flatten(nil))
}

func TestRender_TreeLabels(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{Linkage: distance.LinkageComplete, K: 1})
	res, err := e.Run(context.Background(), numericStore(t, 0, 1, 3))
	require.NoError(t, err)

	root := Render(res.Clusters[0])
	assert.Equal(t, "3.00", root.Label)
	require.NotNil(t, root.Distance)
	assert.Equal(t, 3.0, *root.Distance)
	require.Len(t, root.Children, 2)

	// leaf 2 (value 3) has the lower id, so it is the left child
	assert.Equal(t, "docC.txt", root.Children[0].Label)
	assert.True(t, root.Children[0].IsLeaf())
	assert.Equal(t, "1.00", root.Children[1].Label)

	want := strings.Join([]string{
		"3.00",
		"├── docC.txt",
		"└── 1.00",
		"    ├── docA.txt",
		"    └── docB.txt",
		"",
	}, "\n")
	assert.Equal(t, want, root.Text())
}

func TestRender_LeafCarriesText(t *testing.T) {
	t.Parallel()

	store := textStore(t, "acme capital partners")
	e := newEngine(t, DefaultOptions())
	res, err := e.Run(context.Background(), store)
	require.NoError(t, err)

	n := Render(res.Clusters[0])
	assert.Equal(t, "docA.txt", n.Label)
	assert.Equal(t, "text of acme capital partners", n.FileText)
	assert.Nil(t, n.Distance)
}

func TestRenderGroup_Degenerate(t *testing.T) {
	t.Parallel()

	one := Group{Patterns: []pattern.Pattern{{ID: 0, FileName: "a.txt"}}}
	n := RenderGroup(one)
	assert.Equal(t, "a.txt", n.Label)
	assert.True(t, n.IsLeaf())

	two := Group{Patterns: []pattern.Pattern{{ID: 0, FileName: "a.txt"}, {ID: 3, FileName: "b.txt"}}}
	n = RenderGroup(two)
	assert.Empty(t, n.Label)
	assert.Nil(t, n.Distance)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "·\n├── a.txt\n└── b.txt\n", n.Text())
}

func TestNode_JSON(t *testing.T) {
	t.Parallel()

	e := newEngine(t, Options{K: 1})
	res, err := e.Run(context.Background(), numericStore(t, 1, 2))
	require.NoError(t, err)

	raw, err := json.Marshal(Render(res.Clusters[0]))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"label": "1.00", "cluster_id": 2, "distance": 1,
		"children": [
			{"label": "docA.txt", "cluster_id": 0},
			{"label": "docB.txt", "cluster_id": 1}
		]}`, string(raw))
}

func TestDumpMatrix_Format(t *testing.T) {
	t.Parallel()

	e := newEngine(t, DefaultOptions())
	var buf bytes.Buffer
	require.NoError(t, e.DumpMatrix(context.Background(), numericStore(t, 0, 0.5, 1.25), &buf))

	want := "AggloCluster, Cluster0, Cluster1, Cluster2\n" +
		"Cluster0,0,0.5,1.25\n" +
		"Cluster1,,0,0.75\n" +
		"Cluster2,,,0\n"
	assert.Equal(t, want, buf.String())
}

func TestDumpMatrix_Errors(t *testing.T) {
	t.Parallel()

	e := newEngine(t, DefaultOptions())
	err := e.DumpMatrix(context.Background(), nil, &bytes.Buffer{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	he := newEngine(t, Options{K: 1, Distance: distance.Config{Metric: distance.MetricHammingDistance}})
	err = he.DumpMatrix(context.Background(), textStore(t, "ab", "abc"), &bytes.Buffer{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeMetricFailed))
}

//Personal.AI order the ending
