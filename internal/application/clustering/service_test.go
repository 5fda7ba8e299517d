package clustering

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/patent-dendrogram/internal/domain/distance"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

func TestService_Cluster(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil)
	rep, err := svc.Cluster(context.Background(), numericStore(t, 1, 2, 10, 11),
		Options{Linkage: distance.LinkageSingle, K: 2})
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 4, rep.PatternCount)
	assert.Equal(t, 4, rep.InputCount)
	require.Len(t, rep.Groups, 2)
	assert.Equal(t, []string{"docA.txt", "docB.txt"}, rep.Groups[0].Files)
	assert.Equal(t, 1.0, rep.Groups[0].Distance)
	assert.Equal(t, 2, rep.Groups[1].Size)
	assert.Equal(t, 1, rep.Groups[1].Depth)
	require.NotNil(t, rep.Groups[0].Members)
	assert.Empty(t, rep.Groups[0].Members.Label)
	assert.Nil(t, rep.Groups[0].Members.Distance)
	assert.Equal(t, "·\n├── docA.txt\n└── docB.txt\n", rep.Groups[0].Members.Text())
	require.Len(t, rep.Trees, 2)
	assert.Equal(t, "1.00", rep.Trees[0].Label)
	assert.Len(t, rep.Merges, 2)
}

func TestService_ClusterSinglePatternHasEmptyMerges(t *testing.T) {
	t.Parallel()

	rep, err := NewService(nil, nil).Cluster(context.Background(), textStore(t, "a", "a"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.PatternCount)
	assert.Equal(t, 2, rep.InputCount)
	assert.NotNil(t, rep.Merges)
	assert.Empty(t, rep.Merges)
	require.Len(t, rep.Groups, 1)
	assert.Zero(t, rep.Groups[0].Depth)
	assert.True(t, rep.Groups[0].Members.IsLeaf())
	assert.Equal(t, "docA.txt", rep.Groups[0].Members.Label)
}

func TestService_Errors(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil)
	_, err := svc.Cluster(context.Background(), numericStore(t, 1, 2), Options{K: 0, Linkage: "ward"})
	assert.Error(t, err)

	_, err = svc.Cluster(context.Background(), numericStore(t, 1, 2), Options{K: 1, Linkage: "ward"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownLinkage))

	err = svc.Matrix(context.Background(), numericStore(t, 1), Options{K: 1, Distance: distance.Config{Metric: "cosine"}}, &bytes.Buffer{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownMetric))
}

func TestService_Matrix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewService(nil, nil).Matrix(context.Background(), numericStore(t, 0, 2), DefaultOptions(), &buf))
	assert.Equal(t, "AggloCluster, Cluster0, Cluster1\nCluster0,0,2\nCluster1,,0\n", buf.String())
}

//Personal.AI order the ending
