package clustering

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/turtacn/patent-dendrogram/internal/domain/cluster"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// DumpMatrix writes the pairwise distances between the initial singletons
// as delimited text:
//
//	AggloCluster, Cluster0, Cluster1, Cluster2
//	Cluster0,0,0.5,1
//	Cluster1,,0,0.25
//	Cluster2,,,0
//
// Each pair appears once, above the diagonal; cells below it are blank.
func (e *Engine) DumpMatrix(ctx context.Context, store *pattern.Store, w io.Writer) error {
	if store == nil || store.Len() == 0 {
		return errors.Validation("pattern store is empty")
	}

	patterns := store.Patterns()
	leaves := make([]*cluster.Cluster, len(patterns))
	for i, p := range patterns {
		leaves[i] = cluster.NewLeaf(i, p)
	}
	matrix, err := e.seedMatrix(ctx, leaves)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("AggloCluster")
	for _, c := range leaves {
		bw.WriteString(", Cluster")
		bw.WriteString(strconv.Itoa(c.ID()))
	}

	for i, row := range leaves {
		bw.WriteString("\nCluster")
		bw.WriteString(strconv.Itoa(row.ID()))
		for j, col := range leaves {
			bw.WriteByte(',')
			switch {
			case j < i:
				// already written in row j
			case j == i:
				bw.WriteByte('0')
			default:
				d, err := matrix.Get(cluster.MustPair(row, col))
				if err != nil {
					return err
				}
				bw.WriteString(strconv.FormatFloat(d, 'f', -1, 64))
			}
		}
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write distance matrix")
	}
	return nil
}

//Personal.AI order the ending
