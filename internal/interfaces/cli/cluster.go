package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/patent-dendrogram/internal/application/clustering"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
)

// NewClusterCmd creates the cluster command.
func NewClusterCmd() *cobra.Command {
	var (
		src    sourceFlags
		eng    engineFlags
		groups bool
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster documents and print the dendrograms",
		Long: "Load patterns from a JSON record file or a document list, merge them until\n" +
			"k clusters remain, and print one tree per cluster (or the flat groups).",
		Example: "  dendro cluster --list filelist.txt -k 5 --linkage complete\n" +
			"  dendro cluster -i patterns.json --metric ratcliff_obershelp -o json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := cliCtx.RunContext(cmd.Context())
			defer cancel()

			opts, err := eng.options(cliCtx)
			if err != nil {
				return err
			}
			if cliCtx.Verbose {
				opts.Progress = func(p clustering.Progress) {
					cliCtx.Logger.Debug("merge step",
						logging.RunID(p.RunID),
						logging.Int("step", p.Step),
						logging.Int("active", p.Active),
						logging.Int("target", p.Target))
				}
			}

			store, err := src.loadStore(ctx, cliCtx)
			if err != nil {
				return err
			}
			report, err := cliCtx.Service.Cluster(ctx, store, opts)
			if err != nil {
				return err
			}
			return PrintResult(cmd, &clusterOutput{Report: report, groups: groups})
		},
	}

	src.register(cmd)
	eng.register(cmd)
	cmd.Flags().BoolVar(&groups, "groups", false, "print flat groups instead of trees in text mode")
	return cmd
}

// clusterOutput renders a Report as text or a table; JSON output is the
// Report itself.
type clusterOutput struct {
	*clustering.Report
	groups bool
}

func (o *clusterOutput) String() string {
	var sb strings.Builder
	sb.WriteString(color.CyanString("run %s", o.RunID))
	fmt.Fprintf(&sb, ": %d patterns (%d input), %d clusters, linkage=%s, metric=%s\n",
		o.PatternCount, o.InputCount, len(o.Groups), o.Options.Linkage, o.Options.Distance.Metric)

	if o.groups {
		for _, g := range o.Groups {
			sb.WriteString("\n")
			sb.WriteString(color.YellowString("group %d", g.Index))
			fmt.Fprintf(&sb, " (cluster %d, distance %.2f, %d files)\n", g.ClusterID, g.Distance, g.Size)
			if g.Members != nil {
				sb.WriteString(g.Members.Text())
				continue
			}
			for _, f := range g.Files {
				sb.WriteString("  " + f + "\n")
			}
		}
		return sb.String()
	}

	for _, tree := range o.Trees {
		sb.WriteString("\n")
		sb.WriteString(tree.Text())
	}
	return sb.String()
}

func (o *clusterOutput) TableHeaders() []string {
	return []string{"Group", "Cluster", "Distance", "Size", "Files"}
}

func (o *clusterOutput) TableRows() [][]string {
	rows := make([][]string, 0, len(o.Groups))
	for _, g := range o.Groups {
		rows = append(rows, []string{
			strconv.Itoa(g.Index),
			strconv.Itoa(g.ClusterID),
			fmt.Sprintf("%.2f", g.Distance),
			strconv.Itoa(g.Size),
			truncateString(strings.Join(g.Files, ", "), 60),
		})
	}
	return rows
}

//Personal.AI order the ending
