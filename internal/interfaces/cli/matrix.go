package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// NewMatrixCmd creates the matrix command.
func NewMatrixCmd() *cobra.Command {
	var (
		src sourceFlags
		eng engineFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Write the pairwise distance matrix of the input patterns",
		Long: "Compute the distance between every pair of input patterns and write them as\n" +
			"comma-separated rows; each pair appears once, above the diagonal.",
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
			store, err := src.loadStore(ctx, cliCtx)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return cliCtx.Service.Matrix(ctx, store, opts, cmd.OutOrStdout())
			}

			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to create matrix file").WithDetail("path=" + out)
			}
			bw := bufio.NewWriter(f)
			if err := cliCtx.Service.Matrix(ctx, store, opts, bw); err != nil {
				f.Close()
				return err
			}
			if err := closeFlushed(bw, f); err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to write matrix file").WithDetail("path=" + out)
			}
			cliCtx.Logger.Info("matrix written", logging.String("path", out), logging.Int("patterns", store.Len()))
			PrintSuccess(cmd, "matrix written to "+out)
			return nil
		},
	}

	src.register(cmd)
	eng.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	return cmd
}

func closeFlushed(bw *bufio.Writer, c io.Closer) error {
	if err := bw.Flush(); err != nil {
		c.Close()
		return err
	}
	return c.Close()
}

//Personal.AI order the ending
