package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/patent-dendrogram/internal/application/clustering"
	"github.com/turtacn/patent-dendrogram/internal/application/ingest"
	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// sourceFlags selects where patterns come from: a JSON record file or a
// document list.
type sourceFlags struct {
	input     string
	list      string
	limit     int
	selection string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "JSON file of pattern records ([{\"attribute\":...,\"file_name\":...}])")
	fl.StringVar(&f.list, "list", "", "document list file (overrides ingest.file_list)")
	fl.IntVar(&f.limit, "limit", 0, "maximum list entries to read (overrides ingest.limit)")
	fl.StringVar(&f.selection, "selection", "", "corpus selection: field|unparsed (overrides ingest.selection)")
}

// loadStore builds the pattern store from --input, or else from the
// document list.
func (f *sourceFlags) loadStore(ctx context.Context, cliCtx *CLIContext) (*pattern.Store, error) {
	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDocumentUnreadable, "failed to open pattern input").
				WithDetail("path=" + f.input)
		}
		defer file.Close()

		recs, err := pattern.DecodeRecords(file)
		if err != nil {
			return nil, err
		}
		return pattern.FromRecords(recs)
	}

	ingestCfg := cliCtx.Config.Ingest
	if f.list != "" {
		ingestCfg.FileList = f.list
	}
	if f.limit > 0 {
		ingestCfg.Limit = f.limit
	}
	if f.selection != "" {
		ingestCfg.Selection = f.selection
	}
	if ingestCfg.FileList == "" {
		return nil, errors.InvalidParam("no input: pass --input or --list, or set ingest.file_list")
	}

	opts, err := ingestCfg.CorpusOptions()
	if err != nil {
		return nil, err
	}
	corpus, err := ingest.LoadCorpus(ctx, ingestCfg.FileList, opts, cliCtx.Logger)
	if err != nil {
		return nil, err
	}
	return corpus.Store()
}

// engineFlags overrides the clustering section of the config.
type engineFlags struct {
	linkage string
	metric  string
	ngram   int
	k       int
	workers int
}

func (f *engineFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.linkage, "linkage", "l", "", "linkage: single|complete|average_wpgma|average_upgma")
	fl.StringVarP(&f.metric, "metric", "m", "", "pairwise text metric (see 'dendro metrics')")
	fl.IntVar(&f.ngram, "ngram", 0, "word n-gram size for the n-gram metrics")
	fl.IntVarP(&f.k, "clusters", "k", 0, "number of clusters to stop at")
	fl.IntVar(&f.workers, "workers", 0, "matrix seeding workers (0: config or GOMAXPROCS)")
}

func (f *engineFlags) options(cliCtx *CLIContext) (clustering.Options, error) {
	cc := cliCtx.Config.Clustering
	if f.linkage != "" {
		cc.Linkage = f.linkage
	}
	if f.metric != "" {
		cc.Metric = f.metric
	}
	if f.ngram != 0 {
		cc.NGram = f.ngram
	}
	if f.k != 0 {
		cc.K = f.k
	}
	if f.workers != 0 {
		cc.Workers = f.workers
	}
	return cc.EngineOptions()
}

//Personal.AI order the ending
