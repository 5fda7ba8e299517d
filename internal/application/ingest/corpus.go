package ingest

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// Selection decides which documents enter the corpus and what they are
// clustered on.
type Selection string

const (
	// SelectField clusters documents on their extracted reporting-persons
	// field; documents without a match are skipped.
	SelectField Selection = "field"
	// SelectUnparsed clusters the full text of documents whose field could
	// not be extracted, to group the layouts the extractor does not know.
	SelectUnparsed Selection = "unparsed"

	// DefaultSelection is used when CorpusOptions leaves Selection empty.
	DefaultSelection = SelectUnparsed
)

// DefaultLimit caps how many list entries are read.
const DefaultLimit = 1000

// IsValid checks if the selection is supported.
func (s Selection) IsValid() bool {
	return s == SelectField || s == SelectUnparsed
}

// ParseSelection parses a selection name.
func ParseSelection(s string) (Selection, error) {
	sel := Selection(strings.ToLower(strings.TrimSpace(s)))
	if sel.IsValid() {
		return sel, nil
	}
	return "", errors.New(errors.ErrCodeValidation, "unsupported corpus selection: "+s)
}

// CorpusOptions configures LoadCorpus.
type CorpusOptions struct {
	Limit     int
	Selection Selection
}

// Corpus is the parallel attribute/name/text output of LoadCorpus.
type Corpus struct {
	Attributes []string
	FileNames  []string
	FileTexts  []string

	Listed  int
	Missing int
	Skipped int
}

// Len is the number of documents kept.
func (c *Corpus) Len() int { return len(c.Attributes) }

// Store builds the deduplicated pattern store over the corpus.
func (c *Corpus) Store() (*pattern.Store, error) {
	return pattern.FromStrings(c.Attributes, c.FileNames, c.FileTexts)
}

// LoadCorpus reads up to opts.Limit document paths from listFile, one per
// line, and extracts the clustering attribute of each existing document.
// Paths that do not exist are skipped with a warning.
func LoadCorpus(ctx context.Context, listFile string, opts CorpusOptions, logger logging.Logger) (*Corpus, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Selection == "" {
		opts.Selection = DefaultSelection
	}
	if !opts.Selection.IsValid() {
		return nil, errors.New(errors.ErrCodeValidation, "unsupported corpus selection: "+string(opts.Selection))
	}

	paths, err := readList(listFile, opts.Limit)
	if err != nil {
		return nil, err
	}

	extractor := NewExtractor()
	corpus := &Corpus{Listed: len(paths)}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeRunCancelled, "corpus loading cancelled")
		}
		if _, err := os.Stat(path); err != nil {
			corpus.Missing++
			logger.Warn("document missing, skipped", logging.String("path", path))
			continue
		}

		raw, err := LoadDocument(path)
		if err != nil {
			return nil, err
		}
		text := TrimForParsing(NormalizeDocument(raw))
		if strings.TrimSpace(text) == "" {
			corpus.Skipped++
			continue
		}

		field, _ := extractor.ParseTable(text)
		var attr string
		switch opts.Selection {
		case SelectField:
			if field == "" {
				corpus.Skipped++
				continue
			}
			attr = strings.TrimSpace(TrimForClustering(field))
		case SelectUnparsed:
			if field != "" {
				corpus.Skipped++
				continue
			}
			attr = strings.TrimSpace(TrimForClustering(text))
		}

		corpus.Attributes = append(corpus.Attributes, attr)
		corpus.FileNames = append(corpus.FileNames, path)
		corpus.FileTexts = append(corpus.FileTexts, text)
	}

	logger.Info("corpus loaded",
		logging.String("list", listFile),
		logging.String("selection", string(opts.Selection)),
		logging.Int("listed", corpus.Listed),
		logging.Int("kept", corpus.Len()),
		logging.Int("missing", corpus.Missing),
		logging.Int("skipped", corpus.Skipped))
	return corpus, nil
}

func readList(listFile string, limit int) ([]string, error) {
	f, err := os.Open(listFile)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDocumentUnreadable, "failed to open document list").
			WithDetail("path=" + listFile)
	}
	defer f.Close()

	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(paths) < limit {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDocumentUnreadable, "failed to read document list").
			WithDetail(fmt.Sprintf("path=%s read=%d", listFile, len(paths)))
	}
	return paths, nil
}

//Personal.AI order the ending
