package testutil

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turtacn/patent-dendrogram/internal/domain/pattern"
)

// Document is one file of a corpus fixture.
type Document struct {
	Name string
	Body string
	Gzip bool
}

// WriteCorpus writes docs into a temporary directory and returns the path of
// a list file naming them in order.  missing names are listed without being
// written.
func WriteCorpus(t *testing.T, docs []Document, missing ...string) string {
	t.Helper()
	dir := t.TempDir()

	lines := make([]string, 0, len(docs)+len(missing))
	for _, d := range docs {
		data := []byte(d.Body)
		if d.Gzip {
			data = GzipBytes(t, d.Body)
		}
		path := filepath.Join(dir, d.Name)
		require.NoError(t, os.WriteFile(path, data, 0o600))
		lines = append(lines, path)
	}
	for _, name := range missing {
		lines = append(lines, filepath.Join(dir, name))
	}

	list := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return list
}

// GzipBytes compresses s.
func GzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// NumericRecords builds one record per value, named n<index>.
func NumericRecords(values ...float64) []pattern.Record {
	out := make([]pattern.Record, len(values))
	for i, v := range values {
		out[i] = pattern.Record{
			Attribute: pattern.NumericAttribute(v),
			FileName:  "n" + strconv.Itoa(i),
		}
	}
	return out
}

// TextRecords builds one record per attribute, named after the attribute.
func TextRecords(attrs ...string) []pattern.Record {
	out := make([]pattern.Record, len(attrs))
	for i, a := range attrs {
		out[i] = pattern.Record{Attribute: pattern.TextAttribute(a), FileName: a}
	}
	return out
}

// SortedCopy returns a sorted copy of s.
func SortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

//Personal.AI order the ending
