package ingest

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

// LoadDocument reads a filing from disk.  Gzip input is detected by its
// magic bytes, so both "x.txt.gz" and misnamed archives decode.
func LoadDocument(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeDocumentUnreadable, "failed to open document").
			WithDetail("path=" + path)
	}
	defer f.Close()

	text, err := readDocument(f)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeDocumentUnreadable, "failed to read document").
			WithDetail("path=" + path)
	}
	return text, nil
}

func readDocument(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return "", err
	}

	var src io.Reader = br
	if len(head) == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		src = gz
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

//Personal.AI order the ending
