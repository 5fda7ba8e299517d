package pattern

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// Record is one raw input row as exchanged over the CLI and HTTP surfaces.
type Record struct {
	Attribute Attribute `json:"attribute"`
	FileName  string    `json:"file_name"`
	FileText  string    `json:"file_text,omitempty"`
}

// DecodeRecords reads a JSON array of records.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "invalid pattern records")
	}
	return recs, nil
}

// FromRecords builds a store from records.  A record without an attribute
// is rejected.
func FromRecords(recs []Record) (*Store, error) {
	attrs := make([]Attribute, len(recs))
	names := make([]string, len(recs))
	texts := make([]string, len(recs))
	for i, rec := range recs {
		if rec.Attribute.Kind() == KindInvalid {
			return nil, errors.New(errors.ErrCodeUnsupportedAttributeType, "record has no attribute").
				WithDetail("index=" + strconv.Itoa(i))
		}
		attrs[i] = rec.Attribute
		names[i] = rec.FileName
		texts[i] = rec.FileText
	}
	return NewStore(attrs, names, texts)
}

//Personal.AI order the ending
