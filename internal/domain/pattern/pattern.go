package pattern

import (
	"fmt"

	"github.com/turtacn/patent-dendrogram/pkg/errors"
)

// Pattern is one unique attribute value together with the document it came
// from.  ID is the position in the original input sequences and is never
// renumbered after duplicates are dropped.
type Pattern struct {
	ID        int       `json:"id"`
	FileName  string    `json:"file_name"`
	FileText  string    `json:"file_text,omitempty"`
	Attribute Attribute `json:"attribute"`
}

// Store is the ordered, deduplicated set of patterns for a single run.
type Store struct {
	patterns []Pattern
	inputLen int
}

// NewStore scans the three parallel sequences and keeps the first occurrence
// of every attribute value.
func NewStore(attributes []Attribute, fileNames, fileTexts []string) (*Store, error) {
	if len(attributes) != len(fileNames) || len(attributes) != len(fileTexts) {
		return nil, errors.New(errors.ErrCodeInputMismatch, "pattern input sequences differ in length").
			WithDetail(fmt.Sprintf("attributes=%d file_names=%d file_texts=%d",
				len(attributes), len(fileNames), len(fileTexts)))
	}

	seen := make(map[Attribute]struct{}, len(attributes))
	patterns := make([]Pattern, 0, len(attributes))
	for i, attr := range attributes {
		if _, dup := seen[attr]; dup {
			continue
		}
		seen[attr] = struct{}{}
		patterns = append(patterns, Pattern{
			ID:        i,
			FileName:  fileNames[i],
			FileText:  fileTexts[i],
			Attribute: attr,
		})
	}

	return &Store{patterns: patterns, inputLen: len(attributes)}, nil
}

// FromStrings builds a store of text attributes.
func FromStrings(values, fileNames, fileTexts []string) (*Store, error) {
	attrs := make([]Attribute, len(values))
	for i, v := range values {
		attrs[i] = TextAttribute(v)
	}
	return NewStore(attrs, fileNames, fileTexts)
}

// FromFloats builds a store of numeric attributes.
func FromFloats(values []float64, fileNames, fileTexts []string) (*Store, error) {
	attrs := make([]Attribute, len(values))
	for i, v := range values {
		attrs[i] = NumericAttribute(v)
	}
	return NewStore(attrs, fileNames, fileTexts)
}

// Patterns returns a copy of the unique patterns in input order.
func (s *Store) Patterns() []Pattern {
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Len is the number of unique patterns.
func (s *Store) Len() int { return len(s.patterns) }

// InputLen is the number of raw input positions, duplicates included.
func (s *Store) InputLen() int { return s.inputLen }

// Get returns the i-th unique pattern (not the pattern with ID i).
func (s *Store) Get(i int) (Pattern, error) {
	if i < 0 || i >= len(s.patterns) {
		return Pattern{}, errors.Errorf(errors.ErrCodeNotFound, "pattern index %d out of range [0,%d)", i, len(s.patterns))
	}
	return s.patterns[i], nil
}

//Personal.AI order the ending
