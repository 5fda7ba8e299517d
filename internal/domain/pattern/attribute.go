// Package pattern holds the Pattern record and the Store that deduplicates
// raw extraction output into the ordered input of a clustering run.
package pattern

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// AttributeKind identifies which variant an Attribute carries.
type AttributeKind uint8

const (
	// KindInvalid is the zero value; it never reaches a distance computation
	// without producing ErrCodeUnsupportedAttributeType.
	KindInvalid AttributeKind = iota
	KindNumeric
	KindText
)

// String returns the lowercase name of the kind.
func (k AttributeKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Attribute is the clustering value of a pattern: either Numeric(float64) or
// Text(string).  The struct is comparable so it can key a dedup set.
type Attribute struct {
	kind AttributeKind
	num  float64
	text string
}

// NumericAttribute wraps a float64.
func NumericAttribute(v float64) Attribute {
	return Attribute{kind: KindNumeric, num: v}
}

// TextAttribute wraps a string.
func TextAttribute(s string) Attribute {
	return Attribute{kind: KindText, text: s}
}

// Kind reports the variant held by the attribute.
func (a Attribute) Kind() AttributeKind { return a.kind }

// Numeric returns the numeric value; ok is false for any other kind.
func (a Attribute) Numeric() (float64, bool) {
	return a.num, a.kind == KindNumeric
}

// Text returns the text value; ok is false for any other kind.
func (a Attribute) Text() (string, bool) {
	return a.text, a.kind == KindText
}

// Equal reports exact value equality, including the kind.
func (a Attribute) Equal(other Attribute) bool {
	return a == other
}

// String renders the held value.
func (a Attribute) String() string {
	switch a.kind {
	case KindNumeric:
		return strconv.FormatFloat(a.num, 'f', -1, 64)
	case KindText:
		return a.text
	default:
		return "<invalid>"
	}
}

// MarshalJSON writes numeric attributes as JSON numbers and text attributes
// as JSON strings.  The invalid attribute is null.
func (a Attribute) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case KindNumeric:
		return json.Marshal(a.num)
	case KindText:
		return json.Marshal(a.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number or string.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Attribute{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAttribute(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("attribute must be a number or a string: %w", err)
	}
	*a = NumericAttribute(f)
	return nil
}

//Personal.AI order the ending
