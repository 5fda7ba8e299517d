// Package ingest turns filing documents into the parallel (attribute, file
// name, file text) sequences consumed by the pattern store.
package ingest

import (
	"regexp"
	"strings"
	"unicode"
)

// ContextWindow is how many characters of trailing context ParseTable keeps
// after the extracted field.
const ContextWindow = 400

var (
	reportingPersonsRe = regexp.MustCompile(
		`(?i)(NAMES?(?: ?OF ?REPORTING| ?AND ?IRS) ?[\s\S]{0,100}PERSONS?(?: ?ENTITIES ONLY)? ?[\.\,]*)[\s\S]{0,400}?(?:2\.? ?CHECK|CHECK THE APPROPRIATE|MEMBER)`)
	cusipItemRe = regexp.MustCompile(
		`(?i)(CUSIP(?: NUMBER)? [\w]+ ITEM 1 REPORTING PERSON) [\s\S]{0,200}? ITEM \d`)

	clusteringDropRe = regexp.MustCompile(`[\.,\d]`)
	nonWordRe        = regexp.MustCompile(`[^\p{L}\p{M}\p{Nd}\p{Pc}\s\.,]`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// Extractor pulls the "names of reporting persons" block out of beneficial
// ownership filings.  It holds only compiled patterns and is safe for
// concurrent use.
type Extractor struct {
	patterns []*regexp.Regexp
}

// NewExtractor returns an extractor trying the cover-page table layout
// first and the CUSIP item layout second.
func NewExtractor() *Extractor {
	return &Extractor{patterns: []*regexp.Regexp{reportingPersonsRe, cusipItemRe}}
}

// ParseTable returns the reporting-persons heading and the match truncated
// to the heading plus ContextWindow characters.  Both are empty when no
// layout matches.
func (x *Extractor) ParseTable(text string) (field, context string) {
	for _, re := range x.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		field = m[1]
		whole := []rune(m[0])
		limit := len([]rune(field)) + ContextWindow
		if limit > len(whole) {
			limit = len(whole)
		}
		return field, string(whole[:limit])
	}
	return "", ""
}

// NormalizeDocument upper-cases text and collapses whitespace runs.
func NormalizeDocument(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToUpper(text), " ")
}

// TrimForParsing drops separators that are not part of a number, then
// underscores and symbols, and collapses whitespace.
func TrimForParsing(text string) string {
	t := trimSigns(text)
	t = strings.ReplaceAll(t, "_", "")
	t = nonWordRe.ReplaceAllString(t, "")
	return whitespaceRe.ReplaceAllString(t, " ")
}

// TrimForClustering removes dots, commas and digits, then every word of one
// to three characters that sits between two spaces, and collapses
// whitespace.
func TrimForClustering(text string) string {
	t := clusteringDropRe.ReplaceAllString(text, "")
	t = dropShortWords(t)
	return whitespaceRe.ReplaceAllString(t, " ")
}

// trimSigns removes '.' and ',' unless they sit between two digits.  A sign
// directly after a removed sign is kept, and so is a sign at either end of
// the text.
func trimSigns(text string) string {
	rs := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	lastRemoved := -2
	for k, r := range rs {
		if (r == '.' || r == ',') && k > 0 && k+1 < len(rs) && k-1 > lastRemoved {
			if !(unicode.IsDigit(rs[k-1]) && unicode.IsDigit(rs[k+1])) {
				lastRemoved = k
				continue
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// dropShortWords removes space-delimited words of one to three word
// characters that have a space on both sides.
func dropShortWords(text string) string {
	parts := strings.Split(text, " ")
	if len(parts) < 3 {
		return text
	}
	kept := make([]string, 0, len(parts))
	kept = append(kept, parts[0])
	for i := 1; i < len(parts)-1; i++ {
		if isShortWord(parts[i]) {
			kept = append(kept, "")
			continue
		}
		kept = append(kept, parts[i])
	}
	kept = append(kept, parts[len(parts)-1])
	return strings.Join(kept, " ")
}

func isShortWord(s string) bool {
	n := 0
	for _, r := range s {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.Is(unicode.Mn, r)) {
			return false
		}
		n++
	}
	return n >= 1 && n <= 3
}

//Personal.AI order the ending
