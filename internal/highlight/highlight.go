// Package highlight splits text into matched and plain spans for a query.
//
// Spans are always computed from the raw field value. Styled output is never
// fed back in, so markup cannot nest or be escaped twice.
package highlight

import (
	"regexp"
	"strings"
)

// Span is a contiguous run of text.
type Span struct {
	Text    string
	Matched bool
}

// Terms splits a query on whitespace, dropping empties and repeats.
func Terms(query string) []string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// Pattern builds a case-insensitive alternation that matches every term
// literally. Invalid UTF-8 in a term is replaced with U+FFFD, which is also
// what the matcher decodes a stray byte in the text as. It returns nil when
// terms is empty or the pattern does not compile.
func Pattern(terms []string) *regexp.Regexp {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		if t == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(strings.ToValidUTF8(t, "\uFFFD")))
	}
	if len(quoted) == 0 {
		return nil
	}
	re, err := regexp.Compile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return nil
	}
	return re
}

// Highlighter reuses one compiled pattern across many fields.
type Highlighter struct {
	re *regexp.Regexp
}

// New returns a Highlighter for terms. With no terms it marks nothing.
func New(terms []string) Highlighter {
	return Highlighter{re: Pattern(terms)}
}

// ForQuery is New(Terms(query)).
func ForQuery(query string) Highlighter {
	return New(Terms(query))
}

// Spans scans text left to right. Matches are leftmost-first and
// non-overlapping; the concatenated span texts equal text.
func (h Highlighter) Spans(text string) []Span {
	if h.re == nil || text == "" {
		return []Span{{Text: text}}
	}
	locs := h.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Span{{Text: text}}
	}
	spans := make([]Span, 0, 2*len(locs)+1)
	pos := 0
	for _, loc := range locs {
		if loc[0] > pos {
			spans = append(spans, Span{Text: text[pos:loc[0]]})
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Matched: true})
		pos = loc[1]
	}
	if pos < len(text) {
		spans = append(spans, Span{Text: text[pos:]})
	}
	return spans
}

// Highlight is New(terms).Spans(text).
func Highlight(text string, terms []string) []Span {
	return New(terms).Spans(text)
}

// Text concatenates span texts.
func Text(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render joins spans, passing each through plain or matched.
func Render(spans []Span, plain, matched func(string) string) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Matched {
			b.WriteString(matched(s.Text))
		} else {
			b.WriteString(plain(s.Text))
		}
	}
	return b.String()
}
