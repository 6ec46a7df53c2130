package search

import (
	"slices"
	"strings"

	"github.com/five82/searchly/internal/catalog"
)

// Normalize trims and case-folds a query the way Search compares it.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Search returns the records whose title, snippet, tag or info contains the
// normalized query. The whole query is one literal substring; words are not
// matched independently. Order follows records. A blank query returns every record.
func Search(records []catalog.Record, query string) []catalog.Record {
	needle := Normalize(query)
	if needle == "" {
		return slices.Clone(records)
	}
	out := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r contains an already-normalized needle in any searchable field.
func Matches(r catalog.Record, needle string) bool {
	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Snippet), needle) ||
		strings.Contains(strings.ToLower(r.Tag), needle) ||
		strings.Contains(strings.ToLower(r.Info), needle)
}

// IndexOf returns the position of the record with id in records, or -1.
func IndexOf(records []catalog.Record, id int64) int {
	return slices.IndexFunc(records, func(r catalog.Record) bool { return r.ID == id })
}
