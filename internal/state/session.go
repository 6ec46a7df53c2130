package state

import (
	"maps"

	"github.com/five82/searchly/internal/catalog"
	"github.com/five82/searchly/internal/search"
)

// DefaultPageSize is the reference page size.
const DefaultPageSize = 10

// Session is the complete UI state. Values are treated as immutable: Reduce
// returns a new Session and never writes through the receiver's slices or maps.
type Session struct {
	records  []catalog.Record
	pageSize int

	Query    string
	Filtered []catalog.Record
	Page     int
	Expanded map[int64]bool

	// Focus is the record a random pick landed on, zero otherwise.
	Focus int64
	// ScrollTop is set by transitions that move the view to the top.
	ScrollTop bool
}

// New starts a session over records with an empty query on page 1.
func New(records []catalog.Record, pageSize int) Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Session{
		records:  records,
		pageSize: pageSize,
		Filtered: search.Search(records, ""),
		Page:     1,
		Expanded: map[int64]bool{},
	}
}

// Records returns the full dataset.
func (s Session) Records() []catalog.Record { return s.records }

// PageSize returns the configured page size.
func (s Session) PageSize() int { return s.pageSize }

// TotalPages returns the page count of the current filtered set.
func (s Session) TotalPages() int {
	return search.TotalPages(len(s.Filtered), s.pageSize)
}

// IsExpanded reports whether id's info panel is shown.
func (s Session) IsExpanded(id int64) bool {
	return s.Expanded[id]
}

// Reduce applies a to s.
func Reduce(s Session, a Action) Session {
	s.Focus = 0
	s.ScrollTop = false

	switch a.Kind {
	case ActionSubmit:
		return s.submit(a.Query)

	case ActionClear:
		return s.submit("")

	case ActionNextPage:
		next := search.ClampPage(s.Page+1, s.TotalPages())
		s.ScrollTop = next != s.Page
		s.Page = next
		return s

	case ActionPrevPage:
		prev := search.ClampPage(s.Page-1, s.TotalPages())
		s.ScrollTop = prev != s.Page
		s.Page = prev
		return s

	case ActionToggleInfo:
		expanded := maps.Clone(s.Expanded)
		if expanded == nil {
			expanded = map[int64]bool{}
		}
		if expanded[a.ID] {
			delete(expanded, a.ID)
		} else {
			expanded[a.ID] = true
		}
		s.Expanded = expanded
		return s

	case ActionRandomPick:
		return s.randomPick(a.Index)
	}
	return s
}

// Replay folds actions over s in order.
func Replay(s Session, actions ...Action) Session {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func (s Session) submit(query string) Session {
	s.Query = query
	s.Filtered = search.Search(s.records, query)
	s.Page = 1
	s.ScrollTop = true
	return s
}

func (s Session) randomPick(index int) Session {
	if len(s.records) == 0 {
		return s
	}
	index = ((index % len(s.records)) + len(s.records)) % len(s.records)
	picked := s.records[index]

	s = s.submit(picked.Tag)
	if pos := search.IndexOf(s.Filtered, picked.ID); pos >= 0 {
		s.Page = search.ClampPage(search.PageOf(pos, s.pageSize), s.TotalPages())
	}

	expanded := maps.Clone(s.Expanded)
	if expanded == nil {
		expanded = map[int64]bool{}
	}
	expanded[picked.ID] = true
	s.Expanded = expanded
	s.Focus = picked.ID
	s.ScrollTop = true
	return s
}
