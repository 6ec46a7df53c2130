package state

import (
	"fmt"

	"github.com/five82/searchly/internal/highlight"
	"github.com/five82/searchly/internal/search"
)

// EmptyMessage is shown when the filtered set is empty.
const EmptyMessage = "No results. Try a different query."

// ResultView is one rendered record with highlighted fields.
type ResultView struct {
	ID      int64
	URL     string
	Color   string
	Tag     string
	Title   []highlight.Span
	Site    []highlight.Span
	Snippet []highlight.Span

	// Info is populated only when InfoVisible is true.
	Info        []highlight.Span
	InfoVisible bool
}

// PageView is everything a renderer needs for the current page.
type PageView struct {
	Query      string
	TotalHits  int
	Page       int
	TotalPages int
	Items      []ResultView
	HasPrev    bool
	HasNext    bool
	ShowPager  bool
	Empty      bool
}

// CountLine is the "About N results" label.
func (v PageView) CountLine() string {
	return fmt.Sprintf("About %d results", v.TotalHits)
}

// PagerLabel is the "Page n of m" label.
func (v PageView) PagerLabel() string {
	return fmt.Sprintf("Page %d of %d", v.Page, v.TotalPages)
}

// View renders the current page. Highlighting runs only over the visible
// records, and always from their raw fields.
func (s Session) View() PageView {
	page := search.Paginate(s.Filtered, s.Page, s.pageSize)
	v := PageView{
		Query:      s.Query,
		TotalHits:  page.TotalHits,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		HasPrev:    page.HasPrev(),
		HasNext:    page.HasNext(),
		ShowPager:  page.ShowPager(),
		Empty:      page.TotalHits == 0,
	}
	if v.Empty {
		v.ShowPager = false
		return v
	}

	h := highlight.ForQuery(s.Query)
	v.Items = make([]ResultView, 0, len(page.Items))
	for _, r := range page.Items {
		item := ResultView{
			ID:      r.ID,
			URL:     r.URL,
			Color:   r.Color,
			Tag:     r.Tag,
			Title:   h.Spans(r.Title),
			Site:    h.Spans(r.Site),
			Snippet: h.Spans(r.Snippet),
		}
		if s.Expanded[r.ID] {
			item.InfoVisible = true
			item.Info = h.Spans(r.Info)
		}
		v.Items = append(v.Items, item)
	}
	return v
}
