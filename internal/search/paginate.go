package search

// Paginated is one page of a larger ordered result set.
type Paginated[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalPages int
	TotalHits  int
}

// HasPrev reports whether a previous page exists.
func (p Paginated[T]) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists.
func (p Paginated[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// ShowPager reports whether pager controls should be drawn at all.
func (p Paginated[T]) ShowPager() bool {
	return p.TotalPages > 1
}

// Paginate slices items for a 1-based page. It does not clamp page: a page
// outside [1, TotalPages] yields no items. Callers own bounds enforcement.
func Paginate[T any](items []T, page, pageSize int) Paginated[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	p := Paginated[T]{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(items), pageSize),
		TotalHits:  len(items),
	}
	if page < 1 {
		return p
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return p
	}
	end := min(start+pageSize, len(items))
	p.Items = items[start:end:end]
	return p
}

// TotalPages is ceil(n/pageSize), never less than 1.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = 1
	}
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	return max(1, min(page, totalPages))
}

// PageOf returns the 1-based page holding the item at a 0-based index.
func PageOf(index, pageSize int) int {
	if pageSize <= 0 || index < 0 {
		return 1
	}
	return index/pageSize + 1
}
