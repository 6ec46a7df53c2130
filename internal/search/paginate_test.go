package search

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 10, 2},
		{150, 10, 15},
		{5, 0, 5},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.n, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.size, got, tc.want)
		}
	}
}

func TestPaginate_ConcatenationRebuildsInput(t *testing.T) {
	for n := 0; n <= 35; n++ {
		for size := 1; size <= 12; size++ {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}
			total := TotalPages(n, size)
			var rebuilt []int
			for page := 1; page <= total; page++ {
				p := Paginate(items, page, size)
				if p.TotalPages != total {
					t.Fatalf("Paginate(n=%d, page=%d, size=%d).TotalPages = %d, want %d", n, page, size, p.TotalPages, total)
				}
				if page == total && n > 0 && (len(p.Items) < 1 || len(p.Items) > size) {
					t.Fatalf("last page of n=%d size=%d has %d items", n, size, len(p.Items))
				}
				rebuilt = append(rebuilt, p.Items...)
			}
			if n == 0 {
				if len(rebuilt) != 0 {
					t.Fatalf("empty input paginated to %v", rebuilt)
				}
				continue
			}
			if !reflect.DeepEqual(rebuilt, items) {
				t.Fatalf("pages of n=%d size=%d rebuilt %v", n, size, rebuilt)
			}
		}
	}
}

func TestPaginate_OutOfRangeIsEmpty(t *testing.T) {
	items := []string{"a", "b", "c"}
	for _, page := range []int{0, -1, 3, 100} {
		p := Paginate(items, page, 2)
		if len(p.Items) != 0 {
			t.Fatalf("Paginate(page=%d).Items = %v, want empty", page, p.Items)
		}
		if p.TotalPages != 2 {
			t.Fatalf("Paginate(page=%d).TotalPages = %d, want 2", page, p.TotalPages)
		}
	}
}

func TestPaginate_ItemsDoNotAliasTail(t *testing.T) {
	items := []int{1, 2, 3, 4}
	p := Paginate(items, 1, 2)
	p.Items = append(p.Items, 99)
	if items[2] != 3 {
		t.Fatalf("appending to a page overwrote the source: %v", items)
	}
}

func TestPaginated_PagerAffordances(t *testing.T) {
	items := make([]int, 150)
	cases := []struct {
		name                  string
		items                 []int
		page                  int
		prev, next, showPager bool
	}{
		{"first page", items, 1, false, true, true},
		{"middle page", items, 7, true, true, true},
		{"last page", items, 15, true, false, true},
		{"single page", items[:4], 1, false, false, false},
		{"empty", nil, 1, false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(tc.items, tc.page, 10)
			if p.HasPrev() != tc.prev || p.HasNext() != tc.next || p.ShowPager() != tc.showPager {
				t.Fatalf("prev/next/show = %v/%v/%v, want %v/%v/%v",
					p.HasPrev(), p.HasNext(), p.ShowPager(), tc.prev, tc.next, tc.showPager)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, total, want int
	}{
		{0, 5, 1},
		{-3, 5, 1},
		{3, 5, 3},
		{9, 5, 5},
		{2, 0, 1},
	}
	for _, tc := range cases {
		if got := ClampPage(tc.page, tc.total); got != tc.want {
			t.Fatalf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.total, got, tc.want)
		}
	}
}

func TestPageOf(t *testing.T) {
	cases := []struct {
		index, size, want int
	}{
		{0, 10, 1},
		{9, 10, 1},
		{10, 10, 2},
		{14, 10, 2},
		{-1, 10, 1},
	}
	for _, tc := range cases {
		if got := PageOf(tc.index, tc.size); got != tc.want {
			t.Fatalf("PageOf(%d, %d) = %d, want %d", tc.index, tc.size, got, tc.want)
		}
	}
}
