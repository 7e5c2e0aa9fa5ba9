package listing

import (
	"sort"
)

// sortKey: nil occurs_at sorts as Unix epoch zero, so undated items land at
// the oldest end instead of blowing up date handling.
func sortKey(it Item) int64 {
	if it.OccursAt == nil {
		return 0
	}
	return it.OccursAt.Unix()
}

// Combine concatenates the two normalized sources, stable-sorts by
// occurs_at in the requested direction, and slices the page.
//
//   - total/total_pages are computed before slicing;
//   - a page past the end yields an empty items slice, no clamping;
//   - the sort is stable, so items sharing a timestamp keep their
//     concatenation order (structured first, then posts) across calls.
func Combine(structured, posts []Item, order SortOrder, page, perPage int) Result {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items := make([]Item, 0, len(structured)+len(posts))
	items = append(items, structured...)
	items = append(items, posts...)

	if order == OrderAsc {
		sort.SliceStable(items, func(i, j int) bool { return sortKey(items[i]) < sortKey(items[j]) })
	} else {
		sort.SliceStable(items, func(i, j int) bool { return sortKey(items[i]) > sortKey(items[j]) })
	}

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:      items[start:end],
		Total:      total,
		TotalPages: totalPages,
	}
}
