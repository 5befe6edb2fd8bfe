// Package pagination provides page-number slicing over in-memory result sets.
package pagination

// TotalPages returns how many pages of the given size a result set spans.
// A result set always has at least one (possibly empty) page.
func TotalPages(total, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	return pages
}

// Slice returns the elements of page `number` (1-based) when items are split
// into pages of `size`. A non-positive size returns everything; a page past
// the end returns an empty slice.
func Slice[T any](items []T, size, number int) []T {
	if size <= 0 {
		return items
	}
	start := (number - 1) * size
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
