package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	pageWindowSize = 5
)

// Pagination is transient per-view state; it is never persisted and performs
// no bounds checking against the server's total (the server owns that).
type Pagination struct {
	Page     int
	PageSize int
}

func NewPagination() Pagination {
	return Pagination{Page: DefaultPage, PageSize: DefaultPageSize}
}

func (p *Pagination) SetPage(n int) {
	p.Page = n
}

// SetPageSize changes the page size and resets to the first page, so a
// shrunken result set never leaves the view on an out-of-range page.
func (p *Pagination) SetPageSize(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}

	p.PageSize = n
	p.Page = DefaultPage
}

// PageWindow returns the page numbers to offer as navigation buttons: the
// full range when there are at most five pages, otherwise a five-wide window
// pinned to the start near the beginning, pinned to the end near the end, and
// centered on the current page in between.
func PageWindow(totalPages, currentPage int) []int {
	if totalPages <= 0 {
		return nil
	}

	start, end := 1, totalPages
	switch {
	case totalPages <= pageWindowSize:
	case currentPage <= 3:
		end = pageWindowSize
	case currentPage >= totalPages-2:
		start = totalPages - pageWindowSize + 1
	default:
		start = currentPage - 2
		end = currentPage + 2
	}

	window := make([]int, 0, end-start+1)
	for page := start; page <= end; page++ {
		window = append(window, page)
	}

	return window
}

// Page is one page of a listed resource as returned by the API.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
