package domain

import "fmt"

// PaginationCursor tracks the current page of a result set. Pages are 1-based.
type PaginationCursor struct {
	Page     int
	PageSize int
	Total    int
}

// NewPaginationCursor returns a cursor on page 1 with no rows.
func NewPaginationCursor(pageSize int) PaginationCursor {
	if pageSize <= 0 {
		pageSize = 1
	}

	return PaginationCursor{Page: 1, PageSize: pageSize}
}

// Reset moves back to page 1 and forgets the total.
func (c *PaginationCursor) Reset() {
	c.Page = 1
	c.Total = 0
}

// OffsetOf returns the row offset of page.
func (c PaginationCursor) OffsetOf(page int) (int, error) {
	if page < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	return (page - 1) * c.PageSize, nil
}

// Offset returns the row offset of the current page.
func (c PaginationCursor) Offset() int {
	return (c.Page - 1) * c.PageSize
}

// PageCount returns how many pages Total rows span; zero rows span zero pages.
func (c PaginationCursor) PageCount() int {
	if c.Total <= 0 {
		return 0
	}

	return (c.Total + c.PageSize - 1) / c.PageSize
}

// HasNext reports whether a page follows the current one.
func (c PaginationCursor) HasNext() bool {
	return c.Page < c.PageCount()
}

// HasPrev reports whether a page precedes the current one.
func (c PaginationCursor) HasPrev() bool {
	return c.Page > 1
}

// NextPage returns the page after the current one, clamped to the last page.
func (c PaginationCursor) NextPage() int {
	if c.HasNext() {
		return c.Page + 1
	}

	return c.Page
}

// PrevPage returns the page before the current one, clamped to page 1.
func (c PaginationCursor) PrevPage() int {
	if c.HasPrev() {
		return c.Page - 1
	}

	return c.Page
}
