package entity

import "math"

// Pagination is an offset window over a listing. Page is 1-based.
type Pagination struct {
	Page  int
	Limit int
}

// maxOffset bounds how far into a listing a page may start.
const maxOffset = math.MaxInt32

// NewPagination normalizes raw page/limit inputs. Values below one fall back to the
// defaults, the limit is capped at maxLimit and the page is capped so its offset stays
// within maxOffset. A capped page still lies past the last row.
func NewPagination(page, limit, defaultLimit, maxLimit int) Pagination {
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	if lastPage := maxOffset/limit + 1; page > lastPage {
		page = lastPage
	}

	return Pagination{Page: page, Limit: limit}
}

// Offset is the number of rows skipped before the page starts. It never overflows.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > maxOffset/p.Limit {
		return maxOffset
	}

	return (p.Page - 1) * p.Limit
}

// Page is one slice of a paginated listing together with the total row count.
type Page[T any] struct {
	Items []T
	Total int64
	Pagination
}

// TotalPages is ceil(Total/Limit).
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}

	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
