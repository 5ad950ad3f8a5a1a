package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 12},
		{name: "negative values", page: -3, limit: -1, wantPage: 1, wantLimit: 12},
		{name: "explicit values", page: 3, limit: 20, wantPage: 3, wantLimit: 20},
		{name: "limit capped", page: 1, limit: 500, wantPage: 1, wantLimit: 100},
		{name: "huge page capped", page: math.MaxInt64 / 50, limit: 100, wantPage: math.MaxInt32/100 + 1, wantLimit: 100},
		{name: "max int page", page: math.MaxInt, limit: 12, wantPage: math.MaxInt32/12 + 1, wantLimit: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, 12, 100)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Pagination{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, Pagination{}.Offset())

	t.Run("never negative", func(t *testing.T) {
		for _, page := range []int{math.MaxInt64 / 50, math.MaxInt, math.MaxInt32} {
			p := NewPagination(page, 100, 12, 100)
			assert.Positive(t, p.Offset(), "page %d", page)
			assert.LessOrEqual(t, p.Offset(), math.MaxInt32, "page %d", page)
		}
		assert.Equal(t, math.MaxInt32, Pagination{Page: math.MaxInt, Limit: 100}.Offset())
	})
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{total: 0, limit: 12, want: 0},
		{total: 1, limit: 12, want: 1},
		{total: 12, limit: 12, want: 1},
		{total: 13, limit: 12, want: 2},
		{total: 25, limit: 10, want: 3},
	}

	for _, tt := range tests {
		page := Page[int]{Total: tt.total, Pagination: Pagination{Page: 1, Limit: tt.limit}}
		assert.Equal(t, tt.want, page.TotalPages(), "total=%d limit=%d", tt.total, tt.limit)
	}
}
