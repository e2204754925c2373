package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageQuery
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", in: PageQuery{}, wantPage: 1, wantLimit: 10},
		{name: "negative page", in: PageQuery{Page: -3, Limit: 5}, wantPage: 1, wantLimit: 5},
		{name: "zero limit", in: PageQuery{Page: 2}, wantPage: 2, wantLimit: 10},
		{name: "limit capped", in: PageQuery{Page: 1, Limit: 500}, wantPage: 1, wantLimit: 100},
		{name: "valid passthrough", in: PageQuery{Page: 4, Limit: 25}, wantPage: 4, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestPageQuery_Offset(t *testing.T) {
	q := PageQuery{Page: 3, Limit: 10}
	assert.Equal(t, 20, q.Offset())

	q = PageQuery{Page: 1, Limit: 25}
	assert.Equal(t, 0, q.Offset())
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       PageQuery
		totalItems int64
		wantPages  int
	}{
		{name: "exact fit", page: PageQuery{Page: 1, Limit: 10}, totalItems: 20, wantPages: 2},
		{name: "partial last page", page: PageQuery{Page: 2, Limit: 10}, totalItems: 21, wantPages: 3},
		{name: "empty", page: PageQuery{Page: 1, Limit: 10}, totalItems: 0, wantPages: 0},
		{name: "single item", page: PageQuery{Page: 1, Limit: 10}, totalItems: 1, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.page, tt.totalItems)
			assert.Equal(t, tt.page.Page, meta.Page)
			assert.Equal(t, tt.page.Limit, meta.Limit)
			assert.Equal(t, tt.totalItems, meta.TotalItems)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}
