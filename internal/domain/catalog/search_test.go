package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xenking/harshita-store/internal/domain/product"
)

func TestSearch(t *testing.T) {
	samples := SampleProducts()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "text matches name",
			query: Query{Text: "BASMATI"},
			want:  []string{"sample-1"},
		},
		{
			name:  "text matches tag",
			query: Query{Text: "haldi"},
			want:  []string{"sample-7"},
		},
		{
			name:  "text matches category",
			query: Query{Text: "dairy"},
			want:  []string{"sample-9", "sample-10"},
		},
		{
			name:  "category is exact",
			query: Query{Category: "snacks"},
			want:  []string{},
		},
		{
			name:  "category and price ascending",
			query: Query{Category: "Snacks", Sort: SortPriceAsc},
			want:  []string{"sample-12", "sample-11"},
		},
		{
			name:  "price descending",
			query: Query{Text: "oil", Sort: SortPriceDesc},
			want:  []string{"sample-3", "sample-4"},
		},
		{
			name:  "name order",
			query: Query{Text: "dal", Sort: SortName},
			want:  []string{"sample-6", "sample-5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Search(samples, tt.query)))
		})
	}
}

func TestSearch_NewestFirst(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []product.Product{
		{ID: "unknown", Name: "Unknown"},
		{ID: "old", Name: "Old", CreatedAt: base},
		{ID: "new", Name: "New", CreatedAt: base.Add(time.Minute)},
	}

	got := Search(products, Query{Sort: SortNewest})
	assert.Equal(t, []string{"new", "old", "unknown"}, ids(got))
	assert.Equal(t, "unknown", products[0].ID, "input must not be reordered")
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSort(""))
	assert.Equal(t, SortNewest, ParseSort("popular"))
	assert.Equal(t, SortName, ParseSort("name"))
	assert.Equal(t, SortPriceAsc, ParseSort(" PRICE_ASC "))
	assert.Equal(t, SortPriceDesc, ParseSort("price_desc"))
}
