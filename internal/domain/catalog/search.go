package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/xenking/harshita-store/internal/domain/product"
)

// Sort orders a product listing.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortName      Sort = "name"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

// ParseSort maps a sort option to a Sort, defaulting to SortNewest.
func ParseSort(s string) Sort {
	switch v := Sort(strings.ToLower(strings.TrimSpace(s))); v {
	case SortName, SortPriceAsc, SortPriceDesc:
		return v
	default:
		return SortNewest
	}
}

// Query narrows and orders a product listing.
type Query struct {
	// Text matches the name, the category or any tag, ignoring case.
	Text string
	// Category matches the category name exactly.
	Category string
	Sort     Sort
}

// Search filters and sorts products without modifying the input slice.
func Search(products []product.Product, q Query) []product.Product {
	text := fold(strings.TrimSpace(q.Text))
	out := filter(products, func(p product.Product) bool {
		if q.Category != "" && p.Category != q.Category {
			return false
		}
		return text == "" || matches(p, text)
	})

	switch q.Sort {
	case SortName:
		col := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b product.Product) int {
			return b.Price.Cmp(a.Price)
		})
	default:
		slices.SortStableFunc(out, newestFirst(collate.New(language.English, collate.IgnoreCase)))
	}
	return out
}

func matches(p product.Product, folded string) bool {
	if strings.Contains(fold(p.Name), folded) || strings.Contains(fold(p.Category), folded) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(fold(t), folded) {
			return true
		}
	}
	return false
}
