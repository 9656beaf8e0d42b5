// Package derive contains the pure functions that turn a raw product list
// and the current view parameters into everything the UI renders: facets,
// a sorted list, a filtered list, and a single page. Identical inputs
// always produce identical outputs.
package derive

import (
	"sort"

	"github.com/aislekit/aisle/internal/catalog"
	"github.com/aislekit/aisle/internal/view"
)

// Facets describes the filter options present in the raw (unfiltered)
// list, so every option stays offered even after filtering narrows the
// results.
type Facets struct {
	Categories []string
	Brands     []string
	PriceMin   float64
	PriceMax   float64
}

// ViewModel is the fully derived state handed to presentation.
type ViewModel struct {
	Facets        Facets
	Sorted        []catalog.Product
	Filtered      []catalog.Product
	Page          []catalog.Product
	FilteredCount int
	TotalPages    int
}

// Build composes the full pipeline: facets from the raw list, then stable
// sort, then filter, then one page of size pageSize.
func Build(products []catalog.Product, params view.Params, pageSize int) ViewModel {
	sorted := SortProducts(products, params.Sort)
	filtered := FilterProducts(sorted, params)
	page, totalPages := Paginate(filtered, params.Page, pageSize)

	minPrice, maxPrice := PriceBounds(products)
	return ViewModel{
		Facets: Facets{
			Categories: Categories(products),
			Brands:     Brands(products),
			PriceMin:   minPrice,
			PriceMax:   maxPrice,
		},
		Sorted:        sorted,
		Filtered:      filtered,
		Page:          page,
		FilteredCount: len(filtered),
		TotalPages:    totalPages,
	}
}

// Categories returns the distinct category values, sorted ascending.
func Categories(products []catalog.Product) []string {
	return distinct(products, func(p catalog.Product) string { return p.Category })
}

// Brands returns the distinct brand values, sorted ascending.
func Brands(products []catalog.Product) []string {
	return distinct(products, func(p catalog.Product) string { return p.Brand })
}

func distinct(products []catalog.Product, key func(catalog.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		v := key(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// PriceBounds returns the minimum and maximum price across the list, or
// (0, 0) for an empty list.
func PriceBounds(products []catalog.Product) (min, max float64) {
	if len(products) == 0 {
		return 0, 0
	}
	min = products[0].Price
	max = products[0].Price
	for _, p := range products {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// SortProducts returns a stably sorted copy of the list. The input is
// never mutated; ties keep their original relative order.
func SortProducts(products []catalog.Product, key view.SortKey) []catalog.Product {
	out := make([]catalog.Product, len(products))
	copy(out, products)

	var less func(a, b catalog.Product) bool
	switch key {
	case view.SortPriceAsc:
		less = func(a, b catalog.Product) bool { return a.Price < b.Price }
	case view.SortPriceDesc:
		less = func(a, b catalog.Product) bool { return a.Price > b.Price }
	case view.SortRatingDesc:
		less = func(a, b catalog.Product) bool { return a.Rating > b.Rating }
	case view.SortDiscountDesc:
		less = func(a, b catalog.Product) bool { return a.DiscountPercentage > b.DiscountPercentage }
	default:
		// newest: higher IDs are newer
		less = func(a, b catalog.Product) bool { return a.ID > b.ID }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// FilterProducts retains the items satisfying every active filter
// dimension. Within the category and brand sets the test is membership.
func FilterProducts(products []catalog.Product, params view.Params) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if params.InStockOnly && p.Stock <= 0 {
			continue
		}
		if len(params.Categories) > 0 && !contains(params.Categories, p.Category) {
			continue
		}
		if len(params.Brands) > 0 && !contains(params.Brands, p.Brand) {
			continue
		}
		if params.PriceMin != nil && p.Price < *params.PriceMin {
			continue
		}
		if params.PriceMax != nil && p.Price > *params.PriceMax {
			continue
		}
		out = append(out, p)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Paginate slices out the requested page and reports the page count.
// totalPages is at least 1 even for an empty list; a page beyond the end
// yields an empty slice rather than an error.
func Paginate(products []catalog.Product, page, pageSize int) ([]catalog.Product, int) {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := (len(products) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= len(products) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], totalPages
}
