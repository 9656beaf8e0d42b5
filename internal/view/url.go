package view

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names shared with the web variant of the storefront, so
// links stay portable between the two.
const (
	keyPage     = "page"
	keySearch   = "q"
	keySort     = "sort"
	keyCategory = "cat"
	keyBrand    = "brand"
	keyStock    = "stock"
	keyPriceMin = "pmin"
	keyPriceMax = "pmax"
)

// Encode serializes the parameters into their canonical minimal query
// string: fields at their default are omitted, multi-valued fields are
// comma-joined, and page 1 is implied. Only the committed search is
// encoded; raw in-flight keystrokes are not part of the shareable state.
func (p Params) Encode() string {
	values := url.Values{}

	if p.Page > 1 {
		values.Set(keyPage, strconv.Itoa(p.Page))
	}
	if p.CommittedSearch != "" {
		values.Set(keySearch, p.CommittedSearch)
	}
	if p.Sort != "" && p.Sort != SortNewest {
		values.Set(keySort, string(p.Sort))
	}
	if len(p.Categories) > 0 {
		values.Set(keyCategory, strings.Join(p.Categories, ","))
	}
	if len(p.Brands) > 0 {
		values.Set(keyBrand, strings.Join(p.Brands, ","))
	}
	if p.InStockOnly {
		values.Set(keyStock, "1")
	}
	if p.PriceMin != nil {
		values.Set(keyPriceMin, formatNumber(*p.PriceMin))
	}
	if p.PriceMax != nil {
		values.Set(keyPriceMax, formatNumber(*p.PriceMax))
	}

	return values.Encode()
}

// ParseQuery reconstructs Params from a query string. Parsing never
// fails: any malformed component degrades to the default for that field
// alone, and the raw search text starts out equal to the committed one.
func ParseQuery(rawQuery string) Params {
	p := DefaultParams()

	rawQuery = strings.TrimPrefix(strings.TrimSpace(rawQuery), "?")
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return p
	}

	p.Page = parsePage(values.Get(keyPage))
	p.CommittedSearch = values.Get(keySearch)
	p.SearchText = p.CommittedSearch
	p.Sort = ParseSortKey(values.Get(keySort))
	p.Categories = parseList(values.Get(keyCategory))
	p.Brands = parseList(values.Get(keyBrand))
	p.InStockOnly = parseBool(values.Get(keyStock))
	p.PriceMin = parseNumber(values.Get(keyPriceMin))
	p.PriceMax = parseNumber(values.Get(keyPriceMax))

	return p
}

func parsePage(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parseBool(v string) bool {
	return v == "1" || v == "true"
}

func parseList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseNumber(v string) *float64 {
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
