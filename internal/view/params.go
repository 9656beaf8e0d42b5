package view

// SortKey identifies one of the supported catalog orderings.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortRatingDesc   SortKey = "rating_desc"
	SortDiscountDesc SortKey = "discount_desc"
)

// SortKeys lists every ordering in cycle order.
var SortKeys = []SortKey{
	SortNewest,
	SortPriceAsc,
	SortPriceDesc,
	SortRatingDesc,
	SortDiscountDesc,
}

// ParseSortKey returns the matching key, or SortNewest for anything
// unrecognized.
func ParseSortKey(v string) SortKey {
	for _, k := range SortKeys {
		if string(k) == v {
			return k
		}
	}
	return SortNewest
}

// Params holds every user-editable view parameter. SearchText is the raw
// input echoed back to the user; CommittedSearch is the debounced value
// that filtering and fetching actually use.
type Params struct {
	Page            int
	SearchText      string
	CommittedSearch string
	Sort            SortKey
	Categories      []string
	Brands          []string
	PriceMin        *float64
	PriceMax        *float64
	InStockOnly     bool
}

// DefaultParams returns the state of a freshly opened catalog.
func DefaultParams() Params {
	return Params{Page: 1, Sort: SortNewest}
}

// Equal reports whether two Params are identical, including the raw
// search text.
func (p Params) Equal(o Params) bool {
	if p.Page != o.Page ||
		p.SearchText != o.SearchText ||
		p.CommittedSearch != o.CommittedSearch ||
		p.Sort != o.Sort ||
		p.InStockOnly != o.InStockOnly {
		return false
	}
	if !equalStrings(p.Categories, o.Categories) || !equalStrings(p.Brands, o.Brands) {
		return false
	}
	return equalFloatPtr(p.PriceMin, o.PriceMin) && equalFloatPtr(p.PriceMax, o.PriceMax)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// clone returns a deep copy so callers can hold a snapshot without
// aliasing the store's slices.
func (p Params) clone() Params {
	out := p
	out.Categories = append([]string(nil), p.Categories...)
	out.Brands = append([]string(nil), p.Brands...)
	if p.PriceMin != nil {
		v := *p.PriceMin
		out.PriceMin = &v
	}
	if p.PriceMax != nil {
		v := *p.PriceMax
		out.PriceMax = &v
	}
	return out
}

func toggle(values []string, v string) []string {
	for i, s := range values {
		if s == v {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return append(values, v)
}
