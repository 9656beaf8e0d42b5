package view

import "testing"

func f(v float64) *float64 { return &v }

func TestEncode_OmitsDefaults(t *testing.T) {
	if got := DefaultParams().Encode(); got != "" {
		t.Fatalf("Encode() = %q, want empty for defaults", got)
	}

	p := DefaultParams()
	p.Page = 1
	p.Sort = SortNewest
	if got := p.Encode(); got != "" {
		t.Fatalf("Encode() = %q, want page=1 and sort=newest omitted", got)
	}
}

func TestEncode_CanonicalForm(t *testing.T) {
	p := Params{
		Page:            3,
		CommittedSearch: "phone",
		SearchText:      "phone (still typing)",
		Sort:            SortPriceAsc,
		Categories:      []string{"laptops", "smartphones"},
		Brands:          []string{"Apple"},
		PriceMin:        f(10),
		PriceMax:        f(99.5),
		InStockOnly:     true,
	}

	got := p.Encode()
	want := "brand=Apple&cat=laptops%2Csmartphones&page=3&pmax=99.5&pmin=10&q=phone&sort=price_asc&stock=1"
	if got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}

func TestParseQuery_RoundTrip(t *testing.T) {
	cases := []Params{
		DefaultParams(),
		{Page: 1, Sort: SortNewest, CommittedSearch: "watch", SearchText: "watch"},
		{Page: 7, Sort: SortDiscountDesc, InStockOnly: true},
		{Page: 1, Sort: SortRatingDesc, Categories: []string{"beauty", "groceries"}, Brands: []string{"Essence", "Chic Cosmetics"}},
		{Page: 2, Sort: SortPriceDesc, PriceMin: f(5), PriceMax: f(120.25)},
	}

	for _, p := range cases {
		got := ParseQuery(p.Encode())
		if !got.Equal(p) {
			t.Fatalf("round trip of %+v produced %+v (query %q)", p, got, p.Encode())
		}
	}
}

func TestParseQuery_RawSearchMatchesCommitted(t *testing.T) {
	p := ParseQuery("q=lamp&page=4")
	if p.CommittedSearch != "lamp" || p.SearchText != "lamp" {
		t.Fatalf("search = (%q, %q), want raw text seeded from committed", p.SearchText, p.CommittedSearch)
	}
	if p.Page != 4 {
		t.Fatalf("page = %d, want 4", p.Page)
	}
}

func TestParseQuery_MalformedFieldsFallBackIndividually(t *testing.T) {
	p := ParseQuery("?page=banana&sort=bogus&pmin=notanumber&pmax=Inf&stock=yes&cat=a,,b&q=ok")

	if p.Page != 1 {
		t.Fatalf("page = %d, want 1 for unparseable page", p.Page)
	}
	if p.Sort != SortNewest {
		t.Fatalf("sort = %q, want newest for unknown sort", p.Sort)
	}
	if p.PriceMin != nil || p.PriceMax != nil {
		t.Fatalf("price bounds = (%v, %v), want absent for non-finite values", p.PriceMin, p.PriceMax)
	}
	if p.InStockOnly {
		t.Fatal("InStockOnly = true, want false for unrecognized flag value")
	}
	if len(p.Categories) != 2 || p.Categories[0] != "a" || p.Categories[1] != "b" {
		t.Fatalf("categories = %v, want empty segments dropped", p.Categories)
	}
	// The well-formed field survives its malformed neighbors.
	if p.CommittedSearch != "ok" {
		t.Fatalf("q = %q, want ok", p.CommittedSearch)
	}
}

func TestParseQuery_GarbageQuery(t *testing.T) {
	p := ParseQuery("%zz%%%")
	if !p.Equal(DefaultParams()) {
		t.Fatalf("ParseQuery(garbage) = %+v, want defaults", p)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		if got := ParseSortKey(string(k)); got != k {
			t.Fatalf("ParseSortKey(%q) = %q", k, got)
		}
	}
	if got := ParseSortKey("oldest"); got != SortNewest {
		t.Fatalf("ParseSortKey(oldest) = %q, want newest", got)
	}
}
