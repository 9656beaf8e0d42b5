package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("shop.example.com")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "shop.example.com" {
		t.Fatalf("url = %q, want https://shop.example.com", u.String())
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_SelectsEndpointAndEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ProductsResponse{
			Products: []Product{{ID: 7, Title: "Sample", Price: 19.5}},
			Total:    1,
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	resp, err := c.FetchProducts(ctx, Query{Limit: 200, Skip: 0})
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if gotPath != "/products" {
		t.Fatalf("path = %q, want /products", gotPath)
	}
	if gotQuery.Get("limit") != "200" {
		t.Fatalf("limit = %q, want 200", gotQuery.Get("limit"))
	}
	if gotQuery.Has("skip") {
		t.Fatalf("skip should be omitted when zero, got %q", gotQuery.Get("skip"))
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != 7 {
		t.Fatalf("products = %#v, want 1 product id=7", resp.Products)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}

	// Search term wins over category.
	_, err = c.FetchProducts(ctx, Query{Limit: 16, Skip: 32, Search: " phone ", Category: "laptops"})
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if gotPath != "/products/search" {
		t.Fatalf("path = %q, want /products/search", gotPath)
	}
	if gotQuery.Get("q") != "phone" {
		t.Fatalf("q = %q, want trimmed %q", gotQuery.Get("q"), "phone")
	}
	if gotQuery.Get("skip") != "32" {
		t.Fatalf("skip = %q, want 32", gotQuery.Get("skip"))
	}

	// Category routes to the category endpoint.
	_, err = c.FetchProducts(ctx, Query{Limit: 16, Category: "home decor"})
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if gotPath != "/products/category/home%20decor" && gotPath != "/products/category/home decor" {
		t.Fatalf("path = %q, want category endpoint", gotPath)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	if _, err := c.FetchProducts(ctx, Query{Limit: 16}); err == nil {
		t.Fatal("FetchProducts should fail on status 500")
	}
}

func TestProduct_Derived(t *testing.T) {
	p := Product{Price: 100, DiscountPercentage: 25, Stock: 0}
	if p.InStock() {
		t.Fatal("InStock() = true, want false with zero stock")
	}
	if got := p.DiscountedPrice(); got != 75 {
		t.Fatalf("DiscountedPrice() = %v, want 75", got)
	}

	p = Product{Price: 40, Stock: 3}
	if !p.InStock() {
		t.Fatal("InStock() = false, want true")
	}
	if got := p.DiscountedPrice(); got != 40 {
		t.Fatalf("DiscountedPrice() = %v, want 40 without discount", got)
	}
}
