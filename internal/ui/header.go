package ui

import (
	"fmt"
	"strings"

	"github.com/aislekit/aisle/internal/view"
)

// sortLabels maps sort keys to what the toolbar shows.
var sortLabels = map[view.SortKey]string{
	view.SortNewest:       "Newest",
	view.SortPriceAsc:     "Price ↑",
	view.SortPriceDesc:    "Price ↓",
	view.SortRatingDesc:   "Rating",
	view.SortDiscountDesc: "Discount",
}

// renderHeader renders the top status bar: logo, fetch state, result
// count, and the cart badge.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{styles.Logo.Render(" aisle ")}

	switch {
	case m.snapshot.Fetching:
		parts = append(parts, m.spin.View()+styles.MutedText.Render(" fetching"))
	case m.snapshot.Errored():
		parts = append(parts, styles.DangerText.Bold(true).Render("OFFLINE"))
		parts = append(parts, styles.WarningText.Render("press r to retry"))
	case m.snapshot.HasProducts:
		count := fmt.Sprintf("%d of %d products", m.vm.FilteredCount, len(m.snapshot.Products))
		parts = append(parts, styles.Text.Render(count))
	default:
		parts = append(parts, styles.MutedText.Render("no products"))
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.FaintText.Render(m.snapshot.LastUpdated.Format("15:04:05")))
	}

	badge := fmt.Sprintf("cart %d · %s", m.cart.TotalItems(), formatPrice(m.cart.TotalPrice()))
	parts = append(parts, styles.AccentText.Bold(true).Render(badge))

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderToolbar shows the active query: search text, sort, filters, and
// the shareable link for the current view.
func (m Model) renderToolbar() string {
	styles := m.theme.Styles()

	if m.inputTarget != inputNone {
		label := map[inputTarget]string{
			inputSearch:   "search",
			inputPriceMin: "min price",
			inputPriceMax: "max price",
		}[m.inputTarget]
		return styles.AccentText.Render(label+": ") + m.input.View()
	}

	var parts []string
	if m.p.SearchText != "" {
		parts = append(parts, styles.Text.Render("search ")+styles.AccentText.Render(m.p.SearchText))
		if m.p.SearchText != m.p.CommittedSearch {
			parts = append(parts, styles.FaintText.Render("(typing)"))
		}
	}
	parts = append(parts, styles.Text.Render("sort ")+styles.AccentText.Render(sortLabels[m.p.Sort]))
	if summary := filterSummary(m.p); summary != "" {
		parts = append(parts, styles.Text.Render("filters ")+styles.WarningText.Render(summary))
	}
	if link := m.p.Encode(); link != "" {
		parts = append(parts, styles.FaintText.Render("?"+link))
	}

	return styles.MutedText.Render(" ") + strings.Join(parts, styles.FaintText.Render("  │  "))
}

// filterSummary compresses the active filter dimensions into one short
// string, empty when nothing is filtered.
func filterSummary(p view.Params) string {
	var parts []string
	if len(p.Categories) > 0 {
		parts = append(parts, strings.Join(p.Categories, ","))
	}
	if len(p.Brands) > 0 {
		parts = append(parts, strings.Join(p.Brands, ","))
	}
	if p.PriceMin != nil || p.PriceMax != nil {
		lo, hi := "0", "∞"
		if p.PriceMin != nil {
			lo = formatPrice(*p.PriceMin)
		}
		if p.PriceMax != nil {
			hi = formatPrice(*p.PriceMax)
		}
		parts = append(parts, lo+"-"+hi)
	}
	if p.InStockOnly {
		parts = append(parts, "in stock")
	}
	return strings.Join(parts, " ")
}

// renderCommandBar renders the bottom key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var hints []struct{ key, desc string }
	switch {
	case m.inputTarget != inputNone:
		hints = []struct{ key, desc string }{
			{"enter", "apply"},
			{"esc", "close"},
		}
	case m.showFilters:
		hints = []struct{ key, desc string }{
			{"space", "toggle"},
			{"x", "in stock"},
			{"m/M", "price min/max"},
			{"X", "clear all"},
			{"esc", "close"},
		}
	case m.currentView == ViewCart:
		hints = []struct{ key, desc string }{
			{"+/-", "quantity"},
			{"d", "remove"},
			{"X", "empty cart"},
			{"esc", "browse"},
		}
	default:
		hints = []struct{ key, desc string }{
			{"/", "search"},
			{"f", "filters"},
			{"s", "sort"},
			{"h/l", "page"},
			{"a", "add to cart"},
			{"c", "cart"},
			{"?", "help"},
		}
	}

	var b strings.Builder
	for i, h := range hints {
		if i > 0 {
			b.WriteString(styles.FaintText.Render("  "))
		}
		b.WriteString(styles.WarningText.Render("<" + h.key + ">"))
		b.WriteString(styles.MutedText.Render(" " + h.desc))
	}
	return styles.Footer.Width(m.width).Render(b.String())
}
