package ui

import (
	"fmt"
	"strings"
)

// renderFilters renders the filter panel: category and brand facets
// with checkboxes, plus the price and stock rows. Facet options come
// from the raw list, so narrowing never hides an option.
func (m Model) renderFilters() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Filters"))
	b.WriteString("\n\n")

	row := 0
	writeFacet := func(name string, active bool) {
		box := ternary(active, "[x]", "[ ]")
		line := box + " " + titleCase(name)
		if row == m.facetRow {
			b.WriteString(styles.Selected.Render("▸ " + line))
		} else if active {
			b.WriteString(styles.AccentText.Render("  " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
		row++
	}

	b.WriteString(styles.MutedText.Render("Categories"))
	b.WriteString("\n")
	for _, c := range m.vm.Facets.Categories {
		writeFacet(c, containsString(m.p.Categories, c))
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Brands"))
	b.WriteString("\n")
	for _, br := range m.vm.Facets.Brands {
		writeFacet(br, containsString(m.p.Brands, br))
	}

	b.WriteString("\n")
	lo := ternary(m.p.PriceMin != nil, formatBound(m.p.PriceMin), "any")
	hi := ternary(m.p.PriceMax != nil, formatBound(m.p.PriceMax), "any")
	b.WriteString(styles.MutedText.Render("Price  "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%s to %s", lo, hi)))
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("  (catalog %s to %s)",
		formatPrice(m.vm.Facets.PriceMin), formatPrice(m.vm.Facets.PriceMax))))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("Stock  "))
	b.WriteString(styles.Text.Render(ternary(m.p.InStockOnly, "in stock only", "all products")))
	b.WriteString("\n")

	return styles.Pane.Width(m.width - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
