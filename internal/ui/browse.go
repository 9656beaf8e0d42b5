package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBrowse renders the product list alongside the detail pane for
// the selected product, with the pager line underneath.
func (m Model) renderBrowse() string {
	styles := m.theme.Styles()

	listWidth := m.width * 3 / 5
	detailWidth := m.width - listWidth - 4
	if detailWidth < 20 {
		listWidth = m.width
		detailWidth = 0
	}

	list := m.renderProductList(listWidth)
	if detailWidth > 0 {
		detail := m.renderDetail(detailWidth)
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	}

	pager := fmt.Sprintf("page %d/%d  %s", m.p.Page, m.vm.TotalPages, m.pager.View())
	return list + "\n" + styles.MutedText.Render(" "+pager)
}

func (m Model) renderProductList(width int) string {
	styles := m.theme.Styles()

	if len(m.vm.Page) == 0 {
		msg := "No products match the current filters."
		if m.snapshot.Errored() && !m.snapshot.HasProducts {
			msg = "Could not load the catalog. Press r to retry."
		}
		return styles.Pane.Width(width - 2).Render(styles.MutedText.Render(msg))
	}

	titleWidth := width - 30
	if titleWidth < 16 {
		titleWidth = 16
	}

	var b strings.Builder
	for i, p := range m.vm.Page {
		line := fmt.Sprintf("%s %s %s",
			padRight(truncate(p.Title, titleWidth), titleWidth),
			padRight(formatPrice(p.DiscountedPrice()), 9),
			fmt.Sprintf("★%.1f", p.Rating),
		)
		if p.Stock <= 0 {
			line += "  " + styles.DangerText.Render("out of stock")
		}
		if i == m.selectedRow {
			b.WriteString(styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return styles.Pane.Width(width - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderDetail(width int) string {
	styles := m.theme.Styles()
	inner := width - 4

	if m.selectedRow >= len(m.vm.Page) {
		return styles.Pane.Width(width).Render(styles.FaintText.Render("nothing selected"))
	}
	p := m.vm.Page[m.selectedRow]

	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render(truncate(p.Title, inner)))
	b.WriteString("\n\n")

	price := formatPrice(p.DiscountedPrice())
	if p.DiscountPercentage > 0 {
		price += "  " + styles.FaintText.Render(formatPrice(p.Price)) +
			"  " + styles.SuccessText.Render(fmt.Sprintf("-%.0f%%", p.DiscountPercentage))
	}
	b.WriteString(styles.AccentText.Bold(true).Render(price))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Category", titleCase(p.Category)},
		{"Brand", p.Brand},
		{"Rating", fmt.Sprintf("%.2f", p.Rating)},
		{"Stock", fmt.Sprintf("%d", p.Stock)},
	}
	for _, row := range rows {
		b.WriteString(styles.MutedText.Render(padRight(row.label, 10)))
		b.WriteString(styles.Text.Render(row.value))
		b.WriteString("\n")
	}

	if p.Description != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(wrap(p.Description, inner)))
		b.WriteString("\n")
	}

	return styles.Pane.Width(width).Render(b.String())
}

// wrap does simple greedy word wrapping.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	var b strings.Builder
	lineLen := 0
	for _, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
