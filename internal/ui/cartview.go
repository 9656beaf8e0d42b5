package ui

import (
	"fmt"
	"strings"
)

// renderCart renders the cart drawer: one row per line with quantity
// and subtotal, then the running totals.
func (m Model) renderCart() string {
	styles := m.theme.Styles()
	lines := m.cart.Lines()

	if len(lines) == 0 {
		return styles.Pane.Width(m.width - 2).Render(
			styles.MutedText.Render("Your cart is empty. Press a on a product to add it."))
	}

	titleWidth := m.width - 36
	if titleWidth < 16 {
		titleWidth = 16
	}

	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Cart"))
	b.WriteString("\n\n")

	for i, line := range lines {
		row := fmt.Sprintf("%s ×%-3d %s",
			padRight(truncate(line.Title, titleWidth), titleWidth),
			line.Quantity,
			formatPrice(line.Price*float64(line.Quantity)),
		)
		if i == m.cartRow {
			b.WriteString(styles.Selected.Render("▸ " + row))
		} else {
			b.WriteString(styles.Text.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	total := fmt.Sprintf("%d items  %s", m.cart.TotalItems(), formatPrice(m.cart.TotalPrice()))
	b.WriteString(styles.AccentText.Bold(true).Render(total))

	return styles.Pane.Width(m.width - 2).Render(b.String())
}
