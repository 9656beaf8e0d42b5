package ui

import (
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aislekit/aisle/internal/prefs"
	"github.com/aislekit/aisle/internal/view"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputTarget != inputNone {
		return m.handleInputKey(msg)
	}

	// Help overlay swallows everything except its dismiss keys.
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "T":
		return m.cycleTheme()
	case "r":
		if m.refresh != nil {
			m.refresh()
		}
		return m, m.refreshState()
	}

	if m.showFilters {
		return m.handleFilterKey(msg)
	}
	if m.currentView == ViewCart {
		return m.handleCartKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		return m.startInput(inputSearch, m.p.SearchText, "search products"), textinput.Blink
	case "j", "down":
		if m.selectedRow < len(m.vm.Page)-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "h", "left":
		if m.p.Page > 1 {
			m.params.SetPage(m.p.Page - 1)
			return m, m.refreshState()
		}
	case "l", "right":
		if m.p.Page < m.vm.TotalPages {
			m.params.SetPage(m.p.Page + 1)
			return m, m.refreshState()
		}
	case "g":
		m.params.SetPage(1)
		return m, m.refreshState()
	case "G":
		m.params.SetPage(m.vm.TotalPages)
		return m, m.refreshState()
	case "s":
		m.params.SetSort(nextSortKey(m.p.Sort))
		return m, m.refreshState()
	case "f":
		m.showFilters = true
		m.facetRow = 0
	case "a", "enter":
		if m.selectedRow < len(m.vm.Page) {
			if err := m.cart.Add(m.vm.Page[m.selectedRow]); err != nil {
				log.Printf("cart add failed: %v", err)
			}
		}
	case "c", "tab":
		m.currentView = ViewCart
		m.cartRow = 0
	case "X":
		m.params.ClearAll()
		return m, m.refreshState()
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f", "esc":
		m.showFilters = false
	case "j", "down":
		if m.facetRow < m.facetCount()-1 {
			m.facetRow++
		}
	case "k", "up":
		if m.facetRow > 0 {
			m.facetRow--
		}
	case " ", "enter":
		if name, isBrand, ok := m.facetAt(m.facetRow); ok {
			if isBrand {
				m.params.ToggleBrand(name)
			} else {
				m.params.ToggleCategory(name)
			}
			return m, m.refreshState()
		}
	case "x":
		m.params.ToggleInStockOnly()
		return m, m.refreshState()
	case "m":
		return m.startInput(inputPriceMin, formatBound(m.p.PriceMin), "min price"), textinput.Blink
	case "M":
		return m.startInput(inputPriceMax, formatBound(m.p.PriceMax), "max price"), textinput.Blink
	case "X":
		m.params.ClearAll()
		return m, m.refreshState()
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.cart.Lines()
	var id int64
	if m.cartRow < len(lines) {
		id = lines[m.cartRow].ID
	}

	switch msg.String() {
	case "c", "tab", "esc":
		m.currentView = ViewBrowse
	case "j", "down":
		if m.cartRow < len(lines)-1 {
			m.cartRow++
		}
	case "k", "up":
		if m.cartRow > 0 {
			m.cartRow--
		}
	case "+", "=":
		if id != 0 {
			if err := m.cart.Increase(id); err != nil {
				log.Printf("cart update failed: %v", err)
			}
		}
	case "-":
		if id != 0 {
			if err := m.cart.Decrease(id); err != nil {
				log.Printf("cart update failed: %v", err)
			}
		}
	case "d":
		if id != 0 {
			if err := m.cart.Remove(id); err != nil {
				log.Printf("cart update failed: %v", err)
			}
		}
	case "X":
		if err := m.cart.Clear(); err != nil {
			log.Printf("cart clear failed: %v", err)
		}
	}
	return m, nil
}

// handleInputKey routes keys to the active text prompt. Search commits
// on every keystroke so the debounce in the parameter store sees the
// live text; price bounds commit only on enter.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputTarget = inputNone
		m.input.Blur()
		return m, nil
	case "enter":
		target := m.inputTarget
		value := strings.TrimSpace(m.input.Value())
		m.inputTarget = inputNone
		m.input.Blur()
		switch target {
		case inputPriceMin:
			m.params.SetPriceMin(parseBound(value))
		case inputPriceMax:
			m.params.SetPriceMax(parseBound(value))
		}
		return m, m.refreshState()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.inputTarget == inputSearch {
		m.params.SetSearchText(m.input.Value())
	}
	return m, cmd
}

func (m Model) startInput(target inputTarget, value, placeholder string) Model {
	m.inputTarget = target
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyThemeToWidgets()
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		log.Printf("save prefs failed: %v", err)
	}
	return m, nil
}

// facetAt maps a flat cursor index onto the category list followed by
// the brand list.
func (m Model) facetAt(row int) (name string, isBrand, ok bool) {
	cats := m.vm.Facets.Categories
	if row < len(cats) {
		return cats[row], false, true
	}
	row -= len(cats)
	if row < len(m.vm.Facets.Brands) {
		return m.vm.Facets.Brands[row], true, true
	}
	return "", false, false
}

func nextSortKey(current view.SortKey) view.SortKey {
	for i, k := range view.SortKeys {
		if k == current {
			return view.SortKeys[(i+1)%len(view.SortKeys)]
		}
	}
	return view.SortNewest
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseBound(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
