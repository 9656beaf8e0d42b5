// Package ui provides the Bubble Tea terminal interface for aisle.
package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aislekit/aisle/internal/cart"
	"github.com/aislekit/aisle/internal/derive"
	"github.com/aislekit/aisle/internal/prefs"
	"github.com/aislekit/aisle/internal/state"
	"github.com/aislekit/aisle/internal/view"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewCart
)

// inputTarget says which field a text prompt is editing.
type inputTarget int

const (
	inputNone inputTarget = iota
	inputSearch
	inputPriceMin
	inputPriceMax
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Params    *view.Store
	Catalog   *state.Store
	Cart      *cart.Ledger
	Refresh   func()
	PageSize  int
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	params    *view.Store
	catalog   *state.Store
	cart      *cart.Ledger
	refresh   func()
	pageSize  int
	prefsPath string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	showFilters bool

	// Browse state
	selectedRow int
	cartRow     int
	facetRow    int

	// Text prompt state
	input       textinput.Model
	inputTarget inputTarget

	// Widgets
	spin  spinner.Model
	pager paginator.Model

	// Data state
	snapshot state.Snapshot
	p        view.Params
	vm       derive.ViewModel
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 16
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	pager := paginator.New()
	pager.Type = paginator.Dots

	m := Model{
		ctx:         ctx,
		params:      opts.Params,
		catalog:     opts.Catalog,
		cart:        opts.Cart,
		refresh:     opts.Refresh,
		pageSize:    pageSize,
		prefsPath:   prefsPath,
		theme:       theme,
		currentView: ViewBrowse,
		input:       input,
		spin:        spin,
		pager:       pager,
	}
	m.applyThemeToWidgets()
	return m
}

func (m *Model) applyThemeToWidgets() {
	styles := m.theme.Styles()
	m.spin.Style = styles.AccentText
	m.pager.ActiveDot = styles.AccentText.Render("•")
	m.pager.InactiveDot = styles.FaintText.Render("•")
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		readStateCmd(m.params, m.catalog),
		m.spin.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(tickCmd(), readStateCmd(m.params, m.catalog))

	case stateMsg:
		m.snapshot = msg.snapshot
		m.p = msg.params
		m.vm = derive.Build(m.snapshot.Products, m.p, m.pageSize)
		m.clampCursors()
		m.pager.PerPage = m.pageSize
		m.pager.SetTotalPages(m.vm.FilteredCount)
		m.pager.Page = m.p.Page - 1
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderToolbar())
	b.WriteString("\n")

	switch {
	case m.showFilters:
		b.WriteString(m.renderFilters())
	case m.currentView == ViewCart:
		b.WriteString(m.renderCart())
	default:
		b.WriteString(m.renderBrowse())
	}

	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// clampCursors keeps all cursors within their (possibly shrunken) lists.
func (m *Model) clampCursors() {
	if n := len(m.vm.Page); m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	if n := len(m.cart.Lines()); m.cartRow >= n {
		m.cartRow = n - 1
	}
	if m.cartRow < 0 {
		m.cartRow = 0
	}
	if n := m.facetCount(); m.facetRow >= n {
		m.facetRow = n - 1
	}
	if m.facetRow < 0 {
		m.facetRow = 0
	}
}

func (m Model) facetCount() int {
	return len(m.vm.Facets.Categories) + len(m.vm.Facets.Brands)
}

// refreshState re-reads the stores immediately after a mutation instead
// of waiting for the next tick.
func (m Model) refreshState() tea.Cmd {
	return readStateCmd(m.params, m.catalog)
}

// Messages

type tickMsg time.Time

type stateMsg struct {
	params   view.Params
	snapshot state.Snapshot
}

// Commands

const uiTick = 250 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func readStateCmd(params *view.Store, catalog *state.Store) tea.Cmd {
	return func() tea.Msg {
		return stateMsg{params: params.Params(), snapshot: catalog.Snapshot()}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// A signal cancelled the context; not a failure.
		return nil
	}
	return err
}
