package view

import (
	"strings"
	"sync"
	"time"
)

// DebounceInterval is how long search input must stay quiet before the
// typed text is committed.
const DebounceInterval = 500 * time.Millisecond

// Store is the single owner of the view parameters. Every mutation
// notifies the registered listeners with a snapshot, which is how URL
// sync and refetching are wired up without the store knowing about
// either.
type Store struct {
	mu        sync.Mutex
	params    Params
	debounce  time.Duration
	timer     *time.Timer
	listeners []func(Params)
}

// NewStore builds a store seeded with the given parameters, typically
// ParseQuery of a shared link or DefaultParams.
func NewStore(initial Params) *Store {
	return &Store{
		params:   initial.clone(),
		debounce: DebounceInterval,
	}
}

// Subscribe registers a listener invoked after every parameter change.
// Listeners run outside the store's lock, in mutation order.
func (s *Store) Subscribe(fn func(Params)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Params returns a snapshot of the current parameters.
func (s *Store) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.clone()
}

// SetSearchText records the raw input immediately and restarts the
// debounce window. The committed search, and the page reset that comes
// with it, only happen once the input has been quiet for the full
// window.
func (s *Store) SetSearchText(text string) {
	s.mu.Lock()
	s.params.SearchText = text
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.commitSearch)
	snap := s.params.clone()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

func (s *Store) commitSearch() {
	s.mu.Lock()
	committed := strings.TrimSpace(s.params.SearchText)
	if committed == s.params.CommittedSearch {
		s.mu.Unlock()
		return
	}
	s.params.CommittedSearch = committed
	s.params.Page = 1
	snap := s.params.clone()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

// SetSort selects an ordering and resets the page.
func (s *Store) SetSort(key SortKey) {
	s.mutate(func(p *Params) {
		p.Sort = key
		p.Page = 1
	})
}

// ToggleCategory adds or removes a category from the selection and
// resets the page.
func (s *Store) ToggleCategory(name string) {
	s.mutate(func(p *Params) {
		p.Categories = toggle(p.Categories, name)
		p.Page = 1
	})
}

// ToggleBrand adds or removes a brand from the selection and resets the
// page.
func (s *Store) ToggleBrand(name string) {
	s.mutate(func(p *Params) {
		p.Brands = toggle(p.Brands, name)
		p.Page = 1
	})
}

// SetPriceMin sets or clears the lower price bound and resets the page.
func (s *Store) SetPriceMin(v *float64) {
	s.mutate(func(p *Params) {
		p.PriceMin = v
		p.Page = 1
	})
}

// SetPriceMax sets or clears the upper price bound and resets the page.
func (s *Store) SetPriceMax(v *float64) {
	s.mutate(func(p *Params) {
		p.PriceMax = v
		p.Page = 1
	})
}

// ToggleInStockOnly flips the stock filter and resets the page.
func (s *Store) ToggleInStockOnly() {
	s.mutate(func(p *Params) {
		p.InStockOnly = !p.InStockOnly
		p.Page = 1
	})
}

// SetPage moves to the given page without touching any other field. The
// caller keeps it within the derived page range.
func (s *Store) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.mutate(func(p *Params) {
		p.Page = n
	})
}

// ClearAll returns every field to its default, cancelling any pending
// search commit.
func (s *Store) ClearAll() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.params = DefaultParams()
	snap := s.params.clone()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

// Close stops the pending debounce timer, if any.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Store) mutate(fn func(*Params)) {
	s.mu.Lock()
	fn(&s.params)
	snap := s.params.clone()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

func (s *Store) listenersLocked() []func(Params) {
	out := make([]func(Params), len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []func(Params), p Params) {
	for _, fn := range listeners {
		fn(p)
	}
}
