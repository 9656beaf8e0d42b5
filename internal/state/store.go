package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/aislekit/aisle/internal/catalog"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Products    []catalog.Product
	Total       int
	HasProducts bool
	Fetching    bool
	LastUpdated time.Time
	LastError   error
}

// Errored reports whether the most recent completed fetch failed.
func (s Snapshot) Errored() bool {
	return s.LastError != nil
}

// Store coordinates updates to the catalog snapshot. Each fetch is tagged
// with a generation number; only the most recently started fetch may apply
// its result, so a slow response that was superseded by a newer request is
// silently discarded instead of overwriting fresher data.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	gen      uint64
}

// Begin marks the start of a new fetch and returns its generation token.
// Starting a fetch supersedes every fetch begun earlier.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.snapshot.Fetching = true
	return s.gen
}

// Apply records the outcome of the fetch identified by gen. Stale
// generations are ignored. On error the previous products are kept and
// the error recorded for visibility; on success the snapshot is replaced.
// It reports whether the result was applied.
func (s *Store) Apply(gen uint64, products []catalog.Product, total int, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.snapshot.Fetching = false
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		return true
	}

	s.snapshot.Products = cloneProducts(products)
	s.snapshot.Total = total
	s.snapshot.HasProducts = true
	s.snapshot.LastError = nil
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Products = cloneProducts(s.snapshot.Products)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneProducts(items []catalog.Product) []catalog.Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.Product, len(items))
	copy(dup, items)
	return dup
}
