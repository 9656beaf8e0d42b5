package app

import (
	"context"
	"log"
	"sync"

	"github.com/aislekit/aisle/internal/catalog"
	"github.com/aislekit/aisle/internal/state"
)

// Fetcher runs catalog fetches in the background and applies their
// results to the state store. Supersession is handled by the store's
// generation tokens: starting a new fetch invalidates any still in
// flight, so out-of-order completions cannot clobber fresher data.
type Fetcher struct {
	ctx    context.Context
	client catalog.Fetcher
	store  *state.Store
	limit  int

	mu         sync.Mutex
	fetched    bool
	lastSearch string
}

// NewFetcher builds a Fetcher that requests windows of up to limit items.
func NewFetcher(ctx context.Context, client catalog.Fetcher, store *state.Store, limit int) *Fetcher {
	return &Fetcher{
		ctx:    ctx,
		client: client,
		store:  store,
		limit:  limit,
	}
}

// EnsureFresh starts a fetch when the search term differs from the last
// one fetched, or when nothing has been fetched yet. Repeated calls with
// an unchanged term are no-ops, so purely local parameter changes (sort,
// filters, page) never hit the network.
func (f *Fetcher) EnsureFresh(search string) {
	f.mu.Lock()
	if f.fetched && f.lastSearch == search {
		f.mu.Unlock()
		return
	}
	f.fetched = true
	f.lastSearch = search
	f.mu.Unlock()

	f.start(search)
}

// Refresh unconditionally refetches the current window. Used for the
// explicit retry after a failed fetch.
func (f *Fetcher) Refresh() {
	f.mu.Lock()
	f.fetched = true
	search := f.lastSearch
	f.mu.Unlock()

	f.start(search)
}

func (f *Fetcher) start(search string) {
	gen := f.store.Begin()
	go func() {
		resp, err := f.client.FetchProducts(f.ctx, catalog.Query{
			Limit:  f.limit,
			Search: search,
		})
		if err != nil {
			if f.store.Apply(gen, nil, 0, err) {
				log.Printf("catalog fetch failed: %v", err)
			}
			return
		}
		f.store.Apply(gen, resp.Products, resp.Total, nil)
	}()
}
