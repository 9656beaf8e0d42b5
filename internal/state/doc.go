// Package state provides thread-safe storage for the latest catalog fetch.
//
// # Overview
//
// The Store is the coordination point between background fetches and the
// UI: a fetch goroutine applies results, the UI reads snapshots. It is a
// single container for the most recent successful product list plus error
// and progress bookkeeping.
//
// # Supersession
//
// Fetches can overlap: a new search commit or page change may start a
// request while an earlier one is still in flight. Begin() hands each
// fetch a generation token, and Apply() only accepts results carrying the
// current generation:
//
//	gen := store.Begin()
//	resp, err := client.FetchProducts(ctx, q)
//	store.Apply(gen, resp.Products, resp.Total, err)
//
// If another Begin() happened in between, the first Apply is a no-op:
// last-initiated wins, and a stale response (or stale error) can never
// overwrite fresher data.
//
// # Error semantics
//
//	// Success: replace the snapshot
//	store.Apply(gen, products, total, nil)
//	→ Products/Total replaced, LastError cleared
//
//	// Failure: keep old data, record the error
//	store.Apply(gen, nil, 0, err)
//	→ Products/Total unchanged, LastError set
//
// The UI therefore always has the most recent successful list to show,
// alongside a retry affordance when LastError is set.
//
// # Concurrency
//
// A sync.RWMutex guards the snapshot; Snapshot() returns defensive copies
// (products slice cloned, error wrapped) so readers never alias store
// internals. The zero Store is ready to use.
package state
