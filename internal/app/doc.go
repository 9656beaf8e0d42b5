// Package app provides the orchestration layer for the aisle application.
//
// # Overview
//
// This package wires together configuration, the catalog client, the cart
// ledger, the view parameter store, and the UI to create the complete aisle
// TUI experience. It serves as the composition root where all dependencies
// are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/aisle/config.toml
//  2. Load UI preferences (theme) from ~/.config/aisle/prefs.toml
//  3. Initialize the HTTP client for the catalog API
//  4. Open the durable cart ledger
//  5. Create the view parameter store, seeded from a shared link if given
//  6. Subscribe the fetcher to committed-search changes
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
// The fetcher is the only component that talks to the network. It listens
// for committed search changes on the parameter store and refetches a
// window of products into the shared state.Store. Everything else the UI
// shows, namely facets, sorting, filtering, and pagination, is derived
// locally by the derive package from that window.
//
// Each fetch carries a generation token from state.Store.Begin. Responses
// from superseded fetches are discarded on arrival, so a slow earlier
// request can never overwrite the results of a newer one.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Catalog client initialization failure
//   - Cart ledger open failure
//
// Recoverable errors (kept in state, shown by the UI):
//   - Catalog fetch failures; previously fetched products stay visible
//     and the user can retry
package app
