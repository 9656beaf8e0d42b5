// Package config handles loading and parsing aisle configuration files.
//
// # Overview
//
// This package reads aisle's TOML configuration to discover the catalog API
// endpoint, the page size, the fetch window, and where the cart ledger is
// stored.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/aisle/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/aisle/config.toml
//   - API endpoint: https://dummyjson.com
//   - Page size: 16 products
//   - Fetch limit: 200 products per request
//   - Cart path: ~/.local/share/aisle/cart.toml
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "https://dummyjson.com"
//	page_size = 16
//	fetch_limit = 200
//	cart_path = "~/.local/share/aisle/cart.toml"
//
// All fields are optional. Tilde expansion is performed automatically for
// paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows aisle to work out-of-the-box without configuration.
//
// # Design Philosophy
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
