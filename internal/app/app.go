package app

import (
	"context"
	"fmt"

	"github.com/aislekit/aisle/internal/cart"
	"github.com/aislekit/aisle/internal/catalog"
	"github.com/aislekit/aisle/internal/config"
	"github.com/aislekit/aisle/internal/prefs"
	"github.com/aislekit/aisle/internal/state"
	"github.com/aislekit/aisle/internal/ui"
	"github.com/aislekit/aisle/internal/view"
)

// Options configure the aisle application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/aisle/prefs.toml
	APIURL     string // overrides the configured API base URL
	Link       string // shareable query string to open with, e.g. "q=lamp&sort=price_asc"
}

// Run boots the aisle TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	ledger, err := cart.Open(cfg.CartPath)
	if err != nil {
		return fmt.Errorf("open cart: %w", err)
	}

	params := view.NewStore(view.ParseQuery(opts.Link))
	defer params.Close()

	catalogState := &state.Store{}
	fetcher := NewFetcher(ctx, client, catalogState, cfg.FetchLimit)

	// A committed search changes what the server is asked for; everything
	// else is derived locally from the fetched window.
	params.Subscribe(func(p view.Params) {
		fetcher.EnsureFresh(p.CommittedSearch)
	})

	// Initial fetch before the UI starts drawing.
	fetcher.EnsureFresh(params.Params().CommittedSearch)

	uiOpts := ui.Options{
		Context:   ctx,
		Params:    params,
		Catalog:   catalogState,
		Cart:      ledger,
		Refresh:   fetcher.Refresh,
		PageSize:  cfg.PageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
