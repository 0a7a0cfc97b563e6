package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"textmathkb/internal/catalog"
	"textmathkb/internal/config"
	"textmathkb/internal/kvstore"
	"textmathkb/internal/layout"
	"textmathkb/internal/logging"
	"textmathkb/internal/matcher"
	"textmathkb/internal/picker"
	"textmathkb/internal/selection"
)

// slowBootstrap is when startup gets a warning in the boot log.
const slowBootstrap = 250 * time.Millisecond

// app bundles what every command needs.
type app struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	store     *kvstore.AsyncWriter
	selection *selection.Store
	matcher   *matcher.Matcher
}

// bootstrap loads the catalog and opens the store concurrently.
func bootstrap(ctx context.Context, cfg *config.Config) (*app, error) {
	timer := logging.StartTimer(logging.CategoryBoot, "bootstrap")
	defer timer.StopWithThreshold(slowBootstrap)

	rule, err := matcher.ParseRule(cfg.Picker.MatchRule)
	if err != nil {
		return nil, err
	}

	var (
		cat *catalog.Catalog
		kv  kvstore.Store
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cat, err = loadCatalog(cfg.Catalog.Path)
		return err
	})
	g.Go(func() error {
		var err error
		kv, err = kvstore.Open(cfg.Store)
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if kv != nil {
			_ = kv.Close()
		}
		return nil, err
	}

	store := kvstore.NewAsyncWriter(kv)
	logging.Get(logging.CategoryBoot).Info("bootstrap complete",
		zap.Int("categories", cat.Len()),
		zap.String("store", cfg.Store.Driver),
		zap.Stringer("rule", rule))

	return &app{
		cfg:       cfg,
		catalog:   cat,
		store:     store,
		selection: selection.New(store, cat, cfg.Store.Namespace),
		matcher:   matcher.New(rule),
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func (a *app) newController() *picker.Controller {
	return picker.New(a.catalog, a.matcher, a.selection, a.cfg.LocaleTag(), a.cfg.Picker.DefaultCategory)
}

func (a *app) layoutContext() layout.Context {
	return layout.Context{
		NeedsInputModeSwitchKey: a.cfg.Layout.NeedsInputModeSwitchKey,
		Device:                  a.cfg.Layout.Device,
		Locale:                  a.cfg.LocaleTag(),
	}
}

// Close flushes pending settings and closes the store.
func (a *app) Close() error {
	return a.store.Close()
}
