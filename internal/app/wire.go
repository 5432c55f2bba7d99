package app

import (
	"net/http"
	"path/filepath"

	"iconbundle/internal/bundler"
	"iconbundle/internal/collections"
	"iconbundle/internal/domain"
	"iconbundle/internal/remote"
)

// Wire bundles the cache, locator stack and bundler for the CLI.
type Wire struct {
	Cache   *collections.Cache
	Locator domain.CollectionLocator
	Remote  domain.CollectionFetcher
	Bundler *bundler.Bundler
	HTTP    *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	cache := collections.NewCache(filepath.Join(cfg.Home, "collections"))

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	rc := remote.New(cfg.API)
	rc.HTTP = httpClient

	// Search order: explicit directories first, then the cache.
	chain := collections.Chain{}
	for _, dir := range cfg.Dirs {
		chain = append(chain, collections.Dir{Root: dir})
	}
	chain = append(chain, cache)

	locator := domain.CollectionLocator(chain)
	if cfg.Fetch {
		locator = collections.Fetching{Inner: chain, Remote: rc, Cache: cache}
	}

	return &Wire{
		Cache:   cache,
		Locator: locator,
		Remote:  rc,
		Bundler: bundler.New(locator),
		HTTP:    httpClient,
	}, nil
}
