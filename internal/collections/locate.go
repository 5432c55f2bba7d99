package collections

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"iconbundle/internal/domain"
)

// Dir locates collections as <root>/<prefix>.json files, the layout
// icon-set packages ship with.
type Dir struct {
	Root string
}

// Locate implements domain.CollectionLocator.
func (d Dir) Locate(prefix domain.Prefix) (string, error) {
	return locateFile(filepath.Join(d.Root, prefix.String()+".json"), prefix)
}

// Chain tries locators in order and returns the first hit.
type Chain []domain.CollectionLocator

// Locate implements domain.CollectionLocator.
func (c Chain) Locate(prefix domain.Prefix) (string, error) {
	for _, l := range c {
		path, err := l.Locate(prefix)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("%s: %w", prefix, ErrNotFound)
}

// Fetching fills misses of the inner locator from a remote fetcher and
// caches the result, so the next run finds the collection locally. A
// nil Remote turns it into a plain pass-through.
type Fetching struct {
	Inner  domain.CollectionLocator
	Remote domain.CollectionFetcher
	Cache  domain.CollectionWriter
}

// Locate implements domain.CollectionLocator.
func (f Fetching) Locate(prefix domain.Prefix) (string, error) {
	path, err := f.Inner.Locate(prefix)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, ErrNotFound) || f.Remote == nil {
		return "", err
	}
	data, err := f.Remote.FetchCollection(prefix)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", prefix, err)
	}
	return f.Cache.WriteCollection(prefix, data)
}

func locateFile(path string, prefix domain.Prefix) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", prefix, ErrNotFound)
		}
		return "", err
	}
	return path, nil
}

var (
	_ domain.CollectionLocator = Dir{}
	_ domain.CollectionLocator = Chain(nil)
	_ domain.CollectionLocator = Fetching{}
)
