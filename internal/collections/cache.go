package collections

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"iconbundle/internal/domain"
)

// ErrNotFound reports that a locator does not know the requested
// collection.
var ErrNotFound = errors.New("collection not found")

// Cache stores collections under one directory, one <prefix>.json per
// set. Writes go through a temp file and rename so a reader never
// observes a partial collection.
type Cache struct {
	dir string
	mu  sync.Mutex
}

// NewCache returns a cache rooted at dir. The directory is created on
// first write, not here.
func NewCache(dir string) *Cache { return &Cache{dir: dir} }

// Dir returns the cache root.
func (c *Cache) Dir() string { return c.dir }

// Path returns where prefix lives inside the cache, whether or not it
// exists yet.
func (c *Cache) Path(prefix domain.Prefix) string {
	return filepath.Join(c.dir, prefix.String()+".json")
}

// Locate implements domain.CollectionLocator.
func (c *Cache) Locate(prefix domain.Prefix) (string, error) {
	return locateFile(c.Path(prefix), prefix)
}

// WriteCollection implements domain.CollectionWriter.
func (c *Cache) WriteCollection(prefix domain.Prefix, data []byte) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", err
	}
	path := c.Path(prefix)
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// List returns the cached collection prefixes, sorted. A cache that
// does not exist yet lists as empty.
func (c *Cache) List() ([]domain.Prefix, error) {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var prefixes []domain.Prefix
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		if domain.ValidName(name) {
			prefixes = append(prefixes, domain.Prefix(name))
		}
	}
	sort.Slice(prefixes, func(i, j int) bool { return prefixes[i] < prefixes[j] })
	return prefixes, nil
}

var (
	_ domain.CollectionLocator = (*Cache)(nil)
	_ domain.CollectionWriter  = (*Cache)(nil)
)
