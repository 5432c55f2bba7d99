// Package builtin ships small icon collections compiled into the
// binary, so a fresh project can produce a bundle before anything is
// installed or fetched.
package builtin

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"iconbundle/internal/domain"
	"iconbundle/internal/iconset"
)

//go:embed data/*.json
var dataFS embed.FS

// Names lists the embedded collections, sorted.
func Names() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Raw returns the embedded collection document for name.
func Raw(name string) ([]byte, error) {
	data, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("no builtin collection %q", name)
	}
	return data, nil
}

// Load decodes the embedded collection for name.
func Load(name string) (*domain.IconSet, error) {
	data, err := Raw(name)
	if err != nil {
		return nil, err
	}
	return iconset.Decode(data)
}
