package iconset

import (
	"fmt"
	"os"

	"iconbundle/internal/domain"
)

// LoadFile reads and decodes a collection document from disk.
func LoadFile(path string) (*domain.IconSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// LoadSource loads a declared collection entry, applying its icon
// filter when one is present.
func LoadSource(src domain.JSONSource) (*domain.IconSet, error) {
	set, err := LoadFile(src.Path)
	if err != nil {
		return nil, err
	}
	if !src.Filtered() {
		return set, nil
	}
	filtered, err := Filter(set, src.Names)
	if err != nil {
		return nil, fmt.Errorf("cannot find required icons in %s: %w", src.Path, err)
	}
	return filtered, nil
}

// Filter extracts the named icons from set. Requested aliases carry
// their whole chain (intermediate aliases and the parent icon) so the
// subset stays resolvable. Names absent from the collection are
// dropped; a filter matching nothing at all fails.
func Filter(set *domain.IconSet, names []domain.IconName) (*domain.IconSet, error) {
	out := domain.NewIconSet(set.Prefix)
	out.Width = set.Width
	out.Height = set.Height

	for _, name := range names {
		if icon, ok := set.Icons[name]; ok {
			out.Icons[name] = icon
			continue
		}
		if _, ok := set.Resolve(name); !ok {
			continue
		}
		cur := name
		for {
			if icon, concrete := set.Icons[cur]; concrete {
				out.Icons[cur] = icon
				break
			}
			alias, aliased := set.Aliases[cur]
			if !aliased {
				break
			}
			out.Aliases[cur] = alias
			cur = alias.Parent
		}
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("no matching icons")
	}
	return out, nil
}
