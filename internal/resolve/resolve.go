package resolve

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"

	"iconbundle/internal/config"
	"iconbundle/internal/domain"
)

// PrefixGroup is one prefix with its requested icon names in request
// order.
type PrefixGroup struct {
	Prefix domain.Prefix
	Names  []domain.IconName
}

// Group collects bare "prefix:name" references into per-prefix name
// lists. Prefixes keep first-appearance order, names keep first-seen
// order, and duplicate references collapse. Malformed references are
// reported through skip and dropped.
func Group(refs []string, skip func(ref string)) []PrefixGroup {
	seen := mapset.NewSet()
	index := make(map[domain.Prefix]int)
	var groups []PrefixGroup

	for _, raw := range refs {
		ref, ok := domain.ParseReference(raw)
		if !ok {
			if skip != nil {
				skip(raw)
			}
			continue
		}
		if !seen.Add(ref.String()) {
			continue
		}
		i, ok := index[ref.Prefix]
		if !ok {
			i = len(groups)
			index[ref.Prefix] = i
			groups = append(groups, PrefixGroup{Prefix: ref.Prefix})
		}
		groups[i].Names = append(groups[i].Names, ref.Name)
	}
	return groups
}

// Plan is the ordered list of collection sources for one bundle run:
// declared JSON entries first, then entries synthesized from bare
// references, then SVG directories, then builtin collections. Emission
// follows this order.
type Plan struct {
	JSON    []domain.JSONSource
	SVG     []domain.SVGSource
	Builtin []domain.BuiltinSource
}

// Sources reports how many collection sources the plan holds.
func (p Plan) Sources() int {
	return len(p.JSON) + len(p.SVG) + len(p.Builtin)
}

// Build resolves cfg into a Plan. Bare references become filtered
// entries appended after the declared ones, with their collection
// files found through locator. An unresolvable prefix fails the whole
// build.
func Build(cfg config.Config, locator domain.CollectionLocator, skip func(ref string)) (Plan, error) {
	var plan Plan

	for _, e := range cfg.JSON {
		src := domain.JSONSource{Path: e.Source}
		for _, n := range e.Icons {
			src.Names = append(src.Names, domain.IconName(n))
		}
		plan.JSON = append(plan.JSON, src)
	}

	for _, g := range Group(cfg.Icons, skip) {
		path, err := locator.Locate(g.Prefix)
		if err != nil {
			return Plan{}, fmt.Errorf("resolve %s: %w", g.Prefix, err)
		}
		plan.JSON = append(plan.JSON, domain.JSONSource{Path: path, Names: g.Names})
	}

	for _, s := range cfg.SVG {
		plan.SVG = append(plan.SVG, domain.SVGSource{
			Dir:      s.Dir,
			Prefix:   domain.Prefix(s.Prefix),
			Monotone: s.Monotone,
		})
	}

	for _, b := range cfg.Builtin {
		plan.Builtin = append(plan.Builtin, domain.BuiltinSource{Name: b})
	}
	return plan, nil
}
