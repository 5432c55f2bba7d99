package domain

import "sort"

// DefaultDimension is assumed when neither an icon nor its set declares
// a width or height. Matches the icon-set format's documented default.
const DefaultDimension = 16

// Prefix namespaces a collection of related icons, e.g. "mdi" or "custom".
type Prefix string

// String returns the string form of the prefix.
func (p Prefix) String() string { return string(p) }

// IconName identifies one icon inside a collection.
type IconName string

// String returns the string form of the icon name.
func (n IconName) String() string { return string(n) }

// Icon is a single vector icon: inner SVG markup plus optional geometry
// and transforms. Zero geometry fields mean "inherit from the set".
type Icon struct {
	// Body is the markup inside the <svg> element.
	Body string

	// viewBox origin and size.
	Left   float64
	Top    float64
	Width  float64
	Height float64

	// Transforms applied when the icon is rendered.
	Rotate int // quarter turns clockwise, 0-3
	HFlip  bool
	VFlip  bool
}

// Alias maps an extra name onto a parent icon, optionally layering
// additional transforms on top of the parent's.
type Alias struct {
	Parent IconName
	Rotate int
	HFlip  bool
	VFlip  bool
}

// IconSet is a named collection of icons. Names are unique by construction
// (map keys). Width and Height are set-level defaults for icons that do not
// declare their own.
type IconSet struct {
	Prefix  Prefix
	Icons   map[IconName]Icon
	Aliases map[IconName]Alias
	Width   float64
	Height  float64
}

// NewIconSet returns an empty set for prefix.
func NewIconSet(prefix Prefix) *IconSet {
	return &IconSet{
		Prefix:  prefix,
		Icons:   make(map[IconName]Icon),
		Aliases: make(map[IconName]Alias),
	}
}

// Len reports how many concrete icons the set holds (aliases excluded).
func (s *IconSet) Len() int { return len(s.Icons) }

// Names returns the set's concrete icon names in sorted order.
func (s *IconSet) Names() []IconName {
	names := make([]IconName, 0, len(s.Icons))
	for name := range s.Icons {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// AllNames returns concrete icon and alias names together, sorted.
func (s *IconSet) AllNames() []IconName {
	names := make([]IconName, 0, len(s.Icons)+len(s.Aliases))
	for name := range s.Icons {
		names = append(names, name)
	}
	for name := range s.Aliases {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// maxAliasDepth bounds alias chain resolution. Longer chains, and
// cycles, fail to resolve.
const maxAliasDepth = 6

// Resolve returns the icon stored under name, following alias chains up
// to maxAliasDepth links and merging each alias's transforms into the
// result. Geometry defaults (set-level, then DefaultDimension) are
// applied so the returned icon always has a concrete width and height.
func (s *IconSet) Resolve(name IconName) (Icon, bool) {
	icon, ok := s.Icons[name]
	if !ok {
		var rotate int
		var hFlip, vFlip bool
		cur := name
		for depth := 0; !ok && depth < maxAliasDepth; depth++ {
			alias, aliased := s.Aliases[cur]
			if !aliased {
				return Icon{}, false
			}
			rotate += alias.Rotate
			hFlip = hFlip != alias.HFlip
			vFlip = vFlip != alias.VFlip
			cur = alias.Parent
			icon, ok = s.Icons[cur]
		}
		if !ok {
			return Icon{}, false
		}
		icon.Rotate = (icon.Rotate + rotate) % 4
		icon.HFlip = icon.HFlip != hFlip
		icon.VFlip = icon.VFlip != vFlip
	}
	if icon.Width == 0 {
		icon.Width = s.Width
	}
	if icon.Height == 0 {
		icon.Height = s.Height
	}
	if icon.Width == 0 {
		icon.Width = DefaultDimension
	}
	if icon.Height == 0 {
		icon.Height = DefaultDimension
	}
	return icon, true
}
