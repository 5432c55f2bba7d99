package domain

// JSONSource is an icon-set file to load. A non-empty Names list filters
// the set down to those icons; an empty list keeps the whole set.
type JSONSource struct {
	Path  string
	Names []IconName
}

// Filtered reports whether the source requests a subset of its icons.
func (s JSONSource) Filtered() bool { return len(s.Names) > 0 }

// SVGSource is a directory of raw SVG files imported as icons under Prefix.
// Monotone collapses every painted color to currentColor during cleanup.
type SVGSource struct {
	Dir      string
	Prefix   Prefix
	Monotone bool
}

// BuiltinSource names a collection embedded in the binary.
type BuiltinSource struct {
	Name string
}
