package svg

import (
	"strings"

	"golang.org/x/net/html"
)

// Attributes whose values are colors.
var colorAttrs = map[string]bool{
	"fill":       true,
	"stroke":     true,
	"color":      true,
	"stop-color": true,
}

// IsEmptyColor reports whether a color value paints nothing: empty,
// "none" or "transparent". These survive monotone conversion untouched
// so cut-outs and unfilled strokes keep working.
func IsEmptyColor(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "transparent":
		return true
	}
	return false
}

// Monotone replaces every painted color in the document with
// currentColor so the rendered icon follows the surrounding text color.
// Empty colors are left alone.
func (d *Document) Monotone() {
	d.ReplaceColors(func(value string) string {
		if IsEmptyColor(value) {
			return value
		}
		return "currentColor"
	})
}

// ReplaceColors rewrites each color-bearing attribute and inline style
// declaration through fn.
func (d *Document) ReplaceColors(fn func(value string) string) {
	walkElements(d.root, func(node *html.Node) bool {
		for i, attr := range node.Attr {
			if attr.Namespace != "" {
				continue
			}
			key := strings.ToLower(attr.Key)
			switch {
			case colorAttrs[key]:
				node.Attr[i].Val = fn(attr.Val)
			case key == "style":
				node.Attr[i].Val = replaceStyleColors(attr.Val, fn)
			}
		}
		return true
	})
}

// replaceStyleColors applies fn to color properties inside an inline
// style attribute, leaving other declarations as written.
func replaceStyleColors(style string, fn func(string) string) string {
	decls := strings.Split(style, ";")
	out := make([]string, 0, len(decls))
	for _, decl := range decls {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		prop, val, found := strings.Cut(decl, ":")
		if found && colorAttrs[strings.ToLower(strings.TrimSpace(prop))] {
			out = append(out, strings.TrimSpace(prop)+":"+fn(strings.TrimSpace(val)))
			continue
		}
		out = append(out, strings.TrimSpace(decl))
	}
	return strings.Join(out, ";")
}
