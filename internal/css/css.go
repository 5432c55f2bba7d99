package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"iconbundle/internal/domain"
	"iconbundle/internal/iconset"
)

const (
	// DefaultSelector is the per-icon class template. {prefix} and
	// {name} are substituted per icon.
	DefaultSelector = ".{prefix}-{name}"

	// FormatExpanded writes one declaration per line. FormatCompressed
	// strips all optional whitespace.
	FormatExpanded   = "expanded"
	FormatCompressed = "compressed"
)

// Options controls how an icon set is rendered to CSS.
type Options struct {
	Selector string
	Format   string
}

type property struct {
	name  string
	value string
}

// maskProps style icons drawn in currentColor: the icon is a mask over
// the element's background color, so it follows the text color.
var maskProps = []property{
	{"display", "inline-block"},
	{"width", "1em"},
	{"height", "1em"},
	{"background-color", "currentColor"},
	{"-webkit-mask-image", "var(--svg)"},
	{"mask-image", "var(--svg)"},
	{"-webkit-mask-repeat", "no-repeat"},
	{"mask-repeat", "no-repeat"},
	{"-webkit-mask-size", "100% 100%"},
	{"mask-size", "100% 100%"},
}

// backgroundProps style icons with fixed palettes.
var backgroundProps = []property{
	{"display", "inline-block"},
	{"width", "1em"},
	{"height", "1em"},
	{"background-image", "var(--svg)"},
	{"background-repeat", "no-repeat"},
	{"background-size", "100% 100%"},
}

// Generate renders one icon set as a block of CSS rules. Icon names
// come out sorted; aliases get their own selectors. The result ends
// with a single trailing newline, so blocks joined with "\n" are
// separated by exactly one blank line.
func Generate(set *domain.IconSet, opts Options) (string, error) {
	if opts.Selector == "" {
		opts.Selector = DefaultSelector
	}
	if opts.Format == "" {
		opts.Format = FormatExpanded
	}
	if opts.Format != FormatExpanded && opts.Format != FormatCompressed {
		return "", fmt.Errorf("unknown format %q", opts.Format)
	}
	compressed := opts.Format == FormatCompressed

	type rule struct {
		selector string
		url      string
		width    string
	}

	var maskSel, bgSel []string
	var rules []rule

	for _, name := range set.AllNames() {
		icon, ok := set.Resolve(name)
		if !ok {
			continue
		}
		markup := iconset.RenderIcon(icon)
		selector := expandSelector(opts.Selector, set.Prefix, name)

		if strings.Contains(markup, "currentColor") {
			maskSel = append(maskSel, selector)
		} else {
			bgSel = append(bgSel, selector)
		}

		r := rule{selector: selector, url: DataURL(markup)}
		if icon.Height > 0 && icon.Width != icon.Height {
			r.width = formatRatio(icon.Width/icon.Height) + "em"
		}
		rules = append(rules, r)
	}

	var blocks []string
	if len(maskSel) > 0 {
		blocks = append(blocks, renderRule(maskSel, maskProps, compressed))
	}
	if len(bgSel) > 0 {
		blocks = append(blocks, renderRule(bgSel, backgroundProps, compressed))
	}
	for _, r := range rules {
		props := []property{{"--svg", `url("` + r.url + `")`}}
		if r.width != "" {
			props = append(props, property{"width", r.width})
		}
		blocks = append(blocks, renderRule([]string{r.selector}, props, compressed))
	}
	if len(blocks) == 0 {
		return "", nil
	}

	if compressed {
		return strings.Join(blocks, "") + "\n", nil
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

func expandSelector(template string, prefix domain.Prefix, name domain.IconName) string {
	s := strings.ReplaceAll(template, "{prefix}", string(prefix))
	return strings.ReplaceAll(s, "{name}", string(name))
}

func renderRule(selectors []string, props []property, compressed bool) string {
	var b strings.Builder
	if compressed {
		b.WriteString(strings.Join(selectors, ","))
		b.WriteByte('{')
		for i, p := range props {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(p.name)
			b.WriteByte(':')
			b.WriteString(p.value)
		}
		b.WriteByte('}')
		return b.String()
	}

	b.WriteString(strings.Join(selectors, ",\n"))
	b.WriteString(" {\n")
	for _, p := range props {
		b.WriteString("  ")
		b.WriteString(p.name)
		b.WriteString(": ")
		b.WriteString(p.value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(math.Round(r*1000)/1000, 'f', -1, 64)
}
