package css

import (
	"regexp"
	"strings"
)

// svgEscaper rewrites an SVG document for embedding inside url("...").
// Double quotes become single so the wrapping quotes survive; the rest
// is the minimal percent-encoding browsers require from SVG data URLs.
var svgEscaper = strings.NewReplacer(
	`"`, "'",
	"%", "%25",
	"#", "%23",
	"{", "%7B",
	"}", "%7D",
	"<", "%3C",
	">", "%3E",
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DataURL encodes a standalone SVG document as a CSS data: URL.
func DataURL(markup string) string {
	collapsed := whitespaceRun.ReplaceAllString(strings.TrimSpace(markup), " ")
	return "data:image/svg+xml," + svgEscaper.Replace(collapsed)
}
