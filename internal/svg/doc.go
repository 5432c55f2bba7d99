// Package svg parses and rewrites individual SVG documents during import.
//
// Icons arrive as arbitrary exported files (design tools, icon packs,
// hand-written markup). This package turns one of them into a clean,
// embeddable fragment in three passes:
//
//   - Cleanup: hoist geometry from the root element, drop metadata and
//     editor junk, reject active content (scripts, event handlers)
//   - Monotone: collapse every painted color to currentColor so the icon
//     inherits the surrounding text color
//   - Optimize: strip inter-element whitespace and normalize number and
//     path formatting
//
// Parsing is done with the HTML5 parser, which handles SVG foreign
// content including case-sensitive attributes such as viewBox.
package svg
