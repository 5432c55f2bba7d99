package svg

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoSVG is returned when a file contains no <svg> element at all.
var ErrNoSVG = errors.New("no svg element found")

// ViewBox is the icon's coordinate system: origin plus size.
type ViewBox struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// String renders the viewBox attribute value.
func (v ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s",
		formatNumber(v.Left), formatNumber(v.Top),
		formatNumber(v.Width), formatNumber(v.Height))
}

// Document is one parsed SVG file being prepared for an icon set.
type Document struct {
	root    *html.Node // the <svg> element
	viewBox ViewBox
}

// Parse reads SVG markup and locates its root <svg> element. Geometry is
// extracted later by Cleanup; Parse only guarantees there is a document
// to work on.
func Parse(data []byte) (*Document, error) {
	node, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	root := findElement(node, atom.Svg)
	if root == nil {
		return nil, ErrNoSVG
	}
	return &Document{root: root}, nil
}

// ViewBox returns the geometry hoisted from the root element. Zero until
// Cleanup has run.
func (d *Document) ViewBox() ViewBox { return d.viewBox }

// Body renders the children of the root <svg> element as one fragment.
func (d *Document) Body() (string, error) {
	var buf bytes.Buffer
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return "", fmt.Errorf("render svg body: %w", err)
		}
	}
	return buf.String(), nil
}

// findElement returns the first element with the given atom, depth first.
func findElement(node *html.Node, a atom.Atom) *html.Node {
	if node.Type == html.ElementNode && node.DataAtom == a {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, a); found != nil {
			return found
		}
	}
	return nil
}

// walkElements visits every element under node, including node itself.
// Returning false from fn stops the walk.
func walkElements(node *html.Node, fn func(*html.Node) bool) bool {
	if node.Type == html.ElementNode {
		if !fn(node) {
			return false
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !walkElements(child, fn) {
			return false
		}
	}
	return true
}

// attrValue returns the value of the named attribute, if present.
func attrValue(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// parseViewBox parses "left top width height" with space or comma
// separators.
func parseViewBox(value string) (ViewBox, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	parts := fields[:0]
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) != 4 {
		return ViewBox{}, fmt.Errorf("viewBox %q: want 4 numbers", value)
	}
	var nums [4]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("viewBox %q: %w", value, err)
		}
		nums[i] = n
	}
	if nums[2] <= 0 || nums[3] <= 0 {
		return ViewBox{}, fmt.Errorf("viewBox %q: non-positive size", value)
	}
	return ViewBox{Left: nums[0], Top: nums[1], Width: nums[2], Height: nums[3]}, nil
}

// parseDimension parses a width or height attribute. Unitless and px
// values are accepted; anything else (em, %, auto) counts as absent.
func parseDimension(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	v = strings.TrimSuffix(v, "px")
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// formatNumber renders a float without a trailing ".0" and with enough
// precision for icon geometry.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
