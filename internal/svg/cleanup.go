package svg

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Elements that carry no renderable icon content and are always dropped.
var junkElements = map[string]bool{
	"title":    true,
	"desc":     true,
	"metadata": true,
}

// Elements that make an icon unsafe or unembeddable. One of these fails
// the whole icon.
var forbiddenElements = map[string]bool{
	"script":        true,
	"foreignobject": true,
	"iframe":        true,
	"embed":         true,
	"object":        true,
}

// Editor attribute prefixes stripped everywhere.
var junkAttrPrefixes = []string{
	"inkscape:", "sodipodi:", "sketch:", "figma:", "vectornator:", "data-",
}

// Cleanup hoists geometry off the root element, removes metadata and
// editor attributes throughout the tree, and rejects active content.
// After Cleanup the document's ViewBox is authoritative and the root
// carries no attributes of its own; the canonical wrapper is rebuilt
// at emission time.
func (d *Document) Cleanup() error {
	if err := d.hoistGeometry(); err != nil {
		return err
	}

	var walkErr error
	walkElements(d.root, func(node *html.Node) bool {
		if forbiddenElements[strings.ToLower(node.Data)] {
			walkErr = fmt.Errorf("forbidden element <%s>", node.Data)
			return false
		}
		if err := checkAttrs(node); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	if walkErr != nil {
		return walkErr
	}

	removeJunkNodes(d.root)
	walkElements(d.root, func(node *html.Node) bool {
		stripJunkAttrs(node)
		return true
	})
	d.root.Attr = nil
	return nil
}

// hoistGeometry derives the viewBox from root attributes. An explicit
// viewBox wins; width/height can stand in for one; an icon with neither
// cannot be scaled and fails cleanup.
func (d *Document) hoistGeometry() error {
	if raw, ok := attrValue(d.root, "viewBox"); ok {
		vb, err := parseViewBox(raw)
		if err != nil {
			return err
		}
		d.viewBox = vb
		return nil
	}
	var w, h float64
	var okW, okH bool
	if raw, ok := attrValue(d.root, "width"); ok {
		w, okW = parseDimension(raw)
	}
	if raw, ok := attrValue(d.root, "height"); ok {
		h, okH = parseDimension(raw)
	}
	if !okW || !okH {
		return fmt.Errorf("missing viewBox and usable width/height")
	}
	d.viewBox = ViewBox{Width: w, Height: h}
	return nil
}

// checkAttrs rejects event handlers and script-scheme references anywhere
// in the tree.
func checkAttrs(node *html.Node) error {
	for _, attr := range node.Attr {
		key := strings.ToLower(attr.Key)
		if strings.HasPrefix(key, "on") && len(key) > 2 {
			return fmt.Errorf("event handler attribute %q", attr.Key)
		}
		if key == "href" {
			val := strings.ToLower(strings.TrimSpace(attr.Val))
			if strings.HasPrefix(val, "javascript:") {
				return fmt.Errorf("scripted reference in %q", attr.Key)
			}
		}
	}
	return nil
}

// removeJunkNodes drops comments, doctypes and metadata elements from the
// subtree in a single pass.
func removeJunkNodes(root *html.Node) {
	var next *html.Node
	for child := root.FirstChild; child != nil; child = next {
		next = child.NextSibling
		switch child.Type {
		case html.CommentNode, html.DoctypeNode:
			root.RemoveChild(child)
			continue
		case html.ElementNode:
			if junkElements[strings.ToLower(child.Data)] {
				root.RemoveChild(child)
				continue
			}
		}
		removeJunkNodes(child)
	}
}

// stripJunkAttrs removes editor metadata, classes and stray namespace
// declarations from one element.
func stripJunkAttrs(node *html.Node) {
	kept := node.Attr[:0]
	for _, attr := range node.Attr {
		key := strings.ToLower(attr.Key)
		switch {
		case attr.Namespace != "" && attr.Namespace != "xlink" && attr.Namespace != "xml":
			continue
		case strings.HasPrefix(key, "xmlns"):
			continue
		case key == "class" || key == "role" || strings.HasPrefix(key, "aria-"):
			continue
		case hasJunkPrefix(key):
			continue
		}
		kept = append(kept, attr)
	}
	node.Attr = kept
}

func hasJunkPrefix(key string) bool {
	for _, prefix := range junkAttrPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
