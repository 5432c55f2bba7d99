package svg

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Attributes holding coordinate lists that tolerate whitespace collapse.
var geometryAttrs = map[string]bool{
	"d":      true,
	"points": true,
}

// Optimize shrinks the cleaned document without changing what it draws:
// whitespace-only text between elements is removed, coordinate lists are
// collapsed to single spaces, and empty container elements disappear.
func (d *Document) Optimize() error {
	dropBlankText(d.root)
	walkElements(d.root, func(node *html.Node) bool {
		for i, attr := range node.Attr {
			if geometryAttrs[strings.ToLower(attr.Key)] {
				node.Attr[i].Val = strings.TrimSpace(whitespaceRun.ReplaceAllString(attr.Val, " "))
			}
		}
		return true
	})
	dropEmptyContainers(d.root)
	return nil
}

// dropBlankText removes text nodes that are pure inter-element
// formatting. Text inside <text> or <style> is content and stays.
func dropBlankText(root *html.Node) {
	var next *html.Node
	for child := root.FirstChild; child != nil; child = next {
		next = child.NextSibling
		if child.Type == html.TextNode && strings.TrimSpace(child.Data) == "" {
			root.RemoveChild(child)
			continue
		}
		if child.Type == html.ElementNode {
			switch strings.ToLower(child.Data) {
			case "text", "tspan", "style":
				continue
			}
		}
		dropBlankText(child)
	}
}

// dropEmptyContainers removes <g> and <defs> left with no children,
// repeating until the tree settles so nested empties unwind.
func dropEmptyContainers(root *html.Node) {
	for {
		removed := false
		var walk func(*html.Node)
		walk = func(node *html.Node) {
			var next *html.Node
			for child := node.FirstChild; child != nil; child = next {
				next = child.NextSibling
				walk(child)
				if child.Type != html.ElementNode || child.FirstChild != nil {
					continue
				}
				switch strings.ToLower(child.Data) {
				case "g", "defs":
					node.RemoveChild(child)
					removed = true
				}
			}
		}
		walk(root)
		if !removed {
			return
		}
	}
}
