package iconset

import (
	"fmt"
	"strconv"
	"strings"

	"iconbundle/internal/domain"
	"iconbundle/internal/svg"
)

// BuildSVG renders one icon from set as a standalone SVG document.
func BuildSVG(set *domain.IconSet, name domain.IconName) (string, error) {
	icon, ok := set.Resolve(name)
	if !ok {
		return "", fmt.Errorf("icon %s:%s not found", set.Prefix, name)
	}
	return RenderIcon(icon), nil
}

// RenderIcon renders a resolved icon as a standalone SVG document.
// Transforms become a wrapping group; flips apply before rotation. The
// xlink namespace is declared when the body references it.
func RenderIcon(icon domain.Icon) string {
	body := icon.Body
	if transform := iconTransform(icon); transform != "" {
		body = `<g transform="` + transform + `">` + body + `</g>`
	}

	vb := svg.ViewBox{Left: icon.Left, Top: icon.Top, Width: icon.Width, Height: icon.Height}

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if strings.Contains(body, "xlink:") {
		b.WriteString(` xmlns:xlink="http://www.w3.org/1999/xlink"`)
	}
	b.WriteString(` width="`)
	b.WriteString(num(icon.Width))
	b.WriteString(`" height="`)
	b.WriteString(num(icon.Height))
	b.WriteString(`" viewBox="`)
	b.WriteString(vb.String())
	b.WriteString(`">`)
	b.WriteString(body)
	b.WriteString(`</svg>`)
	return b.String()
}

func iconTransform(icon domain.Icon) string {
	var parts []string
	if icon.Rotate != 0 {
		cx := icon.Left + icon.Width/2
		cy := icon.Top + icon.Height/2
		parts = append(parts, fmt.Sprintf("rotate(%d %s %s)", 90*icon.Rotate, num(cx), num(cy)))
	}
	if icon.HFlip {
		parts = append(parts, fmt.Sprintf("translate(%s 0) scale(-1 1)", num(2*icon.Left+icon.Width)))
	}
	if icon.VFlip {
		parts = append(parts, fmt.Sprintf("translate(0 %s) scale(1 -1)", num(2*icon.Top+icon.Height)))
	}
	return strings.Join(parts, " ")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
