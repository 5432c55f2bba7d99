// Package render rasterizes icons to PNG for previews.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// PNG rasterizes a standalone SVG document to a size x size image.
// Icons drawn in currentColor are painted in color first; a raster
// image has no text color to inherit.
func PNG(w io.Writer, markup string, size int, color string) error {
	if size <= 0 {
		return fmt.Errorf("render size %d", size)
	}
	if color == "" {
		color = "#000000"
	}
	markup = strings.ReplaceAll(markup, "currentColor", color)

	icon, err := oksvg.ReadIconStream(strings.NewReader(markup))
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, rgba, rgba.Bounds()))
	icon.Draw(dc, 1.0)

	return png.Encode(w, rgba)
}
