package iconset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/unicode/norm"

	"iconbundle/internal/domain"
	"iconbundle/internal/svg"
)

// ImportDirectory builds a collection from the SVG files in src.Dir.
//
// Each file becomes one icon named after its kebab-cased filename.
// Files that fail to parse or clean up are reported through logf and
// left out; only an unreadable directory aborts the import.
func ImportDirectory(src domain.SVGSource, logf func(format string, v ...any)) (*domain.IconSet, error) {
	entries, err := os.ReadDir(src.Dir)
	if err != nil {
		return nil, err
	}

	set := domain.NewIconSet(src.Prefix)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".svg") {
			continue
		}
		name := Keyword(entry.Name())
		if !domain.ValidName(name) {
			logf("error parsing %s from %s: unusable icon name", name, src.Dir)
			continue
		}
		icon, err := importFile(filepath.Join(src.Dir, entry.Name()), src.Monotone)
		if err != nil {
			logf("error parsing %s from %s: %v", name, src.Dir, err)
			continue
		}
		set.Icons[domain.IconName(name)] = icon
	}
	return set, nil
}

// Keyword derives an icon name from an SVG filename: the extension is
// dropped and the rest is normalized to NFC and kebab-cased.
func Keyword(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strcase.ToKebab(norm.NFC.String(base))
}

func importFile(path string, monotone bool) (domain.Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Icon{}, err
	}
	doc, err := svg.Parse(data)
	if err != nil {
		return domain.Icon{}, err
	}
	if err := doc.Cleanup(); err != nil {
		return domain.Icon{}, err
	}
	if monotone {
		doc.Monotone()
	}
	if err := doc.Optimize(); err != nil {
		return domain.Icon{}, err
	}
	body, err := doc.Body()
	if err != nil {
		return domain.Icon{}, err
	}
	if strings.TrimSpace(body) == "" {
		return domain.Icon{}, fmt.Errorf("no drawable content")
	}

	vb := doc.ViewBox()
	return domain.Icon{
		Body:   body,
		Left:   vb.Left,
		Top:    vb.Top,
		Width:  vb.Width,
		Height: vb.Height,
	}, nil
}
