package css_test

import (
	"strings"
	"testing"

	"iconbundle/internal/css"
	"iconbundle/internal/domain"
)

func monotoneIcon(d string) domain.Icon {
	return domain.Icon{Body: `<path d="` + d + `" fill="currentColor"/>`, Width: 16, Height: 16}
}

func TestGenerate_DefaultSelector(t *testing.T) {
	set := domain.NewIconSet("ri")
	set.Icons["home"] = monotoneIcon("M2 2h12v12H2z")

	out, err := css.Generate(set, css.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, ".ri-home") {
		t.Fatalf("selector missing:\n%s", out)
	}
	if !strings.Contains(out, "mask-image: var(--svg)") {
		t.Fatalf("mask props missing:\n%s", out)
	}
	if !strings.Contains(out, `--svg: url("data:image/svg+xml,`) {
		t.Fatalf("data url missing:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("block does not end with }} and newline: %q", out[len(out)-8:])
	}
}

func TestGenerate_SortsIconNames(t *testing.T) {
	set := domain.NewIconSet("x")
	set.Icons["beta"] = monotoneIcon("M0 0h1")
	set.Icons["alpha"] = monotoneIcon("M0 0h2")

	out, err := css.Generate(set, css.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	a := strings.Index(out, ".x-alpha {\n  --svg")
	b := strings.Index(out, ".x-beta {\n  --svg")
	if a < 0 || b < 0 {
		t.Fatalf("per-icon rules missing:\n%s", out)
	}
	if a > b {
		t.Fatalf("alpha emitted after beta:\n%s", out)
	}
}

func TestGenerate_MaskVersusBackground(t *testing.T) {
	set := domain.NewIconSet("d")
	set.Icons["home"] = monotoneIcon("M2 2h12")
	set.Icons["logo"] = domain.Icon{Body: `<path d="M0 0h4" fill="#f00"/>`, Width: 16, Height: 16}

	out, err := css.Generate(set, css.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	maskAt := strings.Index(out, "mask-image: var(--svg)")
	bgAt := strings.Index(out, "background-image: var(--svg)")
	if maskAt < 0 || bgAt < 0 {
		t.Fatalf("expected both mask and background blocks:\n%s", out)
	}
	maskBlock := out[:bgAt]
	if !strings.Contains(maskBlock, ".d-home") || strings.Contains(maskBlock[:maskAt], ".d-logo") {
		t.Fatalf("selectors grouped into wrong blocks:\n%s", out)
	}
}

func TestGenerate_AliasGetsOwnRule(t *testing.T) {
	set := domain.NewIconSet("ui")
	set.Icons["arrow-right"] = monotoneIcon("M2 8h12l-4 4")
	set.Aliases["arrow-left"] = domain.Alias{Parent: "arrow-right", HFlip: true}

	out, err := css.Generate(set, css.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, ".ui-arrow-left {") {
		t.Fatalf("alias selector missing:\n%s", out)
	}
	if !strings.Contains(out, "scale(-1 1)") {
		t.Fatalf("alias transform missing from rendered markup:\n%s", out)
	}
}

func TestGenerate_AliasChain(t *testing.T) {
	set := domain.NewIconSet("ui")
	set.Icons["arrow-right"] = monotoneIcon("M2 8h12l-4 4")
	set.Aliases["arrow-left"] = domain.Alias{Parent: "arrow-right", HFlip: true}
	set.Aliases["back"] = domain.Alias{Parent: "arrow-left"}
	set.Aliases["loop"] = domain.Alias{Parent: "loop"}

	out, err := css.Generate(set, css.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, ".ui-back {") {
		t.Fatalf("nested alias selector missing:\n%s", out)
	}
	if strings.Contains(out, ".ui-loop") {
		t.Fatalf("unresolvable alias emitted:\n%s", out)
	}
}

func TestGenerate_CustomSelector(t *testing.T) {
	set := domain.NewIconSet("ri")
	set.Icons["home"] = monotoneIcon("M2 2h12")

	out, err := css.Generate(set, css.Options{Selector: ".icon--{prefix}--{name}"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, ".icon--ri--home") {
		t.Fatalf("custom selector not applied:\n%s", out)
	}
	if strings.Contains(out, ".ri-home") {
		t.Fatalf("default selector leaked:\n%s", out)
	}
}

func TestGenerate_Compressed(t *testing.T) {
	set := domain.NewIconSet("ri")
	set.Icons["home"] = monotoneIcon("M2 2h12")

	out, err := css.Generate(set, css.Options{Format: css.FormatCompressed})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Count(out, "\n") != 1 || !strings.HasSuffix(out, "\n") {
		t.Fatalf("compressed output has stray newlines: %q", out)
	}
	if !strings.Contains(out, `{--svg:url("data:image/svg+xml,`) {
		t.Fatalf("compressed rule malformed:\n%s", out)
	}
}

func TestGenerate_NonSquareWidth(t *testing.T) {
	set := domain.NewIconSet("w")
	set.Icons["wide"] = domain.Icon{Body: `<path d="M0 0h32" fill="currentColor"/>`, Width: 32, Height: 16}

	out, err := css.Generate(set, css.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "width: 2em;") {
		t.Fatalf("ratio width missing:\n%s", out)
	}
}

func TestGenerate_EmptySet(t *testing.T) {
	out, err := css.Generate(domain.NewIconSet("empty"), css.Options{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "" {
		t.Fatalf("empty set produced output: %q", out)
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	set := domain.NewIconSet("ri")
	set.Icons["home"] = monotoneIcon("M2 2h12")
	if _, err := css.Generate(set, css.Options{Format: "minified"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestDataURL(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
	<path fill="#f00" d="M0 0h16"/>
</svg>`
	url := css.DataURL(markup)

	if !strings.HasPrefix(url, "data:image/svg+xml,") {
		t.Fatalf("prefix missing: %q", url)
	}
	for _, banned := range []string{"<", ">", "#", `"`, "\n", "\t"} {
		if strings.Contains(url, banned) {
			t.Fatalf("unescaped %q in url: %q", banned, url)
		}
	}
	for _, want := range []string{"%3Csvg", "%23f00", "'http://www.w3.org/2000/svg'"} {
		if !strings.Contains(url, want) {
			t.Fatalf("missing %q in url: %q", want, url)
		}
	}
}
