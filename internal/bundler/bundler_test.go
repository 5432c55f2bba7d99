package bundler_test

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"iconbundle/internal/bundler"
	"iconbundle/internal/collections"
	"iconbundle/internal/config"
	"iconbundle/internal/domain"
)

const (
	alphaCollection = `{"prefix":"alpha","icons":{
		"a1":{"body":"<path d='M0 0h4' fill='currentColor'/>"},
		"a2":{"body":"<path d='M0 0h8' fill='currentColor'/>"}}}`
	betaCollection = `{"prefix":"beta","icons":{
		"b1":{"body":"<path d='M1 1h4' fill='currentColor'/>"}}}`
	starSVG = `<svg viewBox="0 0 16 16"><path fill="#123" d="m8 2 2 4 4 .5-3 3 .7 4.5L8 12l-3.7 2 .7-4.5-3-3L6 6z"/></svg>`
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// testProject lays out a project with one declared collection, one
// locatable collection for bare references and one SVG directory.
func testProject(t *testing.T) (config.Config, domain.CollectionLocator) {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "sets/alpha.json"), alphaCollection)
	writeFile(t, filepath.Join(root, "remote/beta.json"), betaCollection)
	writeFile(t, filepath.Join(root, "svg/star.svg"), starSVG)

	cfg := config.Default()
	cfg.Output = filepath.Join(root, "dist/icons.css")
	cfg.JSON = []config.JSONEntry{{Source: filepath.Join(root, "sets/alpha.json"), Icons: []string{"a1"}}}
	cfg.Icons = []string{"beta:b1"}
	cfg.SVG = []config.SVGDir{{Dir: filepath.Join(root, "svg"), Prefix: "custom", Monotone: true}}

	return cfg, collections.Dir{Root: filepath.Join(root, "remote")}
}

func quietBundler(locator domain.CollectionLocator) (*bundler.Bundler, *[]string) {
	var logs []string
	b := bundler.New(locator)
	b.Logf = func(format string, v ...any) {
		logs = append(logs, fmt.Sprintf(format, v...))
	}
	return b, &logs
}

func TestRun_BundlesAllSourceKinds(t *testing.T) {
	cfg, locator := testProject(t)
	b, _ := quietBundler(locator)

	res, err := b.Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Path != cfg.Output {
		t.Fatalf("path = %q, want %q", res.Path, cfg.Output)
	}
	if res.Sets != 3 || res.Icons != 3 {
		t.Fatalf("result = %+v", res)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)

	a := strings.Index(out, ".alpha-a1")
	bIdx := strings.Index(out, ".beta-b1")
	c := strings.Index(out, ".custom-star")
	if a < 0 || bIdx < 0 || c < 0 {
		t.Fatalf("selectors missing:\n%s", out)
	}
	if !(a < bIdx && bIdx < c) {
		t.Fatalf("sets out of order: alpha=%d beta=%d custom=%d", a, bIdx, c)
	}
	if strings.Contains(out, ".alpha-a2") {
		t.Fatalf("filtered-out icon emitted:\n%s", out)
	}
	if !strings.Contains(out, "}\n\n.") {
		t.Fatalf("set blocks not separated by a blank line:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("output does not end with a rule close")
	}
	// Monotone import rewrote the fixed palette.
	if strings.Contains(out, "%23123") {
		t.Fatalf("svg color survived monotone import:\n%s", out)
	}
}

func TestRun_UnfilteredSetEmitsEveryIcon(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sets/alpha.json"), alphaCollection)
	writeFile(t, filepath.Join(root, "svg/star.svg"), starSVG)

	cfg := config.Default()
	cfg.Output = filepath.Join(root, "dist/icons.css")
	cfg.JSON = []config.JSONEntry{{Source: filepath.Join(root, "sets/alpha.json")}}
	cfg.SVG = []config.SVGDir{{Dir: filepath.Join(root, "svg"), Prefix: "custom", Monotone: true}}
	b, _ := quietBundler(collections.Chain{})

	res, err := b.Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Icons != 3 {
		t.Fatalf("icons = %d, want 3", res.Icons)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{".alpha-a1", ".alpha-a2", ".custom-star"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("missing rule %s:\n%s", want, data)
		}
	}
}

func TestRun_UnresolvablePrefixWritesNothing(t *testing.T) {
	cfg, locator := testProject(t)
	cfg.Icons = append(cfg.Icons, "ghost:icon")
	b, _ := quietBundler(locator)

	if _, err := b.Run(cfg); err == nil {
		t.Fatalf("expected error for unresolvable prefix")
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Fatalf("output written despite fatal error: %v", err)
	}
}

func TestRun_FilterDropsUnknownNames(t *testing.T) {
	cfg, locator := testProject(t)
	cfg.JSON[0].Icons = []string{"a1", "ghost"}
	b, _ := quietBundler(locator)

	res, err := b.Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), ".alpha-a1") {
		t.Fatalf("matched icon missing:\n%s", data)
	}
	if strings.Contains(string(data), "ghost") {
		t.Fatalf("unknown name leaked into output:\n%s", data)
	}
}

func TestRun_FilterMatchingNothingFails(t *testing.T) {
	cfg, locator := testProject(t)
	cfg.JSON[0].Icons = []string{"ghost"}
	b, _ := quietBundler(locator)

	_, err := b.Run(cfg)
	if err == nil {
		t.Fatalf("expected error for filter matching no icons")
	}
	if !strings.Contains(err.Error(), "cannot find required icons in") {
		t.Fatalf("err = %v", err)
	}
}

func TestRun_SkipsEmptySets(t *testing.T) {
	cfg, locator := testProject(t)
	brokenDir := filepath.Join(t.TempDir(), "broken")
	writeFile(t, filepath.Join(brokenDir, "bad.svg"), "not svg markup")
	cfg.SVG = []config.SVGDir{{Dir: brokenDir, Prefix: "empty", Monotone: true}}
	b, logs := quietBundler(locator)

	res, err := b.Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Sets != 2 {
		t.Fatalf("sets = %d, want 2", res.Sets)
	}

	data, _ := os.ReadFile(res.Path)
	if strings.Contains(string(data), ".empty-") {
		t.Fatalf("empty set emitted:\n%s", data)
	}

	joined := strings.Join(*logs, "\n")
	if !strings.Contains(joined, "error parsing bad") || !strings.Contains(joined, "skipping empty collection empty") {
		t.Fatalf("logs = %q", joined)
	}
}

func TestRun_BuiltinCollection(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Output = filepath.Join(root, "icons.css")
	cfg.Builtin = []string{"starter"}
	b, _ := quietBundler(collections.Chain{})

	res, err := b.Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{".starter-circle", ".starter-arrow-left"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("missing %s:\n%s", want, data)
		}
	}
}

func TestRun_FingerprintedOutput(t *testing.T) {
	cfg, locator := testProject(t)
	cfg.Fingerprint = true
	b, _ := quietBundler(locator)

	res, err := b.Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !regexp.MustCompile(`icons\.[0-9a-f]{8}\.css$`).MatchString(res.Path) {
		t.Fatalf("path = %q, want fingerprinted name", res.Path)
	}

	again, err := b.Run(cfg)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again.Path != res.Path {
		t.Fatalf("fingerprint unstable: %q then %q", res.Path, again.Path)
	}
}
