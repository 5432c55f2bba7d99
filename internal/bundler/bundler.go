package bundler

import (
	"encoding/hex"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"

	"iconbundle/internal/builtin"
	"iconbundle/internal/config"
	"iconbundle/internal/css"
	"iconbundle/internal/domain"
	"iconbundle/internal/iconset"
	"iconbundle/internal/resolve"
)

// Bundler turns a bundle config into a stylesheet. Collection files
// for bare references are found through Locator; per-icon failures are
// reported through Logf and never abort a run.
type Bundler struct {
	Locator domain.CollectionLocator
	Logf    func(format string, v ...any)
}

// New returns a bundler that logs through the standard logger.
func New(locator domain.CollectionLocator) *Bundler {
	return &Bundler{Locator: locator, Logf: log.Printf}
}

func (b *Bundler) logf(format string, v ...any) {
	if b.Logf != nil {
		b.Logf(format, v...)
	}
}

// Collect loads every source of cfg in plan order: declared JSON
// entries, entries synthesized from bare references, SVG directories,
// builtin collections. Sets come back in that order, empty ones
// included; Run drops them at emission.
func (b *Bundler) Collect(cfg config.Config) ([]*domain.IconSet, error) {
	plan, err := resolve.Build(cfg, b.Locator, func(ref string) {
		b.logf("skipping invalid icon reference %q", ref)
	})
	if err != nil {
		return nil, err
	}

	var sets []*domain.IconSet
	for _, src := range plan.JSON {
		set, err := iconset.LoadSource(src)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	for _, src := range plan.SVG {
		set, err := iconset.ImportDirectory(src, b.logf)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	for _, src := range plan.Builtin {
		set, err := builtin.Load(src.Name)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Result describes one finished bundle run.
type Result struct {
	Path  string
	Sets  int
	Icons int
	Bytes int
}

// Run collects, renders and writes the bundle, returning where it
// landed and what went in.
func (b *Bundler) Run(cfg config.Config) (Result, error) {
	sets, err := b.Collect(cfg)
	if err != nil {
		return Result{}, err
	}

	opts := css.Options{Selector: cfg.Selector, Format: cfg.Format}
	var blocks []string
	icons := 0
	for _, set := range sets {
		if set.Len() == 0 {
			b.logf("skipping empty collection %s", set.Prefix)
			continue
		}
		block, err := css.Generate(set, opts)
		if err != nil {
			return Result{}, err
		}
		blocks = append(blocks, block)
		icons += len(set.AllNames())
	}

	out := strings.Join(blocks, "\n")
	path := cfg.Output
	if cfg.Fingerprint {
		path = fingerprintPath(path, []byte(out))
	}

	// Best effort: WriteFile reports the real failure if this did not work.
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return Result{}, err
	}
	return Result{Path: path, Sets: len(blocks), Icons: icons, Bytes: len(out)}, nil
}

// fingerprintPath inserts a short content digest before the extension,
// so dist/icons.css becomes dist/icons.3e4f19ab.css.
func fingerprintPath(path string, content []byte) string {
	sum := blake2b.Sum256(content)
	tag := hex.EncodeToString(sum[:4])
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + tag + ext
}
