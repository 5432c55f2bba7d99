package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"iconbundle/internal/app"
	"iconbundle/internal/builtin"
	"iconbundle/internal/collections"
	"iconbundle/internal/domain"
	"iconbundle/internal/iconset"
	"iconbundle/internal/remote"
)

var (
	home         string
	api          string
	fetchMissing bool
	searchDirs   []string
	appCtx       *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "iconbundle",
		Short: "Bundle icon collections into a single CSS file",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = app.DefaultHome()
			}
			if err := os.MkdirAll(home, 0o755); err != nil {
				return err
			}

			var err error
			appCtx, err = app.NewWire(app.Config{
				Home:  home,
				API:   api,
				Fetch: fetchMissing,
				Dirs:  searchDirs,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.iconbundle)")
	root.PersistentFlags().StringVar(&api, "api", "", "icon API base URL (default "+remote.DefaultBase+")")
	root.PersistentFlags().BoolVar(&fetchMissing, "fetch", false, "fetch missing collections from the icon API")
	root.PersistentFlags().StringArrayVar(&searchDirs, "dir", nil, "extra collection directory, searched before the cache (repeatable)")

	root.AddCommand(initCmd(), buildCmd(), listCmd(), previewCmd(), fetchCmd(), versionCmd())
	return root.Execute()
}

// loadCollection finds prefix through the locator chain, falling back
// to builtin collections.
func loadCollection(prefix domain.Prefix) (*domain.IconSet, error) {
	path, err := appCtx.Locator.Locate(prefix)
	if err == nil {
		return iconset.LoadFile(path)
	}
	if errors.Is(err, collections.ErrNotFound) {
		if set, berr := builtin.Load(prefix.String()); berr == nil {
			return set, nil
		}
	}
	return nil, err
}
