package app

import (
	"net/http"
	"os"
	"path/filepath"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home  string       // state directory, e.g. $HOME/.iconbundle
	API   string       // icon API base URL, e.g. https://api.iconify.design
	Fetch bool         // fetch missing collections from the API during builds
	Dirs  []string     // extra collection directories searched before the cache
	HTTP  *http.Client // optional; defaults to http.DefaultClient
}

// DefaultHome returns $HOME/.iconbundle, or a relative .iconbundle when
// the home directory cannot be determined.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".iconbundle"
	}
	return filepath.Join(home, ".iconbundle")
}
