package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"iconbundle/internal/domain"
)

// fetch <prefix>...: download collections into the cache so later
// builds work offline.
func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <prefix>...",
		Short: "Download collections into the local cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if !domain.ValidName(arg) {
					return fmt.Errorf("invalid prefix %q", arg)
				}
				prefix := domain.Prefix(arg)

				data, err := appCtx.Remote.FetchCollection(prefix)
				if err != nil {
					return err
				}
				path, err := appCtx.Cache.WriteCollection(prefix, data)
				if err != nil {
					return err
				}
				fmt.Printf("Fetched %s to %s\n", prefix, path)
			}
			return nil
		},
	}
}
