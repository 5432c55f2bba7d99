package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iconbundle/internal/builtin"
	"iconbundle/internal/config"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a bundle file and seed the starter collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			const path = "iconbundle.json"
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default()
			cfg.Builtin = []string{"starter"}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
				return err
			}

			// Seed the cache so bare starter: references resolve
			// without the API.
			raw, err := builtin.Raw("starter")
			if err != nil {
				return err
			}
			if _, err := appCtx.Cache.WriteCollection("starter", raw); err != nil {
				return err
			}

			fmt.Printf("Created %s\n", path)
			fmt.Println("Run iconbundle build to produce your first bundle.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing bundle file")
	return cmd
}
