package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iconbundle/internal/config"
)

// build [bundle file]: run the whole pipeline and write the bundle.
func buildCmd() *cobra.Command {
	var (
		output      string
		format      string
		selector    string
		fingerprint bool
	)
	cmd := &cobra.Command{
		Use:   "build [bundle file]",
		Short: "Build the CSS bundle described by a bundle file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				found, err := defaultBundleFile()
				if err != nil {
					return err
				}
				path = found
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = output
			}
			if format != "" {
				cfg.Format = format
			}
			if selector != "" {
				cfg.Selector = selector
			}
			if cmd.Flags().Changed("fingerprint") {
				cfg.Fingerprint = fingerprint
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := appCtx.Bundler.Run(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("Saved CSS to %s!\n", res.Path)
			fmt.Printf("%d collections, %d icons, %d bytes\n", res.Sets, res.Icons, res.Bytes)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "override the output path")
	cmd.Flags().StringVar(&format, "format", "", "css format: expanded or compressed")
	cmd.Flags().StringVar(&selector, "selector", "", "selector template, e.g. .{prefix}-{name}")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "insert a content hash into the output filename")
	return cmd
}

func defaultBundleFile() (string, error) {
	for _, name := range []string{"iconbundle.json", "iconbundle.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no iconbundle.json or iconbundle.toml here (run iconbundle init)")
}
