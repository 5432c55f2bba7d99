package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func versionCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("iconbundle %s\n", Version)
			if check {
				checkUpdate(Version)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check for a newer release")
	return cmd
}

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "iconbundle",
		Repository: "iconbundle",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}
	if res.Outdated {
		fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, currentVer)
	}
}
