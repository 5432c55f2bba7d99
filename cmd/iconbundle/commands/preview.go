package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iconbundle/internal/domain"
	"iconbundle/internal/iconset"
	"iconbundle/internal/render"
)

// preview <prefix:name>: rasterize one icon so it can be eyeballed
// without a browser.
func previewCmd() *cobra.Command {
	var (
		output string
		size   int
		color  string
	)
	cmd := &cobra.Command{
		Use:   "preview <prefix:name>",
		Short: "Render a single icon to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, ok := domain.ParseReference(args[0])
			if !ok {
				return fmt.Errorf("invalid icon reference %q", args[0])
			}

			set, err := loadCollection(ref.Prefix)
			if err != nil {
				return err
			}
			markup, err := iconset.BuildSVG(set, ref.Name)
			if err != nil {
				return err
			}

			if output == "" {
				output = ref.Prefix.String() + "-" + ref.Name.String() + ".png"
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := render.PNG(f, markup, size, color); err != nil {
				return fmt.Errorf("rendering %s: %w", ref, err)
			}
			fmt.Printf("Saved preview to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <prefix>-<name>.png)")
	cmd.Flags().IntVar(&size, "size", 128, "image size in pixels")
	cmd.Flags().StringVar(&color, "color", "#000000", "paint for currentColor icons")
	return cmd
}
