package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"iconbundle/internal/builtin"
	"iconbundle/internal/domain"
	"iconbundle/internal/iconset"
)

var (
	prefixStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")) // Sky Blue

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

// list [prefix]: without an argument, show every known collection;
// with one, show that collection's icon names.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [prefix]",
		Short: "Show known collections or the icons of one collection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return listIcons(args[0])
			}
			return listCollections()
		},
	}
}

func listCollections() error {
	prefixes, err := appCtx.Cache.List()
	if err != nil {
		return err
	}

	cached := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		cached[p.String()] = true
		set, err := iconset.LoadFile(appCtx.Cache.Path(p))
		if err != nil {
			fmt.Printf("%s  %s\n", prefixStyle.Render(p.String()), badStyle.Render("unreadable"))
			continue
		}
		fmt.Printf("%s  %s\n", prefixStyle.Render(p.String()), countStyle.Render(fmt.Sprintf("%d icons", set.Len())))
	}
	for _, name := range builtin.Names() {
		if cached[name] {
			continue
		}
		set, err := builtin.Load(name)
		if err != nil {
			continue
		}
		fmt.Printf("%s  %s\n", prefixStyle.Render(name), countStyle.Render(fmt.Sprintf("%d icons, builtin", set.Len())))
	}
	if len(prefixes) == 0 {
		fmt.Println(countStyle.Render("cache is empty; use fetch or --dir to add collections"))
	}
	return nil
}

func listIcons(prefix string) error {
	if !domain.ValidName(prefix) {
		return fmt.Errorf("invalid prefix %q", prefix)
	}
	set, err := loadCollection(domain.Prefix(prefix))
	if err != nil {
		return err
	}

	fmt.Println(prefixStyle.Render(prefix))
	for _, name := range set.AllNames() {
		if _, aliased := set.Aliases[name]; aliased {
			fmt.Printf("  %s %s\n", name, countStyle.Render("(alias)"))
			continue
		}
		fmt.Printf("  %s\n", name)
	}
	return nil
}
