package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packista/packista/pkg/composer/version"
	"github.com/packista/packista/pkg/release"
)

// versionsCommand creates the version listing command.
func (c *CLI) versionsCommand() *cobra.Command {
	var (
		refresh     bool
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "versions <vendor/package>",
		Short: "List all versions of a package",
		Long: `List every version of a Composer package: tagged releases from the
stable channel followed by branch versions from the dev channel.

With --interactive, versions are shown in a browsable list; selecting one
prints its full record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := c.newService().Versions(cmd.Context(), args[0], release.Options{
				Refresh: refresh,
			})
			if err != nil {
				return err
			}

			switch {
			case asJSON:
				return printJSON(versions)
			case interactive:
				return browseVersions(args[0], versions)
			}

			printInfo("%s: %d versions", args[0], len(versions))
			for _, rec := range versions {
				v, ok := rec.Version()
				if !ok {
					continue
				}
				fmt.Println("  " + StyleValue.Render(v) + " " + StyleDim.Render(stabilityLabel(v)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print all records as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse versions interactively")

	return cmd
}

// stabilityLabel returns the label shown next to a version. Stable versions
// get no label to keep the common case quiet.
func stabilityLabel(v string) string {
	if s := version.Classify(v); s < version.Stable {
		return "(" + s.String() + ")"
	}
	return ""
}
