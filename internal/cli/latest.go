package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packista/packista/pkg/release"
)

// latestCommand creates the latest-release resolution command.
func (c *CLI) latestCommand() *cobra.Command {
	var (
		prereleases bool
		refresh     bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "latest <vendor/package>",
		Short: "Resolve the latest release of a package",
		Long: `Resolve the latest release of a Composer package.

By default only stable releases are considered; a package without any stable
release resolves to its newest prerelease. With --prereleases, dev, alpha,
beta and RC versions compete as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(c.Logger)
			rec, err := c.newService().Latest(cmd.Context(), args[0], release.Options{
				IncludePrereleases: prereleases,
				Refresh:            refresh,
			})
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Resolved %s", args[0]))

			if asJSON {
				return printJSON(rec)
			}
			printRecord(rec)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&prereleases, "prereleases", "p", false, "include prerelease versions")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full record as JSON")

	return cmd
}
