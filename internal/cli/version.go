package cli

import (
	"github.com/spf13/cobra"

	"github.com/packista/packista/pkg/release"
)

// versionCommand creates the exact-version lookup command.
func (c *CLI) versionCommand() *cobra.Command {
	var (
		refresh bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "version <vendor/package> <version>",
		Short: "Look up one exact version of a package",
		Long: `Look up one exact version of a Composer package.

The version must match a registry version string exactly, e.g. "1.2.3" or
"dev-master". No constraint resolution or normalization is applied.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := c.newService().Version(cmd.Context(), args[0], args[1], release.Options{
				Refresh: refresh,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(rec)
			}
			printRecord(rec)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full record as JSON")

	return cmd
}
