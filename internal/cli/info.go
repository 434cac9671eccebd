package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/packista/packista/pkg/release"
)

// infoCommand creates the package info command.
func (c *CLI) infoCommand() *cobra.Command {
	var (
		refresh bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "info <vendor/package>",
		Short: "Show repository-level package metadata",
		Long: `Show repository-level metadata for a Composer package: description,
type, repository URL, and download counters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := c.newService().Info(cmd.Context(), args[0], release.Options{
				Refresh: refresh,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(info)
			}

			printSuccess("%s", StyleHighlight.Render(info.Name))
			if info.Description != "" {
				printDetail("%s", info.Description)
			}
			if info.Type != "" {
				printKeyValue("type", info.Type)
			}
			if info.Language != "" {
				printKeyValue("language", info.Language)
			}
			if info.Repository != "" {
				printKeyValue("repository", info.Repository)
			}
			printKeyValue("stars", fmt.Sprintf("%d", info.Favers))
			printKeyValue("downloads", fmt.Sprintf("%d total, %d monthly", info.Downloads.Total, info.Downloads.Monthly))
			printKeyValue("versions", fmt.Sprintf("%d", len(info.Versions)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full document as JSON")

	return cmd
}
