package cli

import (
	"github.com/spf13/cobra"

	"patternshell/internal/version"
)

// addVersionCommand adds the version command.
func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the version of patterns with build information.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := version.ValidateVersion(); err != nil {
				return err
			}
			detailed, _ := cmd.Flags().GetBool("detailed")
			if detailed {
				app.printer.Println(version.GetDetailedVersion())
			} else {
				app.printer.Println(version.GetFormattedVersion())
			}
			return nil
		},
	}

	versionCmd.Flags().Bool("detailed", false, "Show detailed version information")
	rootCmd.AddCommand(versionCmd)
}
