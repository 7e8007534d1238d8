package cmd

import (
	"github.com/spf13/cobra"
)

var manualDryRun bool

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Archive the build output for manual upload",
	Long: `Packages the dashboard build output into a timestamped tar.gz next
to the project, for out-of-band upload through the hosting dashboard.
Aborts when there is no build output.`,
	PreRunE: checkPrerequisites,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(manualDryRun)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()
		return p.Manual(ctx)
	},
}

func init() {
	manualCmd.Flags().BoolVarP(&manualDryRun, "dry-run", "d", false, "Log the archive step without executing it")
	rootCmd.AddCommand(manualCmd)
}
