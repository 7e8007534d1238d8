package cmd

import (
	"github.com/spf13/cobra"
)

var fullDryRun bool

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Run the whole pipeline: setup, install, test, build, deploy",
	Long: `Composes setup, install, test and build, then asks which deployment
strategy to use: a Netlify production deploy or a manual archive. An
invalid choice aborts before any upload or archive side effect.

With --yes the Netlify strategy is taken without asking.`,
	PreRunE: checkPrerequisites,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(fullDryRun)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()
		return p.Full(ctx)
	},
}

func init() {
	fullCmd.Flags().BoolVarP(&fullDryRun, "dry-run", "d", false, "Log deploy-stage commands without executing them")
	rootCmd.AddCommand(fullCmd)
}
