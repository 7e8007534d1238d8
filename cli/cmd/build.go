package cmd

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the production dashboard bundle",
	Long: `Runs lint and typecheck (both best-effort), then the production
build with CI strict mode disabled so front-end warnings do not fail the
build. Only a failing build command aborts.`,
	PreRunE: checkPrerequisites,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(false)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()
		return p.Build(ctx)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
