package cmd

import (
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the dashboard test suite (best-effort)",
	Long: `Runs npm test in the dashboard with watch mode disabled. Test
failures and a missing test script are reported as warnings; the command
still exits zero.`,
	PreRunE: checkPrerequisites,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(false)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()
		return p.Test(ctx)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
