package cmd

import (
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Scaffold the dashboard environment files",
	Long: `Ensures .env.local and .env.production exist in the dashboard
sub-project. When .env.example is present it seeds both files; otherwise
a small fixed default is written (API base URL, environment tag, debug
flag). Existing files are never overwritten.`,
	PreRunE: checkPrerequisites,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(false)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()
		return p.Setup(ctx)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
