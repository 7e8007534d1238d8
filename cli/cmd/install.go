package cmd

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install dependencies for both sub-projects",
	Long: `Runs a lockfile-exact install (npm ci) in the server and dashboard
sub-projects. A missing server directory is skipped with a warning; a
missing dashboard directory aborts before any package-manager call.`,
	PreRunE: checkPrerequisites,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(false)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()
		return p.Install(ctx)
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
