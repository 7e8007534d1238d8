package cmd

import (
	"github.com/spf13/cobra"
)

var deployDryRun bool

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Upload the build output to Netlify",
	Long: `Verifies the Netlify CLI is installed (installing it globally when
missing) and that a session is authenticated (prompting to log in when
not), then uploads the build output as a production deployment.`,
	PreRunE: checkPrerequisites,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(deployDryRun)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()
		return p.Deploy(ctx)
	},
}

func init() {
	deployCmd.Flags().BoolVarP(&deployDryRun, "dry-run", "d", false, "Log the commands without executing them")
	rootCmd.AddCommand(deployCmd)
}
