/*
pulsedeploy - deployment toolkit for the PulseCheck web dashboard
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pulsedeploy/internal/config"
	"pulsedeploy/internal/logger"
	"pulsedeploy/internal/pipeline"
	"pulsedeploy/internal/prompt"
	"pulsedeploy/internal/runner"
	"pulsedeploy/internal/toolchain"
)

// Version is the CLI version string.
const Version = "1.2.0"

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

var (
	assumeYes bool
	verbose   bool

	rootLog = logger.PackageLogger("🫀 PULSE")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pulsedeploy",
	Short: "Build and deploy the PulseCheck web dashboard",
	Long: fmt.Sprintf(`%s %s

Orchestrates the PulseCheck dashboard pipeline end to end:

%s
%s  Scaffold environment files
%s  Install dependencies with npm ci
%s  Build the production bundle
%s  Ship it to Netlify or package it for manual upload

%s
Run '%s' to see available commands.
`,
		bold("🫀 pulsedeploy"), yellow("v"+Version),
		bold("Stages:"),
		green("✓"),
		green("✓"),
		green("✓"),
		green("✓"),
		yellow("👋 Tip:"),
		cyan("pulsedeploy --help"),
	),
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("\n%s %s\n\n", green("✨ Welcome to"), bold("pulsedeploy"))
		fmt.Println(bold("Quick Start:"))
		fmt.Printf("  %s - Scaffold env files\n", cyan("pulsedeploy setup"))
		fmt.Printf("  %s - Build the dashboard bundle\n", cyan("pulsedeploy build"))
		fmt.Printf("  %s - Run the whole pipeline\n\n", cyan("pulsedeploy full"))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("\n%s %s\n\n", red("❌ Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer prompts with their default")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")

	rootCmd.SetUsageTemplate(`{{.UseLine}}

  {{.Short}}

{{if .HasAvailableFlags}}Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

{{if .HasAvailableSubCommands}}Commands:
{{range .Commands}}{{if .IsAvailableCommand}}  {{rpad .Name .NamePadding }} {{.Short}}
{{end}}{{end}}{{end}}

Run '{{.CommandPath}} [command] --help' for more information about a command.
`)
}

// commandContext returns a context cancelled on SIGINT/SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// checkPrerequisites is the shared PreRunE gate: node and npm must be on
// PATH and node must satisfy the configured minimum version. It runs
// before any side effect of the sub-command.
func checkPrerequisites(cmd *cobra.Command, args []string) error {
	rootLog.Verbose(verbose)

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()
	return toolchain.Check(ctx, runner.New(rootLog), rootLog, cfg.MinNodeVersion)
}

// newPipeline wires a Pipeline for the current working directory.
func newPipeline(dryRun bool) (*pipeline.Pipeline, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	log := rootLog
	log.Verbose(verbose)
	return pipeline.New(cfg, runner.New(log), prompt.NewCLIPrompter(assumeYes), log, ".", dryRun), nil
}
