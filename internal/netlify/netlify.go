// Package netlify drives the hosting provider CLI for production uploads.
package netlify

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pulsedeploy/internal/logger"
	"pulsedeploy/internal/npm"
	"pulsedeploy/internal/prompt"
	"pulsedeploy/internal/runner"
)

// CLIPackage is the npm package providing the netlify binary.
const CLIPackage = "netlify-cli"

var (
	ErrLoginDeclined   = errors.New("netlify login declined")
	ErrDeployFailed    = errors.New("netlify deploy failed")
	ErrBuildDirMissing = errors.New("build output directory not found")
)

type Client struct {
	r        runner.Runner
	npm      *npm.Manager
	prompter prompt.Prompter
	log      *logger.Logger
	dryRun   bool
}

func NewClient(r runner.Runner, m *npm.Manager, p prompt.Prompter, log *logger.Logger, dryRun bool) *Client {
	return &Client{r: r, npm: m, prompter: p, log: log, dryRun: dryRun}
}

// EnsureInstalled checks for the netlify binary and installs the CLI
// globally when it is missing.
func (c *Client) EnsureInstalled(ctx context.Context) error {
	if path, err := c.r.LookPath("netlify"); err == nil {
		c.log.Debug("netlify CLI found at: %s", path)
		return nil
	}

	c.log.Warn("netlify CLI not found, installing...")
	if c.dryRun {
		c.log.Info("would run: npm install -g %s", CLIPackage)
		return nil
	}
	if err := c.npm.InstallGlobal(ctx, CLIPackage); err != nil {
		return fmt.Errorf("failed to install netlify CLI: %w", err)
	}
	return nil
}

// EnsureAuthenticated verifies a logged-in session, prompting the operator
// to log in when there is none. A declined login aborts the deployment.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	if _, err := c.r.Output(ctx, runner.Command{Name: "netlify", Args: []string{"status"}}); err == nil {
		c.log.Debug("netlify session is authenticated")
		return nil
	}

	login, err := c.prompter.YesNo("Not logged in to Netlify. Log in now?", true)
	if err != nil {
		return err
	}
	if !login {
		return ErrLoginDeclined
	}

	if c.dryRun {
		c.log.Info("would run: netlify login")
		return nil
	}
	if err := c.r.Run(ctx, runner.Command{Name: "netlify", Args: []string{"login"}}); err != nil {
		return fmt.Errorf("netlify login failed: %w", err)
	}
	return nil
}

// Deploy uploads dir as a production deployment.
func (c *Client) Deploy(ctx context.Context, dir, siteID string) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s (run build first)", ErrBuildDirMissing, dir)
	}

	args := []string{"deploy", "--prod", "--dir", dir}
	if siteID != "" {
		args = append(args, "--site", siteID)
	}

	if c.dryRun {
		c.log.Info("would run: netlify %v", args)
		return nil
	}

	c.log.Info("uploading %s to Netlify...", dir)
	if err := c.r.Run(ctx, runner.Command{Name: "netlify", Args: args}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeployFailed, err)
	}
	c.log.Success("production deployment complete")
	return nil
}
