// Package pipeline implements the deployment stages behind each
// sub-command. Fatal conditions return errors; diagnostic steps only warn.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pulsedeploy/internal/archive"
	"pulsedeploy/internal/config"
	"pulsedeploy/internal/envscaffold"
	"pulsedeploy/internal/logger"
	"pulsedeploy/internal/netlify"
	"pulsedeploy/internal/npm"
	"pulsedeploy/internal/prompt"
	"pulsedeploy/internal/runner"
)

// ErrDashboardMissing is returned when the primary sub-project directory
// does not exist. No package-manager call is attempted in that case.
var ErrDashboardMissing = errors.New("dashboard directory not found")

type Pipeline struct {
	cfg      *config.Config
	r        runner.Runner
	npm      *npm.Manager
	prompter prompt.Prompter
	log      *logger.Logger
	root     string
	dryRun   bool
	now      func() time.Time
}

func New(cfg *config.Config, r runner.Runner, p prompt.Prompter, log *logger.Logger, root string, dryRun bool) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		r:        r,
		npm:      npm.New(r, log),
		prompter: p,
		log:      log,
		root:     root,
		dryRun:   dryRun,
		now:      time.Now,
	}
}

func (p *Pipeline) dashboardPath() string {
	return filepath.Join(p.root, p.cfg.DashboardDir)
}

func (p *Pipeline) serverPath() string {
	return filepath.Join(p.root, p.cfg.ServerDir)
}

func (p *Pipeline) buildPath() string {
	return filepath.Join(p.root, p.cfg.BuildPath())
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (p *Pipeline) requireDashboard() error {
	if !dirExists(p.dashboardPath()) {
		return fmt.Errorf("%w: %s", ErrDashboardMissing, p.dashboardPath())
	}
	return nil
}

// advisory downgrades a failed diagnostic step to a warning.
func (p *Pipeline) advisory(label string, err error) {
	if err == nil {
		p.log.Success("%s passed", label)
		return
	}
	p.log.Warn("%s failed (continuing): %v", label, err)
}

// Setup ensures the dashboard env files exist. Never overwrites.
func (p *Pipeline) Setup(ctx context.Context) error {
	if err := p.requireDashboard(); err != nil {
		return err
	}
	sc := envscaffold.New(p.log, p.dryRun)
	return sc.EnsureEnvFiles(p.dashboardPath(), p.cfg.Env.APIBaseURL)
}

// Install performs a lockfile-exact install for both sub-projects. The
// server is optional; the dashboard is required.
func (p *Pipeline) Install(ctx context.Context) error {
	if err := p.requireDashboard(); err != nil {
		return err
	}

	if dirExists(p.serverPath()) {
		if err := p.npm.CleanInstall(ctx, p.serverPath()); err != nil {
			return err
		}
	} else {
		p.log.Warn("server directory not found, skipping: %s", p.serverPath())
	}

	return p.npm.CleanInstall(ctx, p.dashboardPath())
}

// Test runs the dashboard test suite. Failures are advisory.
func (p *Pipeline) Test(ctx context.Context) error {
	if !dirExists(p.dashboardPath()) {
		p.log.Warn("dashboard directory not found, skipping tests")
		return nil
	}
	p.advisory("tests", p.npm.Test(ctx, p.dashboardPath()))
	return nil
}

// Build runs lint and typecheck (advisory), then the production build with
// CI strict mode disabled. Only the build step itself is fatal.
func (p *Pipeline) Build(ctx context.Context) error {
	if err := p.requireDashboard(); err != nil {
		return err
	}

	dir := p.dashboardPath()
	p.advisory("lint", p.npm.RunScript(ctx, dir, "lint"))
	p.advisory("typecheck", p.npm.RunScript(ctx, dir, "typecheck"))

	p.log.Info("building production bundle...")
	if err := p.npm.RunScript(ctx, dir, "build", "CI=false"); err != nil {
		return fmt.Errorf("production build failed: %w", err)
	}
	p.log.Success("build output ready in %s", p.buildPath())
	return nil
}

// Deploy uploads the build output through the Netlify CLI, installing and
// authenticating it first when needed.
func (p *Pipeline) Deploy(ctx context.Context) error {
	client := netlify.NewClient(p.r, p.npm, p.prompter, p.log, p.dryRun)
	if err := client.EnsureInstalled(ctx); err != nil {
		return err
	}
	if err := client.EnsureAuthenticated(ctx); err != nil {
		return err
	}
	return client.Deploy(ctx, p.buildPath(), p.cfg.Netlify.SiteID)
}

// Manual archives the build output next to the project for out-of-band
// upload. Fatal when there is no build output.
func (p *Pipeline) Manual(ctx context.Context) error {
	if p.dryRun {
		p.log.Info("would archive %s into %s", p.buildPath(), p.root)
		return nil
	}
	path, err := archive.Create(p.buildPath(), p.root, p.cfg.ArchivePrefix, p.now())
	if err != nil {
		return err
	}
	p.log.Success("archive created: %s", path)
	p.log.Info("upload it manually through the hosting dashboard")
	return nil
}

// Full composes setup, install, test and build, then lets the operator
// choose a deployment strategy. An invalid choice is fatal and happens
// before any upload or archive side effect.
func (p *Pipeline) Full(ctx context.Context) error {
	if err := p.Setup(ctx); err != nil {
		return err
	}
	if err := p.Install(ctx); err != nil {
		return err
	}
	if err := p.Test(ctx); err != nil {
		return err
	}
	if err := p.Build(ctx); err != nil {
		return err
	}

	choice, err := p.prompter.Menu("How do you want to deploy?", []string{
		"Deploy to Netlify",
		"Create archive for manual upload",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return p.Deploy(ctx)
	case 2:
		return p.Manual(ctx)
	default:
		return fmt.Errorf("%w: %d", prompt.ErrInvalidChoice, choice)
	}
}
