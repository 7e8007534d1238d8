// Package npm wraps the npm invocations used by the pipeline.
package npm

import (
	"context"
	"fmt"

	"pulsedeploy/internal/logger"
	"pulsedeploy/internal/runner"
)

type Manager struct {
	r   runner.Runner
	log *logger.Logger
}

func New(r runner.Runner, log *logger.Logger) *Manager {
	return &Manager{r: r, log: log}
}

// CleanInstall runs a lockfile-exact install (npm ci) in dir.
func (m *Manager) CleanInstall(ctx context.Context, dir string) error {
	m.log.Info("installing dependencies in %s", dir)
	if err := m.r.Run(ctx, runner.Command{Name: "npm", Args: []string{"ci"}, Dir: dir}); err != nil {
		return fmt.Errorf("npm ci failed in %s: %w", dir, err)
	}
	return nil
}

// RunScript runs an npm script in dir with extra environment variables.
func (m *Manager) RunScript(ctx context.Context, dir, script string, env ...string) error {
	if err := m.r.Run(ctx, runner.Command{
		Name: "npm",
		Args: []string{"run", script},
		Dir:  dir,
		Env:  env,
	}); err != nil {
		return fmt.Errorf("npm run %s failed: %w", script, err)
	}
	return nil
}

// Test runs the dashboard test suite with watch mode disabled.
func (m *Manager) Test(ctx context.Context, dir string) error {
	if err := m.r.Run(ctx, runner.Command{
		Name: "npm",
		Args: []string{"test", "--", "--watchAll=false"},
		Dir:  dir,
		Env:  []string{"CI=true"},
	}); err != nil {
		return fmt.Errorf("npm test failed: %w", err)
	}
	return nil
}

// InstallGlobal installs a package with npm install -g.
func (m *Manager) InstallGlobal(ctx context.Context, pkg string) error {
	m.log.Info("installing %s globally", pkg)
	if err := m.r.Run(ctx, runner.Command{Name: "npm", Args: []string{"install", "-g", pkg}}); err != nil {
		return fmt.Errorf("global install of %s failed: %w", pkg, err)
	}
	return nil
}
