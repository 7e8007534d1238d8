// Package toolchain gates every command behind the Node runtime check.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"pulsedeploy/internal/logger"
	"pulsedeploy/internal/runner"
)

var (
	ErrNodeNotInstalled = errors.New("node is not installed")
	ErrNpmNotInstalled  = errors.New("npm is not installed")
	ErrNodeTooOld       = errors.New("node version below required minimum")
)

// Check verifies that node and npm are on PATH and that the node version
// satisfies the configured minimum. It must run before any side effect.
func Check(ctx context.Context, r runner.Runner, log *logger.Logger, minVersion string) error {
	nodePath, err := r.LookPath("node")
	if err != nil {
		return ErrNodeNotInstalled
	}
	log.Debug("node found at: %s", nodePath)

	if _, err := r.LookPath("npm"); err != nil {
		return ErrNpmNotInstalled
	}

	version, err := r.Output(ctx, runner.Command{Name: "node", Args: []string{"--version"}})
	if err != nil {
		return fmt.Errorf("node is installed but not functioning: %w", err)
	}

	current := normalize(version)
	required := normalize(minVersion)
	if !semver.IsValid(current) {
		return fmt.Errorf("unexpected node version output %q", version)
	}
	if semver.Compare(current, required) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrNodeTooOld, current, required)
	}

	log.Debug("node %s satisfies minimum %s", current, required)
	return nil
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
