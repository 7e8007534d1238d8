// Package envscaffold creates the dashboard environment files on first run.
// Existing files are never overwritten.
package envscaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"pulsedeploy/internal/logger"
)

const (
	LocalEnvFile      = ".env.local"
	ProductionEnvFile = ".env.production"
	TemplateFile      = ".env.example"
)

type Scaffolder struct {
	log    *logger.Logger
	dryRun bool
}

func New(log *logger.Logger, dryRun bool) *Scaffolder {
	return &Scaffolder{log: log, dryRun: dryRun}
}

// EnsureEnvFiles makes sure both env files exist in the dashboard directory.
// When .env.example is present its contents seed both files, the same way
// the original setup copied the template. Otherwise fixed defaults are
// written: the API base URL, an environment tag and a debug flag.
func (s *Scaffolder) EnsureEnvFiles(dashboardDir, apiBaseURL string) error {
	local := defaultLocalEnv()
	production := defaultProductionEnv(apiBaseURL)

	templatePath := filepath.Join(dashboardDir, TemplateFile)
	if data, err := os.ReadFile(templatePath); err == nil {
		s.log.Debug("using env template: %s", templatePath)
		local = data
		production = data
	}

	if err := s.writeIfAbsent(filepath.Join(dashboardDir, LocalEnvFile), local); err != nil {
		return err
	}
	return s.writeIfAbsent(filepath.Join(dashboardDir, ProductionEnvFile), production)
}

func (s *Scaffolder) writeIfAbsent(path string, content []byte) error {
	if _, err := os.Stat(path); err == nil {
		s.log.Info("skipped: %s already exists", path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if s.dryRun {
		s.log.Info("would create: %s", path)
		return nil
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.log.Success("created: %s", path)
	return nil
}

func defaultLocalEnv() []byte {
	return []byte("REACT_APP_API_URL=http://localhost:4000\n" +
		"REACT_APP_ENV=development\n" +
		"REACT_APP_DEBUG=true\n")
}

func defaultProductionEnv(apiBaseURL string) []byte {
	return []byte("REACT_APP_API_URL=" + apiBaseURL + "\n" +
		"REACT_APP_ENV=production\n" +
		"REACT_APP_DEBUG=false\n")
}
