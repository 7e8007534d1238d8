package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pulsedeploy/internal/archive"
	"pulsedeploy/internal/config"
	"pulsedeploy/internal/envscaffold"
	"pulsedeploy/internal/logger"
	"pulsedeploy/internal/prompt"
	"pulsedeploy/internal/runner"
)

// fakeRunner records every command instead of spawning processes.
type fakeRunner struct {
	cmds    []runner.Command
	fail    map[string]error
	lookErr map[string]error
	outErr  map[string]error
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if err := f.lookErr[name]; err != nil {
		return "", err
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, c runner.Command) error {
	f.cmds = append(f.cmds, c)
	return f.fail[c.String()]
}

func (f *fakeRunner) Output(ctx context.Context, c runner.Command) (string, error) {
	f.cmds = append(f.cmds, c)
	if err := f.outErr[c.String()]; err != nil {
		return "", err
	}
	return "ok", nil
}

func (f *fakeRunner) ran(line string) bool {
	for _, c := range f.cmds {
		if c.String() == line {
			return true
		}
	}
	return false
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(t.TempDir()) // empty dir, defaults apply
	require.NoError(t, err)
	return cfg
}

func newTestPipeline(t *testing.T, root, menuInput string, f *fakeRunner) *Pipeline {
	t.Helper()
	log := logger.New(io.Discard, "", logger.LevelError)
	pr := prompt.NewPrompter(strings.NewReader(menuInput), io.Discard, false)
	p := New(testConfig(t), f, pr, log, root, false)
	p.now = func() time.Time { return time.Date(2026, 8, 31, 9, 15, 0, 0, time.UTC) }
	return p
}

func mkDashboard(t *testing.T, root string) string {
	t.Helper()
	dir := filepath.Join(root, "dashboard")
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

func mkBuild(t *testing.T, root string) string {
	t.Helper()
	dir := filepath.Join(root, "dashboard", "build")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0644))
	return dir
}

func archivesIn(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if archive.IsArchiveName(e.Name(), config.DefaultArchivePrefix) {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestInstallMissingDashboardSpawnsNothing(t *testing.T) {
	root := t.TempDir()
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "", f)

	err := p.Install(context.Background())
	require.ErrorIs(t, err, ErrDashboardMissing)
	require.Empty(t, f.cmds, "no package-manager call may be attempted")
}

func TestBuildMissingDashboardSpawnsNothing(t *testing.T) {
	root := t.TempDir()
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "", f)

	err := p.Build(context.Background())
	require.ErrorIs(t, err, ErrDashboardMissing)
	require.Empty(t, f.cmds)
}

func TestInstallSkipsMissingServer(t *testing.T) {
	root := t.TempDir()
	dash := mkDashboard(t, root)
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "", f)

	require.NoError(t, p.Install(context.Background()))
	require.Len(t, f.cmds, 1)
	require.Equal(t, "npm ci", f.cmds[0].String())
	require.Equal(t, dash, f.cmds[0].Dir)
}

func TestInstallCoversBothSubProjects(t *testing.T) {
	root := t.TempDir()
	mkDashboard(t, root)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "server"), 0755))
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "", f)

	require.NoError(t, p.Install(context.Background()))
	require.Len(t, f.cmds, 2)
	require.Equal(t, filepath.Join(root, "server"), f.cmds[0].Dir, "server installs first")
	require.Equal(t, filepath.Join(root, "dashboard"), f.cmds[1].Dir)
}

func TestSetupIsIdempotent(t *testing.T) {
	root := t.TempDir()
	dash := mkDashboard(t, root)
	p := newTestPipeline(t, root, "", &fakeRunner{})

	require.NoError(t, p.Setup(context.Background()))
	localPath := filepath.Join(dash, envscaffold.LocalEnvFile)
	first, err := os.ReadFile(localPath)
	require.NoError(t, err)

	require.NoError(t, p.Setup(context.Background()))
	second, err := os.ReadFile(localPath)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAdvisoryFailuresDoNotFailBuild(t *testing.T) {
	root := t.TempDir()
	mkDashboard(t, root)
	f := &fakeRunner{fail: map[string]error{
		"npm run lint":                 errors.New("exit status 1"),
		"npm run typecheck":            errors.New("exit status 2"),
		"npm test -- --watchAll=false": errors.New("exit status 1"),
	}}
	p := newTestPipeline(t, root, "", f)

	require.NoError(t, p.Test(context.Background()))
	require.NoError(t, p.Build(context.Background()))
	require.True(t, f.ran("npm run build"), "build must still run after advisory failures")
}

func TestBuildFailureIsFatal(t *testing.T) {
	root := t.TempDir()
	mkDashboard(t, root)
	f := &fakeRunner{fail: map[string]error{
		"npm run build": errors.New("exit status 1"),
	}}
	p := newTestPipeline(t, root, "", f)

	require.Error(t, p.Build(context.Background()))
}

func TestBuildDisablesCIStrictMode(t *testing.T) {
	root := t.TempDir()
	mkDashboard(t, root)
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "", f)

	require.NoError(t, p.Build(context.Background()))
	for _, c := range f.cmds {
		if c.String() == "npm run build" {
			require.Contains(t, c.Env, "CI=false")
			return
		}
	}
	t.Fatal("npm run build was not invoked")
}

func TestManualWithoutBuildCreatesNoArchive(t *testing.T) {
	root := t.TempDir()
	mkDashboard(t, root)
	p := newTestPipeline(t, root, "", &fakeRunner{})

	err := p.Manual(context.Background())
	require.ErrorIs(t, err, archive.ErrBuildDirMissing)
	require.Empty(t, archivesIn(t, root))
}

func TestManualCreatesExactlyOneTimestampedArchive(t *testing.T) {
	root := t.TempDir()
	mkBuild(t, root)
	p := newTestPipeline(t, root, "", &fakeRunner{})

	require.NoError(t, p.Manual(context.Background()))

	names := archivesIn(t, root)
	require.Len(t, names, 1)
	require.Equal(t, "pulsecheck-dashboard-20260831-091500.tar.gz", names[0])
}

func TestFullInvalidMenuChoiceAbortsBeforeSideEffects(t *testing.T) {
	root := t.TempDir()
	mkBuild(t, root)
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "9\n", f)

	err := p.Full(context.Background())
	require.ErrorIs(t, err, prompt.ErrInvalidChoice)

	require.True(t, f.ran("npm run build"), "pipeline must complete through build first")
	for _, c := range f.cmds {
		require.NotEqual(t, "netlify", c.Name, "no upload may happen on an invalid choice")
	}
	require.Empty(t, archivesIn(t, root), "no archive may happen on an invalid choice")
}

func TestFullDeployChoiceUploadsBuild(t *testing.T) {
	root := t.TempDir()
	buildDir := mkBuild(t, root)
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "1\n", f)

	require.NoError(t, p.Full(context.Background()))
	require.True(t, f.ran("netlify deploy --prod --dir "+buildDir))
}

func TestFullManualChoiceArchivesBuild(t *testing.T) {
	root := t.TempDir()
	mkBuild(t, root)
	f := &fakeRunner{}
	p := newTestPipeline(t, root, "2\n", f)

	require.NoError(t, p.Full(context.Background()))
	require.Len(t, archivesIn(t, root), 1)
	for _, c := range f.cmds {
		require.NotEqual(t, "netlify", c.Name)
	}
}
