package runner

import (
	"context"
	"io"
	"path/filepath"
	"runtime"
	"testing"

	"pulsedeploy/internal/logger"
)

func testRunner() Runner {
	return New(logger.New(io.Discard, "", logger.LevelError))
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "npm", Args: []string{"run", "build"}}
	if got := c.String(); got != "npm run build" {
		t.Errorf("String() = %q", got)
	}
}

func TestOutputCapturesAndTrims(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	out, err := testRunner().Output(context.Background(), Command{
		Name: "sh", Args: []string{"-c", "echo hello"},
	})
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if out != "hello" {
		t.Errorf("Output = %q, want hello", out)
	}
}

func TestRunPropagatesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	err := testRunner().Run(context.Background(), Command{
		Name: "sh", Args: []string{"-c", "exit 3"},
	})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestRunHonorsDirAndEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	out, err := testRunner().Output(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", `printf %s "$(basename "$PWD")-$PD_PROBE"`},
		Dir:  dir,
		Env:  []string{"PD_PROBE=42"},
	})
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	want := filepath.Base(dir) + "-42"
	if out != want {
		t.Errorf("Output = %q, want %q", out, want)
	}
}
