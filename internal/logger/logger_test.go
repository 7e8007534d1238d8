package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "", LevelWarn)

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("messages below threshold leaked: %q", out)
	}
	if !strings.Contains(out, "warn line") || !strings.Contains(out, "error line") {
		t.Errorf("messages at or above threshold missing: %q", out)
	}
}

func TestVerboseDropsThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "", LevelInfo)
	log.Verbose(true)

	log.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("verbose mode did not enable debug output: %q", buf.String())
	}
}

func TestDisplayPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "🫀 PULSE", LevelInfo)

	log.Info("ready")
	if !strings.Contains(buf.String(), "🫀 PULSE ready") {
		t.Errorf("display prefix missing: %q", buf.String())
	}
}

func TestWithDisplay(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "A", LevelInfo)
	sub := log.WithDisplay("B")

	sub.Info("hello")
	if !strings.Contains(buf.String(), "B hello") {
		t.Errorf("sub logger prefix wrong: %q", buf.String())
	}
}

func TestFatalUsesExitHook(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "", LevelInfo)

	code := -1
	log.exit = func(c int) { code = c }
	log.Fatal("boom")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("fatal message missing: %q", buf.String())
	}
}
