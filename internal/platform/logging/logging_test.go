package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"focusflow/internal/platform/logging"
)

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logging.NewWithOutput("focusflow", "warn", false, buf)
	log.Info("hidden")
	log.Warn("shown", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line must be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestJSONFormatAndUnknownLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logging.NewWithOutput("focusflow", "loud", true, buf)
	log.Debug("hidden")
	log.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("unknown level should default to info: %s", out)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") || !strings.Contains(out, `"@message":"shown"`) {
		t.Fatalf("expected json line, got %s", out)
	}
}
