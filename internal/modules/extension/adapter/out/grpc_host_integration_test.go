package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"

	extensionout "focusflow/internal/modules/extension/adapter/out"
	"focusflow/internal/modules/extension/domain"
)

func TestGRPCHostIntegrationBlocker(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the blocker binary")
	}
	binPath, checksum := buildBlocker(t)
	manifest := domain.Manifest{Name: "blocker", Version: "1.0.0", Binary: binPath, SHA256: checksum}
	stateDir := t.TempDir()
	host := extensionout.NewGRPCHost(hclog.NewNullLogger(), []string{
		"FOCUSFLOW_CLIENT_STATE_DIR=" + stateDir,
		"FOCUSFLOW_CLIENT_BASE_URL=http://127.0.0.1:1",
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	status, err := host.Handshake(ctx, manifest)
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	if status.Active {
		t.Fatalf("fresh blocker should be idle")
	}

	err = host.Deliver(ctx, manifest, domain.Message{Type: domain.MessageStart, Start: domain.StartPayload{
		SessionID: "s1",
		Token:     "tok",
		Duration:  25,
		Blocklist: []domain.Entry{{Type: "website", Value: "youtube.com"}, {Type: "app", Value: "slack"}},
	}})
	if err != nil {
		t.Fatalf("deliver start: %v", err)
	}

	// Each call is a fresh process, so this also covers restoring state.
	status, err = host.Handshake(ctx, manifest)
	if err != nil {
		t.Fatalf("handshake after start: %v", err)
	}
	if !status.Active || status.SessionID != "s1" || len(status.Rules) != 1 {
		t.Fatalf("unexpected status after start %+v", status)
	}

	decision, err := host.Navigate(ctx, manifest, "https://www.youtube.com/watch?v=1")
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if !decision.Blocked || decision.RuleID != 10001 || decision.Reported {
		t.Fatalf("expected a blocked, unreported navigation, got %+v", decision)
	}

	if err := host.Deliver(ctx, manifest, domain.Message{Type: domain.MessageEnd}); err != nil {
		t.Fatalf("deliver end: %v", err)
	}
	decision, err = host.Navigate(ctx, manifest, "https://youtube.com")
	if err != nil {
		t.Fatalf("navigate after end: %v", err)
	}
	if decision.Blocked {
		t.Fatalf("navigation should pass after the session ended")
	}
}

func buildBlocker(t *testing.T) (string, string) {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "focusflow-blocker")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/blocker")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build blocker: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built blocker: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
