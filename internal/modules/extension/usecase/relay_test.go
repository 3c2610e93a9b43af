package usecase_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"focusflow/internal/modules/extension/domain"
	"focusflow/internal/modules/extension/dto"
	"focusflow/internal/modules/extension/service"
	"focusflow/internal/modules/extension/usecase"
	apperrors "focusflow/internal/platform/errors"
)

type staticManifests struct {
	manifest domain.Manifest
	err      error
}

func (s staticManifests) Load(context.Context) (domain.Manifest, error) {
	return s.manifest, s.err
}

type fakeHost struct {
	delivered []domain.Message
	err       error
}

func (f *fakeHost) Handshake(context.Context, domain.Manifest) (domain.Status, error) {
	return domain.Status{Active: true, SessionID: "s1", Rules: []domain.Rule{domain.NewBlockRule(10001, "x.com")}}, f.err
}

func (f *fakeHost) Deliver(_ context.Context, _ domain.Manifest, m domain.Message) error {
	f.delivered = append(f.delivered, m)
	return f.err
}

func (f *fakeHost) Navigate(_ context.Context, _ domain.Manifest, url string) (domain.Decision, error) {
	return domain.Decision{URL: url, Host: "x.com", Blocked: true, RuleID: 10001}, f.err
}

func writeBinary(t *testing.T) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocker")
	payload := []byte("#!/bin/sh\n")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func TestRelaySendTranslatesMessages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bin, sum := writeBinary(t)
	host := &fakeHost{}
	relay := usecase.NewRelayInteractor(service.NewRelay(
		staticManifests{manifest: domain.Manifest{Name: "blocker", Version: "1", Binary: bin, SHA256: sum}},
		host,
		hclog.NewNullLogger(),
	))

	err := relay.Send(ctx, dto.Message{Type: "START_SESSION", SessionID: "s1", Token: "tok", Duration: 25, Blocklist: []dto.Entry{{Type: "website", Value: "x.com"}}})
	if err != nil {
		t.Fatalf("send start: %v", err)
	}
	if err := relay.Send(ctx, dto.Message{Type: "END_SESSION"}); err != nil {
		t.Fatalf("send end: %v", err)
	}
	if len(host.delivered) != 2 || host.delivered[0].Start.Token != "tok" || host.delivered[0].Start.Blocklist[0].Value != "x.com" {
		t.Fatalf("unexpected deliveries %+v", host.delivered)
	}
	if err := relay.Send(ctx, dto.Message{Type: "START_SESSION"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("start without session id should be rejected, got %v", err)
	}
	if err := relay.Send(ctx, dto.Message{Type: "BOGUS"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown type should be rejected, got %v", err)
	}

	status, err := relay.Status(ctx)
	if err != nil || status.Rules[0].Domain != "x.com" {
		t.Fatalf("unexpected status %+v (%v)", status, err)
	}
	d, err := relay.Check(ctx, "https://x.com")
	if err != nil || !d.Blocked {
		t.Fatalf("unexpected decision %+v (%v)", d, err)
	}
}

func TestRelayRefusesTamperedBinary(t *testing.T) {
	t.Parallel()
	bin, _ := writeBinary(t)
	host := &fakeHost{}
	relay := usecase.NewRelayInteractor(service.NewRelay(
		staticManifests{manifest: domain.Manifest{Name: "blocker", Version: "1", Binary: bin, SHA256: "0000000000000000000000000000000000000000000000000000000000000000"}},
		host,
		hclog.NewNullLogger(),
	))
	err := relay.Send(context.Background(), dto.Message{Type: "END_SESSION"})
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
	if len(host.delivered) != 0 {
		t.Fatalf("nothing should be delivered to a tampered binary")
	}

	result, err := relay.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !result.ManifestValid || !result.BinaryReachable || result.ChecksumValid || result.Error != "checksum mismatch" {
		t.Fatalf("unexpected doctor result %+v", result)
	}
}

func TestRelayDoctor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	missing := usecase.NewRelayInteractor(service.NewRelay(staticManifests{err: domain.ErrManifestMissing}, &fakeHost{}, hclog.NewNullLogger()))
	result, err := missing.Doctor(ctx)
	if err != nil || result.Error == "" || result.ManifestValid {
		t.Fatalf("expected a missing-manifest report, got %+v (%v)", result, err)
	}

	bin, sum := writeBinary(t)
	ok := usecase.NewRelayInteractor(service.NewRelay(
		staticManifests{manifest: domain.Manifest{Name: "blocker", Version: "1", Binary: bin, SHA256: sum}},
		&fakeHost{},
		hclog.NewNullLogger(),
	))
	result, err = ok.Doctor(ctx)
	if err != nil || !result.HandshakeOK || !result.ChecksumValid || result.Error != "" {
		t.Fatalf("expected a healthy report, got %+v (%v)", result, err)
	}

	broken := usecase.NewRelayInteractor(service.NewRelay(
		staticManifests{manifest: domain.Manifest{Name: "blocker", Version: "1", Binary: bin, SHA256: sum}},
		&fakeHost{err: errors.New("handshake failed")},
		hclog.NewNullLogger(),
	))
	result, _ = broken.Doctor(ctx)
	if result.HandshakeOK || result.Error != "handshake failed" {
		t.Fatalf("expected handshake failure, got %+v", result)
	}
}
