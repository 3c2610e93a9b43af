package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"focusflow/internal/modules/extension/domain"
	"focusflow/internal/modules/extension/dto"
	extensionout "focusflow/internal/modules/extension/port/out"
)

// Relay launches the pinned blocker binary for each call.
type Relay struct {
	manifests extensionout.ManifestStore
	host      extensionout.Host
	log       hclog.Logger
}

func NewRelay(manifests extensionout.ManifestStore, host extensionout.Host, log hclog.Logger) *Relay {
	return &Relay{manifests: manifests, host: host, log: log}
}

func (r *Relay) Send(ctx context.Context, msg domain.Message) error {
	manifest, err := r.runnable(ctx)
	if err != nil {
		return err
	}
	if err := r.host.Deliver(ctx, manifest, msg); err != nil {
		return fmt.Errorf("deliver %s: %w", msg.Type, err)
	}
	r.log.Debug("delivered extension message", "type", msg.Type)
	return nil
}

func (r *Relay) Check(ctx context.Context, url string) (domain.Decision, error) {
	manifest, err := r.runnable(ctx)
	if err != nil {
		return domain.Decision{}, err
	}
	return r.host.Navigate(ctx, manifest, url)
}

func (r *Relay) Status(ctx context.Context) (domain.Status, error) {
	manifest, err := r.runnable(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	return r.host.Handshake(ctx, manifest)
}

func (r *Relay) Doctor(ctx context.Context) (dto.DoctorResult, error) {
	manifest, err := r.manifests.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrManifestMissing) {
			return dto.DoctorResult{Error: err.Error()}, nil
		}
		return dto.DoctorResult{}, err
	}
	result := dto.DoctorResult{Name: manifest.Name, Version: manifest.Version, Binary: manifest.Binary}
	if err := manifest.Validate(); err != nil {
		result.Error = err.Error()
		return result, nil
	}
	result.ManifestValid = true
	result.BinaryReachable = fileExists(manifest.Binary)
	if !result.BinaryReachable {
		result.Error = fmt.Sprintf("binary does not exist: %s", manifest.Binary)
		return result, nil
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		result.Error = "checksum mismatch"
		return result, nil
	}
	result.ChecksumValid = true
	if _, err := r.host.Handshake(ctx, manifest); err != nil {
		result.Error = err.Error()
		return result, nil
	}
	result.HandshakeOK = true
	return result, nil
}

func (r *Relay) runnable(ctx context.Context) (domain.Manifest, error) {
	manifest, err := r.manifests.Load(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	if err := manifest.Validate(); err != nil {
		return domain.Manifest{}, err
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read blocker binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
