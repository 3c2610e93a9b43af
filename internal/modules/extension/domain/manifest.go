package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrManifestMissing  = errors.New("blocker manifest not found")
	ErrChecksumMismatch = errors.New("blocker checksum mismatch")
	ErrBlockerTimeout   = errors.New("blocker timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest pins the blocker binary the client is allowed to launch.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("blocker name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("blocker version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("blocker binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("blocker sha256 must be lowercase 64-char hex")
	}
	return nil
}
