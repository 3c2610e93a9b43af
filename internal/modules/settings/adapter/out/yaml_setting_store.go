package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	settingsout "focusflow/internal/modules/settings/port/out"
	apperrors "focusflow/internal/platform/errors"
)

// settingsFile is the on-disk layout: users -> userID -> name -> value.
type settingsFile struct {
	Users map[string]map[string]string `yaml:"users"`
}

type YAMLSettingStore struct {
	path string
	mu   sync.Mutex
}

func NewYAMLSettingStore(path string) settingsout.SettingStore {
	return &YAMLSettingStore{path: path}
}

func (s *YAMLSettingStore) Load(_ context.Context, userID string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, err := s.read()
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	for name, value := range file.Users[userID] {
		out[name] = value
	}
	return out, nil
}

func (s *YAMLSettingStore) Save(_ context.Context, userID, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, err := s.read()
	if err != nil {
		return err
	}
	if file.Users[userID] == nil {
		file.Users[userID] = map[string]string{}
	}
	file.Users[userID][name] = value

	raw, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("%w: marshal settings: %w", apperrors.ErrStore, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create settings dir: %w", apperrors.ErrStore, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("%w: write settings: %w", apperrors.ErrStore, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace settings: %w", apperrors.ErrStore, err)
	}
	return nil
}

func (s *YAMLSettingStore) read() (settingsFile, error) {
	file := settingsFile{}
	raw, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return settingsFile{}, fmt.Errorf("%w: read settings: %w", apperrors.ErrStore, err)
	}
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return settingsFile{}, fmt.Errorf("%w: decode settings: %w", apperrors.ErrStore, err)
		}
	}
	if file.Users == nil {
		file.Users = map[string]map[string]string{}
	}
	return file, nil
}
