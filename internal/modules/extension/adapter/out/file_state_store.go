package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"focusflow/internal/modules/extension/domain"
	extensionout "focusflow/internal/modules/extension/port/out"
)

type stateFile struct {
	domain.State
	Tabs      []domain.Tab `json:"tabs"`
	NextTabID int          `json:"nextTabId"`
}

// FileStateStore persists the blocker's session and its simulated tabs in a
// single JSON file. It serves as both StateStore and TabStore.
type FileStateStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path}
}

var (
	_ extensionout.StateStore = (*FileStateStore)(nil)
	_ extensionout.TabStore   = (*FileStateStore)(nil)
)

func (s *FileStateStore) Load(_ context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.read()
	if err != nil {
		return domain.State{}, err
	}
	return f.State, nil
}

func (s *FileStateStore) Save(_ context.Context, state domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.read()
	if err != nil {
		return err
	}
	f.State = state
	return s.write(f)
}

func (s *FileStateStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.read()
	if err != nil {
		return err
	}
	f.State = domain.State{}
	return s.write(f)
}

func (s *FileStateStore) Tabs(_ context.Context) ([]domain.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.read()
	if err != nil {
		return nil, err
	}
	return f.Tabs, nil
}

func (s *FileStateStore) Open(_ context.Context, url string) (domain.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.read()
	if err != nil {
		return domain.Tab{}, err
	}
	f.NextTabID++
	tab := domain.Tab{ID: f.NextTabID, URL: url}
	f.Tabs = append(f.Tabs, tab)
	return tab, s.write(f)
}

func (s *FileStateStore) Reload(_ context.Context, tabID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.read()
	if err != nil {
		return err
	}
	for i := range f.Tabs {
		if f.Tabs[i].ID == tabID {
			f.Tabs[i].Reloads++
			return s.write(f)
		}
	}
	return fmt.Errorf("tab %d not found", tabID)
}

func (s *FileStateStore) read() (stateFile, error) {
	f := stateFile{}
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("read extension state: %w", err)
	}
	if err := json.Unmarshal(payload, &f); err != nil {
		return f, fmt.Errorf("decode extension state: %w", err)
	}
	return f, nil
}

func (s *FileStateStore) write(f stateFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create extension state dir: %w", err)
	}
	payload, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal extension state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write extension state: %w", err)
	}
	return nil
}
