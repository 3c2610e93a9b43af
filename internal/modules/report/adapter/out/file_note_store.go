package out

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	reportout "focusflow/internal/modules/report/port/out"
)

type FileNoteStore struct{}

func NewFileNoteStore() reportout.NoteStore {
	return &FileNoteStore{}
}

func (FileNoteStore) Read(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}

func (FileNoteStore) Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
