package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"focusflow/internal/modules/extension/domain"
	extensionout "focusflow/internal/modules/extension/port/out"
)

const ManifestFile = "blocker.json"

type FileManifestStore struct {
	dir string
}

// NewFileManifestStore reads <dir>/blocker.json. Relative binaries resolve
// against dir.
func NewFileManifestStore(dir string) extensionout.ManifestStore {
	return &FileManifestStore{dir: dir}
}

func (s *FileManifestStore) Load(_ context.Context) (domain.Manifest, error) {
	path := filepath.Join(s.dir, ManifestFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrManifestMissing, path)
		}
		return domain.Manifest{}, fmt.Errorf("read blocker manifest: %w", err)
	}
	manifest := domain.Manifest{}
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifest); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode blocker manifest: %w", err)
	}
	if manifest.Binary != "" && !filepath.IsAbs(manifest.Binary) {
		manifest.Binary = filepath.Clean(filepath.Join(s.dir, manifest.Binary))
	}
	return manifest, nil
}
