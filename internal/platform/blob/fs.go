package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FSStore keeps the document in a single file on local disk. Saves go
// through a temp file in the same directory followed by a rename, so a
// reader never observes a half-written document (a crash mid-save leaves
// the previous file intact).
type FSStore struct {
	path string
}

// NewFS returns a filesystem-backed store writing to path, creating the
// parent directory if needed.
func NewFS(path string) (*FSStore, error) {
	if path == "" {
		return nil, fmt.Errorf("data file path is required")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FSStore{path: path}, nil
}

func (s *FSStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

func (s *FSStore) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
