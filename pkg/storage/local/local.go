package local

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store keeps uploaded documents on the local filesystem under a base dir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &Store{baseDir: baseDir}
}

// Save writes the payload as <baseDir>/<id><ext> and returns the path.
func (s *Store) Save(id uuid.UUID, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}
	dst := filepath.Join(s.baseDir, id.String()+filepath.Ext(filename))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return dst, nil
}

func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
