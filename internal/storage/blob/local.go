package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore is the development backend: files land under dir and are
// served by the backend itself under /uploads/.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalStore) Subir(_ context.Context, path string, datos []byte, _ string) (string, error) {
	const op = "blob.LocalStore.Subir"

	destino := filepath.Join(s.dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(destino), 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(destino, datos, 0o644); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.baseURL + "/" + path, nil
}
