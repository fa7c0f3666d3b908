package blob

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store uploads image bytes under a path and returns the public URL the
// parte record will keep in its imagenes list.
type Store interface {
	Subir(ctx context.Context, path string, datos []byte, contentType string) (string, error)
}

// ObjectPath builds the storage key for a parte image:
// partes-images/{parteID}/{randomToken}.{originalExtension}.
func ObjectPath(parteID, originalName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("partes-images/%s/%s.%s", parteID, uuid.NewString(), ext)
}
