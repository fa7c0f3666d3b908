package blob

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// GCSStore keeps parte images in a Google Cloud Storage bucket. The bucket
// is expected to allow public reads; the returned URL is the canonical
// storage.googleapis.com form.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	const op = "blob.NewGCSStore"

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Subir(ctx context.Context, path string, datos []byte, contentType string) (string, error) {
	const op = "blob.GCSStore.Subir"

	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(datos); err != nil {
		w.Close()
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, path), nil
}
