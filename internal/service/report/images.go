package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ImagenFetcher resolves an attachment reference (http(s) URL or data URL)
// into raw image bytes plus the image-type tag the pdf renderer needs.
type ImagenFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// imagenResultado is the per-slot outcome of the gallery fetch. A failed
// slot keeps its position so the surviving images stay in insertion order.
type imagenResultado struct {
	datos []byte
	tipo  string
	err   error
}

// HTTPFetcher downloads gallery images. Each fetch gets its own bounded
// timeout so a single stalled download degrades into a skipped slot instead
// of hanging the whole document.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{},
		timeout: 10 * time.Second,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	const op = "report.HTTPFetcher.Fetch"

	if strings.HasPrefix(url, "data:") {
		return decodeDataURL(url)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%s: %s: status %d", op, url, resp.StatusCode)
	}

	datos, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	tipo, err := tipoImagen(datos)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %s: %w", op, url, err)
	}

	return datos, tipo, nil
}

// decodeDataURL handles the signature pad output: data:image/png;base64,...
func decodeDataURL(url string) ([]byte, string, error) {
	const op = "report.decodeDataURL"

	_, payload, found := strings.Cut(url, ",")
	if !found {
		return nil, "", fmt.Errorf("%s: data URL sin payload", op)
	}

	datos, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	tipo, err := tipoImagen(datos)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return datos, tipo, nil
}

// tipoImagen validates that the bytes really decode as an image, so a broken
// download is rejected here instead of poisoning the pdf renderer later.
func tipoImagen(datos []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(datos))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	switch format {
	case "jpeg":
		return "JPG", nil
	case "png":
		return "PNG", nil
	case "gif":
		return "GIF", nil
	}
	return "", fmt.Errorf("formato no soportado: %s", format)
}

// fetchImagenes resolves every attachment concurrently and reassembles the
// results by slice index, so page layout order is the insertion order of the
// images, never their arrival order. Failures stay inside their slot.
func fetchImagenes(ctx context.Context, fetcher ImagenFetcher, urls []string) []imagenResultado {
	resultados := make([]imagenResultado, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			datos, tipo, err := fetcher.Fetch(ctx, url)
			resultados[i] = imagenResultado{datos: datos, tipo: tipo, err: err}
			return nil
		})
	}

	// Goroutines never return an error: a failed fetch is recorded in its
	// slot and skipped at draw time.
	_ = g.Wait()

	return resultados
}
