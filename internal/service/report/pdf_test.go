package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"react-golang/internal/storage"
)

// fakeFetcher serves canned bytes per URL instead of doing HTTP.
type fakeFetcher struct {
	datos map[string][]byte
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	datos, ok := f.datos[url]
	if !ok {
		return nil, "", errors.New("imagen no disponible")
	}
	tipo, err := tipoImagen(datos)
	if err != nil {
		return nil, "", err
	}
	return datos, tipo, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func parteBase() storage.Parte {
	return storage.Parte{
		ID:               1,
		NumeroParte:      "00001/24",
		NombreObra:       "Reforma eléctrica",
		NombreTrabajador: "José García",
		EmailContacto:    "jose@example.com",
		Fecha:            "2024-03-15",
		NumVelas:         3,
		NumPuntosPVC:     2,
		OtrosTrabajos:    "Revisión del cuadro",
		TiempoEmpleado:   2.5,
		CosteTrabajos:    "50.00",
		Estado:           storage.EstadoPendiente,
		Firma:            "",
	}
}

func TestGeneratePDF_SinImagenes(t *testing.T) {
	svc := NewReportService(&fakeFetcher{})

	doc, err := svc.GeneratePDF(context.Background(), parteBase())
	require.NoError(t, err)

	assert.Equal(t, 1, doc.PageCount())

	datos, err := doc.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(datos, []byte("%PDF")))

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

// The same document gets serialized more than once in practice (download,
// save, email attachment); every pass must yield the same full bytes.
func TestDocumento_SerializacionRepetida(t *testing.T) {
	svc := NewReportService(&fakeFetcher{})

	doc, err := svc.GeneratePDF(context.Background(), parteBase())
	require.NoError(t, err)

	primero, err := doc.Bytes()
	require.NoError(t, err)
	require.NotEmpty(t, primero)

	segundo, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, primero, segundo)

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.Equal(t, primero, buf.Bytes())

	uri, err := doc.DataURI()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:application/pdf;base64,"))
}

// 4 images per gallery page: 5 images need two extra pages after page 1.
func TestGeneratePDF_PaginacionGaleria(t *testing.T) {
	img := pngBytes(t)
	fetcher := &fakeFetcher{datos: map[string][]byte{}}

	urls := make([]string, 5)
	for i := range urls {
		urls[i] = "https://example.com/img" + string(rune('a'+i)) + ".png"
		fetcher.datos[urls[i]] = img
	}

	parte := parteBase()
	parte.Imagenes = urls

	svc := NewReportService(fetcher)

	doc, err := svc.GeneratePDF(context.Background(), parte)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.PageCount())
}

// A failed image leaves its slot blank but the document still comes out.
func TestGeneratePDF_ImagenFallida(t *testing.T) {
	img := pngBytes(t)
	fetcher := &fakeFetcher{datos: map[string][]byte{
		"https://example.com/ok1.png": img,
		"https://example.com/ok2.png": img,
	}}

	parte := parteBase()
	parte.Imagenes = []string{
		"https://example.com/ok1.png",
		"https://example.com/rota.png",
		"https://example.com/ok2.png",
	}

	svc := NewReportService(fetcher)

	doc, err := svc.GeneratePDF(context.Background(), parte)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.PageCount())
}

func TestGeneratePDF_FirmaDataURL(t *testing.T) {
	firma := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t))

	parte := parteBase()
	parte.Firma = firma

	svc := NewReportService(NewHTTPFetcher())

	doc, err := svc.GeneratePDF(context.Background(), parte)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.PageCount())
}

func TestFetchImagenes_OrdenEstable(t *testing.T) {
	img := pngBytes(t)
	fetcher := &fakeFetcher{datos: map[string][]byte{
		"https://example.com/a.png": img,
		"https://example.com/c.png": img,
	}}

	resultados := fetchImagenes(context.Background(), fetcher, []string{
		"https://example.com/a.png",
		"https://example.com/b.png",
		"https://example.com/c.png",
	})

	require.Len(t, resultados, 3)
	assert.NoError(t, resultados[0].err)
	assert.Error(t, resultados[1].err)
	assert.NoError(t, resultados[2].err)
}

func TestPartirTexto(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)

	t.Run("short text stays on one line", func(t *testing.T) {
		lineas := partirTexto(pdf, "poca cosa", 180)
		assert.Equal(t, []string{"poca cosa"}, lineas)
	})

	t.Run("long text wraps at the width", func(t *testing.T) {
		texto := "palabra palabra palabra palabra palabra palabra palabra palabra palabra palabra palabra palabra"
		lineas := partirTexto(pdf, texto, 60)
		assert.Greater(t, len(lineas), 1)
		for _, linea := range lineas {
			assert.LessOrEqual(t, pdf.GetStringWidth(linea), 60.0)
		}
	})
}

func TestTipoImagen(t *testing.T) {
	tipo, err := tipoImagen(pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "PNG", tipo)

	_, err = tipoImagen([]byte("no es una imagen"))
	assert.Error(t, err)
}

func TestFormatearFecha(t *testing.T) {
	assert.Equal(t, "15/03/2024", formatearFecha("2024-03-15"))
	// Anything we cannot parse goes out untouched.
	assert.Equal(t, "15-03-2024", formatearFecha("15-03-2024"))
	assert.Equal(t, "", formatearFecha(""))
}

func TestFormatearHoras(t *testing.T) {
	assert.Equal(t, "", formatearHoras(0))
	assert.Equal(t, "2.5", formatearHoras(2.5))
	assert.Equal(t, "8", formatearHoras(8))
}
