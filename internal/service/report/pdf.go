package report

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"react-golang/internal/storage"
)

// Gallery grid: 2 columns, 4 images per page, fixed slot size.
const (
	imagenesPorPagina = 4
	anchoImagen       = 85.0
	altoImagen        = 60.0
	margenImagen      = 15.0
	inicioGaleriaY    = 30.0
)

type ReportService struct {
	fetcher ImagenFetcher
}

func NewReportService(fetcher ImagenFetcher) *ReportService {
	return &ReportService{fetcher: fetcher}
}

// GeneratePDF lays out one parte page by page: banner, info panel, detail
// table, free-text panels, then the image gallery and the signature. Image
// fetch or decode failures degrade into empty slots; they never abort the
// document.
func (s *ReportService) GeneratePDF(ctx context.Context, parte storage.Parte) (*Documento, error) {
	const op = "service.report.GeneratePDF"

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	h := &hoja{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	dibujarCabecera(h, parte)
	dibujarInfoGeneral(h, parte)
	dibujarDetalles(h, parte)
	dibujarOtrosTrabajos(h, parte)
	dibujarInfoAdicional(h, parte)

	if len(parte.Imagenes) > 0 {
		resultados := fetchImagenes(ctx, s.fetcher, parte.Imagenes)
		dibujarGaleria(h, resultados)
	}

	if parte.Firma != "" {
		datos, tipo, err := s.fetcher.Fetch(ctx, parte.Firma)
		dibujarFirma(h, imagenResultado{datos: datos, tipo: tipo, err: err})
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%s: %w", op, pdf.Error())
	}

	return &Documento{pdf: pdf}, nil
}

// Page 1 banner: full-width primary band, centred title and numero.
func dibujarCabecera(h *hoja, parte storage.Parte) {
	pdf := h.pdf

	pdf.SetFillColor(colorPrimario[0], colorPrimario[1], colorPrimario[2])
	pdf.Rect(0, 0, anchoPagina, 40, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	textoCentrado(pdf, h.tr("Parte de Trabajo"), 20)

	pdf.SetFont("Helvetica", "B", 16)
	textoCentrado(pdf, h.tr("Nº "+parte.NumeroParte), 35)

	h.y = 40
}

// Rounded info panel with the 2x2 obra/fecha/trabajador/email grid; bold
// muted labels, values offset 25mm to the right of their label.
func dibujarInfoGeneral(h *hoja, parte storage.Parte) {
	pdf := h.pdf

	pdf.SetFillColor(colorPanel[0], colorPanel[1], colorPanel[2])
	pdf.RoundedRect(10, 50, 190, 40, 3, "1234", "F")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(colorPrimario[0], colorPrimario[1], colorPrimario[2])
	pdf.Text(15, 60, h.tr("Información General"))

	grid := [2][2][2]string{
		{{"Obra:", parte.NombreObra}, {"Fecha:", formatearFecha(parte.Fecha)}},
		{{"Trabajador:", parte.NombreTrabajador}, {"Email:", parte.EmailContacto}},
	}

	for i, fila := range grid {
		y := 70 + float64(i)*15
		for j, par := range fila {
			x := 15.0
			if j == 1 {
				x = 105.0
			}

			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(colorSecundario[0], colorSecundario[1], colorSecundario[2])
			pdf.Text(x, y, par[0])

			pdf.SetFont("Helvetica", "", 12)
			pdf.SetTextColor(0, 0, 0)
			pdf.Text(x+25, y, h.tr(par[1]))
		}
	}

	h.y = 90
}

// Bordered Concepto/Cantidad table, header filled with the banner colour,
// one row per quantified work item.
func dibujarDetalles(h *hoja, parte storage.Parte) {
	pdf := h.pdf

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(colorPrimario[0], colorPrimario[1], colorPrimario[2])
	pdf.Text(15, 100, "Detalles del Trabajo")

	const (
		filaAlto      = 12.0
		anchoConcepto = 100.0
		anchoCantidad = 30.0
	)

	pdf.SetXY(15, 105)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(colorPrimario[0], colorPrimario[1], colorPrimario[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(anchoConcepto, filaAlto, "Concepto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(anchoCantidad, filaAlto, "Cantidad", "1", 1, "C", true, 0, "")

	filas := [][2]string{
		{"Velas", strconv.Itoa(parte.NumVelas)},
		{"Puntos PVC", strconv.Itoa(parte.NumPuntosPVC)},
		{"Montaje Aparatos", strconv.Itoa(parte.NumMontajeAparatos)},
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, fila := range filas {
		pdf.SetX(15)
		pdf.CellFormat(anchoConcepto, filaAlto, fila[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(anchoCantidad, filaAlto, fila[1], "1", 1, "C", false, 0, "")
	}

	h.y = 105 + float64(1+len(filas))*filaAlto
}

// Free-text panel, wrapped to the panel's inner width.
func dibujarOtrosTrabajos(h *hoja, parte storage.Parte) {
	pdf := h.pdf

	inicio := h.y + 10

	pdf.SetFillColor(colorPanel[0], colorPanel[1], colorPanel[2])
	pdf.RoundedRect(10, inicio, 190, 40, 3, "1234", "F")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(colorPrimario[0], colorPrimario[1], colorPrimario[2])
	pdf.Text(15, inicio+10, "Otros Trabajos")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)

	texto := parte.OtrosTrabajos
	if texto == "" {
		texto = "-"
	}
	for i, linea := range partirTexto(pdf, h.tr(texto), 180) {
		pdf.Text(15, inicio+20+float64(i)*7, linea)
	}

	h.y = inicio + 40
}

// Three label/value rows; each value wraps independently and pushes the
// following rows down by max(15, lines*10+5).
func dibujarInfoAdicional(h *hoja, parte storage.Parte) {
	pdf := h.pdf

	inicio := h.y + 10

	pdf.SetFillColor(colorPanel[0], colorPanel[1], colorPanel[2])
	pdf.RoundedRect(10, inicio, 190, 45, 3, "1234", "F")

	coste := ""
	if parte.CosteTrabajos != "" {
		coste = parte.CosteTrabajos + "\u20ac"
	}

	filas := [][2]string{
		{"Tiempo Empleado:", formatearHoras(parte.TiempoEmpleado)},
		{"Estado:", parte.Estado},
		{"Coste:", coste},
	}

	y := inicio + 12
	for _, fila := range filas {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(colorSecundario[0], colorSecundario[1], colorSecundario[2])
		pdf.Text(15, y, fila[0])

		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(0, 0, 0)
		lineas := partirTexto(pdf, h.tr(fila[1]), 100)
		for i, linea := range lineas {
			pdf.Text(85, y+float64(i)*10, linea)
		}

		avance := float64(len(lineas))*10 + 5
		if avance < 15 {
			avance = 15
		}
		y += avance
	}

	h.y = y
}

// Gallery pages: 2x2 grid, repeated banner with a continuation label every
// four images. Failed slots are left blank: no image and no border.
func dibujarGaleria(h *hoja, resultados []imagenResultado) {
	pdf := h.pdf

	dibujarBannerGaleria(h, "Imágenes del Trabajo")

	for i, res := range resultados {
		if i > 0 && i%imagenesPorPagina == 0 {
			dibujarBannerGaleria(h, "Imágenes del Trabajo (continuación)")
		}

		if res.err != nil {
			continue
		}

		fila := float64((i % imagenesPorPagina) / 2)
		columna := float64(i % 2)
		x := margenImagen + columna*(anchoImagen+margenImagen)
		y := inicioGaleriaY + fila*(altoImagen+margenImagen)

		dibujarImagen(pdf, fmt.Sprintf("imagen-%d", i), res, x, y, anchoImagen, altoImagen)

		pdf.SetDrawColor(colorSecundario[0], colorSecundario[1], colorSecundario[2])
		pdf.Rect(x, y, anchoImagen, altoImagen, "D")
	}

	h.y = altoPagina
}

func dibujarBannerGaleria(h *hoja, titulo string) {
	pdf := h.pdf
	pdf.AddPage()
	pdf.SetFillColor(colorPrimario[0], colorPrimario[1], colorPrimario[2])
	pdf.Rect(0, 0, anchoPagina, 20, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	textoCentrado(pdf, h.tr(titulo), 15)
}

// Signature block near the bottom of the current page. A failed decode
// leaves the label without an image rather than failing the export.
func dibujarFirma(h *hoja, res imagenResultado) {
	pdf := h.pdf

	y := altoPagina - 40

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(colorPrimario[0], colorPrimario[1], colorPrimario[2])
	pdf.Text(15, y-10, "Firma del Trabajador")

	if res.err != nil {
		return
	}

	dibujarImagen(pdf, "firma", res, 15, y, 50, 30)
}

func dibujarImagen(pdf *gofpdf.Fpdf, nombre string, res imagenResultado, x, y, w, alto float64) {
	opts := gofpdf.ImageOptions{ImageType: res.tipo}
	pdf.RegisterImageOptionsReader(nombre, opts, bytes.NewReader(res.datos))
	pdf.ImageOptions(nombre, x, y, w, alto, false, opts, 0, "")
}

// formatearFecha turns the stored ISO date into the dd/mm/yyyy the business
// reads; anything unparseable is shown as-is.
func formatearFecha(fecha string) string {
	if fecha == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return fecha
	}
	return t.Format("02/01/2006")
}

func formatearHoras(horas float64) string {
	if horas == 0 {
		return ""
	}
	return strconv.FormatFloat(horas, 'f', -1, 64)
}
