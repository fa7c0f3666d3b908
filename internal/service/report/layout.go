package report

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait in millimetres.
const (
	anchoPagina = 210.0
	altoPagina  = 297.0
)

// Corporate palette, shared by the PDF banner and the detail table header.
var (
	colorPrimario   = [3]int{41, 79, 177}
	colorSecundario = [3]int{107, 114, 128}
	colorPanel      = [3]int{245, 247, 250}
)

// hoja threads the layout state through the drawing steps: the page belongs
// to the pdf object, the vertical cursor is explicit. Every step that stacks
// content below previous content reads and advances y instead of relying on
// ambient state. tr maps UTF-8 to the cp1252 the core fonts expect, so the
// Spanish labels keep their accents.
type hoja struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

// textoCentrado draws s horizontally centred on the page at baseline y.
func textoCentrado(pdf *gofpdf.Fpdf, s string, y float64) {
	x := (anchoPagina - pdf.GetStringWidth(s)) / 2
	pdf.Text(x, y, s)
}

// partirTexto is the greedy word-wrap used by every free-text panel: words
// accumulate on the current line while the measured width stays under
// maxWidth, and overflow starts a new line. Measurement uses the font
// currently selected on the pdf.
func partirTexto(pdf *gofpdf.Fpdf, texto string, maxWidth float64) []string {
	if texto == "" {
		return nil
	}

	palabras := strings.Fields(texto)
	if len(palabras) == 0 {
		return nil
	}

	lineas := make([]string, 0, 1)
	actual := palabras[0]

	for _, palabra := range palabras[1:] {
		if pdf.GetStringWidth(actual+" "+palabra) < maxWidth {
			actual += " " + palabra
		} else {
			lineas = append(lineas, actual)
			actual = palabra
		}
	}
	lineas = append(lineas, actual)

	return lineas
}
