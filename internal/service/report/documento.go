package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Documento is the rendered parte ready to be downloaded, saved or attached
// to an email as a data URI.
type Documento struct {
	pdf *gofpdf.Fpdf

	// gofpdf closes the document on the first Output, so the rendered
	// bytes are kept here and every later serialization reuses them.
	datos []byte
}

func (d *Documento) Bytes() ([]byte, error) {
	const op = "report.Documento.Bytes"

	if d.datos == nil {
		var buf bytes.Buffer
		if err := d.pdf.Output(&buf); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		d.datos = buf.Bytes()
	}

	return d.datos, nil
}

// DataURI renders the document as the data:application/pdf payload the
// email template expects.
func (d *Documento) DataURI() (string, error) {
	data, err := d.Bytes()
	if err != nil {
		return "", err
	}

	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Write copies the rendered pdf to w.
func (d *Documento) Write(w io.Writer) error {
	const op = "report.Documento.Write"

	datos, err := d.Bytes()
	if err != nil {
		return err
	}

	if _, err := w.Write(datos); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (d *Documento) PageCount() int {
	return d.pdf.PageCount()
}
