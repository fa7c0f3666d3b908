package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"react-golang/internal/storage"
)

// ExportExcel writes the single-record spreadsheet: one header row, one data
// row, no identity or timestamp columns.
func (s *ReportService) ExportExcel(parte storage.Parte) ([]byte, error) {
	const op = "service.report.ExportExcel"

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Parte de Trabajo"
	f.SetSheetName("Sheet1", sheet)

	headers := []any{
		"Obra", "Trabajador", "Fecha", "Email", "Velas", "Puntos PVC",
		"Montaje Aparatos", "Otros Trabajos", "Tiempo Empleado", "Coste", "Estado",
	}
	valores := []any{
		parte.NombreObra,
		parte.NombreTrabajador,
		parte.Fecha,
		parte.EmailContacto,
		parte.NumVelas,
		parte.NumPuntosPVC,
		parte.NumMontajeAparatos,
		parte.OtrosTrabajos,
		celdaHoras(parte.TiempoEmpleado),
		parte.CosteTrabajos,
		parte.Estado,
	}

	if err := escribirFila(f, sheet, 1, headers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := escribirFila(f, sheet, 2, valores); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := aplicarEstiloCabecera(f, sheet, len(headers)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

// ExportAllExcel writes the all-records spreadsheet: the single-record
// columns plus numero, id and both timestamps, with explicit column widths
// and a frozen header row.
func (s *ReportService) ExportAllExcel(partes []storage.Parte) ([]byte, error) {
	const op = "service.report.ExportAllExcel"

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Partes de Trabajo"
	f.SetSheetName("Sheet1", sheet)

	headers := []any{
		"Nº Parte", "ID", "Fecha", "Obra", "Trabajador", "Email", "Velas",
		"Puntos PVC", "Montaje Aparatos", "Otros Trabajos", "Tiempo Empleado",
		"Coste (€)", "Estado", "Fecha Creación", "Última Modificación",
	}
	if err := escribirFila(f, sheet, 1, headers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, parte := range partes {
		valores := []any{
			parte.NumeroParte,
			parte.ID,
			formatearFecha(parte.Fecha),
			parte.NombreObra,
			parte.NombreTrabajador,
			parte.EmailContacto,
			parte.NumVelas,
			parte.NumPuntosPVC,
			parte.NumMontajeAparatos,
			parte.OtrosTrabajos,
			celdaHoras(parte.TiempoEmpleado),
			parte.CosteTrabajos,
			parte.Estado,
			formatearInstante(parte.CreatedAt),
			formatearInstante(parte.UpdatedAt),
		}
		if err := escribirFila(f, sheet, i+2, valores); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := aplicarEstiloCabecera(f, sheet, len(headers)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	anchos := []float64{8, 8, 12, 30, 20, 25, 8, 12, 15, 40, 15, 10, 12, 20, 20}
	for i, ancho := range anchos {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, ancho)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func escribirFila(f *excelize.File, sheet string, fila int, valores []any) error {
	for i, valor := range valores {
		cell, err := excelize.CoordinatesToCellName(i+1, fila)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, valor); err != nil {
			return err
		}
	}
	return nil
}

func aplicarEstiloCabecera(f *excelize.File, sheet string, columnas int) error {
	estilo, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return err
	}

	ultima, err := excelize.CoordinatesToCellName(columnas, 1)
	if err != nil {
		return err
	}

	return f.SetCellStyle(sheet, "A1", ultima, estilo)
}

// celdaHoras mirrors the form: zero hours show as an empty cell, not 0.
func celdaHoras(horas float64) any {
	if horas == 0 {
		return ""
	}
	return horas
}

func formatearInstante(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04:05")
}
