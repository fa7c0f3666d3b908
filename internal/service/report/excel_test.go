package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"react-golang/internal/storage"
)

func TestExportExcel(t *testing.T) {
	parte := parteBase()
	parte.NumMontajeAparatos = 0
	parte.OtrosTrabajos = ""

	svc := NewReportService(&fakeFetcher{})

	datos, err := svc.ExportExcel(parte)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(datos))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Parte de Trabajo"

	obra, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Reforma eléctrica", obra)

	// Counts are numeric zeros, free text is just blank.
	aparatos, err := f.GetCellValue(sheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "0", aparatos)

	otros, err := f.GetCellValue(sheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "", otros)

	estado, err := f.GetCellValue(sheet, "K2")
	require.NoError(t, err)
	assert.Equal(t, storage.EstadoPendiente, estado)

	// No identity columns on the single-record sheet.
	cabecera, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Obra", cabecera)
}

func TestExportExcel_HorasCero(t *testing.T) {
	parte := parteBase()
	parte.TiempoEmpleado = 0

	svc := NewReportService(&fakeFetcher{})

	datos, err := svc.ExportExcel(parte)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(datos))
	require.NoError(t, err)
	defer f.Close()

	horas, err := f.GetCellValue("Parte de Trabajo", "I2")
	require.NoError(t, err)
	assert.Equal(t, "", horas)
}

func TestExportAllExcel(t *testing.T) {
	creado := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	primero := parteBase()
	primero.CreatedAt = creado
	primero.UpdatedAt = creado

	segundo := parteBase()
	segundo.ID = 2
	segundo.NumeroParte = "00002/24"
	segundo.Estado = storage.EstadoCompletado

	svc := NewReportService(&fakeFetcher{})

	datos, err := svc.ExportAllExcel([]storage.Parte{primero, segundo})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(datos))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Partes de Trabajo"

	numero, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "00001/24", numero)

	id, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", id)

	// Fecha is reformatted to DD/MM/YYYY on the all-records sheet.
	fecha, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "15/03/2024", fecha)

	creacion, err := f.GetCellValue(sheet, "N2")
	require.NoError(t, err)
	assert.Equal(t, "15/03/2024 09:30:00", creacion)

	// Zero timestamps stay blank instead of printing the epoch.
	creacionSegundo, err := f.GetCellValue(sheet, "N3")
	require.NoError(t, err)
	assert.Equal(t, "", creacionSegundo)

	filas, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.NotEmpty(t, filas)
	assert.Equal(t, "Nº Parte", filas[0][0])
	assert.Equal(t, "Última Modificación", filas[0][14])
}
