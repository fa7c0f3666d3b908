package excel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"react-golang/internal/storage"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ParteProvider interface {
	GetParteByID(ctx context.Context, id int64) (*storage.Parte, error)
	GetPartes(ctx context.Context) ([]storage.Parte, error)
}

type ExcelGenerator interface {
	ExportExcel(parte storage.Parte) ([]byte, error)
	ExportAllExcel(partes []storage.Parte) ([]byte, error)
}

// ExportParteExcel downloads the single-record spreadsheet.
func ExportParteExcel(log *slog.Logger, provider ParteProvider, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.excel.ExportParteExcel"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		parte, err := provider.GetParteByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Parte no encontrado", http.StatusNotFound)
				return
			}
			log.Error("Error al cargar el parte", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno", http.StatusInternalServerError)
			return
		}

		data, err := gen.ExportExcel(*parte)
		if err != nil {
			log.Error("Error al generar el Excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error al generar el Excel", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=parte_%d.xlsx", id))
		w.Write(data)
	}
}

// ExportAllExcel downloads the all-records spreadsheet, dated in the name.
func ExportAllExcel(log *slog.Logger, provider ParteProvider, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.excel.ExportAllExcel"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		partes, err := provider.GetPartes(ctx)
		if err != nil {
			log.Error("Error al cargar los partes", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno", http.StatusInternalServerError)
			return
		}

		data, err := gen.ExportAllExcel(partes)
		if err != nil {
			log.Error("Error al generar el Excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error al generar el Excel", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("partes_trabajo_%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", contentTypeXLSX)
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(data)
	}
}
