package pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"react-golang/internal/service/report"
	"react-golang/internal/storage"
)

type ParteProvider interface {
	GetParteByID(ctx context.Context, id int64) (*storage.Parte, error)
}

type DocumentGenerator interface {
	GeneratePDF(ctx context.Context, parte storage.Parte) (*report.Documento, error)
}

// ExportPDF renders the parte document and streams it as a download.
// Image fetching happens inside the generator, so this handler gets a
// longer deadline than the plain CRUD ones.
func ExportPDF(log *slog.Logger, provider ParteProvider, gen DocumentGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.pdf.ExportPDF"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
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

		doc, err := gen.GeneratePDF(ctx, *parte)
		if err != nil {
			log.Error("Error al generar el PDF", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error al generar el PDF", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=parte_%d.pdf", id))
		if err := doc.Write(w); err != nil {
			log.Error("Error al serializar el PDF", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}
