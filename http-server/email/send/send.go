package send

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"react-golang/internal/email"
	"react-golang/internal/service/report"
	"react-golang/internal/storage"
)

type ParteProvider interface {
	GetParteByID(ctx context.Context, id int64) (*storage.Parte, error)
}

type DocumentGenerator interface {
	GeneratePDF(ctx context.Context, parte storage.Parte) (*report.Documento, error)
}

type Notifier interface {
	Send(ctx context.Context, params email.Params) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// SendParteEmail renders the document and mails it to the contact address.
// The PDF is always fully resolved before it is handed to the notifier.
func SendParteEmail(log *slog.Logger, provider ParteProvider, gen DocumentGenerator, notifier Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.email.send.SendParteEmail"

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

		if parte.EmailContacto == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, Response{Error: "El parte no tiene email de contacto"})
			return
		}

		doc, err := gen.GeneratePDF(ctx, *parte)
		if err != nil {
			log.Error("Error al generar el PDF", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error al generar el PDF", http.StatusInternalServerError)
			return
		}

		pdfData, err := doc.DataURI()
		if err != nil {
			log.Error("Error al serializar el PDF", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error al generar el PDF", http.StatusInternalServerError)
			return
		}

		params := email.Params{
			ToEmail:  parte.EmailContacto,
			ToName:   parte.NombreTrabajador,
			FromName: "Sistema de Partes de Trabajo",
			Message:  fmt.Sprintf("Adjunto encontrará el parte de trabajo para la obra %s", parte.NombreObra),
			PDFData:  pdfData,
		}

		if err := notifier.Send(ctx, params); err != nil {
			log.Error("Error al enviar el email", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "No se pudo enviar el email"})
			return
		}

		render.JSON(w, r, Response{Status: "enviado"})
	}
}
