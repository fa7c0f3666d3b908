package delete_parte

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"react-golang/internal/storage"
)

type ParteDeleter interface {
	DeleteParte(ctx context.Context, id int64) error
}

type Response struct {
	Status string `json:"status"`
}

// DeleteParte removes a parte wholesale. The dashboard asks the user to
// confirm before calling this; there is no soft delete.
func DeleteParte(log *slog.Logger, deleter ParteDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partes.delete.DeleteParte"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteParte(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Parte no encontrado", http.StatusNotFound)
				return
			}
			log.Error("Error al eliminar el parte", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
