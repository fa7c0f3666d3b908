package get

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

type ParteProvider interface {
	GetPartes(ctx context.Context) ([]storage.Parte, error)
	GetParteByID(ctx context.Context, id int64) (*storage.Parte, error)
}

// GetPartes returns every parte, newest first, for the dashboard list.
func GetPartes(log *slog.Logger, provider ParteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partes.get.GetPartes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		partes, err := provider.GetPartes(ctx)
		if err != nil {
			log.Error("Error al cargar los partes", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno", http.StatusInternalServerError)
			return
		}

		if partes == nil {
			partes = []storage.Parte{}
		}
		render.JSON(w, r, partes)
	}
}

func GetParte(log *slog.Logger, provider ParteProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partes.get.GetParte"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
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

		render.JSON(w, r, parte)
	}
}
