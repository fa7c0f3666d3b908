package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"react-golang/internal/storage"
)

type ObraProvider interface {
	GetObras(ctx context.Context) ([]storage.Obra, error)
}

func GetObras(log *slog.Logger, provider ObraProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.obras.get.GetObras"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		obras, err := provider.GetObras(ctx)
		if err != nil {
			log.Error("Error al cargar las obras", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno", http.StatusInternalServerError)
			return
		}

		if obras == nil {
			obras = []storage.Obra{}
		}
		render.JSON(w, r, obras)
	}
}
