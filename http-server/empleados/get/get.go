package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"react-golang/internal/storage"
)

type EmpleadoProvider interface {
	GetEmpleadoByCodigo(ctx context.Context, codigo string) (*storage.Empleado, error)
}

// GetEmpleado resolves a worker code into name and hourly rates. The edit
// form calls this on every code change to fill the derived fields.
func GetEmpleado(log *slog.Logger, provider EmpleadoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.empleados.get.GetEmpleado"

		codigo := chi.URLParam(r, "codigo")
		if codigo == "" {
			http.Error(w, "Código requerido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		empleado, err := provider.GetEmpleadoByCodigo(ctx, codigo)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Empleado no encontrado", http.StatusNotFound)
				return
			}
			log.Error("Error al buscar empleado", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, empleado)
	}
}
