package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"react-golang/internal/service/partes"
	"react-golang/internal/storage"
)

type ParteUpdater interface {
	UpdateParte(ctx context.Context, id int64, parte storage.Parte) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func UpdateParte(log *slog.Logger, updater ParteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partes.update.UpdateParte"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.Parte
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateParte(ctx, id, req); err != nil {
			switch {
			case errors.Is(err, partes.ErrFirmaRequerida):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, Response{Error: "Por favor, añade una firma antes de guardar"})
			case errors.Is(err, partes.ErrEstadoInvalido):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, Response{Error: "Estado no válido"})
			case errors.Is(err, storage.ErrNotFound):
				http.Error(w, "Parte no encontrado", http.StatusNotFound)
			default:
				log.Error("Error al actualizar el parte", slog.String("op", op), slog.String("error", err.Error()))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, Response{Error: "No se pudo actualizar el parte de trabajo"})
			}
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
