package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"react-golang/internal/service/partes"
	"react-golang/internal/storage"
)

type ParteCreator interface {
	CreateParte(ctx context.Context, parte storage.Parte) (int64, string, error)
}

type Response struct {
	ParteID     int64  `json:"parte_id"`
	NumeroParte string `json:"numero_parte"`
	Error       string `json:"error,omitempty"`
}

// SaveParte creates a parte. The numero_parte comes back in the response so
// the form can show it right away; a missing firma is rejected before any
// store call.
func SaveParte(log *slog.Logger, creator ParteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partes.save.SaveParte"

		var req storage.Parte
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Datos inválidos", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, numero, err := creator.CreateParte(ctx, req)
		if err != nil {
			if errors.Is(err, partes.ErrFirmaRequerida) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, Response{Error: "Por favor, añade una firma antes de guardar"})
				return
			}
			log.Error("Error al crear el parte", slog.String("op", op), slog.String("error", err.Error()))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "No se pudo crear el parte de trabajo"})
			return
		}

		render.JSON(w, r, Response{ParteID: id, NumeroParte: numero})
	}
}
