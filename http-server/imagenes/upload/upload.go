package upload

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"react-golang/internal/storage/blob"
)

const (
	maxUploadBytes = 10 << 20
	maxImagenAncho = 1600
)

type Response struct {
	URL string `json:"url"`
}

// UploadImagen stores one work photo and returns its public URL, which the
// form appends to the parte's image list. Phone photos wider than 1600px
// get downscaled before upload. The {id} segment may be "temp" while the
// parte has not been created yet.
func UploadImagen(log *slog.Logger, store blob.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.imagenes.upload.UploadImagen"

		parteID := chi.URLParam(r, "id")
		if parteID == "" {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Imagen demasiado grande", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("imagen")
		if err != nil {
			http.Error(w, "Falta el archivo de imagen", http.StatusBadRequest)
			return
		}
		defer file.Close()

		datos, err := io.ReadAll(file)
		if err != nil {
			log.Error("Error al leer la imagen", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error interno", http.StatusInternalServerError)
			return
		}

		img, formato, err := image.Decode(bytes.NewReader(datos))
		if err != nil {
			http.Error(w, "El archivo no es una imagen válida", http.StatusBadRequest)
			return
		}

		if img.Bounds().Dx() > maxImagenAncho {
			if f, err := imaging.FormatFromExtension(formato); err == nil {
				resized := imaging.Resize(img, maxImagenAncho, 0, imaging.Lanczos)
				var buf bytes.Buffer
				if err := imaging.Encode(&buf, resized, f); err == nil {
					datos = buf.Bytes()
				}
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		path := blob.ObjectPath(parteID, header.Filename)
		url, err := store.Subir(ctx, path, datos, "image/"+formato)
		if err != nil {
			log.Error("Error al subir la imagen", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Error al subir la imagen", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{URL: url})
	}
}
