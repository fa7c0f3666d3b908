package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	sendemail "react-golang/http-server/email/send"
	getempleados "react-golang/http-server/empleados/get"
	exportexcel "react-golang/http-server/export/excel"
	exportpdf "react-golang/http-server/export/pdf"
	uploadimagen "react-golang/http-server/imagenes/upload"
	getobras "react-golang/http-server/obras/get"
	deleteparte "react-golang/http-server/partes/delete"
	getpartes "react-golang/http-server/partes/get"
	saveparte "react-golang/http-server/partes/save"
	updateparte "react-golang/http-server/partes/update"
	"react-golang/internal/config"
	"react-golang/internal/email"
	"react-golang/internal/service/partes"
	"react-golang/internal/service/report"
	"react-golang/internal/storage/blob"
	"react-golang/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	parteService *partes.ParteService,
	reportService *report.ReportService,
	notifier *email.Client,
	blobStore blob.Store,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Listado y CRUD de partes
	router.Get("/api/partes", getpartes.GetPartes(log, storage))
	router.Post("/api/partes", saveparte.SaveParte(log, parteService))
	router.Get("/api/partes/excel", exportexcel.ExportAllExcel(log, storage, reportService))
	router.Get("/api/partes/{id}", getpartes.GetParte(log, storage))
	router.Put("/api/partes/{id}", updateparte.UpdateParte(log, parteService))
	router.Delete("/api/partes/{id}", deleteparte.DeleteParte(log, parteService))

	// Exportaciones y envío por email
	router.Get("/api/partes/{id}/pdf", exportpdf.ExportPDF(log, storage, reportService))
	router.Get("/api/partes/{id}/excel", exportexcel.ExportParteExcel(log, storage, reportService))
	router.Post("/api/partes/{id}/email", sendemail.SendParteEmail(log, storage, reportService, notifier))

	// Imágenes del parte
	router.Post("/api/partes/{id}/imagenes", uploadimagen.UploadImagen(log, blobStore))

	// Datos de referencia para el formulario
	router.Get("/api/empleados/{codigo}", getempleados.GetEmpleado(log, storage))
	router.Get("/api/obras", getobras.GetObras(log, storage))

	// Imágenes locales en desarrollo
	if cfg.Blob.Bucket == "" {
		uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Blob.LocalDir)))
		router.Handle("/uploads/*", uploads)
	}

	// Estática del SPA, si está desplegado junto al backend
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); err == nil {
		fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

		router.Handle("/assets/*", fileServer)
		router.Handle("/js/*", fileServer)
		router.Handle("/css/*", fileServer)
		router.Handle("/img/*", fileServer)

		// SPA fallback: cualquier otra ruta → index.html
		router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
			path := filepath.Join(frontendDir, r.URL.Path)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				http.ServeFile(w, r, path)
				return
			}
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		})
	}

	return router
}
