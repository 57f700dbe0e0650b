package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the handler behind request ids, panic recovery and CORS
// for origins.
func NewRouter(handler *Handler, origins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	RegisterRoutes(r, handler)
	return r
}

func RegisterRoutes(r chi.Router, handler *Handler) {
	r.Get("/health", handler.HandleHealth)
	r.Post("/analyze", handler.HandleAnalyze)
	r.Post("/documents/{id}/analyze", handler.HandleDocumentAnalyze)
}
