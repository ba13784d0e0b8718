package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a chi router with all gateway endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// a /search request chains two LLM calls plus the search itself
	r.Use(middleware.Timeout(120 * time.Second))

	// basic cors
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestTimeHeader},
	}))

	r.Get("/health", h.Health)
	r.Get("/sites", h.Sites)
	r.Post("/search", h.Search)

	return r
}
