// Package server is the HTTP surface: one page, one dataset, one chart
// per render.
package server

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/radoslav1992/data-visualization-app/dataset"
)

// MaxUploadSize bounds the uploaded file size.
const MaxUploadSize = 32 * 1024 * 1024 // 32MB

// Server holds the single current dataset. Uploading a new file
// replaces it wholesale; every render recomputes from it.
type Server struct {
	mu sync.RWMutex
	ds *dataset.Dataset
}

// New creates a Server with no dataset loaded.
func New() *Server {
	return &Server{}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Post("/upload", s.handleUpload)
	r.Post("/chart", s.handleChart)
	r.Get("/columns", s.handleColumns)
	r.Get("/preview", s.handlePreview)

	return r
}

// current returns the loaded dataset, or nil before the first upload.
func (s *Server) current() *dataset.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// replace installs a freshly loaded dataset.
func (s *Server) replace(ds *dataset.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds
}
