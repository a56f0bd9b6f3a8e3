// Package api exposes a block diagram model over HTTP.
//
// The API is a thin JSON layer over [model.Model]: one model instance,
// one mutex. Every handler takes the lock for the duration of the
// request, so the single-writer discipline of the model is preserved
// without pushing locking into the model itself. Payloads use the same
// field names as the snapshot file format, so a GET /model response is
// a valid snapshot file and vice versa.
package api

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blockforge/blockforge/pkg/model"
)

// Server serializes access to a single model behind an HTTP API.
type Server struct {
	mu     sync.Mutex
	model  *model.Model
	logger *log.Logger
}

// New creates a server around m. The logger may be nil for silent
// operation.
func New(m *model.Model, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{model: m, logger: logger}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/model", s.getModel)
	r.Put("/model", s.putModel)

	r.Post("/blocks", s.createBlock)
	r.Route("/blocks/{id}", func(r chi.Router) {
		r.Delete("/", s.deleteBlock)
		r.Post("/move", s.moveBlock)
		r.Post("/resize", s.resizeBlock)
		r.Post("/layout", s.layoutBlock)
		r.Post("/ports", s.createPort)
		r.Delete("/ports/{portID}", s.deletePort)
	})

	r.Post("/connections", s.createConnection)
	r.Delete("/connections/{id}", s.deleteConnection)

	r.Get("/hit", s.hitTest)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
