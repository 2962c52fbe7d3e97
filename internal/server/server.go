// Package server exposes the card authoring API over HTTP.
//
// All routes live under /api and speak JSON, except the two SVG routes
// (card preview and print sheet) and the /uploads static file tree.
// Errors are written as {code, message, field?, existingGameId?} with the
// status derived from the error code.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cardpress/pkg/ai"
	"github.com/matzehuels/cardpress/pkg/storage"
	"github.com/matzehuels/cardpress/pkg/upload"
)

// Server wires storage, uploads and the AI client into an HTTP handler.
type Server struct {
	store   storage.Store
	uploads *upload.Store
	ai      *ai.Client
	logger  *log.Logger
}

// New creates a Server. The AI client may be nil when no key is configured;
// the AI routes then answer with an UNSUPPORTED error.
func New(store storage.Store, uploads *upload.Store, aiClient *ai.Client, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, uploads: uploads, ai: aiClient, logger: logger}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		r.Get("/games", s.handleListGames)
		r.Post("/games", s.handleCreateGame)
		r.Get("/games/{id}", s.handleGetGame)
		r.Put("/games/{id}", s.handleUpdateGame)
		r.Delete("/games/{id}", s.handleDeleteGame)
		r.Get("/games/{id}/cards", s.handleListCards)
		r.Post("/games/{id}/cards", s.handleCreateCard)
		r.Get("/games/{id}/print.svg", s.handlePrintSheet)

		r.Get("/cards/{id}", s.handleGetCard)
		r.Put("/cards/{id}", s.handleUpdateCard)
		r.Delete("/cards/{id}", s.handleDeleteCard)
		r.Get("/cards/{id}/preview.svg", s.handlePreview)

		r.Post("/upload", s.handleUpload)
		r.Post("/balance/suggest", s.handleSuggestBalance)
		r.Post("/consult", s.handleConsult)
	})

	if s.uploads != nil {
		fs := http.StripPrefix(upload.URLPrefix, http.FileServer(http.Dir(s.uploads.Dir())))
		r.Get(upload.URLPrefix+"*", fs.ServeHTTP)
	}

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// accessLog logs one line per request with method, path, status and timing.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	})
}
