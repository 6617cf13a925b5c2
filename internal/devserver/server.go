// Package devserver serves the to-do collection contract from memory so the
// client can be tried without a real backend.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

// DefaultBasePath matches the client's default collection URL.
const DefaultBasePath = "/api/Todo"

type Config struct {
	Addr     string
	BasePath string
	// Token, when set, is required as a bearer token on every request.
	Token string
	Seed  []model.Item
}

type Server struct {
	cfg   Config
	store *memStore
	log   *log.Logger
}

func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.BasePath = "/" + strings.Trim(cfg.BasePath, "/")
	if cfg.BasePath == "/" {
		cfg.BasePath = DefaultBasePath
	}
	return &Server{cfg: cfg, store: newMemStore(cfg.Seed), log: logger}
}

// Handler returns the HTTP routes for the collection.
func (s *Server) Handler() http.Handler {
	base := s.cfg.BasePath
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+base, s.handleList)
	mux.HandleFunc("POST "+base, s.handleCreate)
	mux.HandleFunc("PUT "+base+"/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE "+base+"/{id}", s.handleDelete)
	return s.withAuth(s.withLog(mux))
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("serving", "addr", ln.Addr().String(), "base", s.cfg.BasePath)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.list())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.NewItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	it := s.store.create(title)
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var in model.Item
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	id := r.PathValue("id")
	if !in.ID.IsZero() && in.ID.String() != id {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}
	it, ok := s.store.update(id, in)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.remove(r.PathValue("id")) {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) withAuth(next http.Handler) http.Handler {
	if s.cfg.Token == "" {
		return next
	}
	want := "Bearer " + s.cfg.Token
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != want {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "status", rec.code, "took", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
