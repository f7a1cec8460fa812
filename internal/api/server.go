package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kotonoha-lab/talklog/internal/config"
	"github.com/kotonoha-lab/talklog/internal/sentiment"
	"github.com/kotonoha-lab/talklog/internal/store"
)

type Server struct {
	router     *chi.Mux
	cfg        config.Config
	store      *store.Store
	classifier *sentiment.Classifier
}

func NewServer(cfg config.Config, st *store.Store, clf *sentiment.Classifier) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:     router,
		cfg:        cfg,
		store:      st,
		classifier: clf,
	}

	router.Get("/health", s.health)
	router.Route("/api/v1/conversations", func(r chi.Router) {
		r.Post("/", s.upload)
		r.Get("/current", s.current)
		r.Get("/current/messages", s.messages)
		r.Get("/current/analysis", s.analyze)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}
