// Package dash serves the report API: derived aggregates over the polled
// transaction snapshot, one report window per request.
package dash

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ledger/internal/log"
	"ledger/internal/snapshot"
)

type Server struct {
	http.Server
	store  *snapshot.Store
	logger *log.Logger
}

func NewServer(addr string, store *snapshot.Store, logger *log.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger.WithComponent(log.ComponentDashboard),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(log.RequestLogger(s.logger))
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/report", s.handleReport)
		r.Get("/report/ledger", s.handleLedger)
		r.Get("/status", s.handleStatus)
	})

	s.Server = http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}
