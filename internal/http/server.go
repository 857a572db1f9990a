// Package http serves the transaction supply API: the full snapshot feed,
// transaction creation from the ingest side, and the administrative reset.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ledger/internal/core"
	"ledger/internal/log"
)

// TransactionStore is the persistence surface the API needs. Both the SQLite
// and the memory repository satisfy it.
type TransactionStore interface {
	ListTransactions(ctx context.Context) ([]core.Transaction, error)
	CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error)
	ResetTransactions(ctx context.Context) (int64, error)
}

type Server struct {
	http.Server
	store  TransactionStore
	logger *log.Logger
}

// NewServer configures routes and middleware, returning a ready-to-run
// server. CORS is open to any origin; the dashboards are served elsewhere.
func NewServer(addr string, store TransactionStore, logger *log.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger.WithComponent(log.ComponentAPI),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(log.RequestLogger(s.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealth)
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", s.handleListTransactions)
		r.Post("/", s.handleCreateTransaction)
		r.Delete("/reset", s.handleReset)
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
