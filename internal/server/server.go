// Package server hosts the ledger engine behind an HTTP API. It plays the
// part of the transaction runtime: it sequences incoming operations, carries
// value in and out as request amounts, and supplies the caller identity.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/coffer-dev/coffer/internal/config"
	"github.com/coffer-dev/coffer/internal/ledger"
	"github.com/coffer-dev/coffer/internal/notify"
)

// Server bundles the engine and its HTTP surface.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New assembles a ledger from cfg and wires it behind a router. Outbound
// payments and the repayment notification go to the logger.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	led := ledger.New(
		ledger.Config{
			FixedDepositRate: cfg.Ledger.FixedDepositRate,
			LoanRate:         cfg.Ledger.LoanRate,
		},
		NewLogPayer(logger, cfg.Ledger.DecimalPlaces),
		notify.NewLog(logger),
	)
	h := NewHandler(led, cfg.Ledger.DecimalPlaces)

	return &Server{
		http: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           NewRouter(h, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
