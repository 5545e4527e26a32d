// Package httpapi exposes the store service as a JSON API. Read routes are
// public; mutation routes require an admin token signed with the key derived
// from the configured admin fingerprint.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gamefolio/internal/cryptox"
	"github.com/dmitrijs2005/gamefolio/internal/logging"
	"github.com/dmitrijs2005/gamefolio/internal/server/services"
)

type Server struct {
	address    string
	content    *services.ContentService
	images     *services.ImageService
	logger     logging.Logger
	signingKey []byte
}

func NewServer(a string, l logging.Logger, cs *services.ContentService, is *services.ImageService, adminFingerprint string) *Server {
	return &Server{
		address:    a,
		logger:     l.With("module", "httpapi"),
		content:    cs,
		images:     is,
		signingKey: cryptox.DeriveSigningKey(adminFingerprint),
	}
}

// Routes builds the API mux. Split out from Run so tests can drive the
// handlers through httptest without binding a port.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/ping", s.handlePing)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("POST /api/games", s.requireAdmin(s.handleInsertGame))
	mux.HandleFunc("PUT /api/games/{id}", s.requireAdmin(s.handleUpdateGame))
	mux.HandleFunc("DELETE /api/games/{id}", s.requireAdmin(s.handleDeleteGame))
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /api/profile", s.requireAdmin(s.handlePutProfile))
	mux.HandleFunc("DELETE /api/profile", s.requireAdmin(s.handleDeleteProfile))
	mux.HandleFunc("POST /api/images/presign", s.requireAdmin(s.handlePresignImage))

	return mux
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
