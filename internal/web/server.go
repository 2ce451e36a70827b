// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web is the HTTP front-end: search, recent papers, paper details,
// and the per-visitor reading history and favorites kept in a signed cookie.
package web

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-explorer/internal/search"
	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

const (
	sessionName     = "arxiv_explorer"
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Papers is the retrieval surface the handlers need beyond the Searcher.
type Papers interface {
	ByIdentifier(ctx context.Context, id string) (types.Paper, bool, error)
	Recent(query string, windowDays, limit int) search.Sequence
}

var _ Papers = (*search.Client)(nil)

// Server wires the handlers to a gin engine.
type Server struct {
	searcher   *search.Searcher
	papers     Papers
	cfg        types.ServerConfig
	maxResults int
	sessionKey []byte
	logger     *zap.Logger
	server     *http.Server
}

// NewServer creates a server. sessionKey signs the session cookie.
func NewServer(searcher *search.Searcher, papers Papers, cfg types.ServerConfig, maxResults int, sessionKey []byte, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = types.DefaultHistorySize
	}
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}
	if len(sessionKey) == 0 {
		// Sessions then last only as long as the process.
		sessionKey = make([]byte, 32)
		_, _ = rand.Read(sessionKey)
		logger.Warn("no session key configured, using a random one")
	}
	return &Server{
		searcher:   searcher,
		papers:     papers,
		cfg:        cfg,
		maxResults: maxResults,
		sessionKey: sessionKey,
		logger:     logger,
	}
}

// Router builds the gin engine with all routes configured.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestID())
	r.Use(s.accessLog())
	r.Use(gin.Recovery())

	store := cookie.NewStore(s.sessionKey)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/", s.handleHome)
	r.GET("/search", s.handleSearch)
	r.GET("/recent", s.handleRecent)
	r.GET("/paper/*id", s.handlePaper)
	r.GET("/favorites", s.handleListFavorites)
	r.POST("/favorites", s.handleAddFavorite)
	r.DELETE("/favorites/*id", s.handleRemoveFavorite)
	r.GET("/health", s.handleHealth)

	return r
}

// Start listens on cfg.Addr and blocks until ctx is cancelled or the server
// fails. Cancelling ctx shuts the server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.cfg.Addr))
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down server")
		return s.server.Shutdown(shutdownCtx)
	}
}

// requestID tags every request with an id, reusing the caller's when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String(requestIDKey, c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		s.logger.Info("request", fields...)
	}
}
