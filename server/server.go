package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bluele/gcache"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/stat"
)

// Catalogue is the read side the server needs
type Catalogue interface {
	stat.Source
	StopCount() int
	BusCount() int
	StopNames() []string
	BusNames() []string
}

// Server serves stat queries for one catalogue
type Server struct {
	cat         Catalogue
	cfg         config.ServerConfig
	catalogueID uuid.UUID
	startedAt   time.Time
	requests    atomic.Int64
	answers     gcache.Cache // nil when caching is disabled
	httpServer  *http.Server
}

// New creates a server for a fully built catalogue
func New(cat Catalogue, cfg config.ServerConfig) *Server {
	s := &Server{
		cat:         cat,
		cfg:         cfg,
		catalogueID: uuid.New(),
		startedAt:   time.Now().UTC(),
	}
	if cfg.AnswerCacheSize > 0 {
		s.answers = gcache.New(cfg.AnswerCacheSize).LRU().Build()
	}
	return s
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	if len(s.cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	}

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/buses", s.handleBusList)
	r.Get("/api/buses/{name}", s.handleBus)
	r.Get("/api/stops", s.handleStopList)
	r.Get("/api/stops/{name}", s.handleStop)
	return r
}

// Start begins listening in the background
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			glog.Fatalf("server error: %v", err)
		}
	}()
	glog.Infof("server listening on %s (catalogue %s, %d stops, %d buses)", addr, s.catalogueID, s.cat.StopCount(), s.cat.BusCount())
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		glog.Errorf("server shutdown error: %v", err)
		return err
	}
	glog.Infof("server shut down successfully")
	return nil
}

// ShutdownTimeout is the configured grace period
func (s *Server) ShutdownTimeout() time.Duration {
	return time.Duration(s.cfg.ShutdownTimeoutMS) * time.Millisecond
}
