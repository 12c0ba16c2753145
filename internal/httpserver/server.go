package httpserver

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/punchline/internal/model"
)

// StatsReader is the narrow store contract required by the HTTP API.
type StatsReader interface {
	Load() model.Stats
}

// Server is the local companion API. It serves the persisted stats so other
// tools can read them without going through the TUI or the network.
type Server struct {
	addr      string
	store     StatsReader
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new companion API server.
func NewServer(addr string, store StatsReader) *Server {
	if addr == "" {
		addr = model.DefaultCompanionAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		store:     store,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// Handler returns the routed gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/stats", s.handleStats)
	return r
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.addr = listener.Addr().String()
	s.startTime = time.Now()

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("companion API: serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string { return s.addr }

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	stats := s.store.Load()
	c.JSON(http.StatusOK, gin.H{
		"jokeCount":      stats.JokeCount,
		"categoriesSeen": stats.Categories(),
		"categoryCount":  stats.CategoryCount(),
	})
}

// Register starts the companion API in the background. It is best-effort:
// a failure is logged and otherwise ignored. The returned func stops the
// server and is safe to call even when registration failed.
func Register(addr string, store StatsReader) (stop func()) {
	srv := NewServer(addr, store)
	started := make(chan bool, 1)
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("companion API registration failed: %v", err)
			started <- false
			return
		}
		log.Printf("companion API listening on %s", srv.Addr())
		started <- true
	}()
	return func() {
		if ok := <-started; ok {
			_ = srv.Stop()
		}
	}
}
