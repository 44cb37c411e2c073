// Package server is the browser front end: it serves one page and runs a private
// game session per websocket connection.
package server

import (
	"bufio"
	"context"
	"embed"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/wordlink/internal/game"
	"github.com/idilsaglam/wordlink/internal/words"
)

//go:embed web
var webFS embed.FS

// Config is what the server needs to start sessions.
type Config struct {
	Addr string
	Pool *words.Pool
	Game game.Options // Rand is ignored; every session seeds its own
}

// Server represents the HTTP server
type Server struct {
	server   *http.Server
	cfg      Config
	clock    clockwork.Clock
	logger   zerolog.Logger
	upgrader websocket.Upgrader
	webFS    fs.FS

	ctx      context.Context
	cancel   context.CancelFunc
	sessions sync.WaitGroup
}

// New creates a new HTTP server
func New(cfg Config, logger zerolog.Logger) *Server {
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		logger.Error().Err(err).Msg("failed to get web subdirectory")
	}

	clock := cfg.Game.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:    cfg,
		clock:  clock,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		webFS:  webContent,
		ctx:    ctx,
		cancel: cancel,
	}

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/words", s.handleWords)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.logRequests(mux))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.statusCode).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// handleWS upgrades the connection and runs a fresh session until the peer leaves.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.sessions.Add(1)
	defer s.sessions.Done()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := uuid.NewString()
	logger := s.logger.With().Str("session", id).Logger()

	opts := s.cfg.Game
	opts.Rand = nil
	opts.Clock = s.clock
	opts.Logger = logger
	ctrl := game.New(s.cfg.Pool, opts)

	client := NewClient(conn, s.clock, logger)
	session := NewSession(id, ctrl, s.clock, client, logger)
	client.Bind(session)

	ctx, cancel := context.WithCancel(s.ctx)
	go session.Run(ctx)
	go func() {
		<-session.Done()
		client.Close()
	}()

	logger.Info().Str("remote", r.RemoteAddr).Msg("session started")
	client.Run()

	// the session goroutine owns ctrl until Done
	cancel()
	<-session.Done()
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

// Shutdown stops every session, waits for their handlers and gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("server shutting down")
	s.cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker for WebSocket support
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Flush implements http.Flusher
func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
