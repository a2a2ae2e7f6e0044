package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/amterp/swatch/internal/log"
	"go.uber.org/zap"
)

// Server wraps the HTTP server for remote picker hosts.
type Server struct {
	httpServer *http.Server
	watcher    *FileWatcher
	wsHub      *WebSocketHub
}

// NewServer creates a server for ctx listening on port. If the palette
// directory can't be watched, live reload is disabled.
func NewServer(ctx *Context, port int) *Server {
	mux := http.NewServeMux()
	handler := NewHandler(ctx)
	handler.RegisterRoutes(mux)

	wsHub := NewWebSocketHub(ctx.PaletteService, SessionOptions{
		Palette: ctx.Config.GetDefaultType(),
		Label:   ctx.Config.GetLabel(),
		RTL:     ctx.RTL,
	})
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)

	watcher, err := NewFileWatcher(ctx.Paths.Root())
	if err != nil {
		log.Warn("failed to create file watcher", zap.Error(err))
		watcher = nil
	} else {
		watcher.Subscribe(wsHub)
	}

	wrapped := Logging(Cors(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Warn("failed to start file watcher", zap.Error(err))
		}
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
