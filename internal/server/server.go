package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomoki/misuki/internal/database"
	"github.com/tomoki/misuki/internal/lifecycle"
	"github.com/tomoki/misuki/internal/processor"
	"github.com/tomoki/misuki/internal/prompt"
	"github.com/tomoki/misuki/internal/status"
)

type Server struct {
	db        *database.DB
	resolver  *status.Resolver
	processor *processor.Processor
	events    *lifecycle.Manager
	builder   *prompt.Builder
	localTZ   *time.Location
	httpSrv   *http.Server
	port      int
}

// ServerConfig holds everything the server needs to run
type ServerConfig struct {
	DB        *database.DB
	Resolver  *status.Resolver
	Processor *processor.Processor
	Events    *lifecycle.Manager
	Builder   *prompt.Builder
	LocalTZ   *time.Location
	Port      int
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		db:        cfg.DB,
		resolver:  cfg.Resolver,
		processor: cfg.Processor,
		events:    cfg.Events,
		builder:   cfg.Builder,
		localTZ:   cfg.LocalTZ,
		port:      cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Chat API
	mux.HandleFunc("POST /api/chat/message", s.handleChatMessage)
	mux.HandleFunc("GET /api/context", s.handleGetContext)
	mux.HandleFunc("GET /api/status", s.handleGetStatus)

	// Schedule API (editor save contract)
	mux.HandleFunc("GET /api/schedule", s.handleGetScheduleWeek)
	mux.HandleFunc("GET /api/schedule/{day}", s.handleGetScheduleDay)
	mux.HandleFunc("PUT /api/schedule/{day}", s.handleSaveScheduleDay)

	// Events API
	mux.HandleFunc("GET /api/events", s.handleListEvents)
	mux.HandleFunc("POST /api/events/{id}/complete", s.handleCompleteEvent)
	mux.HandleFunc("POST /api/events/sweep", s.handleSweepEvents)

	// Profile API
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("POST /api/profile", s.handleUpsertProfile)

	// Override API (planning subsystem contract)
	mux.HandleFunc("GET /api/override", s.handleGetOverride)
	mux.HandleFunc("PUT /api/override", s.handleSetOverride)
	mux.HandleFunc("DELETE /api/override", s.handleClearOverride)
}

func (s *Server) Start() error {
	fmt.Printf("Starting HTTP server on http://localhost:%d\n", s.port)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers for the browser schedule editor
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
