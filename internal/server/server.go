// Package server provides the HTTP REST API for the resume extractor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/anton/hh-resume-extractor/internal/db"
	"github.com/anton/hh-resume-extractor/internal/fetch"
	"github.com/anton/hh-resume-extractor/internal/hh"
)

// ResumeExtractor runs the extraction pipeline for one URL.
type ResumeExtractor interface {
	ExtractResume(ctx context.Context, url string) (hh.ResumeRecord, error)
}

// Store persists extracted records keyed by chat user.
type Store interface {
	SaveResume(ctx context.Context, telegramID int64, resumeURL string, record any) (uuid.UUID, error)
	GetResume(ctx context.Context, telegramID int64) (*db.Client, error)
	ListClients(ctx context.Context, limit int) ([]db.Client, error)
	DeleteClient(ctx context.Context, telegramID int64) error
	Ping(ctx context.Context) error
	Close()
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      Store
	extractor  ResumeExtractor
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	FetchOpts   *fetch.Options
	UseBrowser  bool
}

// New creates a new server instance, connecting to the database and
// preparing its schema.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	opts := []hh.Option{}
	if cfg.FetchOpts != nil {
		opts = append(opts, hh.WithFetchOptions(cfg.FetchOpts))
	}
	if cfg.UseBrowser {
		opts = append(opts, hh.WithBrowser())
	}

	s := &Server{
		store:     database,
		extractor: hh.New(opts...),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /resumes", s.handleLinkResume)
	mux.HandleFunc("GET /resumes", s.handleListClients)
	mux.HandleFunc("GET /resumes/{telegram_id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resumes/{telegram_id}", s.handleDeleteResume)
	mux.HandleFunc("POST /extract", s.handleExtract)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // extraction waits on the upstream fetch
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
