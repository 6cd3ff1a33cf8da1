package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/rolecolor/internal/llm"
	"github.com/jonathan/rolecolor/internal/scoring"
	"github.com/jonathan/rolecolor/internal/taxonomy"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

// Config holds server configuration
type Config struct {
	Port         int
	APIKey       string
	DefaultTitle string
	Taxonomy     *taxonomy.Taxonomy
	LLM          *llm.Config
}

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	scorer       *scoring.Scorer
	validate     *validator.Validate
	apiKey       string
	defaultTitle string
	llmConfig    *llm.Config
}

// New creates a new server instance
func New(cfg Config) *Server {
	if cfg.DefaultTitle == "" {
		cfg.DefaultTitle = "Engineer"
	}
	if cfg.LLM == nil {
		cfg.LLM = llm.DefaultConfig()
	}

	s := &Server{
		scorer:       scoring.NewScorer(cfg.Taxonomy),
		validate:     validator.New(),
		apiKey:       cfg.APIKey,
		defaultTitle: cfg.DefaultTitle,
		llmConfig:    cfg.LLM,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /rewrite", s.handleRewrite)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the server and blocks until the context is canceled or a
// SIGINT/SIGTERM arrives, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
