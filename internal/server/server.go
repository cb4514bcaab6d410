package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peapod-fundraiser/site/internal/site"
	"github.com/peapod-fundraiser/site/internal/source"
)

// Config holds server configuration.
type Config struct {
	Port       int
	StaticDir  string   // directory holding the site's static files
	AllowAll   bool     // allow all CORS origins
	NamedPages []string // extra pages served at /<name> from <name>.html
	Hidden     []string // glob patterns never served from StaticDir
	SiteName   string
}

// Loader resolves the catalog for one page view.
type Loader interface {
	Load(ctx context.Context) (*source.Result, error)
}

// Server is the fundraiser site server.
type Server struct {
	cfg        Config
	loader     Loader
	pages      *site.Pages
	logger     *zap.Logger
	instance   string
	now        func() time.Time
	router     chi.Router
	httpServer *http.Server
}

// New creates a new site server. The catalog is resolved through loader on
// every page view.
func New(cfg Config, loader Loader, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pages, err := site.New(cfg.SiteName)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		loader:   loader,
		pages:    pages,
		logger:   logger,
		instance: uuid.NewString(),
		now:      time.Now,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(recoverer(s.logger))
	r.Use(middleware.GetHead)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/", s.handleHome)
	r.Get("/auction", s.handleAuction)
	for _, name := range s.cfg.NamedPages {
		r.Get("/"+name, s.handleNamedPage(name))
	}

	r.Get("/health", s.handleHealth)
	r.Get("/events.ics", s.handleCalendar)
	r.Get("/api/catalog", s.handleCatalog)

	// Everything else is a static file or falls back to the home page.
	r.NotFound(s.handleStatic)
	r.MethodNotAllowed(s.handleStatic)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("fundraiser site listening",
		zap.String("addr", s.httpServer.Addr),
		zap.String("url", fmt.Sprintf("http://localhost:%d", s.cfg.Port)),
		zap.String("static_dir", s.cfg.StaticDir),
	)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
