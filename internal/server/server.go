package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/nextset/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    *service.Service
	log    *slog.Logger
	apiKey string
	whois  WhoIsFunc
	router chi.Router
}

// New creates a new Server with all routes configured. whois may be nil;
// identity endpoints then report the development identity.
func New(svc *service.Service, apiKey string, whois WhoIsFunc, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		log:    log,
		apiKey: apiKey,
		whois:  whois,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(TailscaleIdentity(s.whois))

	// Write endpoints (API key required)
	s.router.Route("/api/v1/sets", func(r chi.Router) {
		r.Get("/", s.handleQuerySets)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/", s.handleLogSet)
			r.Post("/batch", s.handleImportSets)
			r.Delete("/{id}", s.handleDeleteSet)
		})
	})

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/today", s.handleToday)
	s.router.Get("/api/v1/history", s.handleHistory)
	s.router.Get("/api/v1/suggestions", s.handleSuggestions)
	s.router.Get("/api/v1/stats/progression", s.handleProgression)
	s.router.Get("/api/v1/records", s.handleRecord)
	s.router.Get("/api/v1/warmup", s.handleWarmup)
	s.router.Get("/api/v1/programs", s.handlePrograms)
	s.router.Get("/api/v1/exercises", s.handleExercises)
	s.router.Get("/api/v1/me", s.handleMe)
}

// MountMCP attaches the MCP HTTP transport under /mcp.
func (s *Server) MountMCP(handler http.Handler) {
	s.router.Mount("/mcp", handler)
}
