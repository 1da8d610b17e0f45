package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dscirocco/cvarchitect/internal/config"
	"github.com/dscirocco/cvarchitect/internal/document"
	"github.com/dscirocco/cvarchitect/internal/llm"
	"github.com/dscirocco/cvarchitect/internal/normalize"
	"github.com/dscirocco/cvarchitect/internal/render"
	"github.com/dscirocco/cvarchitect/internal/server/ratelimit"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	cfg         *config.Config
	store       *document.Store
	llmClient   llm.Client
	tokens      *TokenService
	rateLimiter *ratelimit.Limiter
	renderer    *render.Renderer
	cutoffs     normalize.Cutoffs
	handler     http.Handler
}

// New creates a new server instance.
func New(cfg *config.Config) (*Server, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	llmConfig := llm.DefaultGeminiConfig().WithCandidates(cfg.Models)
	client, err := llm.NewClient(context.Background(), llmConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	return newServer(cfg, client, NewTokenService(jwtConfig)), nil
}

// newServer wires the server from already-constructed dependencies.
func newServer(cfg *config.Config, client llm.Client, tokens *TokenService) *Server {
	cfg = cfg.WithDefaults()
	s := &Server{
		cfg:       cfg,
		store:     document.NewStore(time.Duration(cfg.SessionTTLHours) * time.Hour),
		llmClient: client,
		tokens:    tokens,
		renderer:  &render.Renderer{Timeout: render.DefaultTimeout, Verbose: cfg.Verbose},
		cutoffs: normalize.Cutoffs{
			Skills:         *cfg.SkillsCutoff,
			Certifications: *cfg.CertificationsCutoff,
		},
	}
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.DefaultConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/parse-cv", s.handleParseCV)
	mux.HandleFunc("POST /v1/chat", s.handleChat)
	mux.HandleFunc("GET /v1/templates", s.handleTemplates)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session-scoped document endpoints
	mux.HandleFunc("GET /v1/resume", s.withSession(s.handleGetResume))
	mux.HandleFunc("PUT /v1/resume", s.withSession(s.handleReplaceResume))
	mux.HandleFunc("POST /v1/resume/reorder", s.withSession(s.handleReorder))
	mux.HandleFunc("POST /v1/resume/toggle", s.withSession(s.handleToggle))
	mux.HandleFunc("POST /v1/resume/field", s.withSession(s.handleEditField))
	mux.HandleFunc("GET /v1/resume/preview", s.withSession(s.handlePreview))
	mux.HandleFunc("GET /v1/resume/export/{format}", s.withSession(s.handleExport))

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // extraction and PDF rendering are slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.store.Close()
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d", info.Limit, info.Remaining)
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withSession resolves the Bearer token into an editing session before
// calling the wrapped handler.
func (s *Server) withSession(next func(http.ResponseWriter, *http.Request, *document.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessionFromRequest(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}
		next(w, r, sess)
	}
}

func (s *Server) sessionFromRequest(r *http.Request) (*document.Session, error) {
	token := bearerToken(r)
	if token == "" {
		return nil, fmt.Errorf("missing bearer token")
	}
	sessionID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	return s.store.Get(sessionID)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failure maps an internal error onto the wire.
func (s *Server) failure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[SERVER] %v", err)
	}
	s.errorResponse(w, status, clientMessage(err))
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is ignored
// because the service has no trusted proxy configuration.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}
