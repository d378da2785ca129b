// Package api is the HTTP surface: routing, request middleware and the
// JSON encoding of results and errors.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tibia-api/internal/metrics"
	"tibia-api/internal/tibia"
)

// Service is the behavior the HTTP layer needs from the domain layer.
type Service interface {
	Towns(ctx context.Context) ([]string, error)
	Worlds(ctx context.Context) (*tibia.WorldsOverview, error)
	WorldDetails(ctx context.Context, name string) (*tibia.WorldDetails, error)
	Guilds(ctx context.Context, world string) ([]tibia.Guild, error)
	KillStatistics(ctx context.Context, world string) (*tibia.KillStatistics, error)
	Residences(ctx context.Context, world, town string, rtype *tibia.ResidenceType) ([]tibia.Residence, error)
	Character(ctx context.Context, name string) (*tibia.CharacterInfo, error)
}

// Server routes HTTP requests to a Service.
type Server struct {
	svc    Service
	logger *zap.Logger
	router chi.Router
}

// NewServer builds the router with its middleware chain and routes.
func NewServer(svc Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/towns", s.handleTowns)
		r.Get("/worlds", s.handleWorlds)
		r.Get("/worlds/{name}", s.handleWorldDetails)
		r.Get("/worlds/{name}/guilds", s.handleGuilds)
		r.Get("/worlds/{name}/kill-statistics", s.handleKillStatistics)
		r.Get("/worlds/{name}/residences", s.handleResidences)
		r.Get("/characters/{name}", s.handleCharacter)
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTowns(w http.ResponseWriter, r *http.Request) {
	towns, err := s.svc.Towns(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, towns)
}

func (s *Server) handleWorlds(w http.ResponseWriter, r *http.Request) {
	overview, err := s.svc.Worlds(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleWorldDetails(w http.ResponseWriter, r *http.Request) {
	details, err := s.svc.WorldDetails(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleGuilds(w http.ResponseWriter, r *http.Request) {
	guilds, err := s.svc.Guilds(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guilds)
}

func (s *Server) handleKillStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.KillStatistics(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleResidences(w http.ResponseWriter, r *http.Request) {
	var rtype *tibia.ResidenceType
	if raw := r.URL.Query().Get("type"); raw != "" {
		parsed, err := tibia.ParseResidenceType(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "type must be houses or guildhalls"})
			return
		}
		rtype = &parsed
	}
	town := r.URL.Query().Get("town")

	residences, err := s.svc.Residences(r.Context(), chi.URLParam(r, "name"), town, rtype)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, residences)
}

func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	info, err := s.svc.Character(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tibia.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, tibia.ErrMaintenance):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "tibia.com is currently undergoing maintenance"})
	case errors.Is(err, tibia.ErrUnexpectedContent):
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	default:
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "tibia.com could not be reached"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestID tags every request with an id, honoring one supplied by the
// caller.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

type ctxKey int

const requestIDKey ctxKey = 0

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the id assigned by the middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", RequestID(r.Context())),
		)
	})
}
