// internal/httpserver/server.go
//
// HTTP server wiring for the bowling scorer.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/" (form page), "/health", "/examples", "/metrics".
//   - Scoring endpoint: POST /score (JSON line in, ten cumulative frames out).
//
// Notes:
//   - Every request builds its own game; nothing is shared between requests
//     except the read-only example list and the metrics registry.
//   - Core errors (parse / range / scoring) are returned verbatim as 422.

package httpserver

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bowling/assets"
	"github.com/robalobadob/bowling/internal/config"
	"github.com/robalobadob/bowling/internal/examples"
	"github.com/robalobadob/bowling/internal/scorecard"
)

// Server bundles the router, the hint list and metrics.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	examples []examples.Example
	metrics  *metrics
	form     *template.Template
}

// New constructs a Server, installs middleware, and registers routes.
// Metrics are registered on reg; pass a fresh registry per server.
func New(cfg config.Config, ex []examples.Example, reg *prometheus.Registry) (*Server, error) {
	raw, err := assets.FormTemplate()
	if err != nil {
		return nil, err
	}
	form, err := template.New("form").Parse(raw)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	s := &Server{r: chi.NewRouter(), cfg: cfg, examples: ex, metrics: m, form: form}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                   // add X-Request-ID
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// --- scoring ---
	s.r.Get("/examples", s.handleExamples)
	s.r.Post("/score", s.handleScore)
	s.mountForm(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Start begins serving HTTP on the configured address.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ SCORING ------------------------------------

// scoreReq is the payload for POST /score.
type scoreReq struct {
	Line string `json:"line"`
}

// errorRes is the body of every non-2xx JSON response from the scoring routes.
type errorRes struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"` // "parse" | "range" | "scoring"
}

// handleScore parses the line, scores a fresh game and returns the table.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r)
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if isTooLarge(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorRes{Error: "body_too_large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorRes{Error: "bad_json"})
		return
	}
	req.Line = strings.TrimSpace(req.Line)
	if len(req.Line) > s.cfg.MaxLineLength {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorRes{Error: "line_too_long"})
		return
	}

	res, err := s.score(r, req.Line)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorRes{Error: err.Error(), Kind: scorecard.Kind(err)})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// score runs scorecard.Compute and records the outcome.
func (s *Server) score(r *http.Request, line string) (scorecard.Result, error) {
	res, err := scorecard.Compute(line)
	if err != nil {
		s.metrics.observeError(err)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("gameId", res.GameID).
			Str("line", line).
			Err(err).
			Msg("rejected line")
		return scorecard.Result{}, err
	}
	s.metrics.observeTotal(res.Total)
	log.Debug().
		Str("requestId", chimw.GetReqID(r.Context())).
		Str("gameId", res.GameID).
		Int("total", res.Total).
		Msg("scored line")
	return res, nil
}

// handleExamples lists the hint lines.
func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.examples)
}

// ------------------------------- small util --------------------------------

// limitBody caps r.Body at what an escaped MaxLineLength line plus envelope can need.
func (s *Server) limitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxLineLength)*6+1024)
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
