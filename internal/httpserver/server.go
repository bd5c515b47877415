// internal/httpserver/server.go
//
// HTTP server wiring for the game.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, access logs, panic recovery,
//     timeouts, JSON content type, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id},
//     GET /game/{id}/share, DELETE /game/{id}.
//   - Daily endpoint: POST /daily/new (mounted from routes_daily.go).
//
// Notes:
//   - Games live in the in-memory store only; idle games and idle rate
//     limiter buckets are swept on a ticker.
//   - Mutating routes are rate limited per client IP.
//   - The secret is only included in responses once a game is finished.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

// Server bundles router, game store, word list and evaluator.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	store   store.Store
	words   *words.List
	eval    *game.Evaluator
	limiter *ipLimiter
	now     func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, list *words.List, st store.Store) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		store:   st,
		words:   list,
		eval:    game.NewEvaluator(cfg.Rules(), list),
		limiter: newIPLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		now:     time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}", "GET /game/{id}/share", "DELETE /game/{id}", "POST /daily/new"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.words.Len(), "length": s.words.Length()})
	})

	// --- game ---
	s.r.With(s.limiter.middleware).Post("/game/new", s.handleNewGame)
	s.r.With(s.limiter.middleware).Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Get("/game/{id}/share", s.handleShare)
	s.r.With(s.limiter.middleware).Delete("/game/{id}", s.handleDeleteGame)

	s.mountDaily(s.r.With(s.limiter.middleware))

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
// Idle games are swept every minute while the server runs.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go s.sweepLoop(ctx, time.Minute)

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) sweepLoop(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

// sweep drops games idle past GameTTL and rate limiter buckets idle past
// limiterIdle.
func (s *Server) sweep(ctx context.Context) {
	now := s.now()
	if n := s.store.Sweep(ctx, now.Add(-s.cfg.GameTTL)); n > 0 {
		log.Info().Int("removed", n).Msg("swept idle games")
	}
	if n := s.limiter.prune(now.Add(-limiterIdle)); n > 0 {
		log.Debug().Int("removed", n).Int("clients", s.limiter.size()).Msg("pruned rate limiters")
	}
}

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
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new. The body may be empty.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID  string `json:"gameId"`
	Letters int    `json:"letters"`
	Guesses int    `json:"guesses"`
}

// handleNewGame creates a game with a random answer unless one is supplied.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body means "random answer".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}

	answer := strings.ToLower(strings.TrimSpace(req.Answer))
	switch {
	case answer == "":
		answer = s.words.RandomElement()
	case utf8.RuneCountInString(answer) != s.cfg.WordLength:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("answer must have %d letters", s.cfg.WordLength)})
		return
	case !s.words.Contains(answer):
		// Guesses must be in the list, so an unknown answer could never be hit.
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown_answer"})
		return
	}
	if answer == "" {
		hlog.FromRequest(r).Error().Msg("word list is empty")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no_words"})
		return
	}

	g, err := s.startGame(r.Context(), answer)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "save_failed"})
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Letters: s.cfg.WordLength, Guesses: s.cfg.MaxGuesses})
}

func (s *Server) startGame(ctx context.Context, answer string) (*game.Game, error) {
	g := game.New(answer, s.eval)
	if err := s.store.Save(ctx, g); err != nil {
		log.Error().Err(err).Msg("save game")
		return nil, err
	}
	log.Debug().Str("gameId", g.ID).Str("answer", g.Secret).Msg("game started")
	return g, nil
}

// guessReq payload for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// gameRes describes a game after a guess or on lookup.
type gameRes struct {
	GameID    string         `json:"gameId"`
	Verdicts  []game.Verdict `json:"verdicts,omitempty"`
	Outcome   game.Outcome   `json:"outcome,omitempty"`
	State     game.State     `json:"state"`
	Row       int            `json:"row"`
	Remaining int            `json:"remaining"`
	Guesses   []string       `json:"guesses"`
	Results   []game.Result  `json:"results"`
	Answer    string         `json:"answer,omitempty"` // only once finished
}

func snapshot(g *game.Game) gameRes {
	res := gameRes{
		GameID:    g.ID,
		State:     g.State,
		Row:       g.Row(),
		Remaining: g.Remaining(),
		Guesses:   slices.Clone(g.Guesses),
		Results:   slices.Clone(g.Results),
	}
	if g.Finished() {
		res.Answer = g.Reveal()
	}
	return res
}

// handleGuess applies a guess to a stored game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}

	var (
		result game.Result
		out    gameRes
	)
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		res, err := g.Submit(req.Guess)
		result = res
		out = snapshot(g)
		return err
	})

	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
	case errors.Is(err, game.ErrFinished):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, game.ErrWrongLength), errors.Is(err, game.ErrInvalidWord):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "outcome": string(result.Outcome)})
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("submit guess")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
	default:
		out.Verdicts = result.Verdicts
		out.Outcome = result.Outcome
		writeJSON(w, http.StatusOK, out)
	}
}

// handleGetGame returns the current state of a game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, snapshot(g))
}

// handleShare returns the emoji grid for a finished game.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	if !g.Finished() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "game in progress"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"share": g.Share()})
}

// handleDeleteGame abandons a game. Unknown IDs also get 204.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("delete game")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
