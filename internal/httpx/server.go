// path: internal/httpx/server.go
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"rush_hour_poc/internal/game"
)

// Server exposes the solver over a JSON API and a websocket replay stream.
type Server struct {
	log      *logrus.Logger
	opts     Options
	upgrader websocket.Upgrader

	levelsOnce sync.Once
	levels     []game.LevelResult
	levelsErr  error

	srvMu sync.Mutex
	srv   *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"

	DefaultMaxSize   = 8
	DefaultMaxStates = 500_000
)

var errPuzzleTooLarge = errors.New("puzzle too large")

// Options bound the work a single request can cause.
type Options struct {
	// Workers bounds the goroutines used to solve the level catalog; zero
	// means one per CPU.
	Workers int
	// MaxSize is the largest accepted grid side. Zero means DefaultMaxSize.
	MaxSize int
	// MaxStates caps the configurations one search may discover. Zero means
	// DefaultMaxStates.
	MaxStates int
	// AllowedOrigins lists extra origins, besides the server's own host,
	// that may open the replay websocket.
	AllowedOrigins []string
}

func NewServer(log *logrus.Logger, opts Options) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.MaxStates <= 0 {
		opts.MaxStates = DefaultMaxStates
	}
	s := &Server{log: log, opts: opts}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.log.WithField("addr", addr).Info("HTTP listening")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Handler returns the routed handler, for embedding or tests.
func (s *Server) Handler() http.Handler { return s.routes() }

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(s.withJSON)
		r.Post("/solve", s.handleSolve)
		r.Post("/check", s.handleCheck)
		r.Get("/levels", s.handleLevels)
		r.Get("/levels/{id}", s.handleLevel)
	})

	r.Get("/ws/replay", s.handleReplay)
	return r
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"elapsed":    time.Since(start),
			}).Debug("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ---- JSON helpers ----

func (s *Server) withJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("X-Content-Type-Options", "nosniff")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// decodeBody decodes a JSON request body and writes the matching error
// response when it fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// ---- DTOs ----

type moveDTO struct {
	Piece    string `json:"piece"`
	Index    int    `json:"index"`
	Delta    int    `json:"delta"`
	Notation string `json:"notation"`
}

type solveResponse struct {
	Solved     bool      `json:"solved"`
	NumMoves   int       `json:"numMoves"`
	Moves      []moveDTO `json:"moves"`
	Summary    string    `json:"summary"`
	Explored   int       `json:"explored"`
	Discovered int       `json:"discovered"`
	Board      []string  `json:"board"`
	ElapsedMs  float64   `json:"elapsedMs"`
}

func movesToDTO(b *game.Board, moves []game.Move) []moveDTO {
	out := make([]moveDTO, 0, len(moves))
	for _, m := range moves {
		out = append(out, moveDTO{
			Piece:    string(rune(b.Piece(m.Piece).ID)),
			Index:    m.Piece,
			Delta:    m.Delta,
			Notation: game.MoveNotation(b, m),
		})
	}
	return out
}

func boardRows(b *game.Board) []string {
	grid := b.Grid()
	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}

// parsePuzzle parses a client puzzle, rejecting grids wider than MaxSize
// before any work is done on them.
func (s *Server) parsePuzzle(raw string) (*game.Board, error) {
	raw = strings.TrimSpace(raw)
	if side := s.opts.MaxSize; len(raw) > side*side {
		return nil, fmt.Errorf("%w: at most %dx%d cells are accepted", errPuzzleTooLarge, side, side)
	}
	return game.Parse(raw)
}

// search runs a bounded solve and logs its outcome.
func (s *Server) search(b *game.Board) (game.Solution, time.Duration, error) {
	start := time.Now()
	sol, err := game.SolveBounded(b, s.opts.MaxStates)
	elapsed := time.Since(start)

	entry := s.log.WithFields(logrus.Fields{
		"puzzle":     b.Encode(),
		"solved":     sol.Solved,
		"moves":      len(sol.Moves),
		"explored":   sol.Explored,
		"discovered": sol.Discovered,
		"elapsed":    elapsed,
	})
	if err != nil {
		entry.WithError(err).Warn("solve aborted")
		return sol, elapsed, err
	}
	entry.Info("solve")
	return sol, elapsed, nil
}

// writeSearchError maps a failed search to its response.
func writeSearchError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusUnprocessableEntity, err.Error())
}

func (s *Server) solve(b *game.Board) (solveResponse, error) {
	sol, elapsed, err := s.search(b)
	if err != nil {
		return solveResponse{}, err
	}
	return solveResponse{
		Solved:     sol.Solved,
		NumMoves:   len(sol.Moves),
		Moves:      movesToDTO(b, sol.Moves),
		Summary:    game.FormatSolution(b, sol),
		Explored:   sol.Explored,
		Discovered: sol.Discovered,
		Board:      boardRows(b),
		ElapsedMs:  float64(elapsed.Microseconds()) / 1000,
	}, nil
}

// ---- API: solve ----

type solveBody struct {
	Puzzle string `json:"puzzle"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var body solveBody
	if !decodeBody(w, r, &body) {
		return
	}
	b, err := s.parsePuzzle(body.Puzzle)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := s.solve(b)
	if err != nil {
		writeSearchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- API: check ----

type checkBody struct {
	Puzzle string   `json:"puzzle"`
	Moves  []string `json:"moves"`
}

type checkResponse struct {
	Valid        bool   `json:"valid"`
	Solved       bool   `json:"solved"`
	PlayerMoves  int    `json:"playerMoves"`
	MinimalMoves int    `json:"minimalMoves"`
	Solvable     bool   `json:"solvable"`
	Optimal      bool   `json:"optimal"`
	Error        string `json:"error,omitempty"`
}

// handleCheck plays a proposed move list and compares it with the minimum.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var body checkBody
	if !decodeBody(w, r, &body) {
		return
	}
	b, err := s.parsePuzzle(body.Puzzle)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	moves := make([]game.Move, 0, len(body.Moves))
	for _, raw := range body.Moves {
		m, err := game.ParseMove(b, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		moves = append(moves, m)
	}

	sol, _, err := s.search(b)
	if err != nil {
		writeSearchError(w, err)
		return
	}
	resp := checkResponse{
		PlayerMoves:  len(moves),
		MinimalMoves: len(sol.Moves),
		Solvable:     sol.Solved,
	}
	frames, err := game.Replay(b, moves)
	if err != nil {
		resp.Error = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Valid = true
	resp.Solved = frames[len(frames)-1].Solved
	resp.Optimal = resp.Solved && len(moves) == len(sol.Moves)
	writeJSON(w, http.StatusOK, resp)
}

// ---- API: levels ----

type levelDTO struct {
	ID           string `json:"id"`
	Desc         string `json:"desc"`
	Solvable     bool   `json:"solvable"`
	MinimalMoves int    `json:"minimalMoves"`
	Notation     string `json:"notation,omitempty"`
	Explored     int    `json:"explored"`
}

// catalog solves the built-in levels once and caches the results.
func (s *Server) catalog(ctx context.Context) ([]game.LevelResult, error) {
	s.levelsOnce.Do(func() {
		start := time.Now()
		s.levels, s.levelsErr = game.SolveCatalog(context.WithoutCancel(ctx), game.Levels(), s.opts.Workers)
		s.log.WithFields(logrus.Fields{
			"levels":  len(s.levels),
			"elapsed": time.Since(start),
		}).Info("level catalog solved")
	})
	return s.levels, s.levelsErr
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	results, err := s.catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to solve levels")
		return
	}
	out := make([]levelDTO, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			s.log.WithError(res.Err).WithField("level", res.ID).Warn("skipping level")
			continue
		}
		out = append(out, levelDTO{
			ID:           res.ID,
			Desc:         res.Desc,
			Solvable:     res.Solvable,
			MinimalMoves: res.MinimalMoves,
			Notation:     res.Notation,
			Explored:     res.Explored,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"levels": out})
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	level, err := game.LevelByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	b, err := game.Parse(level.Desc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp, err := s.solve(b)
	if err != nil {
		writeSearchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       level.ID,
		"desc":     level.Desc,
		"solution": resp,
	})
}
