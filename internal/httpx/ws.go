// path: internal/httpx/ws.go
package httpx

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"rush_hour_poc/internal/game"
)

const (
	wsWriteWait     = 10 * time.Second
	wsMaxFrameDelay = 2 * time.Second
)

// checkOrigin admits clients without an Origin header (non-browser), the
// server's own host and the configured extra origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.opts.AllowedOrigins {
		if strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type replaySummary struct {
	Solved   bool      `json:"solved"`
	NumMoves int       `json:"numMoves"`
	Moves    []moveDTO `json:"moves"`
	Summary  string    `json:"summary"`
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeWS(conn *websocket.Conn, msg wsMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(msg)
}

// replayBoard resolves the board named by the query: either a puzzle string
// or a catalog level id.
func (s *Server) replayBoard(r *http.Request) (*game.Board, error) {
	if id := r.URL.Query().Get("level"); id != "" {
		level, err := game.LevelByID(id)
		if err != nil {
			return nil, err
		}
		return game.Parse(level.Desc)
	}
	return s.parsePuzzle(r.URL.Query().Get("puzzle"))
}

func frameDelay(r *http.Request) time.Duration {
	ms, err := strconv.Atoi(r.URL.Query().Get("delay"))
	if err != nil || ms <= 0 {
		return 0
	}
	d := time.Duration(ms) * time.Millisecond
	if d > wsMaxFrameDelay {
		d = wsMaxFrameDelay
	}
	return d
}

// handleReplay solves the requested puzzle and streams the solution one
// board frame at a time: "solution", then "frame" per step, then "done".
// A bad or too large puzzle yields a single "error" message.
func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Debug("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := s.log.WithField("remote", r.RemoteAddr)

	b, err := s.replayBoard(r)
	if err != nil {
		_ = writeWS(conn, wsMessage{Type: "error", Payload: mustMarshal(map[string]string{"error": err.Error()})})
		return
	}

	sol, _, err := s.search(b)
	if err != nil {
		_ = writeWS(conn, wsMessage{Type: "error", Payload: mustMarshal(map[string]string{"error": err.Error()})})
		return
	}
	if err := writeWS(conn, wsMessage{Type: "solution", Payload: mustMarshal(replaySummary{
		Solved:   sol.Solved,
		NumMoves: len(sol.Moves),
		Moves:    movesToDTO(b, sol.Moves),
		Summary:  game.FormatSolution(b, sol),
	})}); err != nil {
		return
	}

	frames, err := game.Replay(b, sol.Moves)
	if err != nil {
		logger.WithError(err).Error("replay of a solver result failed")
		_ = writeWS(conn, wsMessage{Type: "error", Payload: mustMarshal(map[string]string{"error": err.Error()})})
		return
	}

	delay := frameDelay(r)
	for i, f := range frames {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		if err := writeWS(conn, wsMessage{Type: "frame", Payload: mustMarshal(f)}); err != nil {
			logger.WithError(err).Debug("replay client went away")
			return
		}
	}
	_ = writeWS(conn, wsMessage{Type: "done"})
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(wsWriteWait))
	logger.WithFields(logrus.Fields{"frames": len(frames)}).Debug("replay sent")
}
