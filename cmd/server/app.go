package main

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okhazov/minesweeper-agent/internal/board"
	"github.com/okhazov/minesweeper-agent/internal/solve"
)

type application struct {
	logger   *slog.Logger
	solver   *solve.Solver
	sessions *sessionStore
	rnd      *rand.Rand
}

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/status", handleStatus)

	mux.HandleFunc("POST /v1/game", app.handleNewGame)
	mux.HandleFunc("GET /v1/game/{id}", app.handleFetchGame)
	mux.HandleFunc("POST /v1/game/{id}/reveal", app.handleMove(moveReveal))
	mux.HandleFunc("POST /v1/game/{id}/flag", app.handleMove(moveFlag))
	mux.HandleFunc("POST /v1/game/{id}/chord", app.handleMove(moveChord))

	mux.HandleFunc("GET /v1/game/{id}/probabilities", app.handleProbabilities)
	mux.HandleFunc("POST /v1/game/{id}/hint", app.handleHint)
	mux.HandleFunc("/v1/game/{id}/autoplay", app.handleAutoplay)

	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("\"ok\""))
}

// session pairs a live board with its id. The per-session mutex
// serializes HTTP moves against the autoplay websocket.
type session struct {
	mu        sync.Mutex
	id        string
	board     *board.Board
	startedAt time.Time
	endedAt   time.Time
}

func (s *session) finishIfOver() {
	if s.board.Status() != board.On && s.endedAt.IsZero() {
		s.endedAt = time.Now().UTC()
	}
}

type sessionStore struct {
	mu sync.RWMutex
	m  map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[string]*session)}
}

func (st *sessionStore) create(b *board.Board) *session {
	u := [16]byte(uuid.New())
	s := &session{
		id:        base64.RawURLEncoding.EncodeToString(u[:]),
		board:     b,
		startedAt: time.Now().UTC(),
	}
	st.mu.Lock()
	st.m[s.id] = s
	st.mu.Unlock()
	return s
}

func (st *sessionStore) get(id string) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.m[id]
	return s, ok
}

func sendJSON(w http.ResponseWriter, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(payload)
	return err
}
