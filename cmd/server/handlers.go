package main

import (
	"errors"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/okhazov/minesweeper-agent/internal/board"
	"github.com/okhazov/minesweeper-agent/internal/solve"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

func (app *application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var params NewGameParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	boardParams, ok := params.BoardParams()
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	b, err := board.New(boardParams, app.rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s := app.sessions.create(b)
	app.logger.Debug("created session", "id", s.id, "params", boardParams)

	s.mu.Lock()
	defer s.mu.Unlock()
	sendJSON(w, sessionDTO(s))
}

// findSession resolves the {id} path value, writing the error status
// itself when the session is unknown.
func (app *application) findSession(w http.ResponseWriter, r *http.Request) *session {
	s, ok := app.sessions.get(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return nil
	}
	return s
}

func (app *application) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	s := app.findSession(w, r)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sendJSON(w, sessionDTO(s))
}

type move int8

const (
	moveReveal move = iota
	moveFlag
	moveChord
)

func (app *application) handleMove(kind move) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := app.findSession(w, r)
		if s == nil {
			return
		}
		var pos PosParams
		if err := dec.Decode(&pos, r.URL.Query()); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.board.ValidatePoint(pos.X, pos.Y) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		i := s.board.Index(pos.X, pos.Y)
		switch kind {
		case moveFlag:
			s.board.ToggleFlag(i)
		case moveChord:
			s.board.Chord(i)
		default:
			s.board.Reveal(i)
		}
		s.finishIfOver()
		sendJSON(w, sessionDTO(s))
	}
}

func (app *application) handleProbabilities(w http.ResponseWriter, r *http.Request) {
	s := app.findSession(w, r)
	if s == nil {
		return
	}
	s.mu.Lock()
	snap := s.board.Snapshot()
	id := s.id
	s.mu.Unlock()

	probs, err := app.solver.Probabilities(r.Context(), snap)
	if err != nil {
		app.writeSolverError(w, err)
		return
	}
	sendJSON(w, probabilitiesJSON{SessionId: id, Probabilities: probs})
}

func (app *application) handleHint(w http.ResponseWriter, r *http.Request) {
	s := app.findSession(w, r)
	if s == nil {
		return
	}
	s.mu.Lock()
	snap := s.board.Snapshot()
	cols := s.board.Cols
	s.mu.Unlock()

	act, err := app.solver.NextAction(r.Context(), snap)
	if err != nil {
		app.writeSolverError(w, err)
		return
	}
	if act == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	sendJSON(w, actionDTO(*act, cols))
}

func actionDTO(act solve.Action, cols int) actionJSON {
	return actionJSON{
		Cell:        act.Cell,
		X:           act.Cell % cols,
		Y:           act.Cell / cols,
		Type:        act.Type.String(),
		Probability: act.Probability,
		Guess:       act.Guess,
	}
}

func (app *application) writeSolverError(w http.ResponseWriter, err error) {
	var contradiction solve.ContradictionError
	switch {
	case errors.As(err, &contradiction):
		// The session state disagrees with itself; nothing the
		// client retries will fix it.
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, solve.ErrFrontierTooLarge),
		errors.Is(err, solve.ErrBudgetExceeded):
		w.WriteHeader(http.StatusUnprocessableEntity)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	app.logger.Error("solver failed", "error", err)
	sendJSON(w, map[string]string{"error": err.Error()})
}
