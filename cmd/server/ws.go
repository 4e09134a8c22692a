package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/okhazov/minesweeper-agent/internal/board"
	"github.com/okhazov/minesweeper-agent/internal/solve"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// autoplayDelay paces the streamed moves so a UI can animate them.
const autoplayDelay = 50 * time.Millisecond

// handleAutoplay streams solver moves over a websocket until the game
// ends: one frame per action, each carrying the action taken and the
// board state after it.
func (app *application) handleAutoplay(w http.ResponseWriter, r *http.Request) {
	s := app.findSession(w, r)
	if s == nil {
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.Error("upgrade failed", "error", err)
		return
	}
	defer c.Close()

	for {
		s.mu.Lock()
		if s.board.Status() != board.On {
			s.mu.Unlock()
			break
		}
		snap := s.board.Snapshot()
		cols := s.board.Cols
		s.mu.Unlock()

		var act *solve.Action
		if snap.HiddenCount() == snap.Size() {
			// Nothing revealed yet; open the center first.
			rows := snap.Size() / cols
			act = &solve.Action{Cell: (rows/2)*cols + cols/2, Guess: true}
		} else {
			act, err = app.solver.NextAction(r.Context(), snap)
			if err != nil {
				app.logger.Error("autoplay solve failed", "error", err)
				c.WriteJSON(map[string]string{"error": err.Error()})
				return
			}
			if act == nil {
				break
			}
		}

		s.mu.Lock()
		switch act.Type {
		case solve.ActionFlag:
			s.board.ToggleFlag(act.Cell)
		default:
			s.board.Reveal(act.Cell)
		}
		s.finishIfOver()
		frame := autoplayFrame{
			Action:  actionDTO(*act, cols),
			Session: sessionDTO(s),
		}
		s.mu.Unlock()

		if err := c.WriteJSON(frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				app.logger.Warn("autoplay write failed", "error", err)
			}
			return
		}
		time.Sleep(autoplayDelay)
	}

	c.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"))
}
