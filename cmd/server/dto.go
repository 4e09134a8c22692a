package main

import "github.com/okhazov/minesweeper-agent/internal/board"

type NewGameParams struct {
	Level     string      `schema:"level"`
	Rows      int         `schema:"rows"`
	Cols      int         `schema:"cols"`
	MineCount int         `schema:"mine_count"`
	Shape     board.Shape `schema:"shape"`
}

// BoardParams resolves a preset level or explicit dimensions into
// board parameters.
func (p NewGameParams) BoardParams() (board.Params, bool) {
	params := board.Params{
		Rows:      p.Rows,
		Cols:      p.Cols,
		MineCount: p.MineCount,
		Shape:     p.Shape,
	}
	if p.Level != "" {
		preset, ok := board.Levels[p.Level]
		if !ok {
			return params, false
		}
		preset.Shape = p.Shape
		params = preset
	}
	return params, params.Validate() == nil
}

type PosParams struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

type sessionJSON struct {
	SessionId string      `json:"session_id"`
	Grid      board.Grid  `json:"grid"`
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	MineCount int         `json:"mine_count"`
	Shape     board.Shape `json:"shape"`
	Status    string      `json:"status"`
	StartedAt int64       `json:"started_at"`
	EndedAt   *int64      `json:"ended_at,omitempty"`
}

// sessionDTO snapshots a session for the wire. Callers must hold the
// session mutex.
func sessionDTO(s *session) sessionJSON {
	var endedAt *int64
	if !s.endedAt.IsZero() {
		e := s.endedAt.UnixMilli()
		endedAt = &e
	}
	return sessionJSON{
		SessionId: s.id,
		Grid:      s.board.Grid(),
		Rows:      s.board.Rows,
		Cols:      s.board.Cols,
		MineCount: s.board.MineCount,
		Shape:     s.board.Shape,
		Status:    s.board.Status().String(),
		StartedAt: s.startedAt.UnixMilli(),
		EndedAt:   endedAt,
	}
}

type probabilitiesJSON struct {
	SessionId     string          `json:"session_id"`
	Probabilities map[int]float64 `json:"probabilities"`
}

type actionJSON struct {
	Cell        int     `json:"cell"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Type        string  `json:"type"`
	Probability float64 `json:"probability"`
	Guess       bool    `json:"guess"`
}

type autoplayFrame struct {
	Action  actionJSON  `json:"action"`
	Session sessionJSON `json:"session"`
}
