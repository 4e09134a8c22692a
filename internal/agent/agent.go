// Package agent plays whole games by looping the solver against a live
// board: reveal what is safe, flag what is certain, and take the
// lowest-risk guess when nothing is certain.
package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/okhazov/minesweeper-agent/internal/board"
	"github.com/okhazov/minesweeper-agent/internal/solve"
)

type Result struct {
	Won     bool
	Moves   int
	Guesses int
	// WorstGuess is the highest mine probability accepted on any
	// guess; zero for games won on deduction alone.
	WorstGuess float64
}

func (r Result) String() string {
	outcome := "lost"
	if r.Won {
		outcome = "won"
	}
	return fmt.Sprintf("%s in %d moves (%d guesses, worst %.3f)",
		outcome, r.Moves, r.Guesses, r.WorstGuess)
}

type Agent struct {
	Solver *solve.Solver
	Logger *slog.Logger
}

func New() *Agent {
	return &Agent{Solver: solve.New(), Logger: slog.Default()}
}

// Play drives one game to completion. Losing on a guess is a normal
// outcome, not an error; errors mean the board state was inconsistent
// or the context ended.
func (a *Agent) Play(ctx context.Context, b *board.Board) (Result, error) {
	var res Result

	// The first reveal is always blind; the center touches the most
	// cells, so open there before asking for probabilities.
	if b.Status() == board.On && b.HiddenCount() == b.Size() {
		b.Reveal(b.Index(b.Cols/2, b.Rows/2))
		res.Moves++
	}

	for b.Status() == board.On {
		act, err := a.Solver.NextAction(ctx, b.Snapshot())
		if err != nil {
			return res, fmt.Errorf("solve move %d: %w", res.Moves, err)
		}
		if act == nil {
			break
		}
		if act.Guess {
			res.Guesses++
			if act.Probability > res.WorstGuess {
				res.WorstGuess = act.Probability
			}
			a.Logger.Debug("guessing",
				slog.Int("cell", act.Cell),
				slog.Float64("probability", act.Probability))
		}
		switch act.Type {
		case solve.ActionFlag:
			b.ToggleFlag(act.Cell)
		default:
			b.Reveal(act.Cell)
		}
		res.Moves++
	}

	res.Won = b.Status() == board.Won
	return res, nil
}
