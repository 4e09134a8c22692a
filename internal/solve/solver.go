// Package solve deduces moves from a partially revealed minesweeper
// board. It extracts the constraints of every revealed number, splits
// the covered frontier into independent regions, exhaustively
// enumerates each region's valid mine assignments, and weights the
// results against the global remaining-mine budget to produce an exact
// per-cell mine probability. From that map it derives either certain
// moves or the lowest-risk guess.
//
// The pipeline is pure: every call works on an immutable snapshot and
// keeps no state between calls. Regions whose frontier exceeds
// MaxFrontier (or whose search exceeds MaxNodes) cannot be enumerated
// exactly; Probabilities reports that as an error, while Actions folds
// such regions into the unconstrained exterior and keeps going, so an
// agent always gets a move.
package solve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Board is the read-only view of player knowledge the solver consumes.
// Cells are identified by index in [0, Size()); adjacency comes only
// from Neighbors, so any topology works.
type Board interface {
	Size() int
	// Hidden reports whether cell i is covered and unflagged.
	Hidden(i int) bool
	// Flagged reports whether cell i carries a flag.
	Flagged(i int) bool
	// Revealed returns the adjacent-mine count of cell i; ok is false
	// for covered cells.
	Revealed(i int) (count int, ok bool)
	Neighbors(i int) []int
	// RemainingMines is the mine total minus flagged cells.
	RemainingMines() int
	// HiddenCount is the number of covered, unflagged cells.
	HiddenCount() int
}

const (
	DefaultMaxFrontier = 40
	DefaultMaxNodes    = 2_000_000
)

type Solver struct {
	// MaxFrontier caps the cell count of a single frontier region;
	// zero means unbounded. Enumeration is worst-case exponential in
	// this number.
	MaxFrontier int
	// MaxNodes caps the assignments tried per region; zero means
	// unbounded.
	MaxNodes int64
	Logger   *slog.Logger
}

func New() *Solver {
	return &Solver{
		MaxFrontier: DefaultMaxFrontier,
		MaxNodes:    DefaultMaxNodes,
		Logger:      slog.Default(),
	}
}

// Probabilities computes the exact mine probability of every hidden,
// unflagged cell. It fails with ErrFrontierTooLarge or
// ErrBudgetExceeded when some region cannot be enumerated exactly, and
// with ContradictionError when the board state is inconsistent.
func (s *Solver) Probabilities(ctx context.Context, b Board) (map[int]float64, error) {
	return s.solve(ctx, b, false)
}

// Actions computes the next moves: every certainly safe reveal and
// certain flag, or a single lowest-risk guess. Oversized regions
// degrade to an estimate instead of failing.
func (s *Solver) Actions(ctx context.Context, b Board) ([]Action, error) {
	probs, err := s.solve(ctx, b, false)
	if errors.Is(err, ErrFrontierTooLarge) || errors.Is(err, ErrBudgetExceeded) {
		s.Logger.Debug("exact solve unavailable, approximating", "error", err)
		probs, err = s.solve(ctx, b, true)
	}
	if err != nil {
		return nil, err
	}
	return selectActions(probs), nil
}

// NextAction returns the single best move, or nil when no hidden,
// unflagged cell remains. Callers loop: apply the move, take a fresh
// snapshot, ask again.
func (s *Solver) NextAction(ctx context.Context, b Board) (*Action, error) {
	actions, err := s.Actions(ctx, b)
	if err != nil || len(actions) == 0 {
		return nil, err
	}
	return &actions[0], nil
}

func (s *Solver) solve(ctx context.Context, b Board, approximate bool) (map[int]float64, error) {
	if b.HiddenCount() == 0 {
		return map[int]float64{}, nil
	}

	p, err := extract(b)
	if err != nil {
		return nil, err
	}
	comps := split(p)

	exterior := p.exterior
	if approximate {
		exterior = append([]int(nil), p.exterior...)
	}

	var kept []*component
	for _, comp := range comps {
		if s.MaxFrontier > 0 && len(comp.cells) > s.MaxFrontier {
			if !approximate {
				return nil, fmt.Errorf("%w: %d cells",
					ErrFrontierTooLarge, len(comp.cells))
			}
			s.Logger.Warn("treating oversized region as exterior",
				slog.Int("cells", len(comp.cells)))
			exterior = append(exterior, comp.cells...)
			continue
		}
		kept = append(kept, comp)
	}

	tallies := make([]*tally, len(kept))
	errs := make([]error, len(kept))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, comp := range kept {
		g.Go(func() error {
			t, err := enumerate(gCtx, comp, s.MaxNodes)
			if err != nil {
				if errors.Is(err, ErrBudgetExceeded) {
					// A budget overrun only fails the call in exact
					// mode; defer the decision to the merge step.
					errs[i] = err
					return nil
				}
				return err
			}
			if t.total == 0 {
				return ContradictionError{Cell: -1}
			}
			tallies[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	final := kept[:0]
	finalTallies := tallies[:0]
	for i, comp := range kept {
		if errs[i] != nil {
			if !approximate {
				return nil, errs[i]
			}
			s.Logger.Warn("treating unsearchable region as exterior",
				slog.Int("cells", len(comp.cells)), "error", errs[i])
			exterior = append(exterior, comp.cells...)
			continue
		}
		final = append(final, comp)
		finalTallies = append(finalTallies, tallies[i])
	}

	return aggregate(final, finalTallies, exterior, b.RemainingMines())
}
