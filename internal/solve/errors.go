package solve

import (
	"errors"
	"fmt"
)

var (
	// ErrFrontierTooLarge means a connected region of the frontier
	// exceeds the solver's enumeration cap and exact probabilities are
	// unavailable.
	ErrFrontierTooLarge = errors.New("frontier region too large to enumerate")

	// ErrBudgetExceeded means the permutation search ran out of its
	// node budget before finishing.
	ErrBudgetExceeded = errors.New("search budget exceeded")
)

// ContradictionError reports an inconsistent board: a numbered cell
// whose requirement cannot possibly be met, a frontier region with no
// valid mine assignment, or a board whose regions cannot fit the
// remaining mine total. A correctly maintained game never produces
// one; it indicates corrupted state upstream.
type ContradictionError struct {
	// Cell is the numbered cell at fault, or -1 when a whole region
	// or the global mine budget is infeasible.
	Cell     int
	Required int
	Unknowns int
}

func (e ContradictionError) Error() string {
	if e.Cell < 0 {
		return "contradictory board: no valid mine assignment"
	}
	return fmt.Sprintf(
		"contradictory constraint at cell %d: %d mines among %d unknowns",
		e.Cell, e.Required, e.Unknowns,
	)
}
