package solve

import (
	"context"
	"fmt"
)

// tally is the enumeration result for one component. Counts are kept
// partitioned by how many mines a permutation uses, because the
// aggregator weights permutations by their mine consumption.
type tally struct {
	total   int64
	byCount []int64   // byCount[m] = valid permutations using exactly m mines
	perCell [][]int64 // perCell[m][i] = of those, ones where cell i is a mine
}

const ctxCheckInterval = 1 << 12

// enumerate finds every mine/safe assignment of the component's cells
// that satisfies all its constraints. The search is an explicit
// depth-first traversal with per-constraint partial counts rolled back
// on backtrack; a branch dies as soon as any constraint overshoots its
// target or can no longer reach it. maxNodes caps the number of
// assignments tried; zero means no cap.
func enumerate(ctx context.Context, comp *component, maxNodes int64) (*tally, error) {
	k := len(comp.cells)
	if k == 0 {
		return &tally{total: 1, byCount: []int64{1}, perCell: [][]int64{nil}}, nil
	}
	t := &tally{
		byCount: make([]int64, k+1),
		perCell: make([][]int64, k+1),
	}
	for m := range t.perCell {
		t.perCell[m] = make([]int64, k)
	}

	var (
		assigned = make([]int, len(comp.cons)) // mines among resolved unknowns
		open     = make([]int, len(comp.cons)) // unknowns not yet assigned
		byCell   = make([][]int, k)            // cell -> constraints it feeds
	)
	for ci, c := range comp.cons {
		open[ci] = len(c.cells)
		for _, i := range c.cells {
			byCell[i] = append(byCell[i], ci)
		}
	}

	feasible := func(ci int) bool {
		c := comp.cons[ci]
		return assigned[ci] <= c.required &&
			c.required-assigned[ci] <= open[ci]
	}
	place := func(i int, mine bool) (ok bool) {
		ok = true
		for _, ci := range byCell[i] {
			open[ci]--
			if mine {
				assigned[ci]++
			}
			if !feasible(ci) {
				ok = false
			}
		}
		return ok
	}
	remove := func(i int, mine bool) {
		for _, ci := range byCell[i] {
			open[ci]++
			if mine {
				assigned[ci]--
			}
		}
	}

	var (
		tried  = make([]int8, k) // per depth: 0 = nothing, 1 = safe, 2 = both
		isMine = make([]bool, k)
		mines  int
		nodes  int64
		d      int
	)
	for d >= 0 {
		if tried[d] == 2 {
			tried[d] = 0
			d--
			if d < 0 {
				break
			}
			remove(d, isMine[d])
			if isMine[d] {
				mines--
			}
			continue
		}

		nodes++
		if maxNodes > 0 && nodes > maxNodes {
			return nil, fmt.Errorf("%w after %d nodes", ErrBudgetExceeded, nodes)
		}
		if nodes%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		mine := tried[d] == 1 // safe branch first, then mine
		tried[d]++
		isMine[d] = mine
		if mine {
			mines++
		}
		if !place(d, mine) {
			remove(d, mine)
			if mine {
				mines--
			}
			continue
		}
		if d == k-1 {
			// Full assignment; feasibility of every resolved
			// constraint means each hit its target exactly.
			t.total++
			t.byCount[mines]++
			for i, m := range isMine {
				if m {
					t.perCell[mines][i]++
				}
			}
			remove(d, mine)
			if mine {
				mines--
			}
			continue
		}
		d++
	}

	return t, nil
}
