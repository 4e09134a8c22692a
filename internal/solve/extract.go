package solve

import "sort"

// Constraint is the requirement a revealed numbered cell places on its
// still-covered neighbors: exactly Required of Unknowns are mines.
// Flagged neighbors are already subtracted from Required.
type Constraint struct {
	Cell     int
	Required int
	Unknowns []int
}

// problem is the extracted deduction input for one snapshot: every
// constraint, the frontier cells they touch, the unconstrained
// exterior cells, and the bipartite cell-to-constraint index.
type problem struct {
	cons     []Constraint
	frontier []int
	exterior []int
	byCell   map[int][]int // frontier cell -> indices into cons
}

// extract scans the board once and builds the constraint graph. It
// fails fast on a constraint that is already impossible.
func extract(b Board) (*problem, error) {
	p := &problem{byCell: make(map[int][]int)}
	inFrontier := make(map[int]bool)

	for i := range b.Size() {
		count, ok := b.Revealed(i)
		if !ok {
			continue
		}
		required := count
		var unknowns []int
		for _, j := range b.Neighbors(i) {
			if b.Flagged(j) {
				required--
			} else if b.Hidden(j) {
				unknowns = append(unknowns, j)
			}
		}
		if len(unknowns) == 0 {
			continue
		}
		if required < 0 || required > len(unknowns) {
			return nil, ContradictionError{
				Cell:     i,
				Required: required,
				Unknowns: len(unknowns),
			}
		}
		ci := len(p.cons)
		p.cons = append(p.cons, Constraint{
			Cell:     i,
			Required: required,
			Unknowns: unknowns,
		})
		for _, j := range unknowns {
			if !inFrontier[j] {
				inFrontier[j] = true
				p.frontier = append(p.frontier, j)
			}
			p.byCell[j] = append(p.byCell[j], ci)
		}
	}

	for i := range b.Size() {
		if b.Hidden(i) && !inFrontier[i] {
			p.exterior = append(p.exterior, i)
		}
	}
	sort.Ints(p.frontier)
	return p, nil
}
