package solve

import "github.com/gammazero/deque"

// localConstraint is a Constraint remapped onto a component's own cell
// indices.
type localConstraint struct {
	cells    []int
	required int
}

// component is a maximal group of constraints connected through shared
// frontier cells. Components never share a cell, so each one can be
// enumerated on its own.
type component struct {
	cells []int // global cell ids, in BFS discovery order
	cons  []localConstraint
}

// split partitions the frontier into independent components with a BFS
// over the bipartite cell/constraint graph. Discovery expands one
// constraint at a time, so cells feeding the same constraint end up
// adjacent in the enumeration order, which helps the enumerator prune
// early.
func split(p *problem) []*component {
	var (
		comps    []*component
		seenCell = make(map[int]bool, len(p.frontier))
		seenCon  = make([]bool, len(p.cons))
		queue    deque.Deque[int] // constraint indices
	)

	for _, seed := range p.frontier {
		if seenCell[seed] {
			continue
		}
		comp := &component{}
		local := make(map[int]int)

		claim := func(cell int) {
			if !seenCell[cell] {
				seenCell[cell] = true
				local[cell] = len(comp.cells)
				comp.cells = append(comp.cells, cell)
			}
		}

		claim(seed)
		for _, ci := range p.byCell[seed] {
			if !seenCon[ci] {
				seenCon[ci] = true
				queue.PushBack(ci)
			}
		}
		for queue.Len() > 0 {
			ci := queue.PopFront()
			con := p.cons[ci]
			lc := localConstraint{
				cells:    make([]int, 0, len(con.Unknowns)),
				required: con.Required,
			}
			for _, cell := range con.Unknowns {
				claim(cell)
				lc.cells = append(lc.cells, local[cell])
				for _, next := range p.byCell[cell] {
					if !seenCon[next] {
						seenCon[next] = true
						queue.PushBack(next)
					}
				}
			}
			comp.cons = append(comp.cons, lc)
		}
		comps = append(comps, comp)
	}
	return comps
}
