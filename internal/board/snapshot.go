package board

// Snapshot is a frozen view of player knowledge. It satisfies the
// solver's board interface and never changes once taken, so solver
// results for a snapshot are reproducible.
type Snapshot struct {
	cells     Grid
	adj       [][]int
	minesLeft int
	hidden    int
}

func (s *Snapshot) Size() int             { return len(s.cells) }
func (s *Snapshot) Neighbors(i int) []int { return s.adj[i] }
func (s *Snapshot) RemainingMines() int   { return s.minesLeft }
func (s *Snapshot) HiddenCount() int      { return s.hidden }

func (s *Snapshot) Hidden(i int) bool  { return s.cells[i].Hidden() }
func (s *Snapshot) Flagged(i int) bool { return s.cells[i] == Flagged }

// Revealed returns the adjacent-mine count of cell i, with ok false
// for covered cells.
func (s *Snapshot) Revealed(i int) (count int, ok bool) {
	if s.cells[i].Revealed() {
		return int(s.cells[i]), true
	}
	return 0, false
}
