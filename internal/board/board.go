// Package board owns game state for the solver agent: mine placement,
// reveals, flags and win/loss detection. Mines are placed on the first
// reveal so the opening click never loses.
package board

import "math/rand/v2"

type GameStatus int

const (
	On GameStatus = iota
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "on"
	}
}

type Board struct {
	Params
	mines  []bool // nil until the first reveal places them
	counts []int8 // adjacent-mine count per cell, valid once mines is set
	cells  Grid   // player knowledge
	adj    [][]int
	status GameStatus
	flags  int
	rnd    *rand.Rand
}

func New(params Params, rnd *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Shape == "" {
		params.Shape = Square
	}
	n := params.Rows * params.Cols
	cells := make(Grid, n)
	for i := range cells {
		cells[i] = Unknown
	}
	return &Board{
		Params: params,
		cells:  cells,
		adj:    buildAdjacency(params),
		rnd:    rnd,
	}, nil
}

func (b *Board) Size() int               { return len(b.cells) }
func (b *Board) Status() GameStatus      { return b.status }
func (b *Board) Neighbors(i int) []int   { return b.adj[i] }
func (b *Board) Cell(i int) CellState    { return b.cells[i] }
func (b *Board) Grid() Grid              { return b.cells }
func (b *Board) Index(x, y int) int      { return y*b.Cols + x }
func (b *Board) Coords(i int) (x, y int) { return i % b.Cols, i / b.Cols }

// placeMines fills the minefield, keeping the safe cell and (when the
// board is big enough) its whole neighborhood clear.
func (b *Board) placeMines(safe int) {
	n := len(b.cells)
	exclude := make(map[int]bool, len(b.adj[safe])+1)
	exclude[safe] = true
	for _, j := range b.adj[safe] {
		exclude[j] = true
	}
	if n-len(exclude) < b.MineCount {
		// Safe zone too big for this density; only the clicked
		// cell itself is guaranteed clear.
		exclude = map[int]bool{safe: true}
	}

	candidates := make([]int, 0, n-len(exclude))
	for i := range n {
		if !exclude[i] {
			candidates = append(candidates, i)
		}
	}
	r := b.rnd
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	b.mines = make([]bool, n)
	for _, i := range candidates[:b.MineCount] {
		b.mines[i] = true
	}
	b.counts = make([]int8, n)
	for i := range n {
		for _, j := range b.adj[i] {
			if b.mines[j] {
				b.counts[i]++
			}
		}
	}
}

// SetRand injects the randomness source used for mine placement.
func (b *Board) SetRand(rnd *rand.Rand) { b.rnd = rnd }

// Reveal opens a cell. Opening a mine loses the game; opening a zero
// cell flood-fills its neighborhood. The first reveal places the mines.
func (b *Board) Reveal(i int) GameStatus {
	if b.status != On || !b.cells[i].Hidden() {
		return b.status
	}
	if b.mines == nil {
		b.placeMines(i)
	}
	if b.mines[i] {
		b.status = Lost
		b.cells[i] = ExplodedMine
		b.revealAll()
		return b.status
	}

	b.cells[i] = todo
	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.cells[j] != todo {
			continue
		}
		b.cells[j] = CellState(b.counts[j])
		if b.counts[j] == 0 {
			for _, k := range b.adj[j] {
				if b.cells[k] == Unknown {
					b.cells[k] = todo
					stack = append(stack, k)
				}
			}
		}
	}

	b.checkWin()
	return b.status
}

// ToggleFlag flips the flag on a covered cell.
func (b *Board) ToggleFlag(i int) {
	if b.status != On {
		return
	}
	switch b.cells[i] {
	case Unknown:
		b.cells[i] = Flagged
		b.flags++
	case Flagged:
		b.cells[i] = Unknown
		b.flags--
	}
}

// Chord opens every covered, unflagged neighbor of a revealed cell
// whose flag count already matches its number.
func (b *Board) Chord(i int) GameStatus {
	if b.status != On || !b.cells[i].Revealed() {
		return b.status
	}
	flagged := 0
	var hidden []int
	for _, j := range b.adj[i] {
		switch b.cells[j] {
		case Flagged:
			flagged++
		case Unknown:
			hidden = append(hidden, j)
		}
	}
	if flagged != int(b.cells[i]) {
		return b.status
	}
	for _, j := range hidden {
		if b.Reveal(j) != On {
			break
		}
	}
	return b.status
}

func (b *Board) checkWin() {
	covered := 0
	for _, s := range b.cells {
		if !s.Revealed() {
			covered++
		}
	}
	if covered == b.MineCount {
		b.status = Won
		for i, s := range b.cells {
			if s == Unknown {
				b.cells[i] = Flagged
			}
		}
	}
}

// revealAll exposes the minefield after a loss: unflagged mines,
// wrong flags and true counts everywhere else.
func (b *Board) revealAll() {
	for i, s := range b.cells {
		switch {
		case s == Flagged && b.mines[i]:
			b.cells[i] = CorrectFlag
		case s == Flagged:
			b.cells[i] = WrongFlag
		case s == Unknown && b.mines[i]:
			b.cells[i] = UnflaggedMine
		case s == Unknown:
			b.cells[i] = CellState(b.counts[i])
		}
	}
}

// RemainingMines returns the mine total minus placed flags. Before the
// first reveal it is simply the mine total.
func (b *Board) RemainingMines() int {
	return b.MineCount - b.flags
}

// HiddenCount returns the number of covered, unflagged cells.
func (b *Board) HiddenCount() (n int) {
	for _, s := range b.cells {
		if s.Hidden() {
			n++
		}
	}
	return n
}

// Snapshot captures the current player knowledge as an immutable view
// for the solver. The adjacency lists are shared; neither side writes
// them.
func (b *Board) Snapshot() *Snapshot {
	cells := make(Grid, len(b.cells))
	copy(cells, b.cells)
	return &Snapshot{
		cells:     cells,
		adj:       b.adj,
		minesLeft: b.RemainingMines(),
		hidden:    b.HiddenCount(),
	}
}
