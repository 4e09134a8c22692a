package board

import "fmt"

// Shape selects the cell adjacency of a board.
type Shape string

const (
	// Square boards use 8-neighbor adjacency.
	Square Shape = "square"
	// Hexagon boards use 6-neighbor adjacency in an "odd-r" horizontal
	// layout: odd rows are shifted half a cell to the right.
	Hexagon Shape = "hexagon"
)

func (s Shape) Valid() bool {
	return s == Square || s == Hexagon
}

// MaxNeighbors returns the largest possible neighbor count for the shape.
func (s Shape) MaxNeighbors() int {
	if s == Hexagon {
		return 6
	}
	return 8
}

type Params struct {
	Rows      int   `schema:"rows,required" json:"rows"`
	Cols      int   `schema:"cols,required" json:"cols"`
	MineCount int   `schema:"mine_count,required" json:"mine_count"`
	Shape     Shape `schema:"shape" json:"shape"`
}

// Levels are the stock difficulty presets. Shape is left to the caller.
var Levels = map[string]Params{
	"beginner":     {Rows: 9, Cols: 9, MineCount: 10},
	"intermediate": {Rows: 16, Cols: 16, MineCount: 40},
	"expert":       {Rows: 16, Cols: 30, MineCount: 99},
	"professional": {Rows: 30, Cols: 30, MineCount: 200},
}

func (p Params) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("bad dimensions %dx%d", p.Rows, p.Cols)
	}
	if p.Shape != "" && !p.Shape.Valid() {
		return fmt.Errorf("bad shape %q", p.Shape)
	}
	if p.MineCount < 0 || p.MineCount >= p.Rows*p.Cols {
		return fmt.Errorf("bad mine count %d for %dx%d board",
			p.MineCount, p.Rows, p.Cols)
	}
	return nil
}

func (p Params) ValidatePoint(x, y int) bool {
	return 0 <= x && x < p.Cols && 0 <= y && y < p.Rows
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Cols, p.Rows, p.MineCount)
}
