package solve

// Test boards come in two flavors: gridBoard parses a square-adjacency
// picture ('#' hidden, '*' flagged, '0'-'8' revealed), and fakeBoard
// wires arbitrary adjacency for surgical scenarios.

type fakeBoard struct {
	cells     []int8 // -2 hidden, -1 flagged, >=0 revealed count
	adj       [][]int
	minesLeft int
}

func (b *fakeBoard) Size() int             { return len(b.cells) }
func (b *fakeBoard) Hidden(i int) bool     { return b.cells[i] == -2 }
func (b *fakeBoard) Flagged(i int) bool    { return b.cells[i] == -1 }
func (b *fakeBoard) Neighbors(i int) []int { return b.adj[i] }
func (b *fakeBoard) RemainingMines() int   { return b.minesLeft }

func (b *fakeBoard) Revealed(i int) (int, bool) {
	if b.cells[i] >= 0 {
		return int(b.cells[i]), true
	}
	return 0, false
}

func (b *fakeBoard) HiddenCount() (n int) {
	for _, c := range b.cells {
		if c == -2 {
			n++
		}
	}
	return n
}

func parseGrid(minesLeft int, rows ...string) *fakeBoard {
	h, w := len(rows), len(rows[0])
	b := &fakeBoard{
		cells:     make([]int8, 0, w*h),
		adj:       make([][]int, w*h),
		minesLeft: minesLeft,
	}
	for _, row := range rows {
		for _, r := range row {
			switch {
			case r == '#':
				b.cells = append(b.cells, -2)
			case r == '*':
				b.cells = append(b.cells, -1)
			case '0' <= r && r <= '8':
				b.cells = append(b.cells, int8(r-'0'))
			default:
				panic("bad test grid rune " + string(r))
			}
		}
	}
	for y := range h {
		for x := range w {
			i := y*w + x
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx != 0 || dy != 0) &&
						0 <= nx && nx < w && 0 <= ny && ny < h {
						b.adj[i] = append(b.adj[i], ny*w+nx)
					}
				}
			}
		}
	}
	return b
}
