package board

var squareDirs = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Odd-r horizontal layout: which diagonal column a hex touches depends
// on row parity.
var (
	hexDirsEven = [6][2]int{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1}}
	hexDirsOdd  = [6][2]int{{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}
)

// buildAdjacency precomputes the neighbor list of every cell. The rest
// of the package, and the solver through Snapshot, only ever see these
// lists; nothing else encodes the topology.
func buildAdjacency(p Params) [][]int {
	adj := make([][]int, p.Rows*p.Cols)
	for r := range p.Rows {
		for c := range p.Cols {
			var dirs [][2]int
			switch {
			case p.Shape == Hexagon && r%2 != 0:
				dirs = hexDirsOdd[:]
			case p.Shape == Hexagon:
				dirs = hexDirsEven[:]
			default:
				dirs = squareDirs[:]
			}
			i := r*p.Cols + c
			ns := make([]int, 0, len(dirs))
			for _, d := range dirs {
				nr, nc := r+d[0], c+d[1]
				if 0 <= nr && nr < p.Rows && 0 <= nc && nc < p.Cols {
					ns = append(ns, nr*p.Cols+nc)
				}
			}
			adj[i] = ns
		}
	}
	return adj
}
