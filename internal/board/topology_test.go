package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareAdjacency(t *testing.T) {
	adj := buildAdjacency(Params{Rows: 3, Cols: 3, Shape: Square})
	assert.ElementsMatch(t, []int{1, 3, 4}, adj[0])
	assert.Len(t, adj[4], 8)
	assert.ElementsMatch(t, []int{4, 5, 7}, adj[8])
}

func TestHexAdjacency(t *testing.T) {
	// 3x3 odd-r layout: odd rows shift right, so their cells reach
	// the column to the left on the rows above and below.
	adj := buildAdjacency(Params{Rows: 3, Cols: 3, Shape: Hexagon})

	// Center (1,1) is cell 4, on an odd row: full six neighbors,
	// leaning left on the rows above and below.
	assert.ElementsMatch(t, []int{0, 1, 3, 5, 6, 7}, adj[4])

	// Top-left corner (even row): right, below, below-right.
	assert.ElementsMatch(t, []int{1, 3, 4}, adj[0])

	// Odd-row left edge (1,0) is cell 3.
	assert.ElementsMatch(t, []int{0, 4, 6}, adj[3])

	for i, ns := range adj {
		assert.LessOrEqual(t, len(ns), 6, "cell %d", i)
	}
}

func TestHexBoardPlays(t *testing.T) {
	b := newTestBoard(t, Params{Rows: 9, Cols: 9, MineCount: 10, Shape: Hexagon})
	require.NotEqual(t, Lost, b.Reveal(40))
	// Counts never exceed the hex neighbor limit.
	for i := range b.Size() {
		if c := b.Cell(i); c.Revealed() {
			assert.LessOrEqual(t, int(c), 6)
		}
	}
}

func TestLevels(t *testing.T) {
	for name, params := range Levels {
		assert.NoError(t, params.Validate(), name)
	}
}
