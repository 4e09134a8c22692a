package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newTestBoard(t *testing.T, p Params) *Board {
	t.Helper()
	b, err := New(p, testRand())
	require.NoError(t, err)
	return b
}

func TestNewValidatesParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"zero dims", Params{Rows: 0, Cols: 5, MineCount: 1}},
		{"too many mines", Params{Rows: 3, Cols: 3, MineCount: 9}},
		{"negative mines", Params{Rows: 3, Cols: 3, MineCount: -1}},
		{"bad shape", Params{Rows: 3, Cols: 3, MineCount: 1, Shape: "triangle"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.params, nil)
			assert.Error(t, err)
		})
	}
}

func TestFirstRevealIsSafe(t *testing.T) {
	// Whatever the seed, the first click must not explode.
	for seed := range uint64(25) {
		b, err := New(Params{Rows: 9, Cols: 9, MineCount: 10}, nil)
		require.NoError(t, err)
		b.SetRand(rand.New(rand.NewPCG(seed, seed)))
		status := b.Reveal(40)
		assert.NotEqual(t, Lost, status, "seed %d", seed)
		assert.True(t, b.Cell(40).Revealed())
	}
}

func TestFirstRevealOpensSafeZone(t *testing.T) {
	// With room to spare, the whole neighborhood of the first click
	// is kept clear of mines, so the click reveals at least a 3x3.
	b := newTestBoard(t, Params{Rows: 9, Cols: 9, MineCount: 10})
	b.Reveal(40)
	assert.EqualValues(t, 0, b.Cell(40))
	for _, j := range b.Neighbors(40) {
		assert.True(t, b.Cell(j).Revealed(), "neighbor %d", j)
	}
}

func TestRevealFloodsZeroRegion(t *testing.T) {
	// No mines at all: one reveal floods the whole board.
	b := newTestBoard(t, Params{Rows: 5, Cols: 5, MineCount: 0})
	b.Reveal(12)
	assert.Equal(t, Won, b.Status())
	for i := range b.Size() {
		assert.True(t, b.Cell(i).Revealed())
	}
}

func TestFlagToggle(t *testing.T) {
	b := newTestBoard(t, Params{Rows: 4, Cols: 4, MineCount: 4})
	b.ToggleFlag(0)
	assert.Equal(t, Flagged, b.Cell(0))
	assert.Equal(t, 3, b.RemainingMines())
	b.ToggleFlag(0)
	assert.Equal(t, Unknown, b.Cell(0))
	assert.Equal(t, 4, b.RemainingMines())

	// Flags only go on covered cells.
	b.Reveal(5)
	if b.Cell(5).Revealed() {
		b.ToggleFlag(5)
		assert.True(t, b.Cell(5).Revealed())
	}
}

func TestRevealMineLosesAndExposesField(t *testing.T) {
	b := newTestBoard(t, Params{Rows: 4, Cols: 4, MineCount: 6})
	b.Reveal(5)
	require.Equal(t, On, b.Status())

	// Find a mine through the internal field and step on it.
	mine := -1
	for i, m := range b.mines {
		if m {
			mine = i
			break
		}
	}
	require.GreaterOrEqual(t, mine, 0)
	assert.Equal(t, Lost, b.Reveal(mine))
	assert.Equal(t, ExplodedMine, b.Cell(mine))
	for i := range b.Size() {
		assert.NotEqual(t, Unknown, b.Cell(i), "cell %d left covered", i)
	}
}

func TestChordOpensNeighborsWhenFlagsMatch(t *testing.T) {
	b := newTestBoard(t, Params{Rows: 6, Cols: 6, MineCount: 8})
	b.Reveal(14)
	require.Equal(t, On, b.Status())

	// Pick a revealed number and flag exactly its mines.
	target := -1
	for i := range b.Size() {
		if c := b.Cell(i); c.Revealed() && c > 0 {
			target = i
			break
		}
	}
	if target < 0 {
		t.Skip("no numbered cell revealed by this seed")
	}
	for _, j := range b.Neighbors(target) {
		if b.Cell(j) == Unknown && b.mines[j] {
			b.ToggleFlag(j)
		}
	}
	b.Chord(target)
	assert.NotEqual(t, Lost, b.Status())
	for _, j := range b.Neighbors(target) {
		if b.Cell(j) != Flagged {
			assert.True(t, b.Cell(j).Revealed(), "neighbor %d", j)
		}
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	b := newTestBoard(t, Params{Rows: 5, Cols: 5, MineCount: 3})
	b.Reveal(12)
	snap := b.Snapshot()
	hidden := snap.HiddenCount()
	mines := snap.RemainingMines()

	for i := range b.Size() {
		if b.Cell(i) == Unknown {
			b.ToggleFlag(i)
			break
		}
	}
	assert.Equal(t, hidden, snap.HiddenCount())
	assert.Equal(t, mines, snap.RemainingMines())
	assert.NotEqual(t, b.RemainingMines(), snap.RemainingMines())
}

func TestGridToString(t *testing.T) {
	g := Grid{1, Unknown, Flagged, 0}
	assert.Equal(t, "1   \n* 0 \n", g.ToString(2))
}
