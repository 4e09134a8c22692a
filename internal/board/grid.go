package board

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	todo          CellState = -10 // internal to flood fill
	Unknown       CellState = -2
	Flagged       CellState = -1
	CorrectFlag   CellState = 64 // post-game-over
	ExplodedMine  CellState = 65
	WrongFlag     CellState = 66
	UnflaggedMine CellState = 67
	// 0-8 for revealed cells with the given number of mined neighbors
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Flagged || s == CorrectFlag:
		return "*"
	case s == ExplodedMine:
		return "X"
	case s == WrongFlag:
		return "x"
	case s == UnflaggedMine:
		return "o"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Revealed reports whether the cell is open and carries a neighbor count.
func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

// Hidden reports whether the cell is still covered and unflagged.
func (s CellState) Hidden() bool {
	return s == Unknown
}

// Grid is the player-visible knowledge of a board, one entry per cell.
type Grid []CellState

func (g Grid) ToString(cols int) string {
	var b strings.Builder
	for y := range (len(g) + cols - 1) / cols {
		for x := range cols {
			i := y*cols + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
