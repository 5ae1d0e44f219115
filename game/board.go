package game

import "fmt"

const (
	NumRows    = 8
	NumColumns = 8
)

// Cell holds the contents of one square.
type Cell int

const (
	Empty   Cell = 0
	Player1 Cell = 1
	Player2 Cell = 2
)

// Board is the full 8x8 grid. It is a value type: assignment copies the whole
// grid, so a hypothetical move explored during search never aliases the board
// it came from.
type Board [NumRows][NumColumns]Cell

// Opponent converts player 1 -> 2 and 2 -> 1.
func Opponent(player int) int {
	return player + (player%2)*2 - 1
}

// ValidPlayer reports whether the value is a usable player identity.
func ValidPlayer(player int) bool {
	return player == 1 || player == 2
}

// NewStartingBoard returns the standard opening position: the four center
// squares filled with alternating pieces, everything else empty.
func NewStartingBoard() Board {
	var b Board
	b[3][3] = Player1
	b[3][4] = Player2
	b[4][3] = Player2
	b[4][4] = Player1
	return b
}

// Count returns how many squares hold the given cell value.
func (b Board) Count(c Cell) int {
	total := 0
	for row := 0; row < NumRows; row++ {
		for column := 0; column < NumColumns; column++ {
			if b[row][column] == c {
				total++
			}
		}
	}
	return total
}

// FromGrid validates a decoded integer grid and converts it to a Board. The
// grid must be exactly 8x8 with every cell 0, 1 or 2.
func FromGrid(grid [][]int) (Board, error) {
	var b Board
	if len(grid) != NumRows {
		return b, fmt.Errorf("board has %d rows, want %d", len(grid), NumRows)
	}
	for row, cells := range grid {
		if len(cells) != NumColumns {
			return b, fmt.Errorf("board row %d has %d columns, want %d", row, len(cells), NumColumns)
		}
		for column, v := range cells {
			if v < int(Empty) || v > int(Player2) {
				return b, fmt.Errorf("board cell (%d,%d) holds %d, want 0, 1 or 2", row, column, v)
			}
			b[row][column] = Cell(v)
		}
	}
	return b, nil
}
