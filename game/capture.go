package game

// Direction is one of the eight unit offsets used for line scans.
type Direction struct {
	DeltaRow    int
	DeltaColumn int
}

// Directions lists the king-move offsets, row-major.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// onGrid reports whether stepping once from (row, column) stays on the board.
func onGrid(row, column int, d Direction) bool {
	row += d.DeltaRow
	column += d.DeltaColumn
	return row >= 0 && row < NumRows && column >= 0 && column < NumColumns
}

// CaptureDetails scans outward from an empty square along all eight
// directions. A direction captures only when the adjacent cell holds an
// opponent piece and the run of opponent pieces ends on a friendly piece
// before leaving the board; an empty cell or the board edge kills the run.
// It returns the total number of pieces captured over all directions and the
// capturing directions themselves. A move is legal iff the direction list is
// non-empty.
func CaptureDetails(player int, b Board, row, column int) (int, []Direction) {
	opponent := Cell(Opponent(player))
	captured := 0
	var dirs []Direction

	for _, d := range Directions {
		if !onGrid(row, column, d) {
			continue
		}
		if b[row+d.DeltaRow][column+d.DeltaColumn] != opponent {
			continue
		}

		run := 0
		found := false
		r, c := row+d.DeltaRow, column+d.DeltaColumn
		for {
			if b[r][c] == Cell(player) {
				found = true
				break
			}
			if b[r][c] != opponent {
				// An empty cell breaks the run before a friendly piece.
				break
			}
			run++
			if !onGrid(r, c, d) {
				// The run reached the edge without a friendly terminator.
				break
			}
			r += d.DeltaRow
			c += d.DeltaColumn
		}

		if found {
			captured += run
			dirs = append(dirs, d)
		}
	}

	return captured, dirs
}
