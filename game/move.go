package game

import "errors"

// ErrNoLegalMoves is returned by agents asked to move on a board where the
// side to move cannot capture anything.
var ErrNoLegalMoves = errors.New("no legal moves")

// Move identifies the empty square a player claims on their turn.
type Move struct {
	Row    int
	Column int
}

// LegalMoves returns every square where placing the player's piece captures
// at least one opponent piece, in row-major scan order.
func LegalMoves(player int, b Board) []Move {
	moves, _ := LegalMovesWithCaptures(player, b)
	return moves
}

// LegalMovesWithCaptures additionally returns, in the same order, how many
// opponent pieces each move captures. The greedy strategy ranks moves by
// these counts.
func LegalMovesWithCaptures(player int, b Board) ([]Move, []int) {
	var moves []Move
	var captures []int
	for row := 0; row < NumRows; row++ {
		for column := 0; column < NumColumns; column++ {
			if b[row][column] != Empty {
				continue
			}
			captured, dirs := CaptureDetails(player, b, row, column)
			if len(dirs) > 0 {
				moves = append(moves, Move{Row: row, Column: column})
				captures = append(captures, captured)
			}
		}
	}
	return moves, captures
}

// Apply places the player's piece on the move square and flips every captured
// run up to, but not including, the friendly piece that terminates it. The
// input board is unchanged; callers get an independent copy per move, so
// sibling branches in a search never see each other's speculative boards.
// The move must come from LegalMoves for the same player and board.
func Apply(player int, b Board, m Move) Board {
	next := b
	next[m.Row][m.Column] = Cell(player)

	opponent := Cell(Opponent(player))
	_, dirs := CaptureDetails(player, next, m.Row, m.Column)
	for _, d := range dirs {
		r, c := m.Row+d.DeltaRow, m.Column+d.DeltaColumn
		for next[r][c] == opponent {
			next[r][c] = Cell(player)
			r += d.DeltaRow
			c += d.DeltaColumn
		}
	}
	return next
}
