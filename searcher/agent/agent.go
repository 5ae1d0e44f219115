package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Agent picks exactly one move per turn request, along with the search
// statistics behind it (zero-valued for strategies that do not search).
// Implementations return game.ErrNoLegalMoves when the side to move cannot
// play, so callers can tell "no move exists" apart from a real failure.
type Agent interface {
	FindMove(player int, b game.Board) (game.Move, metrics.SearchMetric, error)
}
