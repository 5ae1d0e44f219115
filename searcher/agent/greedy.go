package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

// Greedy picks the move that captures the most pieces this turn, choosing
// uniformly at random among tied maxima.
type Greedy struct {
	rng *rand.Rand
}

func NewGreedy(rng *rand.Rand) *Greedy {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Greedy{rng: rng}
}

// FindMove looks one ply ahead, so its metric carries only the elapsed time.
func (g *Greedy) FindMove(player int, b game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	moves, captures := game.LegalMovesWithCaptures(player, b)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, game.ErrNoLegalMoves
	}

	most := captures[0]
	for _, n := range captures[1:] {
		if n > most {
			most = n
		}
	}

	var best []int
	for i, n := range captures {
		if n == most {
			best = append(best, i)
		}
	}
	return moves[best[g.rng.Intn(len(best))]], metrics.SearchMetric{Duration: time.Since(start)}, nil
}
