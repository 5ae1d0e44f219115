package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

// DefaultDepth bounds the lookahead. Depth also bounds latency: node count
// grows as branching^depth and nothing inside the search enforces the
// server's turn-time budget, so the depth is the only throttle.
const DefaultDepth = 5

type Option func(s *Searcher)

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// Searcher evaluates positions with a depth-bounded recursion that maximizes
// over the player's own moves and models the opponent as a uniformly random
// mover. The opponent branch samples a single reply per node instead of
// averaging over all of them, so the returned score is a random variable:
// two evaluations of the same position can disagree unless the random source
// is seeded. See Score.
type Searcher struct {
	depth   int
	rng     *rand.Rand
	metrics metrics.Collector
}

func New(options ...Option) *Searcher {
	s := &Searcher{
		depth:   DefaultDepth,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// FindMove scores every legal root move at full depth and returns the best.
// Each candidate is applied first and then evaluated as the opponent's turn,
// since the mover has just moved. The running-best comparison is >=, so
// among equal scores the last move in scan order wins.
func (s *Searcher) FindMove(player int, b game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := game.LegalMoves(player, b)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, game.ErrNoLegalMoves
	}

	s.metrics.Start(s.depth)
	var best game.Move
	bestScore := math.MinInt
	for _, m := range moves {
		score := s.Score(player, game.Apply(player, b, m), s.depth, false)
		if score >= bestScore {
			best = m
			bestScore = score
		}
	}
	return best, s.metrics.Complete(), nil
}

// Score evaluates the board from the perspective player's point of view with
// remaining plies of lookahead. playerTurn selects the maximizing branch;
// otherwise one opponent reply is sampled uniformly at random. A side with
// no legal moves passes: the turn flips and a ply is consumed, but the board
// stays as it is. Recursion always terminates because remaining strictly
// decreases.
func (s *Searcher) Score(player int, b game.Board, remaining int, playerTurn bool) int {
	s.metrics.AddNode()

	// Depth exhaustion outranks the terminal check: a terminal board at
	// depth zero still scores as raw surplus, never as a win or loss bonus.
	if remaining == 0 {
		return game.Surplus(player, b)
	}

	if outcome := game.CheckOutcome(b); outcome != game.Open {
		if outcome == game.Tie {
			return 0
		}
		if outcome.WonBy(player) {
			return game.WinScore + game.Surplus(player, b)
		}
		return game.LoseScore + game.Surplus(player, b)
	}

	if playerTurn {
		moves := game.LegalMoves(player, b)
		if len(moves) == 0 {
			return s.Score(player, b, remaining-1, false)
		}
		// The running maximum starts at LoseScore, so a turn with moves
		// never reports worse than a plain loss even when every line does.
		best := game.LoseScore
		for _, m := range moves {
			score := s.Score(player, game.Apply(player, b, m), remaining-1, false)
			if score > best {
				best = score
			}
		}
		return best
	}

	opponent := game.Opponent(player)
	moves := game.LegalMoves(opponent, b)
	if len(moves) == 0 {
		return s.Score(player, b, remaining-1, true)
	}
	m := moves[s.rng.Intn(len(moves))]
	return s.Score(player, game.Apply(opponent, b, m), remaining-1, true)
}
