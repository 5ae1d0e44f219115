package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher/agent"
)

// Engine drives a complete local game between two agents, handling turn
// alternation and passes. It exists for strategy comparison runs and
// end-to-end tests; networked play goes through communication/client instead.
type Engine struct {
	State  game.Board
	Agents [2]agent.Agent
	Moves  int
}

func Local(player1, player2 agent.Agent) *Engine {
	return &Engine{
		State:  game.NewStartingBoard(),
		Agents: [2]agent.Agent{player1, player2},
	}
}

// Run plays until neither side has a legal move and returns the outcome
// along with one metric per move played. A side with no legal moves passes;
// the game itself guarantees the loop ends because every played move fills
// a square.
func (e *Engine) Run() (game.Outcome, []metrics.MoveMetric, error) {
	current := 1
	log.Info().Int("player", current).Msg("game starting")

	var moveMetrics []metrics.MoveMetric
	for {
		outcome := game.CheckOutcome(e.State)
		if outcome != game.Open {
			log.Info().
				Int("moves", e.Moves).
				Stringer("outcome", outcome).
				Msg("game over")
			log.Debug().Msg("\n" + Render(e.State))
			return outcome, moveMetrics, nil
		}

		if len(game.LegalMoves(current, e.State)) == 0 {
			log.Debug().Int("player", current).Msg("no legal moves, passing")
			current = game.Opponent(current)
			continue
		}

		move, metric, err := e.Agents[current-1].FindMove(current, e.State)
		if err != nil {
			return game.Open, moveMetrics, fmt.Errorf("player %d: %w", current, err)
		}
		e.State = game.Apply(current, e.State, move)
		e.Moves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.Moves,
			Player:       current,
			Move:         move,
			SearchMetric: metric,
		})
		current = game.Opponent(current)
	}
}
