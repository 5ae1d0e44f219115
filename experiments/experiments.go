package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

const recordDir = "experiments"

// RunStrategyComparison plays the search strategy (player 1) against the
// greedy strategy (player 2) for the given number of games and writes
// per-game CSV records. Each game gets its own derived seed so runs are
// reproducible from the base seed alone.
func RunStrategyComparison(games, depth int, seed uint64) error {
	log.Info().Int("games", games).Int("depth", depth).Msg("starting strategy comparison")

	gameRecords := make([]metrics.GameRecord, 0, games)
	var moveRecords []metrics.MoveRecord
	wins := map[game.Outcome]int{}

	for i := 0; i < games; i++ {
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		search := agent.NewSearch(searcher.New(
			searcher.WithDepth(depth),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		))
		greedy := agent.NewGreedy(rng)

		e := engine.Local(search, greedy)
		start := time.Now()
		outcome, moveMetrics, err := e.Run()
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		end := time.Now()

		wins[outcome]++
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:     i + 1,
			Agent1: "search",
			Agent2: "greedy",
			GameMetric: metrics.GameMetric{
				StartingPlayer: 1,
				Outcome:        outcome,
				StartTime:      start,
				EndTime:        end,
				Duration:       end.Sub(start),
				TotalMoves:     e.Moves,
			},
		})
	}

	log.Info().
		Int("search", wins[game.Player1Wins]).
		Int("greedy", wins[game.Player2Wins]).
		Int("ties", wins[game.Tie]).
		Msg("comparison finished")

	writer, err := metrics.NewWriter(recordDir)
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}
