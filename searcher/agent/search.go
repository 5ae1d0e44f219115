package agent

import (
	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

// Search adapts a Searcher to the Agent interface.
type Search struct {
	searcher *searcher.Searcher
}

func NewSearch(s *searcher.Searcher) *Search {
	if s == nil {
		s = searcher.New()
	}
	return &Search{searcher: s}
}

func (a *Search) FindMove(player int, b game.Board) (game.Move, metrics.SearchMetric, error) {
	move, metric, err := a.searcher.FindMove(player, b)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	log.Debug().
		Int("player", player).
		Int("row", move.Row).
		Int("column", move.Column).
		Int("depth", metric.Depth).
		Int("nodes", metric.Nodes).
		Dur("took", metric.Duration).
		Msg("search finished")
	return move, metric, nil
}
