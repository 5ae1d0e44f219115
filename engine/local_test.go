package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

func TestLocalRun(t *testing.T) {
	t.Run("greedy self-play reaches a terminal board", func(t *testing.T) {
		e := Local(
			agent.NewGreedy(rand.New(rand.NewSource(1))),
			agent.NewGreedy(rand.New(rand.NewSource(2))),
		)

		outcome, _, err := e.Run()

		require.NoError(t, err)
		require.NotEqual(t, game.Open, outcome, "A finished game should have a final outcome")
		require.Equal(t, game.CheckOutcome(e.State), outcome)
		require.Greater(t, e.Moves, 0)
	})

	t.Run("every move fills exactly one square", func(t *testing.T) {
		e := Local(
			agent.NewGreedy(rand.New(rand.NewSource(3))),
			agent.NewGreedy(rand.New(rand.NewSource(4))),
		)

		_, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 60-e.Moves, e.State.Count(game.Empty),
			"The opening board has sixty empty squares and each move fills one")
	})

	t.Run("collects one metric per move played", func(t *testing.T) {
		search := agent.NewSearch(searcher.New(
			searcher.WithRand(rand.New(rand.NewSource(5))),
			searcher.WithDepth(1),
			searcher.WithMetrics(),
		))
		e := Local(search, agent.NewGreedy(rand.New(rand.NewSource(6))))

		_, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Len(t, moveMetrics, e.Moves)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step, "Steps should number moves from one")
			require.Contains(t, []int{1, 2}, mm.Player)
			if mm.Player == 1 {
				require.Greater(t, mm.Nodes, 0, "The searching player's metrics should carry node counts")
				require.Equal(t, 1, mm.Depth)
			}
		}
	})
}

func TestRender(t *testing.T) {
	got := Render(game.NewStartingBoard())

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, game.NumRows+1, "Render should emit a header plus one line per row")
	require.Equal(t, "  0 1 2 3 4 5 6 7", lines[0])
}
