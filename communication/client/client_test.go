package client

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"othello/experiments/metrics"
	"othello/game"
)

// stubAgent returns a fixed move or error for every turn request.
type stubAgent struct {
	move game.Move
	err  error
}

func (s stubAgent) FindMove(player int, b game.Board) (game.Move, metrics.SearchMetric, error) {
	return s.move, metrics.SearchMetric{}, s.err
}

func openingGrid() [][]int {
	grid := make([][]int, game.NumRows)
	for r := range grid {
		grid[r] = make([]int, game.NumColumns)
	}
	grid[3][3] = 1
	grid[3][4] = 2
	grid[4][3] = 2
	grid[4][4] = 1
	return grid
}

func TestEncodeMove(t *testing.T) {
	require.Equal(t, "[2, 4]\n", string(EncodeMove(game.Move{Row: 2, Column: 4})))
	require.Equal(t, "[0, 0]\n", string(EncodeMove(game.Move{})))
}

func TestTurnRequestDecoding(t *testing.T) {
	raw := `{"board": [[0,0],[1,2]], "maxTurnTime": 15000, "player": 2}`

	var request TurnRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &request))

	require.Equal(t, 2, request.Player)
	require.Equal(t, 15000, request.MaxTurnTime)
	require.Equal(t, [][]int{{0, 0}, {1, 2}}, request.Board)
}

func TestRespond(t *testing.T) {
	t.Run("answers a valid request with the agent's move", func(t *testing.T) {
		c := New("localhost", 1337, stubAgent{move: game.Move{Row: 2, Column: 4}})

		response, err := c.respond(TurnRequest{Board: openingGrid(), Player: 1})

		require.NoError(t, err)
		require.Equal(t, "[2, 4]\n", string(response))
	})

	t.Run("rejects an out-of-range player", func(t *testing.T) {
		c := New("localhost", 1337, stubAgent{})

		_, err := c.respond(TurnRequest{Board: openingGrid(), Player: 3})

		require.Error(t, err)
	})

	t.Run("rejects a malformed board", func(t *testing.T) {
		c := New("localhost", 1337, stubAgent{})

		_, err := c.respond(TurnRequest{Board: [][]int{{0}}, Player: 1})

		require.Error(t, err)
	})

	t.Run("surfaces the agent's no-move error", func(t *testing.T) {
		c := New("localhost", 1337, stubAgent{err: game.ErrNoLegalMoves})

		_, err := c.respond(TurnRequest{Board: openingGrid(), Player: 1})

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})
}

func TestServe(t *testing.T) {
	t.Run("answers each request and ends cleanly on EOF", func(t *testing.T) {
		server, conn := net.Pipe()
		c := New("localhost", 1337, stubAgent{move: game.Move{Row: 2, Column: 4}})

		done := make(chan error, 1)
		go func() {
			done <- c.serve(conn)
		}()

		request, err := json.Marshal(TurnRequest{Board: openingGrid(), MaxTurnTime: 15000, Player: 1})
		require.NoError(t, err)
		_, err = server.Write(request)
		require.NoError(t, err)

		line, err := bufio.NewReader(server).ReadString('\n')
		require.NoError(t, err)
		require.Equal(t, "[2, 4]\n", line)

		require.NoError(t, server.Close())
		select {
		case err := <-done:
			require.NoError(t, err, "End-of-stream should end the session without error")
		case <-time.After(time.Second):
			t.Fatal("serve did not return after the server closed the stream")
		}
	})

	t.Run("reconnects without the failure pause after a clean close", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer listener.Close()
		port := listener.Addr().(*net.TCPAddr).Port

		// Run loops forever; the test only watches its first two dials.
		go New("127.0.0.1", port, stubAgent{}).Run()

		first, err := listener.Accept()
		require.NoError(t, err)
		require.NoError(t, first.Close()) // clean end-of-stream
		closed := time.Now()

		second, err := listener.Accept()
		require.NoError(t, err)
		defer second.Close()
		require.Less(t, time.Since(closed), reconnectDelay,
			"A clean close should reconnect immediately, not after the failure pause")
	})

	t.Run("reports a decode failure", func(t *testing.T) {
		server, conn := net.Pipe()
		c := New("localhost", 1337, stubAgent{})

		done := make(chan error, 1)
		go func() {
			done <- c.serve(conn)
		}()

		_, err := server.Write([]byte("not json\n"))
		require.NoError(t, err)

		select {
		case err := <-done:
			require.Error(t, err)
		case <-time.After(time.Second):
			t.Fatal("serve did not return on a malformed message")
		}
	})
}
