package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/searcher/agent"
)

// reconnectDelay is the fixed pause between connection attempts.
const reconnectDelay = time.Second

// TurnRequest is one decoded server message: the full board, whose turn it
// is, and an advisory time budget the engine does not enforce.
type TurnRequest struct {
	Board       [][]int `json:"board"`
	MaxTurnTime int     `json:"maxTurnTime"`
	Player      int     `json:"player"`
}

// Client connects to the game server, answers every turn request with the
// configured agent's move, and reconnects after any failure.
type Client struct {
	addr  string
	agent agent.Agent
}

func New(host string, port int, a agent.Agent) *Client {
	return &Client{
		addr:  net.JoinHostPort(host, strconv.Itoa(port)),
		agent: a,
	}
}

// Run connects and plays indefinitely. Any session failure tears the
// connection down, waits one second, and dials again; a clean end-of-stream
// reconnects right away, without the failure pause. Run never returns.
func (c *Client) Run() {
	for {
		if err := c.playSession(); err != nil {
			log.Error().Err(err).Msg("session ended, reconnecting after pause")
			time.Sleep(reconnectDelay)
			continue
		}
		log.Info().Msg("connection to server closed, reconnecting")
	}
}

func (c *Client) playSession() error {
	conn, err := net.Dial("tcp", c.addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", c.addr, err)
	}
	defer conn.Close()
	log.Info().Str("server", c.addr).Msg("connected")

	return c.serve(conn)
}

// serve answers turn requests on one connection until it fails or the server
// closes it. A nil return means clean end-of-stream.
func (c *Client) serve(conn net.Conn) error {
	decoder := json.NewDecoder(conn)
	for {
		var request TurnRequest
		if err := decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode turn request: %w", err)
		}

		response, err := c.respond(request)
		if err != nil {
			return err
		}
		if _, err := conn.Write(response); err != nil {
			return fmt.Errorf("send move: %w", err)
		}
	}
}

// respond validates the request, asks the agent for a move, and encodes it.
func (c *Client) respond(request TurnRequest) ([]byte, error) {
	if !game.ValidPlayer(request.Player) {
		return nil, fmt.Errorf("turn request for player %d, want 1 or 2", request.Player)
	}
	board, err := game.FromGrid(request.Board)
	if err != nil {
		return nil, fmt.Errorf("turn request: %w", err)
	}

	start := time.Now()
	move, metric, err := c.agent.FindMove(request.Player, board)
	if err != nil {
		return nil, fmt.Errorf("player %d: %w", request.Player, err)
	}
	log.Info().
		Int("player", request.Player).
		Int("maxTurnTime", request.MaxTurnTime).
		Int("row", move.Row).
		Int("column", move.Column).
		Int("nodes", metric.Nodes).
		Dur("took", time.Since(start)).
		Msg("sending move")
	return EncodeMove(move), nil
}

// EncodeMove renders a move in the server's wire format: a bracketed
// two-element integer list followed by a newline, e.g. "[2, 4]\n".
func EncodeMove(m game.Move) []byte {
	return []byte(fmt.Sprintf("[%d, %d]\n", m.Row, m.Column))
}
