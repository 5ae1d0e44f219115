package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/communication/client"
	"othello/experiments"
	"othello/searcher"
	"othello/searcher/agent"
)

func main() {
	host := flag.String("host", defaultHost(), "game server host")
	port := flag.Int("port", 1337, "game server port (1337 for player 1, 1338 for player 2)")
	strategy := flag.String("strategy", "search", "move selection strategy: search or greedy")
	depth := flag.Int("depth", searcher.DefaultDepth, "search depth in plies")
	seed := flag.Uint64("seed", 0, "random seed, 0 for time-based")
	selfplay := flag.Int("selfplay", 0, "play N local games of search vs greedy instead of connecting")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *selfplay > 0 {
		if err := experiments.RunStrategyComparison(*selfplay, *depth, *seed); err != nil {
			log.Fatal().Err(err).Msg("strategy comparison failed")
		}
		return
	}

	chosen, err := newAgent(*strategy, *depth, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Str("strategy", *strategy).
		Str("host", *host).
		Int("port", *port).
		Msg("starting client")
	client.New(*host, *port, chosen).Run()
}

func newAgent(strategy string, depth int, seed uint64) (agent.Agent, error) {
	rng := rand.New(rand.NewSource(seed))
	switch strategy {
	case "greedy":
		return agent.NewGreedy(rng), nil
	case "search":
		return agent.NewSearch(searcher.New(
			searcher.WithDepth(depth),
			searcher.WithRand(rng),
			searcher.WithMetrics(),
		)), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q, want search or greedy", strategy)
	}
}

func defaultHost() string {
	host, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return host
}
