package metrics

import (
	"sync/atomic"
	"time"

	"othello/game"
)

// SearchMetric summarizes one search invocation.
type SearchMetric struct {
	Depth    int
	Nodes    int
	Duration time.Duration
}

// MoveMetric ties a search summary to its place in a game.
type MoveMetric struct {
	Step   int
	Player int
	Move   game.Move
	SearchMetric
}

// GameMetric summarizes one complete game.
type GameMetric struct {
	StartingPlayer int
	Outcome        game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates search statistics between Start and Complete.
type Collector interface {
	Start(depth int)
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Nodes:    int(c.nodes.Load()),
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for callers
// that do not want the bookkeeping on the search hot path.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(depth int)        {}
func (d *dummyCollector) AddNode()               {}
func (d *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
