package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth          int
	Duration       time.Duration
	Nodes          int // Every position visited, root included
	Leaves         int // Positions scored by static evaluation
	TerminalLeaves int // Leaves with no legal moves
	HorizonCutoffs int // Leaves cut off by the depth budget
	Score          int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	Winner     string // "first", "second" or "draw"
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// AgentConfig describes one searching agent taking part in an experiment.
type AgentConfig struct {
	ID      int
	Depth   int
	Epsilon float64 // Probability of playing a random move instead of the searched one
}

// Collector counts the work done by a single search. Searches are
// single-threaded so implementations need no synchronization.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf(terminal bool)
	Complete(score int) SearchMetric
}

type collector struct {
	depth          int
	startTime      time.Time
	nodes          int
	leaves         int
	terminalLeaves int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.nodes = 0
	m.leaves = 0
	m.terminalLeaves = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf(terminal bool) {
	m.leaves++
	if terminal {
		m.terminalLeaves++
	}
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:          m.depth,
		Duration:       time.Since(m.startTime),
		Nodes:          m.nodes,
		Leaves:         m.leaves,
		TerminalLeaves: m.terminalLeaves,
		HorizonCutoffs: m.leaves - m.terminalLeaves,
		Score:          score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf(terminal bool)           {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{Score: score} }
