package searcher

import (
	"fmt"

	"minmax/experiments/metrics"
	"minmax/game"

	"github.com/rs/zerolog/log"
)

// Solve runs a depth-bounded minimax search of state from perspective's point
// of view. The perspective player's turns maximise the score, the opponent's
// turns minimise it. Among equally scored moves the first one enumerated wins.
//
// depth counts plies below state; at depth zero the static evaluation is
// returned without expanding children, terminal or not.
func Solve[M any, S game.State[M, S]](state S, perspective game.Player, depth int) Result[M] {
	return solve[M](state, perspective, depth, metrics.NewDummyCollector())
}

func solve[M any, S game.State[M, S]](state S, perspective game.Player, depth int, collector metrics.Collector) Result[M] {
	collector.AddNode()

	if depth <= 0 {
		collector.AddLeaf(false)
		return Result[M]{Score: state.Evaluate(perspective)}
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		collector.AddLeaf(true)
		return Result[M]{Score: state.Evaluate(perspective)}
	}

	maximize := state.Turn() == perspective

	var best Result[M]
	for _, move := range moves {
		child := state.Clone()
		child.Apply(move)
		score := solve[M](child, perspective, depth-1, collector).Score

		if !best.Found || (maximize && score > best.Score) || (!maximize && score < best.Score) {
			best = Result[M]{Score: score, Move: move, Found: true}
		}
	}
	return best
}

// Minimax is a configured searcher for one game type.
type Minimax[M any, S game.State[M, S]] struct {
	depth   int
	metrics metrics.Collector
}

func NewMinimax[M any, S game.State[M, S]](options ...Option) *Minimax[M, S] {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}

	m := &Minimax[M, S]{
		depth:   s.depth,
		metrics: metrics.NewDummyCollector(),
	}
	if s.metrics {
		m.metrics = metrics.NewCollector()
	}
	return m
}

func (m *Minimax[M, S]) Depth() int {
	return m.depth
}

// Search solves state for perspective. The state is cloned before any move
// is applied, so the caller's state is left untouched.
func (m *Minimax[M, S]) Search(state S, perspective game.Player) (Result[M], metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	result := solve[M](state, perspective, m.depth, m.metrics)
	metric := m.metrics.Complete(result.Score)
	metric.Depth = m.depth

	event := log.Debug().
		Str("perspective", perspective.String()).
		Int("depth", m.depth).
		Int("score", result.Score).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration)
	if result.Found {
		event = event.Str("move", fmt.Sprint(result.Move))
	}
	event.Msg("search completed")

	return result, metric
}

// FindMove searches from the point of view of the player to move and returns
// its best move. ok is false when the game is already over or the depth is
// zero.
func (m *Minimax[M, S]) FindMove(state S) (move M, ok bool, metric metrics.SearchMetric) {
	result, metric := m.Search(state, state.Turn())
	return result.Move, result.Found, metric
}
