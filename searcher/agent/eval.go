package agent

import (
	"fmt"

	"minmax/experiments/metrics"
	"minmax/game"
	"minmax/searcher"
)

type evaluationAgent[M any, S game.State[M, S]] struct {
	minimax *searcher.Minimax[M, S]
}

// NewEvaluationAgent returns an agent that always plays the searched best move.
func NewEvaluationAgent[M any, S game.State[M, S]](minimax *searcher.Minimax[M, S]) Agent[M, S] {
	return evaluationAgent[M, S]{minimax: minimax}
}

func (a evaluationAgent[M, S]) FindMove(state S) (M, metrics.SearchMetric, error) {
	move, ok, metric := a.minimax.FindMove(state)
	if !ok {
		return move, metric, fmt.Errorf("%w: search depth %d from %s", ErrNoMove, a.minimax.Depth(), state.Turn())
	}
	return move, metric, nil
}
