package agent

import (
	"minmax/experiments/metrics"
	"minmax/game"
	"minmax/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent[M any, S game.State[M, S]] struct {
	eval    evaluationAgent[M, S]
	epsilon float64
	random  *rand.Rand
}

// NewTrainingAgent returns an epsilon-greedy agent for self-play: with
// probability epsilon it plays a uniformly random legal move, otherwise the
// searched best move. Agents built with the same seed make the same choices.
func NewTrainingAgent[M any, S game.State[M, S]](minimax *searcher.Minimax[M, S], epsilon float64, seed uint64) Agent[M, S] {
	return &trainingAgent[M, S]{
		eval:    evaluationAgent[M, S]{minimax: minimax},
		epsilon: epsilon,
		random:  rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent[M, S]) FindMove(state S) (M, metrics.SearchMetric, error) {
	if a.epsilon > 0 && a.random.Float64() < a.epsilon {
		moves := state.LegalMoves()
		if len(moves) > 0 {
			// Exploration skips the search, only the depth is reported
			return moves[a.random.Intn(len(moves))], metrics.SearchMetric{Depth: a.eval.minimax.Depth()}, nil
		}
	}
	return a.eval.FindMove(state)
}
