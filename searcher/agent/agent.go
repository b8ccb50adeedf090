package agent

import (
	"errors"

	"minmax/experiments/metrics"
	"minmax/game"
)

var ErrNoMove = errors.New("no move available")

type Agent[M any, S game.State[M, S]] interface {
	// FindMove returns the move to play in state and the metrics of the search
	// behind it (if collected). The state must not be modified.
	FindMove(state S) (M, metrics.SearchMetric, error)
}
