package engine

import (
	"errors"

	"minmax/experiments/metrics"
	"minmax/game"
)

const MaxMoves = 10000

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
