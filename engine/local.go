package engine

import (
	"fmt"
	"time"

	"minmax/experiments/metrics"
	"minmax/game"
	"minmax/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Observer is called after every applied move with the new position.
type Observer[M any, S any] func(step int, player game.Player, move M, state S)

// Local plays a game between two in-process agents on a state it owns.
type Local[M comparable, S game.State[M, S]] struct {
	State    S
	agents   [2]agent.Agent[M, S]
	maxMoves int
	observer Observer[M, S]
}

// NewLocal returns an engine playing from state, first moving for
// game.First and second for game.Second. The state is modified in place.
func NewLocal[M comparable, S game.State[M, S]](state S, first, second agent.Agent[M, S]) *Local[M, S] {
	return &Local[M, S]{
		State:    state,
		agents:   [2]agent.Agent[M, S]{first, second},
		maxMoves: MaxMoves,
	}
}

// WithMaxMoves caps the number of moves played before the game is stopped.
func (e *Local[M, S]) WithMaxMoves(maxMoves int) *Local[M, S] {
	e.maxMoves = maxMoves
	return e
}

func (e *Local[M, S]) WithObserver(observer Observer[M, S]) *Local[M, S] {
	e.observer = observer
	return e
}

// Run executes the game loop until no legal move is left. Every move returned
// by an agent is checked against the enumerated moves before it is applied.
// On error the metrics of the moves played so far are returned.
func (e *Local[M, S]) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s player is starting", e.State.Turn())

	step := 1
	for ; step <= e.maxMoves; step++ {
		legal := e.State.LegalMoves()
		if len(legal) == 0 {
			break
		}

		player := e.State.Turn()
		move, searchMetric, err := e.agents[player].FindMove(e.State)
		if err != nil {
			return game.Outcome{}, e.complete(gameMetric, moveMetrics, "aborted"), moveMetrics,
				fmt.Errorf("%s player at move %d: %w", player, step, err)
		}
		if !lo.Contains(legal, move) {
			return game.Outcome{}, e.complete(gameMetric, moveMetrics, "aborted"), moveMetrics,
				fmt.Errorf("%w: %v by %s player at move %d", ErrIllegalMove, move, player, step)
		}

		e.State.Apply(move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("player", player.String()).Msgf("played %v", move)

		if e.observer != nil {
			e.observer(step, player, move, e.State)
		}
	}

	if game.HasLegalMove[M](e.State) {
		log.Warn().Msgf("stopped after %d moves with the game still running", e.maxMoves)
	}

	outcome := game.OutcomeOf[M](e.State)
	gameMetric = e.complete(gameMetric, moveMetrics, outcome.String())
	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, outcome)

	return outcome, gameMetric, moveMetrics, nil
}

func (e *Local[M, S]) complete(gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, winner string) metrics.GameMetric {
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return gameMetric
}
