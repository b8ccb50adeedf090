package engine

import (
	"errors"
	"os"
	"testing"

	"minmax/experiments/metrics"
	"minmax/game"
	"minmax/searcher"
	"minmax/searcher/agent"
	"minmax/tictactoe"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

type board = *tictactoe.Board

// scriptedAgent plays fixed moves in order, or fails once they run out
type scriptedAgent struct {
	moves []tictactoe.Move
	calls int
}

func (a *scriptedAgent) FindMove(state board) (tictactoe.Move, metrics.SearchMetric, error) {
	if a.calls >= len(a.moves) {
		return 0, metrics.SearchMetric{}, errors.New("script exhausted")
	}
	move := a.moves[a.calls]
	a.calls++
	return move, metrics.SearchMetric{Depth: a.calls}, nil
}

func minimaxAgent(depth int) agent.Agent[tictactoe.Move, board] {
	return agent.NewEvaluationAgent(searcher.NewMinimax[tictactoe.Move, board](searcher.WithDepth(depth), searcher.WithMetrics()))
}

func TestLocalRun(t *testing.T) {
	t.Run("optimal self play is a draw", func(t *testing.T) {
		e := NewLocal(tictactoe.New(), minimaxAgent(9), minimaxAgent(9))

		outcome, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, game.Outcome{Draw: true}, outcome)
		require.Equal(t, "draw", gameMetric.Winner)
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 9)
		require.True(t, e.State.Full())
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Equal(t, 9, mm.Depth)
			require.Positive(t, mm.Nodes)
		}
		require.Equal(t, "first", moveMetrics[0].Player)
		require.Equal(t, "second", moveMetrics[1].Player)
	})

	t.Run("scripted win", func(t *testing.T) {
		first := &scriptedAgent{moves: []tictactoe.Move{tictactoe.A1, tictactoe.B1, tictactoe.C1}}
		second := &scriptedAgent{moves: []tictactoe.Move{tictactoe.A3, tictactoe.B3}}
		e := NewLocal[tictactoe.Move, board](tictactoe.New(), first, second)

		outcome, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, game.Outcome{Winner: game.First}, outcome)
		require.Equal(t, "first", gameMetric.Winner)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Equal(t, []string{"a1", "a3", "b1", "b3", "c1"}, []string{
			moveMetrics[0].Move, moveMetrics[1].Move, moveMetrics[2].Move, moveMetrics[3].Move, moveMetrics[4].Move,
		})
	})

	t.Run("depth advantage wins", func(t *testing.T) {
		// Cross to move on "x.o ..o .x." must block on c1; a one-ply cross does not see it
		b, err := tictactoe.FromString("x.o ..o .x.")
		require.NoError(t, err)

		e := NewLocal(b, minimaxAgent(1), minimaxAgent(9))
		outcome, _, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, game.Outcome{Winner: game.Second}, outcome)
		require.Equal(t, "b3", moveMetrics[0].Move)
	})

	t.Run("observer sees every move", func(t *testing.T) {
		var steps []int
		var players []game.Player
		e := NewLocal(tictactoe.New(), minimaxAgent(2), minimaxAgent(2)).
			WithObserver(func(step int, player game.Player, move tictactoe.Move, state board) {
				steps = append(steps, step)
				players = append(players, player)
				require.NotEqual(t, tictactoe.Empty, state.Cell(move))
			})

		_, gameMetric, _, err := e.Run()
		require.NoError(t, err)
		require.Len(t, steps, gameMetric.TotalMoves)
		for i := range steps {
			require.Equal(t, i+1, steps[i])
			require.Equal(t, game.Player(i%2), players[i])
		}
	})

	t.Run("move cap stops the game", func(t *testing.T) {
		e := NewLocal(tictactoe.New(), minimaxAgent(1), minimaxAgent(1)).WithMaxMoves(3)

		outcome, gameMetric, _, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.True(t, outcome.Draw, "Undecided positions count as draws")
	})

	t.Run("finished game plays nothing", func(t *testing.T) {
		b, err := tictactoe.FromString("xxx oo. ...")
		require.NoError(t, err)

		outcome, gameMetric, moveMetrics, err := NewLocal(b, minimaxAgent(9), minimaxAgent(9)).Run()
		require.NoError(t, err)
		require.Equal(t, game.First, outcome.Winner)
		require.Zero(t, gameMetric.TotalMoves)
		require.Empty(t, moveMetrics)
	})
}

func TestLocalRunErrors(t *testing.T) {
	t.Run("illegal move is rejected", func(t *testing.T) {
		first := &scriptedAgent{moves: []tictactoe.Move{tictactoe.B2, tictactoe.A3}}
		second := &scriptedAgent{moves: []tictactoe.Move{tictactoe.B2}}
		e := NewLocal[tictactoe.Move, board](tictactoe.New(), first, second)

		_, gameMetric, moveMetrics, err := e.Run()
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, "aborted", gameMetric.Winner)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, tictactoe.Cross, e.State.Cell(tictactoe.B2), "Rejected move should not be applied")
	})

	t.Run("agent errors are propagated", func(t *testing.T) {
		first := &scriptedAgent{moves: []tictactoe.Move{tictactoe.B2}}
		second := &scriptedAgent{}
		e := NewLocal[tictactoe.Move, board](tictactoe.New(), first, second)

		_, _, moveMetrics, err := e.Run()
		require.ErrorContains(t, err, "script exhausted")
		require.ErrorContains(t, err, "second player at move 2")
		require.Len(t, moveMetrics, 1)
	})
}
