package game

// Outcome describes how a finished game ended.
type Outcome struct {
	Winner Player
	Draw   bool
}

func (o Outcome) String() string {
	if o.Draw {
		return "draw"
	}
	return o.Winner.String()
}

// OutcomeOf derives the result of a position from First's evaluation.
// It is only meaningful once the position has no legal moves.
func OutcomeOf[M any, S State[M, S]](state S) Outcome {
	score := state.Evaluate(First)
	switch {
	case score > 0:
		return Outcome{Winner: First}
	case score < 0:
		return Outcome{Winner: Second}
	default:
		return Outcome{Draw: true}
	}
}
