package game

// Player identifies one of the two sides of a zero-sum game.
type Player uint8

const (
	First Player = iota
	Second
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == First {
		return Second
	}
	return First
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "unknown"
	}
}

// State is the contract a two-player, zero-sum, perfect-information game must
// satisfy to be searched. M is the game's move type and S the concrete state
// type returned by Clone.
//
// A State is owned by a single caller at a time; searchers clone it before
// applying candidate moves so sibling branches never share memory.
type State[M any, S any] interface {
	// Turn returns the player to move.
	Turn() Player
	// Apply plays a move in place and advances the turn. The move must come
	// from LegalMoves on an equal state; other moves are not validated.
	Apply(move M)
	// LegalMoves returns the moves available in enumeration order. A decided
	// position returns no moves.
	LegalMoves() []M
	// Evaluate scores the position from perspective's point of view: positive
	// if perspective has won, negative if it has lost, zero otherwise.
	Evaluate(perspective Player) int
	// Clone returns a copy sharing no mutable memory with the receiver.
	Clone() S
}

// HasLegalMove reports whether the state enumerates at least one move.
func HasLegalMove[M any, S State[M, S]](state S) bool {
	return len(state.LegalMoves()) > 0
}
