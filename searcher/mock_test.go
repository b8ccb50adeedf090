package searcher

import "minmax/game"

// tree is a hand-built game tree; score is from game.First's point of view.
type tree struct {
	score    int
	children []*tree
}

func leaf(score int) *tree {
	return &tree{score: score}
}

func node(score int, children ...*tree) *tree {
	return &tree{score: score, children: children}
}

type mockState struct {
	turn   game.Player
	at     *tree
	clones int
}

func newMockState(turn game.Player, root *tree) *mockState {
	return &mockState{turn: turn, at: root}
}

func (m *mockState) Turn() game.Player {
	return m.turn
}

func (m *mockState) Apply(move int) {
	m.at = m.at.children[move]
	m.turn = m.turn.Other()
}

func (m *mockState) LegalMoves() []int {
	moves := make([]int, len(m.at.children))
	for i := range moves {
		moves[i] = i
	}
	return moves
}

func (m *mockState) Evaluate(perspective game.Player) int {
	if perspective == game.First {
		return m.at.score
	}
	return -m.at.score
}

func (m *mockState) Clone() *mockState {
	m.clones++
	return &mockState{turn: m.turn, at: m.at}
}
