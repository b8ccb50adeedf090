package tictactoe

import (
	"fmt"
	"math/bits"
	"strings"

	"minmax/game"
)

type Cell uint8

const (
	Empty Cell = iota
	Cross      // Played by game.First
	Circle     // Played by game.Second
)

func (c Cell) String() string {
	switch c {
	case Cross:
		return "x"
	case Circle:
		return "o"
	default:
		return " "
	}
}

func cellOf(p game.Player) Cell {
	if p == game.First {
		return Cross
	}
	return Circle
}

const fullBoard uint16 = 0b111111111

// horizontal, vertical and diagonal patterns as bitboards
var winningPatterns = [...]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Board is a tic-tac-toe position. Cross always moves first.
type Board struct {
	cells     [9]Cell
	bitboards [2]uint16 // indexed by game.Player
	turn      game.Player
}

func New() *Board {
	return &Board{turn: game.First}
}

// FromString builds a position from nine cells read row by row from the top,
// using 'x', 'o' and '.' (or '_'). Whitespace and '|' are ignored. The player
// to move is derived from the number of marks.
func FromString(s string) (*Board, error) {
	b := New()
	i := 0
	var counts [2]int
	for _, r := range strings.ToLower(s) {
		var player game.Player
		switch r {
		case ' ', '\t', '\n', '\r', '|':
			continue
		case '.', '_':
			i++
			continue
		case 'x':
			player = game.First
		case 'o':
			player = game.Second
		default:
			return nil, fmt.Errorf("unexpected character %q in board", r)
		}
		if i >= len(b.cells) {
			return nil, fmt.Errorf("board has more than %d cells", len(b.cells))
		}
		b.cells[i] = cellOf(player)
		b.bitboards[player] |= 1 << i
		counts[player]++
		i++
	}

	if i != len(b.cells) {
		return nil, fmt.Errorf("board has %d cells, want %d", i, len(b.cells))
	}

	switch counts[game.First] - counts[game.Second] {
	case 0:
		b.turn = game.First
	case 1:
		b.turn = game.Second
	default:
		return nil, fmt.Errorf("impossible mark counts: %d x, %d o", counts[game.First], counts[game.Second])
	}
	return b, nil
}

func (b *Board) Turn() game.Player {
	return b.turn
}

// Apply places the mark of the player to move. Occupied squares are not
// checked.
func (b *Board) Apply(move Move) {
	b.cells[move] = cellOf(b.turn)
	b.bitboards[b.turn] |= 1 << move
	b.turn = b.turn.Other()
}

// LegalMoves returns the empty squares from the top-left corner onwards, or
// nothing once a line is complete.
func (b *Board) LegalMoves() []Move {
	if _, won := b.Winner(); won {
		return nil
	}

	free := uint(fullBoard ^ (b.bitboards[game.First] | b.bitboards[game.Second]))
	moves := make([]Move, 0, bits.OnesCount(free))
	for free != 0 {
		moves = append(moves, Move(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return moves
}

// Evaluate returns 1 if perspective completed a line, -1 if the opponent
// did and 0 otherwise. Unfinished positions are not estimated.
func (b *Board) Evaluate(perspective game.Player) int {
	winner, won := b.Winner()
	if !won {
		return 0
	}
	if winner == perspective {
		return 1
	}
	return -1
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Winner returns the player owning a complete line, if any.
func (b *Board) Winner() (game.Player, bool) {
	for _, player := range []game.Player{game.First, game.Second} {
		for _, pattern := range winningPatterns {
			if b.bitboards[player]&pattern == pattern {
				return player, true
			}
		}
	}
	return game.First, false
}

func (b *Board) Full() bool {
	return b.bitboards[game.First]|b.bitboards[game.Second] == fullBoard
}

func (b *Board) Cell(m Move) Cell {
	return b.cells[m]
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(",-----,\n")
	for row := 0; row < 3; row++ {
		sb.WriteString("|")
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(b.cells[row*3+col].String())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("'-----'\n")
	return sb.String()
}
