package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Move is a square index, 0 being the top-left corner (a3) and 8 the
// bottom-right one (c1).
type Move uint8

// Squares in notation order
const (
	A3 Move = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

var ErrInvalidMove = errors.New("invalid move")

func (m Move) String() string {
	if m > C1 {
		return "??"
	}
	col := byte('a' + m%3)
	row := byte('3' - m/3)
	return string([]byte{col, row})
}

// ParseMove reads a square written as a column letter followed by a row
// digit, e.g. "b2". Case and surrounding space are ignored.
func ParseMove(text string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q, expected a square like b2", ErrInvalidMove, text)
	}

	col, row := s[0], s[1]
	if col < 'a' || col > 'c' || row < '1' || row > '3' {
		return 0, fmt.Errorf("%w: %q is not on the board", ErrInvalidMove, text)
	}

	return Move(int('3'-row)*3 + int(col-'a')), nil
}
