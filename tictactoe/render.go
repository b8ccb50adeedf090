package tictactoe

import (
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board with coordinates, colouring each mark for the
// terminal behind out. Profiles without colour support get plain text.
func (b *Board) Render(out *termenv.Output) string {
	var sb strings.Builder
	sb.WriteString("   a b c\n")
	for row := 0; row < 3; row++ {
		sb.WriteByte(byte('3' - row))
		sb.WriteString(" ")
		for col := 0; col < 3; col++ {
			sb.WriteString(" ")
			sb.WriteString(renderCell(out, b.cells[row*3+col]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCell(out *termenv.Output, c Cell) string {
	switch c {
	case Cross:
		return out.String("x").Foreground(out.Color("1")).Bold().String()
	case Circle:
		return out.String("o").Foreground(out.Color("4")).Bold().String()
	default:
		return out.String(".").Faint().String()
	}
}
