package player

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"minmax/experiments/metrics"
	"minmax/game"
	"minmax/searcher"
	"minmax/searcher/agent"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ErrQuit is returned when the human leaves the game.
var ErrQuit = errors.New("player quit")

// LineReader is the prompt a human types into. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

const usage = `Commands:
  <move>        play a move, e.g. b2
  move <move>   same as above
  board         show the board
  moves         list the legal moves
  hint          ask the engine for a move
  help          show this message
  quit          leave the game
`

// Human asks a person for moves on a console.
type Human[M comparable, S game.State[M, S]] struct {
	reader LineReader
	out    io.Writer
	parse  func(string) (M, error)
	render func(S) string
	hint   *searcher.Minimax[M, S]
}

// NewHuman returns a console agent reading from reader and writing prompts and
// messages to out. parse turns a typed token into a move and render draws a
// position. hint may be nil, in which case the hint command is unavailable.
func NewHuman[M comparable, S game.State[M, S]](reader LineReader, out io.Writer, parse func(string) (M, error), render func(S) string, hint *searcher.Minimax[M, S]) *Human[M, S] {
	return &Human[M, S]{
		reader: reader,
		out:    out,
		parse:  parse,
		render: render,
		hint:   hint,
	}
}

// FindMove prompts until a legal move is entered. Malformed or illegal input
// is reported and the prompt repeats. ErrQuit is returned on quit, end of
// input or an interrupt on an empty line.
func (h *Human[M, S]) FindMove(state S) (M, metrics.SearchMetric, error) {
	var none M
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return none, metrics.SearchMetric{}, fmt.Errorf("%w: no legal move for %s", agent.ErrNoMove, state.Turn())
	}

	for {
		line, err := h.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return none, metrics.SearchMetric{}, ErrQuit
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return none, metrics.SearchMetric{}, ErrQuit
		} else if err != nil {
			return none, metrics.SearchMetric{}, fmt.Errorf("reading input: %w", err)
		}

		fields, err := shellquote.Split(line)
		if err != nil {
			h.showError(err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		log.Debug().Strs("fields", fields).Msg("human input")

		token := fields[0]
		switch strings.ToLower(token) {
		case "help", "?":
			h.showMessage(usage)
			continue
		case "board":
			h.showMessage(h.render(state))
			continue
		case "moves":
			h.showMessage("legal moves: " + formatMoves(legal))
			continue
		case "hint":
			h.showHint(state)
			continue
		case "quit", "exit", "bye":
			return none, metrics.SearchMetric{}, ErrQuit
		case "move":
			if len(fields) < 2 {
				h.showMessage("usage: move <move>")
				continue
			}
			token = fields[1]
		}

		move, err := h.parse(token)
		if err != nil {
			h.showError(err)
			continue
		}
		if !lo.Contains(legal, move) {
			h.showMessage(fmt.Sprintf("%v is not a legal move, try one of: %s", move, formatMoves(legal)))
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func (h *Human[M, S]) showHint(state S) {
	if h.hint == nil {
		h.showMessage("hints are not available")
		return
	}
	result, _ := h.hint.Search(state, state.Turn())
	if !result.Found {
		h.showMessage("no hint at this depth")
		return
	}
	h.showMessage(fmt.Sprintf("hint: %v (score %d at depth %d)", result.Move, result.Score, h.hint.Depth()))
}

func (h *Human[M, S]) showMessage(msg string) {
	io.WriteString(h.out, strings.TrimRight(msg, "\n"))
	io.WriteString(h.out, "\n")
}

func (h *Human[M, S]) showError(err error) {
	h.showMessage("Error: " + err.Error())
}

func formatMoves[M any](moves []M) string {
	return strings.Join(lo.Map(moves, func(m M, _ int) string {
		return fmt.Sprint(m)
	}), " ")
}
