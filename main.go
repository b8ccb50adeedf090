package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"minmax/config"
	"minmax/engine"
	"minmax/experiments"
	"minmax/game"
	"minmax/player"
	"minmax/searcher"
	"minmax/searcher/agent"
	"minmax/tictactoe"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

type board = *tictactoe.Board

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	setupLogging(cfg.LogLevel)

	switch cfg.Mode {
	case "play":
		err = play(cfg)
	case "demo":
		err = demo(os.Stdout, cfg.Depth)
	case "experiment":
		err = experiment(cfg)
	}
	if errors.Is(err, player.ErrQuit) {
		fmt.Println("bye")
	} else if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// play runs a game between the console and the engine
func play(cfg *config.Config) error {
	out := termenv.NewOutput(os.Stdout)
	if !cfg.Color {
		out = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	}
	render := func(b board) string { return b.Render(out) }

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "minmax> ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "quit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("starting prompt: %w", err)
	}
	defer l.Close()

	minimax := searcher.NewMinimax[tictactoe.Move, board](searcher.WithDepth(cfg.Depth), searcher.WithMetrics())
	computer := agent.NewEvaluationAgent(minimax)
	human := player.NewHuman(l, l.Stderr(), tictactoe.ParseMove, render, minimax)

	first, second := computer, computer
	switch cfg.Human {
	case "first":
		first = human
	case "second":
		second = human
	}

	b := tictactoe.New()
	fmt.Print(render(b))
	switch cfg.Human {
	case "first":
		fmt.Println("you play x, type help for commands")
	case "second":
		fmt.Println("you play o, type help for commands")
	}

	e := engine.NewLocal(b, first, second).
		WithObserver(func(step int, p game.Player, move tictactoe.Move, state board) {
			fmt.Printf("\n%d. %s plays %s\n%s", step, p, move, render(state))
		})
	outcome, _, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("result: %s\n", outcome)
	return nil
}

// demo lets the engine play itself, printing the board before every move
func demo(w io.Writer, depth int) error {
	minimax := searcher.NewMinimax[tictactoe.Move, board](searcher.WithDepth(depth))
	b := tictactoe.New()
	for {
		move, ok, _ := minimax.FindMove(b)
		if !ok {
			break
		}
		fmt.Fprint(w, b)
		b.Apply(move)
	}
	fmt.Fprint(w, b)
	if game.HasLegalMove[tictactoe.Move](b) {
		log.Warn().Msgf("depth %d found no move, game stopped before the end", minimax.Depth())
		return nil
	}
	fmt.Fprintf(w, "result: %s\n", game.OutcomeOf[tictactoe.Move](b))
	return nil
}

func experiment(cfg *config.Config) error {
	switch cfg.ExperimentKind {
	case "throughput":
		_, dir, err := experiments.RunThroughput[tictactoe.Move](cfg.Experiment, tictactoe.New())
		if err != nil {
			return err
		}
		if dir != "" {
			log.Info().Msgf("results written to %s", dir)
		}
		return nil
	default:
		summary, err := experiments.Run[tictactoe.Move](cfg.Experiment, tictactoe.New)
		if err != nil {
			return err
		}
		log.Info().Msgf("%d games, %.1f moves on average", len(summary.Games), summary.AverageMoves)
		if summary.Dir != "" {
			log.Info().Msgf("results written to %s", summary.Dir)
		}
		return nil
	}
}
