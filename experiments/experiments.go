package experiments

import (
	"fmt"

	"minmax/engine"
	"minmax/experiments/metrics"
	"minmax/game"
	"minmax/meta"
	"minmax/searcher"
	"minmax/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Config struct {
	Name      string
	Games     int     // Per match up
	Depths    []int   // One agent per depth
	Epsilon   float64 // Exploration rate shared by every agent
	Seed      uint64
	OutputDir string // Results are not written when empty
}

func DefaultConfig() Config {
	return Config{
		Name:      "depth",
		Games:     meta.GAMES,
		Depths:    []int{1, 2, 3, meta.DEFAULT_DEPTH},
		Epsilon:   meta.EPSILON,
		Seed:      1,
		OutputDir: meta.OUTPUT_DIR,
	}
}

// Standing sums up the games one agent took part in.
type Standing struct {
	Agent  metrics.AgentConfig
	Games  int
	Wins   int
	Losses int
	Draws  int
}

type Summary struct {
	Dir          string // Where the records were written, if anywhere
	Games        []metrics.GameRecord
	Moves        []metrics.MoveRecord
	Standings    []Standing
	AverageMoves float64
}

// Run plays every pairing of depths, self-pairings included, for cfg.Games
// games each. Seats alternate between games so both agents move first equally
// often. newState returns the starting position of each game.
func Run[M comparable, S game.State[M, S]](cfg Config, newState func() S) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("experiment needs a positive number of games, got %d", cfg.Games)
	}
	if len(cfg.Depths) == 0 {
		return Summary{}, fmt.Errorf("experiment needs at least one depth")
	}

	configs := lo.Map(cfg.Depths, func(depth int, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Depth: depth, Epsilon: cfg.Epsilon}
	})

	// Each matchup pairs two agents, the lower ID first
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < cfg.Games; i++ {
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			count++
			seed := cfg.Seed + uint64(2*count)
			outcome, gameMetric, moveMetrics, err := runGame(
				engine.NewLocal(newState(), createAgent[M, S](config1, seed), createAgent[M, S](config2, seed+1)),
			)
			if err != nil {
				return Summary{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	summary := Summary{
		Games:     gameRecords,
		Moves:     moveRecords,
		Standings: standings(configs, gameRecords),
		AverageMoves: float64(lo.SumBy(gameRecords, func(r metrics.GameRecord) int {
			return r.TotalMoves
		})) / float64(len(gameRecords)),
	}
	for _, s := range summary.Standings {
		log.Info().Msgf("agent %d (depth %d): %d games, %d wins, %d losses, %d draws",
			s.Agent.ID, s.Agent.Depth, s.Games, s.Wins, s.Losses, s.Draws)
	}

	if cfg.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(cfg, configs, gameRecords, moveRecords)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

func runGame(e engine.Engine) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	return e.Run()
}

func createAgent[M comparable, S game.State[M, S]](config metrics.AgentConfig, seed uint64) agent.Agent[M, S] {
	minimax := searcher.NewMinimax[M, S](searcher.WithDepth(config.Depth), searcher.WithMetrics())
	if config.Epsilon > 0 {
		return agent.NewTrainingAgent(minimax, config.Epsilon, seed)
	}
	return agent.NewEvaluationAgent(minimax)
}

func standings(configs []metrics.AgentConfig, records []metrics.GameRecord) []Standing {
	return lo.Map(configs, func(config metrics.AgentConfig, _ int) Standing {
		s := Standing{Agent: config}
		for _, r := range records {
			// Self-play games count once per seat
			for seat, id := range [2]int{r.Agent1, r.Agent2} {
				if id != config.ID {
					continue
				}
				s.Games++
				switch r.Winner {
				case game.Player(seat).String():
					s.Wins++
				case game.Player(seat).Other().String():
					s.Losses++
				default:
					s.Draws++
				}
			}
		}
		return s
	})
}

func store(cfg Config, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
